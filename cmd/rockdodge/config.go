package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rockdodge/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game config",
	Long: `Print the game config as YAML after the search path and difficulty
preset have been applied. Redirect the output to ~/.rockdodge/configs/rockdodge.yaml
to start customising.

Examples:
  rockdodge config
  rockdodge config --difficulty hard
  rockdodge config --defaults > ~/.rockdodge/configs/rockdodge.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults, ignoring config files")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagDefaults {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := loadGameConfig()
	exitOnError("loading config", err)

	data, err := config.Marshal(cfg)
	exitOnError("encoding config", err)
	os.Stdout.Write(data)
}
