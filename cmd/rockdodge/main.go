// rockdodge is a side-scrolling asteroid dodger for the terminal.
//
// Usage:
//
//	rockdodge play        - Play in the terminal
//	rockdodge simulate    - Run a headless session with an autopilot
//	rockdodge config      - Print the effective game config as YAML
//
// Global flags:
//
//	--fps <rate>          - UI frame rate (default: 60)
//	--seed <value>        - RNG seed for reproducible sessions
//	--config <path>       - Custom game config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Append logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/rockdodge/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rockdodge",
	Short: "Dodge the asteroid field in your terminal",
	Long: `rockdodge is a side-scrolling arcade game. Steer your ship through an
endless stream of rocks; every tick spent touching one costs health.
Survive to score, and the rocks grow bigger and faster with each level.

Available commands:
  play      - Play in the terminal
  simulate  - Run a headless session driven by an autopilot
  config    - Print the effective game config

Examples:
  rockdodge play
  rockdodge play --difficulty hard
  rockdodge simulate --seed 42 --duration 2m
  rockdodge config --config ./my-rockdodge.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "UI frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// exitOnError prints err the way every command reports failures and exits.
func exitOnError(context string, err error) {
	if err == nil {
		return
	}
	if context != "" {
		fmt.Fprintf(os.Stderr, "Error %s: %v\n", context, err)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(1)
}

// loadGameConfig resolves the config file and applies the difficulty preset.
func loadGameConfig() (config.GameConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.GameConfig{}, err
	}
	if err := config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty)); err != nil {
		return config.GameConfig{}, err
	}
	return cfg, cfg.Validate()
}

// newLogger builds the process logger. Output goes to --log-file when set,
// otherwise to fallback. The returned func closes the file.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	w, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closeFn = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}
