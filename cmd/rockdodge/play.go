package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rockdodge/internal/core"
	"github.com/vovakirdan/rockdodge/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a session in the terminal.

Controls:
  Arrows/WASD/8246  - Steer the ship
  P/Esc             - Pause
  R                 - Restart (after game over)
  C                 - Copy the run summary (after game over)
  Ctrl+S            - Save a screenshot to ~/.rockdodge/screenshots
  Q/Ctrl+C          - Quit

Difficulty options:
  easy    - 250 health
  normal  - 150 health
  hard    - 75 health and faster spawns

Examples:
  rockdodge play
  rockdodge play --difficulty easy
  rockdodge play --seed 7 --log-file rockdodge.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadGameConfig()
	exitOnError("loading config", err)

	// Logs would corrupt the alternate screen, so they are dropped unless
	// a log file was requested.
	logger, closeLog, err := newLogger(io.Discard, "rockdodge")
	exitOnError("", err)
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if err := tui.Run(cfg, rt, logger); err != nil {
		closeLog()
		exitOnError("running game", err)
	}
}
