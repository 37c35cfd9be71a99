package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tuigames/fruitcatch/internal/config"
	"github.com/tuigames/fruitcatch/internal/core"
	"github.com/tuigames/fruitcatch/internal/platform/sound"
	"github.com/tuigames/fruitcatch/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a run.

Controls:
  Left/A/H    - Move basket to the left lane
  Down/S/J    - Move basket to the center lane
  Right/D/L   - Move basket to the right lane
  P/Esc       - Pause
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - 7 lives, 90 seconds
  normal - 5 lives, 60 seconds (default)
  hard   - 3 lives, 45 seconds

Examples:
  fruitcatch play
  fruitcatch play --difficulty hard
  fruitcatch play --config ./my-rules.yaml --mute`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		config.ApplyPreset(&gameCfg, preset)
	}

	width, height := 80, 24 // Defaults when not attached to a terminal
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		FPS:     flagFPS,
		Seed:    flagSeed,
	}

	emitter := sound.NewEmitter(flagMute)

	if err := tui.Run(cfg, gameCfg, emitter); err != nil {
		log.Error("game exited with error", "err", err)
		os.Exit(1)
	}
}
