package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-arcade/internal/platform/tui"
)

var (
	flagMute          bool
	flagScreenshotDir string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal without the menu.

Controls:
  Space/Up/W/click  - Flap (also starts and restarts a run)
  M                 - Mute
  R/Enter           - Restart
  Ctrl+S            - Save a screenshot
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Slow ramp toward the hardest settings
  normal - Default ramp
  hard   - Fast ramp
  fixed  - No progression, stays at the config's starting level

Examples:
  flappy play
  flappy play --difficulty hard
  flappy play --seed 42 --fps 30
  flappy play --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start muted")
	playCmd.Flags().BoolVar(&flagNoAudio, "no-audio", false, "Do not open the audio device")
	playCmd.Flags().StringVar(&flagScreenshotDir, "screenshots", "", "Screenshot directory (default: ~/.flappy/screenshots)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	base, preset, err := loadGame()
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	sound := openSound(!flagNoAudio, logger)
	defer sound.Cleanup()

	deps := sessionDeps{
		base:   base,
		best:   localBest(store),
		store:  store,
		cues:   sound,
		logger: logger,
		muted:  flagMute,
	}
	_, err = tui.Run(deps.newSession(preset), terminalConfig(), tui.ModelOptions{
		ScreenshotDir: flagScreenshotDir,
		Logger:        logger,
	})
	return err
}
