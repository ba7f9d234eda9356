package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-arcade/internal/platform/session"
	"github.com/vovakirdan/flappy-arcade/internal/platform/window"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

const kvAppName = "flappy-arcade"

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window. The playfield keeps a 2:3 shape between 320 and
560 pixels wide.

Controls:
  Space/Up/W/click/tap  - Flap
  M                     - Mute
  Enter/R               - Restart
  Esc/Q                 - Quit

The best score is kept in the user data directory; finished runs also go to
the runs database when it can be opened.`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().BoolVar(&flagMute, "mute", false, "Start muted")
	windowCmd.Flags().BoolVar(&flagNoAudio, "no-audio", false, "Do not open the audio device")
}

func runWindow(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	base, preset, err := loadGame()
	if err != nil {
		return err
	}

	var best session.BestStore
	if kv, kvErr := storage.OpenKV(kvAppName); kvErr != nil {
		logger.Warn("best score will not be kept", "error", kvErr)
	} else {
		best = kv
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	sound := openSound(!flagNoAudio, logger)
	defer sound.Cleanup()

	deps := sessionDeps{
		base:   base,
		best:   best,
		store:  store,
		cues:   sound,
		logger: logger,
		muted:  flagMute,
	}
	return window.Run(deps.newSession(preset), logger)
}
