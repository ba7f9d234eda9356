package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-arcade/internal/platform/tui"
)

var flagNoAudio bool

func init() {
	rootCmd.Flags().BoolVar(&flagNoAudio, "no-audio", false, "Do not open the audio device")
}

// runMenu loops menu -> game -> menu until the player quits.
func runMenu(_ *cobra.Command, _ []string) error {
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
	}
	var source tui.RunSource
	if store != nil {
		source = store
	}

	cfg := terminalConfig()
	for {
		result, err := tui.RunMenu(deps.best, cfg, preset)
		if err != nil {
			return err
		}
		cfg = result.Config

		if result.Quit {
			return nil
		}

		if result.WantsScoreboard {
			goBack, err := tui.RunScoreboard(source, cfg.Cols, cfg.Rows)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		preset = result.Preset
		s := deps.newSession(preset)
		back, err := tui.Run(s, cfg, tui.ModelOptions{AllowBack: true, Logger: logger})
		if err != nil {
			return err
		}
		// Keep the mute choice for the next game
		deps.muted = s.Muted()
		if !back {
			return nil
		}
	}
}
