package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-arcade/internal/audio"
	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
	"github.com/vovakirdan/flappy-arcade/internal/platform/session"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

// newLogger writes to --log-file, or to fallback when no file is given.
// The returned func closes the file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	out := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// loadGame reads the rule set and the selected difficulty.
func loadGame() (config.FlappyConfig, config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.FlappyConfig{}, "", err
	}
	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return config.FlappyConfig{}, "", err
	}
	return cfg, preset, nil
}

// terminalConfig sizes the runtime config from the controlling terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	cfg := core.RuntimeConfig{
		Cols: width,
		Rows: height,
		FPS:  flagFPS,
		Seed: flagSeed,
	}
	cfg.Normalize()
	return cfg
}

// openStore opens the runs database. A failure is logged and play goes on
// without persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// openSound starts the audio device. Without a device the manager stays silent.
func openSound(enabled bool, logger *log.Logger) *audio.SoundManager {
	sm := audio.NewSoundManager()
	if !enabled {
		return sm
	}
	if err := sm.Initialize(); err != nil {
		logger.Warn("audio disabled", "error", err)
		return sm
	}
	sm.StartMusic()
	return sm
}

// sessionDeps bundles what every local session is built from.
type sessionDeps struct {
	base   config.FlappyConfig
	best   session.BestStore
	store  *storage.Store
	cues   session.Cues
	logger *log.Logger
	muted  bool
}

func (d sessionDeps) newSession(preset config.DifficultyPreset) *session.Session {
	cfg := d.base
	config.ApplyFlappyPreset(&cfg, preset)

	var opts []flappy.Option
	if flagSeed != 0 {
		opts = append(opts, flappy.WithSeed(flagSeed))
	}

	sessOpts := session.Options{
		Best:       d.best,
		Cues:       d.cues,
		Logger:     d.logger,
		Player:     storage.LocalPlayer,
		Difficulty: string(preset),
		Muted:      d.muted,
	}
	if d.store != nil {
		sessOpts.Runs = d.store
	}
	return session.New(flappy.NewEngine(cfg, opts...), sessOpts)
}

// localBest is the sqlite best score of the local player, or nil without a store.
func localBest(store *storage.Store) session.BestStore {
	if store == nil {
		return nil
	}
	return store.BestFor(storage.LocalPlayer)
}
