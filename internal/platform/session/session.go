// Package session glues an engine to its host-side collaborators: it turns
// player actions into engine calls and routes the events of every tick to
// audio, best-score persistence and the run log.
package session

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

// BestStore persists the best score.
type BestStore interface {
	LoadBest() (int, error)
	SaveBest(score int) error
}

// RunRecorder appends finished runs to a log.
type RunRecorder interface {
	SaveRun(run storage.Run) (int64, error)
}

// Cues plays short sound effects.
type Cues interface {
	PlayStar()
	PlayPower()
	SetMuted(muted bool)
}

const (
	defaultStep  = time.Second / 60
	maxFrame     = 32 * time.Millisecond
	maxSubsteps  = 4
	defaultLabel = storage.LocalPlayer
)

// Options configures a Session. Every collaborator is optional.
type Options struct {
	Best       BestStore
	Runs       RunRecorder
	Cues       Cues
	Logger     *log.Logger
	Player     string
	Difficulty string
	// Step is the largest slice of time handed to the engine in one Update.
	// A frame is first capped at 32 ms, then split into at most four steps.
	Step  time.Duration
	Muted bool
}

// Session drives one engine for one player.
type Session struct {
	engine *flappy.Engine
	best   BestStore
	runs   RunRecorder
	cues   Cues
	logger *log.Logger

	player     string
	difficulty string
	step       time.Duration
	muted      bool
	seed       int64
}

// New wraps engine. The best score is loaded once; a failed load counts as 0.
func New(engine *flappy.Engine, opts Options) *Session {
	s := &Session{
		engine:     engine,
		best:       opts.Best,
		runs:       opts.Runs,
		cues:       opts.Cues,
		logger:     opts.Logger,
		player:     opts.Player,
		difficulty: opts.Difficulty,
		step:       opts.Step,
		muted:      opts.Muted,
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	if s.player == "" {
		s.player = defaultLabel
	}
	if s.step <= 0 {
		s.step = defaultStep
	}

	if s.best != nil {
		best, err := s.best.LoadBest()
		if err != nil {
			s.logger.Warn("Cannot load best score", "player", s.player, "error", err)
			best = 0
		}
		engine.SetBest(best)
	}
	if s.cues != nil {
		s.cues.SetMuted(s.muted)
	}
	return s
}

// Engine returns the wrapped engine.
func (s *Session) Engine() *flappy.Engine {
	return s.engine
}

// Player returns the player label used for the run log.
func (s *Session) Player() string {
	return s.player
}

// Flap forwards the single action input.
func (s *Session) Flap() {
	s.engine.Flap()
}

// Restart starts a new run if the current one is over.
func (s *Session) Restart() {
	s.engine.Restart()
}

// ToggleMute flips the mute flag and tells the audio collaborator.
func (s *Session) ToggleMute() {
	s.muted = !s.muted
	if s.cues != nil {
		s.cues.SetMuted(s.muted)
	}
}

// Muted reports whether cues are suppressed.
func (s *Session) Muted() bool {
	return s.muted
}

// Resize forwards a new surface size to the engine.
func (s *Session) Resize(w, h float64) {
	s.engine.Resize(w, h)
}

// Apply executes the actions of one input frame in order.
// It reports whether the player asked to quit.
func (s *Session) Apply(frame core.InputFrame) (quit bool) {
	for _, a := range frame.Actions {
		switch a {
		case core.ActionFlap:
			s.Flap()
		case core.ActionMute:
			s.ToggleMute()
		case core.ActionRestart:
			s.Restart()
		case core.ActionQuit:
			quit = true
		}
	}
	return quit
}

// Advance runs the engine for dt of wall time, capped at 32 ms, and
// dispatches the resulting events. The events are returned for renderers.
func (s *Session) Advance(dt time.Duration) []flappy.Event {
	var events []flappy.Event
	dt = min(dt, maxFrame)
	if dt <= 0 {
		events = s.engine.Update(0)
	}
	for n := 0; dt > 0 && n < maxSubsteps; n++ {
		slice := min(dt, s.step)
		dt -= slice
		events = append(events, s.engine.Update(slice.Seconds())...)
	}
	for _, ev := range events {
		s.dispatch(ev)
	}
	return events
}

// Snapshot returns the engine snapshot.
func (s *Session) Snapshot() flappy.Snapshot {
	return s.engine.Snapshot()
}

func (s *Session) dispatch(ev flappy.Event) {
	switch ev := ev.(type) {
	case flappy.StarCollected:
		if s.cues != nil && !s.muted {
			s.cues.PlayStar()
		}
	case flappy.PowerupCollected:
		if s.cues != nil && !s.muted {
			s.cues.PlayPower()
		}
	case flappy.RunStarted:
		s.seed = ev.Seed
		s.logger.Debug("Run started", "player", s.player, "seed", ev.Seed)
	case flappy.RunEnded:
		s.finish(ev)
	}
}

// finish persists the outcome of a run. Storage failures are logged and dropped.
func (s *Session) finish(ev flappy.RunEnded) {
	s.logger.Info("Run ended", "player", s.player, "score", ev.Score, "stars", ev.Stars, "best", ev.Best)

	if ev.NewBest && s.best != nil {
		if err := s.best.SaveBest(ev.Best); err != nil {
			s.logger.Warn("Cannot save best score", "player", s.player, "error", err)
		}
	}

	if s.runs != nil {
		run := storage.Run{
			Player:     s.player,
			Score:      ev.Score,
			Stars:      ev.Stars,
			Duration:   time.Duration(ev.Elapsed * float64(time.Second)),
			Seed:       s.seed,
			Difficulty: s.difficulty,
		}
		if _, err := s.runs.SaveRun(run); err != nil {
			s.logger.Warn("Cannot record run", "player", s.player, "error", err)
		}
	}
}
