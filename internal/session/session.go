package session

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/maze"
)

// DefaultProfile names progress when the player gives no profile.
const DefaultProfile = "local"

// ProgressStore persists the progress gate. *storage.Store implements it.
type ProgressStore interface {
	HighestCompleted(profile string) (int, error)
	RecordCompletion(profile string, level int) (int, error)
}

// Options configures a new Session.
type Options struct {
	Params  maze.Params
	Rules   maze.Rules
	Seed    int64 // already resolved; 0 is a valid seed here
	Profile string
	Store   ProgressStore // optional; nil starts the gate at 0
	Logger  *log.Logger   // optional
}

// Session is one player's run through the levels. It is not safe for
// concurrent use; every SSH connection gets its own.
type Session struct {
	gen     *maze.Generator
	rules   maze.Rules
	rng     *rand.Rand
	seed    int64
	profile string
	store   ProgressStore
	logger  *log.Logger
	highest int
	history []AttemptRecord
}

// ParamsFromConfig converts the YAML configuration into engine settings.
func ParamsFromConfig(cfg config.MazeConfig) (maze.Params, maze.Rules) {
	params := maze.Params{
		Rows:            cfg.Board.Rows,
		Cols:            cfg.Board.Cols,
		NumLevels:       cfg.Levels.Count,
		WallsPerLevel:   cfg.Levels.WallsPerLevel,
		MaxTraps:        cfg.Levels.MaxTraps,
		MaxMonsters:     cfg.Levels.MaxMonsters,
		MaxDrawsPerItem: cfg.Generation.MaxDrawsPerItem,
		RequirePath:     cfg.Generation.RequirePath,
		MaxLayouts:      cfg.Generation.MaxLayouts,
	}
	rules := maze.Rules{
		MonsterCatchesPlayer: cfg.Rules.MonsterCatchesPlayer,
	}
	return params, rules
}

// New creates a session. When a store is configured the progress gate
// starts at the stored value; a store that cannot be read is dropped and
// the session keeps progress in memory only.
func New(opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	profile := opts.Profile
	if profile == "" {
		profile = DefaultProfile
	}

	s := &Session{
		gen:     maze.NewGenerator(opts.Params),
		rules:   opts.Rules,
		rng:     core.NewRand(opts.Seed),
		seed:    opts.Seed,
		profile: profile,
		store:   opts.Store,
		logger:  logger,
	}

	if s.store != nil {
		highest, err := s.store.HighestCompleted(profile)
		if err != nil {
			logger.Warn("progress store unavailable, progress will not be saved", "profile", profile, "err", err)
			s.store = nil
		} else {
			s.highest = min(highest, opts.Params.NumLevels)
		}
	}
	return s
}

// Profile returns the name progress is stored under.
func (s *Session) Profile() string {
	return s.profile
}

// Seed returns the seed of the session's random source.
func (s *Session) Seed() int64 {
	return s.seed
}

// NumLevels returns the number of levels.
func (s *Session) NumLevels() int {
	return s.gen.Params().NumLevels
}

// HighestCompleted returns the progress gate.
func (s *Session) HighestCompleted() int {
	return s.highest
}

// AllCompleted reports whether no level is left to select.
func (s *Session) AllCompleted() bool {
	return s.highest >= s.NumLevels()
}

// SelectLevel validates a requested level against this session's gate.
func (s *Session) SelectLevel(requested int) (int, error) {
	level, err := SelectLevel(requested, s.highest, s.NumLevels())
	if err != nil {
		s.logger.Debug("level rejected", "level", requested, "err", err)
	}
	return level, err
}

// Begin generates a fresh board for the level and starts an attempt.
func (s *Session) Begin(level int) (*Attempt, error) {
	if _, err := s.SelectLevel(level); err != nil {
		return nil, err
	}

	state, err := s.gen.Generate(level, s.rng)
	if err != nil {
		s.logger.Error("level generation failed", "level", level, "err", err)
		return nil, fmt.Errorf("session: level %d: %w", level, err)
	}

	a := &Attempt{
		ID:     uuid.NewString(),
		Level:  level,
		engine: maze.NewEngine(state, s.rng, s.rules),
	}
	s.logger.Info("level started", "level", level, "attempt", a.ID, "profile", s.profile)
	return a, nil
}

// Finish closes a terminal attempt and adds it to the history. A win raises
// the progress gate and, with a store configured, persists it; store
// failures are logged and the in-memory gate still moves.
func (s *Session) Finish(a *Attempt) error {
	status := a.Status()
	if !status.Terminal() {
		return fmt.Errorf("session: attempt %s at level %d is still in progress", a.ID, a.Level)
	}
	if a.finished {
		return nil
	}
	a.finished = true

	s.logger.Info("level finished",
		"level", a.Level, "attempt", a.ID, "status", status, "turns", a.Turns())

	if status == maze.StatusWon {
		s.highest = max(s.highest, a.Level)
	}

	s.history = append(s.history, AttemptRecord{
		ID:    a.ID,
		Level: a.Level,
		Won:   status == maze.StatusWon,
		Turns: a.Turns(),
	})

	if s.store == nil || status != maze.StatusWon {
		return nil
	}
	if _, err := s.store.RecordCompletion(s.profile, a.Level); err != nil {
		s.logger.Warn("cannot save progress", "level", a.Level, "err", err)
	}
	return nil
}
