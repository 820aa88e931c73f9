// Package session runs one play-through: it moves the leader, records its
// path, keeps the chain in step and applies pickup, obstacle and finish
// rules.
package session

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/MianHassanSohail/NumberSnake/chain"
	"github.com/MianHassanSohail/NumberSnake/common"
	"github.com/MianHassanSohail/NumberSnake/event"
	"github.com/MianHassanSohail/NumberSnake/input"
	"github.com/MianHassanSohail/NumberSnake/level"
	"github.com/MianHassanSohail/NumberSnake/trail"
	"github.com/MianHassanSohail/NumberSnake/tween"
)

type State int

const (
	Playing State = iota
	Over
	Complete
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Over:
		return "game over"
	case Complete:
		return "level complete"
	}
	return "unknown"
}

type Options struct {
	Input   input.Provider
	Emitter event.Emitter
	Logger  *slog.Logger
	Seed    uint64
	// Layout names an embedded level layout; empty generates one.
	Layout string
}

type Session struct {
	cfg     Config
	opts    Options
	logger  *slog.Logger
	emit    event.Emitter
	input   input.Provider
	rng     *rand.Rand
	valuer  level.Valuer
	mover   *Mover
	history *trail.Recorder
	chain   *chain.Manager
	field   *level.Field
	punch   *tween.Punch

	value     int
	state     State
	elapsed   float64
	collected int
	hits      int
}

func New(cfg Config, opts Options) (*Session, error) {
	if opts.Emitter == nil {
		opts.Emitter = event.Discard
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Input == nil {
		opts.Input = idle{}
	}

	s := &Session{
		opts:   opts,
		logger: opts.Logger,
		emit:   opts.Emitter,
		input:  opts.Input,
		rng:    rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15)),
		punch:  tween.NewPunch(),
	}
	if err := s.configure(cfg); err != nil {
		return nil, err
	}
	if err := s.Restart(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) configure(cfg Config) error {
	if cfg.StartValue <= 0 {
		return fmt.Errorf("session: start value must be positive, got %d", cfg.StartValue)
	}
	history, err := trail.NewRecorder(cfg.HistorySize)
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}
	mover := NewMover(cfg.Movement)
	manager, err := chain.NewManager(cfg.Chain, mover, s.logger)
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}

	var valuer level.Valuer
	if cfg.Level.ValueScript != "" {
		sv, err := level.LoadScriptValuer(cfg.Level.ValueScript)
		if err != nil {
			return fmt.Errorf("session: %w", err)
		}
		valuer = sv
	}

	s.cfg = cfg
	s.history = history
	s.mover = mover
	s.chain = manager
	s.valuer = valuer
	return nil
}

// Reconfigure swaps in a new config and restarts. Spacing and history size
// are fixed within a run, so a config change only lands here.
func (s *Session) Reconfigure(cfg Config) error {
	if err := s.configure(cfg); err != nil {
		return err
	}
	return s.Restart()
}

// Restart resets the run: the chain is cleared without animation, history
// is forgotten and a fresh field is laid out.
func (s *Session) Restart() error {
	field, err := s.buildField()
	if err != nil {
		return err
	}

	s.chain.Clear()
	s.history.Clear()
	s.mover.Reset()
	s.punch.Start(0, 1)
	s.field = field
	s.value = s.cfg.StartValue
	s.state = Playing
	s.elapsed = 0
	s.collected = 0
	s.hits = 0
	s.chain.AddNumbers(s.value-1, s.value)

	s.logger.Info("session: started",
		"platform", s.cfg.Platform,
		"spacing", s.cfg.Chain.Spacing,
		"items", len(field.Items),
		"length", field.Length,
	)
	s.raise(event.ScoreChanged, s.value)
	s.raise(event.ChainChanged, s.value)
	return nil
}

func (s *Session) buildField() (*level.Field, error) {
	if s.opts.Layout != "" {
		return level.Load(s.opts.Layout, s.cfg.Level)
	}
	return level.Generate(s.cfg.Level, s.rng, s.valuer)
}

// Tick advances one simulation step. The leader's new position is recorded
// before the chain samples history. Nothing moves once the run has ended.
func (s *Session) Tick(dt float64) {
	if s.state != Playing {
		return
	}
	s.elapsed += dt

	s.input.Update()
	s.mover.Steer(s.input.Horizontal(), s.input.Active())
	s.mover.Advance(dt)

	s.history.Record(s.mover.Position())
	s.chain.UpdateChain(s.history, dt)
	s.chain.AdvanceRemovals(dt)

	s.checkTriggers()
	s.punch.Advance(dt)
}

func (s *Session) checkTriggers() {
	for _, it := range s.field.Overlaps(s.mover.Position(), s.cfg.Level.TriggerRadius) {
		if s.state != Playing {
			return
		}
		switch it.Kind {
		case level.KindPickup:
			s.Collect(it.Value)
		case level.KindObstacle:
			s.HitObstacle()
		case level.KindFinish:
			s.Finish()
		}
	}
}

// Collect applies a signed pickup. Dropping to zero or below ends the run
// without rebuilding the chain.
func (s *Session) Collect(v int) {
	if s.state != Playing {
		return
	}
	next := s.value + v
	if next <= 0 {
		s.value = 0
		s.end(Over, event.GameOver)
		return
	}

	s.value = next
	s.collected++
	s.chain.Rebuild(next, s.history)

	punch := s.cfg.Effects.GainPunch
	if v < 0 {
		punch = s.cfg.Effects.LossPunch
	}
	s.punch.Start(punch.Duration, punch.Scale)

	s.raise(event.NumberCollected, v)
	s.raise(event.ScoreChanged, next)
	s.raise(event.ChainChanged, next)
}

// HitObstacle costs one follower, or the run when only the leader is left.
func (s *Session) HitObstacle() {
	if s.state != Playing {
		return
	}
	if s.value <= 1 {
		s.value = 0
		s.end(Over, event.GameOver)
		return
	}

	s.value--
	s.hits++
	s.chain.RemoveLast()
	// same length now, so this only relabels
	s.chain.Rebuild(s.value, s.history)
	s.punch.Start(s.cfg.Effects.HitPunch.Duration, s.cfg.Effects.HitPunch.Scale)

	s.raise(event.ObstacleHit, s.value)
	s.raise(event.ScoreChanged, s.value)
	s.raise(event.ChainChanged, s.value)
}

func (s *Session) Finish() {
	if s.state != Playing {
		return
	}
	s.end(Complete, event.LevelComplete)
}

func (s *Session) end(state State, kind event.Kind) {
	s.state = state
	s.logger.Info("session: ended", "state", state, "value", s.value, "elapsed", s.elapsed)
	s.raise(kind, s.value)
}

func (s *Session) raise(kind event.Kind, value int) {
	s.emit.Emit(event.Event{Kind: kind, Value: value, Pos: s.mover.Position()})
}

func (s *Session) State() State             { return s.state }
func (s *Session) Value() int               { return s.value }
func (s *Session) Config() Config           { return s.cfg }
func (s *Session) Leader() common.Vec3      { return s.mover.Position() }
func (s *Session) Mover() *Mover            { return s.mover }
func (s *Session) Chain() *chain.Manager    { return s.chain }
func (s *Session) History() *trail.Recorder { return s.history }
func (s *Session) Field() *level.Field      { return s.field }
func (s *Session) HeadScale() float64       { return s.punch.Scale() }
func (s *Session) Elapsed() float64         { return s.elapsed }

// Summary describes a run for the end panel and tools.
type Summary struct {
	State     State
	Value     int
	Collected int
	Hits      int
	Distance  float64
	Elapsed   float64
}

func (s *Session) Summary() Summary {
	return Summary{
		State:     s.state,
		Value:     s.value,
		Collected: s.collected,
		Hits:      s.hits,
		Distance:  s.mover.Position().Z,
		Elapsed:   s.elapsed,
	}
}

func (s Summary) String() string {
	return fmt.Sprintf("%s: value %d, %d pickups, %d hits, %.1fm in %.1fs",
		s.State, s.Value, s.Collected, s.Hits, s.Distance, s.Elapsed)
}

type idle struct{}

func (idle) Update()             {}
func (idle) Horizontal() float64 { return 0 }
func (idle) Active() bool        { return false }
