// Package chain keeps the ordered list of numbered followers that trail the
// leader, resizing it as the head value changes.
package chain

import (
	"log/slog"

	"github.com/MianHassanSohail/NumberSnake/common"
	"github.com/MianHassanSohail/NumberSnake/pool"
	"github.com/MianHassanSohail/NumberSnake/tween"
)

// History is the recorded leader path. Position(0) is the latest sample.
type History interface {
	Position(stepsBack int) (common.Vec3, bool)
}

// Anchor reports the leader's current position.
type Anchor interface {
	Position() common.Vec3
}

// AnchorFunc adapts a function to Anchor.
type AnchorFunc func() common.Vec3

func (f AnchorFunc) Position() common.Vec3 {
	return f()
}

// Manager owns the follower pool and the active chain. Index 0 is nearest
// to the leader. After every public call, follower i displays Head()-1-i.
type Manager struct {
	cfg      Config
	anchor   Anchor
	pool     *pool.Pool[*Follower]
	active   []*Follower
	head     int
	removals *tween.Runner
	detached []*Follower
	logger   *slog.Logger
}

func NewManager(cfg Config, anchor Anchor, logger *slog.Logger) (*Manager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if anchor == nil {
		return nil, ErrNilAnchor
	}
	if logger == nil {
		logger = slog.Default()
	}

	p := pool.New(newFollower, cfg.PoolSize, pool.Placement{Name: "chain", Origin: anchor.Position()})
	p.SetLogger(logger)

	return &Manager{
		cfg:      cfg,
		anchor:   anchor,
		pool:     p,
		active:   make([]*Follower, 0, cfg.PoolSize),
		removals: tween.NewRunner(),
		logger:   logger,
	}, nil
}

// UpdateChain moves each follower toward the point the leader occupied
// (i+1)*Spacing records ago. Followers without enough history hold still.
func (m *Manager) UpdateChain(h History, dt float64) {
	t := m.cfg.FollowSpeed * dt
	for i, f := range m.active {
		target, ok := h.Position((i + 1) * m.cfg.Spacing)
		if !ok {
			continue
		}
		f.Pos = common.LerpVec3(f.Pos, target, t)
	}
}

// AddNumbers appends count followers at the leader's position with values
// descending from startValue-1.
func (m *Manager) AddNumbers(count, startValue int) {
	origin := m.anchor.Position()
	for i := 0; i < count; i++ {
		f := m.pool.Get()
		f.Pos = origin
		m.active = append(m.active, f)
	}
	m.head = startValue
	m.restamp()
}

// Rebuild resizes the chain to max(newValue-1, 0) followers. New followers
// are placed on the recorded path when possible, otherwise just behind the
// current tail, otherwise behind the leader.
func (m *Manager) Rebuild(newValue int, h History) {
	oldCount := len(m.active)
	newCount := max(newValue-1, 0)
	m.head = newValue

	switch {
	case newCount > oldCount:
		for i := oldCount; i < newCount; i++ {
			f := m.pool.Get()
			f.Value = newValue - 1 - i
			f.Pos = m.spawnPosition(i, h)
			m.active = append(m.active, f)
		}
	case newCount < oldCount:
		for len(m.active) > newCount {
			last := m.active[len(m.active)-1]
			m.active[len(m.active)-1] = nil
			m.active = m.active[:len(m.active)-1]
			if err := m.pool.Return(last); err != nil {
				m.logger.Error("chain: return follower", "value", last.Value, "err", err)
			}
		}
	}

	m.restamp()
	m.logger.Debug("chain rebuilt", "head", newValue, "from", oldCount, "to", len(m.active))
}

func (m *Manager) spawnPosition(i int, h History) common.Vec3 {
	if pos, ok := h.Position((i + 1) * m.cfg.Spacing); ok {
		return pos
	}
	back := common.Forward.Scale(m.cfg.ContinuityOffset)
	if n := len(m.active); n > 0 {
		return m.active[n-1].Pos.Sub(back)
	}
	return m.anchor.Position().Sub(back.Scale(float64(i + 1)))
}

// RemoveLast detaches the tail follower and shrinks it away. The follower
// goes back to the pool only once the shrink finishes. Overlapping removals
// run independently.
func (m *Manager) RemoveLast() bool {
	n := len(m.active)
	if n == 0 {
		return false
	}
	last := m.active[n-1]
	m.active[n-1] = nil
	m.active = m.active[:n-1]
	m.startRemoval(last)
	return true
}

// Clear returns every active follower to the pool immediately. Removals
// already in flight finish on their own.
func (m *Manager) Clear() {
	if err := m.pool.ReturnAll(&m.active); err != nil {
		m.logger.Error("chain: clear", "err", err)
	}
}

func (m *Manager) restamp() {
	for i, f := range m.active {
		f.Value = m.head - 1 - i
	}
}

func (m *Manager) Len() int {
	return len(m.active)
}

// Head is the value most recently passed to Rebuild or AddNumbers.
func (m *Manager) Head() int {
	return m.head
}

// Values returns the display values from nearest to farthest.
func (m *Manager) Values() []int {
	out := make([]int, len(m.active))
	for i, f := range m.active {
		out[i] = f.Value
	}
	return out
}

// Followers returns a copy of the active chain for rendering.
func (m *Manager) Followers() []*Follower {
	out := make([]*Follower, len(m.active))
	copy(out, m.active)
	return out
}

func (m *Manager) Config() Config {
	return m.cfg
}

// PoolStats reports how many followers exist and how many are idle.
func (m *Manager) PoolStats() (created, available int) {
	return m.pool.Created(), m.pool.Available()
}
