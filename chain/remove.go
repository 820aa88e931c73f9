package chain

import (
	"slices"

	"github.com/MianHassanSohail/NumberSnake/tween"
)

// startRemoval shrinks a detached follower to nothing and hands it back to
// the pool when the animation ends.
func (m *Manager) startRemoval(f *Follower) {
	baseScale := f.Scale
	m.detached = append(m.detached, f)
	m.removals.Add(tween.New(baseScale, 0, m.cfg.RemoveDuration,
		func(v float64) { f.Scale = v },
		func() {
			f.Scale = baseScale
			if i := slices.Index(m.detached, f); i >= 0 {
				m.detached = slices.Delete(m.detached, i, i+1)
			}
			if err := m.pool.Return(f); err != nil {
				m.logger.Error("chain: return removed follower", "value", f.Value, "err", err)
			}
		},
	))
}

// AdvanceRemovals steps every in-flight tail removal once. Finished removals
// return their follower to the pool.
func (m *Manager) AdvanceRemovals(dt float64) {
	m.removals.Advance(dt)
}

// Removing reports whether any tail removal is still animating.
func (m *Manager) Removing() bool {
	return m.removals.Len() > 0
}

func (m *Manager) PendingRemovals() int {
	return m.removals.Len()
}

// Detached returns the followers that have left the chain but are still
// shrinking, so they can be drawn.
func (m *Manager) Detached() []*Follower {
	return slices.Clone(m.detached)
}
