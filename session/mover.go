package session

import (
	"github.com/MianHassanSohail/NumberSnake/common"
	"github.com/MianHassanSohail/NumberSnake/prefabs"
)

// Mover drives the leader: constant forward speed on +Z and a smoothed
// lateral position chasing a clamped target.
type Mover struct {
	spec    prefabs.MovementSpec
	pos     common.Vec3
	targetX float64
}

func NewMover(spec prefabs.MovementSpec) *Mover {
	return &Mover{spec: spec}
}

// Position satisfies chain.Anchor.
func (m *Mover) Position() common.Vec3 {
	return m.pos
}

func (m *Mover) TargetX() float64 {
	return m.targetX
}

// Steer moves the lateral target while input is active.
func (m *Mover) Steer(delta float64, active bool) {
	if !active {
		return
	}
	b := m.spec.HorizontalBounds
	m.targetX = common.Clamp(m.targetX+delta, -b, b)
}

func (m *Mover) Advance(dt float64) {
	m.pos = m.pos.Add(common.Forward.Scale(m.spec.ForwardSpeed * dt))
	m.pos.X = common.Lerp(m.pos.X, m.targetX, m.spec.HorizontalSpeed*dt)
}

func (m *Mover) Reset() {
	m.pos = common.Vec3{}
	m.targetX = 0
}
