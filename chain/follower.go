package chain

import (
	"github.com/MianHassanSohail/NumberSnake/common"
	"github.com/MianHassanSohail/NumberSnake/pool"
)

// Follower is one numbered element of the chain. Its Value is independent of
// whether the pool currently has it handed out.
type Follower struct {
	Value int
	Pos   common.Vec3
	Scale float64

	active bool
}

func newFollower(placement pool.Placement) *Follower {
	return &Follower{Pos: placement.Origin, Scale: 1}
}

// SetActive is called by the pool when the follower is handed out or taken
// back. Activation restores the base scale.
func (f *Follower) SetActive(active bool) {
	f.active = active
	if active {
		f.Scale = 1
	}
}

func (f *Follower) Active() bool {
	return f.active
}
