package tween

import (
	"math/rand/v2"

	"github.com/MianHassanSohail/NumberSnake/common"
)

// Shake produces a decaying random 2D offset. A shake requested while one
// is already running is ignored.
type Shake struct {
	rng       *rand.Rand
	duration  float64
	magnitude float64
	elapsed   float64
	running   bool
	offX      float64
	offY      float64
}

func NewShake(rng *rand.Rand) *Shake {
	if rng == nil {
		rng = rand.New(rand.NewPCG(1, 2))
	}
	return &Shake{rng: rng}
}

// Start begins a shake unless one is in progress. It reports whether the
// request was accepted.
func (s *Shake) Start(duration, magnitude float64) bool {
	if s.running || duration <= 0 {
		return false
	}
	s.duration = duration
	s.magnitude = magnitude
	s.elapsed = 0
	s.running = true
	return true
}

func (s *Shake) Running() bool {
	return s.running
}

// Offset is the displacement to add to the camera this tick.
func (s *Shake) Offset() (float64, float64) {
	return s.offX, s.offY
}

func (s *Shake) Advance(dt float64) bool {
	if !s.running {
		return true
	}
	if s.elapsed >= s.duration {
		s.running = false
		s.offX, s.offY = 0, 0
		return true
	}

	s.offX = (s.rng.Float64()*2 - 1) * s.magnitude
	s.offY = (s.rng.Float64()*2 - 1) * s.magnitude
	s.elapsed += dt
	s.magnitude = common.Lerp(s.magnitude, 0, s.elapsed/s.duration)
	return false
}
