package tween

import (
	"math"

	"github.com/MianHassanSohail/NumberSnake/common"
)

const (
	punchRiseFraction = 0.3
	punchOvershoot    = 0.1
)

// Punch scales a value up quickly, then settles back to 1 with a small
// wobble near the end. Starting a new punch replaces the running one.
type Punch struct {
	duration float64
	peak     float64
	elapsed  float64
	running  bool
	scale    float64
}

func NewPunch() *Punch {
	return &Punch{scale: 1}
}

func (p *Punch) Start(duration, peak float64) {
	p.duration = duration
	p.peak = peak
	p.elapsed = 0
	p.running = duration > 0
	p.scale = 1
}

// Scale is the current multiplier applied to the target's base scale.
func (p *Punch) Scale() float64 {
	return p.scale
}

func (p *Punch) Running() bool {
	return p.running
}

func (p *Punch) Advance(dt float64) bool {
	if !p.running {
		return true
	}
	p.elapsed += dt
	if p.elapsed >= p.duration {
		p.running = false
		p.scale = 1
		return true
	}

	progress := p.elapsed / p.duration
	if progress < punchRiseFraction {
		p.scale = common.Lerp(1, p.peak, progress/punchRiseFraction)
		return false
	}

	bounce := (progress - punchRiseFraction) / (1 - punchRiseFraction)
	p.scale = common.Lerp(p.peak, 1, bounce)
	if bounce > 0.8 {
		p.scale += math.Sin((bounce-0.8)*math.Pi*5) * punchOvershoot
	}
	return false
}
