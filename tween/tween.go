package tween

import "github.com/MianHassanSohail/NumberSnake/common"

// Tween interpolates a value from From to To over Duration seconds. Apply
// receives the interpolated value each tick; OnDone runs once at the end.
type Tween struct {
	From     float64
	To       float64
	Duration float64
	Apply    func(v float64)
	OnDone   func()

	elapsed float64
	done    bool
}

func New(from, to, duration float64, apply func(float64), onDone func()) *Tween {
	return &Tween{From: from, To: to, Duration: duration, Apply: apply, OnDone: onDone}
}

func (t *Tween) Advance(dt float64) bool {
	if t.done {
		return true
	}
	t.elapsed += dt

	progress := 1.0
	if t.Duration > 0 {
		progress = t.elapsed / t.Duration
	}
	if t.Apply != nil {
		t.Apply(common.Lerp(t.From, t.To, progress))
	}
	if progress < 1 {
		return false
	}

	t.done = true
	if t.OnDone != nil {
		t.OnDone()
	}
	return true
}

// Progress is the completed fraction in [0, 1].
func (t *Tween) Progress() float64 {
	if t.Duration <= 0 {
		if t.elapsed > 0 || t.done {
			return 1
		}
		return 0
	}
	return common.Clamp(t.elapsed/t.Duration, 0, 1)
}

func (t *Tween) Done() bool {
	return t.done
}
