package tween

import (
	"math/rand/v2"
	"testing"
)

func TestTweenReachesTargetOnce(t *testing.T) {
	var values []float64
	doneCalls := 0
	tw := New(1, 0, 1, func(v float64) { values = append(values, v) }, func() { doneCalls++ })

	for i := 0; i < 3; i++ {
		if tw.Advance(0.25) {
			t.Fatalf("tween finished early at step %d", i)
		}
	}
	if doneCalls != 0 {
		t.Fatalf("OnDone ran before duration elapsed")
	}
	if !tw.Advance(0.25) {
		t.Fatalf("expected tween to finish after its duration")
	}
	if !tw.Advance(0.25) || doneCalls != 1 {
		t.Fatalf("expected OnDone exactly once, got %d", doneCalls)
	}

	want := []float64{0.75, 0.5, 0.25, 0}
	if len(values) != len(want) {
		t.Fatalf("expected %d applied values, got %v", len(want), values)
	}
	for i := range want {
		if values[i] != want[i] {
			t.Fatalf("step %d: expected %v, got %v", i, want[i], values[i])
		}
	}
	if tw.Progress() != 1 || !tw.Done() {
		t.Fatalf("expected completed tween")
	}
}

func TestTweenLargeStepClamps(t *testing.T) {
	var last float64 = -1
	tw := New(2, 0, 0.5, func(v float64) { last = v }, nil)
	if !tw.Advance(3) {
		t.Fatalf("a step longer than the duration must finish the tween")
	}
	if last != 0 {
		t.Fatalf("expected clamped final value 0, got %v", last)
	}
}

func TestRunnerDropsFinishedTasks(t *testing.T) {
	r := NewRunner()
	short := New(0, 1, 0.5, nil, nil)
	long := New(0, 1, 1, nil, nil)
	r.Add(short)
	r.Add(long)
	r.Add(nil)

	if r.Len() != 2 {
		t.Fatalf("expected 2 tasks, got %d", r.Len())
	}
	r.Advance(0.5)
	if r.Len() != 1 {
		t.Fatalf("expected short task dropped, got %d tasks", r.Len())
	}
	r.Advance(0.5)
	if r.Len() != 0 {
		t.Fatalf("expected all tasks finished, got %d", r.Len())
	}

	r.Add(New(0, 1, 1, nil, nil))
	r.Clear()
	if r.Len() != 0 {
		t.Fatalf("expected Clear to drop tasks")
	}
}

func TestPunchSettlesAndRestarts(t *testing.T) {
	p := NewPunch()
	if !p.Advance(0.1) || p.Scale() != 1 {
		t.Fatalf("idle punch should be finished at scale 1")
	}

	p.Start(1, 2)
	p.Advance(0.25)
	if p.Scale() <= 1 || p.Scale() > 2 {
		t.Fatalf("expected rising scale in (1,2], got %v", p.Scale())
	}
	peakSeen := p.Scale()
	p.Advance(0.25)
	if p.Scale() >= 2 || p.Scale() <= 1 {
		t.Fatalf("expected settling scale, got %v (peak %v)", p.Scale(), peakSeen)
	}

	p.Start(1, 1.5)
	if p.Scale() != 1 || !p.Running() {
		t.Fatalf("restart should reset the punch")
	}
	for i := 0; i < 4; i++ {
		p.Advance(0.25)
	}
	if p.Running() || p.Scale() != 1 {
		t.Fatalf("expected punch to end at scale 1, got %v running=%v", p.Scale(), p.Running())
	}
}

func TestShakeIgnoresOverlapAndDecays(t *testing.T) {
	s := NewShake(rand.New(rand.NewPCG(3, 4)))
	if !s.Start(0.5, 1) {
		t.Fatalf("expected first shake accepted")
	}
	if s.Start(2, 5) {
		t.Fatalf("expected overlapping shake to be ignored")
	}

	s.Advance(0.25)
	x, y := s.Offset()
	if x < -1 || x > 1 || y < -1 || y > 1 {
		t.Fatalf("offset exceeded magnitude: %v,%v", x, y)
	}

	for i := 0; i < 4; i++ {
		s.Advance(0.25)
	}
	if s.Running() {
		t.Fatalf("expected shake finished")
	}
	if x, y := s.Offset(); x != 0 || y != 0 {
		t.Fatalf("expected zero offset after shake, got %v,%v", x, y)
	}
	if !s.Start(0.5, 1) {
		t.Fatalf("expected new shake accepted after completion")
	}
}
