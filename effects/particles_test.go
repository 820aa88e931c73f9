package effects

import (
	"math/rand/v2"
	"testing"

	"github.com/MianHassanSohail/NumberSnake/common"
	"github.com/MianHassanSohail/NumberSnake/event"
	"github.com/MianHassanSohail/NumberSnake/prefabs"
)

func newTestParticles(poolSize int) *Particles {
	spec := prefabs.DefaultGameConfig().Effects
	spec.ParticlePoolSize = poolSize
	spec.CollectDuration = 0.5
	spec.HitDuration = 0.75
	return New(spec, rand.New(rand.NewPCG(1, 1)), nil)
}

func TestPlayReusesPooledBursts(t *testing.T) {
	p := newTestParticles(2)
	if created, available := p.Stats(Collect); created != 2 || available != 2 {
		t.Fatalf("collect pool = %d/%d, want 2/2", created, available)
	}

	first := p.Play(Collect, common.Vec3{Z: 3}, 4)
	if !first.Active() || first.Duration != 0.5 || first.Value != 4 {
		t.Fatalf("burst = %+v", *first)
	}
	if n := p.Update(0.5); n != 1 {
		t.Fatalf("expired = %d, want 1", n)
	}
	if first.Active() || len(p.Active()) != 0 {
		t.Fatalf("burst still active after its duration")
	}

	for range 3 {
		p.Play(Collect, common.Vec3{}, 1)
	}
	if created, _ := p.Stats(Collect); created != 3 {
		t.Fatalf("created = %d, want 3 after exceeding initial size", created)
	}
}

func TestUpdateKeepsUnfinished(t *testing.T) {
	p := newTestParticles(4)
	p.Play(Collect, common.Vec3{}, 1)
	hit := p.Play(Hit, common.Vec3{}, 0)

	if n := p.Update(0.5); n != 1 {
		t.Fatalf("expired = %d, want 1", n)
	}
	if got := p.Active(); len(got) != 1 || got[0] != hit {
		t.Fatalf("active = %v, want only the hit burst", got)
	}
	if got := hit.Progress(); got != 0.5/0.75 {
		t.Fatalf("progress = %v", got)
	}
	if n := p.Update(0.25); n != 1 {
		t.Fatalf("expired = %d, want 1", n)
	}
	if _, available := p.Stats(Hit); available != 4 {
		t.Fatalf("hit pool available = %d, want 4", available)
	}
}

func TestHandleEvents(t *testing.T) {
	p := newTestParticles(2)
	bus := event.NewBus()
	bus.SubscribeAll(p.Handle)

	bus.Emit(event.Event{Kind: event.NumberCollected, Value: 3, Pos: common.Vec3{Z: 10}})
	bus.Emit(event.Event{Kind: event.ScoreChanged, Value: 4})
	bus.Emit(event.Event{Kind: event.ObstacleHit, Value: 3})
	bus.Dispatch()

	active := p.Active()
	if len(active) != 2 {
		t.Fatalf("active = %d, want 2", len(active))
	}
	if active[0].Kind != Collect || active[0].Pos.Z != 10 || active[1].Kind != Hit {
		t.Fatalf("bursts = %+v, %+v", *active[0], *active[1])
	}

	p.Clear()
	if len(p.Active()) != 0 {
		t.Fatalf("Clear left bursts active")
	}
	if _, available := p.Stats(Collect); available != 2 {
		t.Fatalf("collect available = %d, want 2", available)
	}
}
