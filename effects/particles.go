// Package effects plays short-lived particle bursts from pooled instances.
package effects

import (
	"log/slog"
	"math"
	"math/rand/v2"

	"github.com/MianHassanSohail/NumberSnake/common"
	"github.com/MianHassanSohail/NumberSnake/event"
	"github.com/MianHassanSohail/NumberSnake/pool"
	"github.com/MianHassanSohail/NumberSnake/prefabs"
)

type Kind int

const (
	Collect Kind = iota
	Hit
)

const sparksPerBurst = 8

// Burst is one pooled particle effect. Sparks are unit directions fixed at
// creation; drawing scales them by Progress.
type Burst struct {
	Kind     Kind
	Pos      common.Vec3
	Value    int
	Age      float64
	Duration float64
	Sparks   [sparksPerBurst]common.Vec3
	active   bool
}

func (b *Burst) SetActive(active bool) {
	b.active = active
	if !active {
		b.Age = 0
	}
}

func (b *Burst) Active() bool { return b.active }

// Progress is the elapsed fraction of the burst in [0, 1].
func (b *Burst) Progress() float64 {
	if b.Duration <= 0 {
		return 1
	}
	return common.Clamp(b.Age/b.Duration, 0, 1)
}

// Particles owns one pool per burst kind.
type Particles struct {
	pools     [2]*pool.Pool[*Burst]
	durations [2]float64
	active    []*Burst
	logger    *slog.Logger
}

func New(spec prefabs.EffectsSpec, rng *rand.Rand, logger *slog.Logger) *Particles {
	if logger == nil {
		logger = slog.Default()
	}
	factory := func(kind Kind) func(pool.Placement) *Burst {
		return func(pool.Placement) *Burst {
			b := &Burst{Kind: kind}
			for i := range b.Sparks {
				angle := (float64(i) + rng.Float64()) / sparksPerBurst * 2 * math.Pi
				b.Sparks[i] = common.Vec3{X: math.Cos(angle), Y: 0.5 + rng.Float64(), Z: math.Sin(angle)}
			}
			return b
		}
	}

	p := &Particles{
		durations: [2]float64{spec.CollectDuration, spec.HitDuration},
		logger:    logger,
	}
	for _, kind := range []Kind{Collect, Hit} {
		pl := pool.New(factory(kind), spec.ParticlePoolSize, pool.Placement{Name: kind.String()})
		pl.SetLogger(logger)
		p.pools[kind] = pl
	}
	return p
}

func (k Kind) String() string {
	if k == Hit {
		return "hit"
	}
	return "collect"
}

// Play starts a burst at pos.
func (p *Particles) Play(kind Kind, pos common.Vec3, value int) *Burst {
	b := p.pools[kind].Get()
	b.Pos = pos
	b.Value = value
	b.Age = 0
	b.Duration = p.durations[kind]
	p.active = append(p.active, b)
	return b
}

// Update ages every burst and returns finished ones to their pool. It
// reports how many bursts finished.
func (p *Particles) Update(dt float64) int {
	kept := p.active[:0]
	expired := 0
	for _, b := range p.active {
		b.Age += dt
		if b.Age < b.Duration {
			kept = append(kept, b)
			continue
		}
		expired++
		if err := p.pools[b.Kind].Return(b); err != nil {
			p.logger.Error("effects: return burst", "kind", b.Kind, "err", err)
		}
	}
	clear(p.active[len(kept):])
	p.active = kept
	return expired
}

// Active returns the bursts currently playing. The slice is reused by the
// next Update.
func (p *Particles) Active() []*Burst {
	return p.active
}

// Clear returns every playing burst at once.
func (p *Particles) Clear() {
	for _, b := range p.active {
		if err := p.pools[b.Kind].Return(b); err != nil {
			p.logger.Error("effects: return burst", "kind", b.Kind, "err", err)
		}
	}
	clear(p.active)
	p.active = p.active[:0]
}

// Stats reports created and idle bursts for a kind.
func (p *Particles) Stats(kind Kind) (created, available int) {
	return p.pools[kind].Created(), p.pools[kind].Available()
}

// Handle plays the burst matching a gameplay event. Subscribe it to the
// event bus.
func (p *Particles) Handle(evt event.Event) {
	switch evt.Kind {
	case event.NumberCollected:
		p.Play(Collect, evt.Pos, evt.Value)
	case event.ObstacleHit:
		p.Play(Hit, evt.Pos, evt.Value)
	}
}
