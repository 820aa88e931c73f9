package level

import (
	"cmp"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/MianHassanSohail/NumberSnake/common"
	"github.com/MianHassanSohail/NumberSnake/prefabs"
)

const (
	Lanes = 3

	itemHeight        = 0.5
	placementAttempts = 10
)

// LaneX returns the lateral position of a lane, 0 being the left lane.
func LaneX(lane int, laneWidth float64) float64 {
	return float64(lane-1) * laneWidth
}

type generator struct {
	spec     prefabs.LevelSpec
	rng      *rand.Rand
	occupied []common.Vec3
}

// Generate lays out pickups, obstacles and the finish gate. The result is
// deterministic for a given rng state. A nil valuer uses the configured
// value ranges.
func Generate(spec prefabs.LevelSpec, rng *rand.Rand, valuer Valuer) (*Field, error) {
	if valuer == nil {
		valuer = NewRangeValuer(spec)
	}
	g := &generator{spec: spec, rng: rng}
	field := &Field{Length: spec.Length}

	index := 0
	for z := spec.PickupStart; z < spec.Length; z += spec.PickupSpacing {
		pos := g.lanePosition(z)
		in := ValueInput{Index: index, Z: z, Roll: rng.Float64(), Pick: rng.Float64()}
		value, err := valuer.Value(in)
		if err != nil {
			return nil, fmt.Errorf("level: pickup %d: %w", index, err)
		}
		field.Items = append(field.Items, &Item{
			Kind:      KindPickup,
			Value:     value,
			Pos:       pos,
			HalfWidth: spec.TriggerRadius,
			HalfDepth: spec.TriggerRadius,
		})
		index++
	}

	for z := spec.ObstacleStart; z < spec.Length; z += spec.ObstacleSpacing {
		field.Items = append(field.Items, &Item{
			Kind:      KindObstacle,
			Pos:       g.lanePosition(z),
			HalfWidth: spec.TriggerRadius,
			HalfDepth: spec.TriggerRadius,
		})
	}

	field.Items = append(field.Items, finishGate(spec))
	slices.SortStableFunc(field.Items, func(a, b *Item) int {
		return cmp.Compare(a.Pos.Z, b.Pos.Z)
	})
	return field, nil
}

// lanePosition picks a random lane at z that keeps clear of earlier items,
// falling back to any lane after a bounded number of attempts.
func (g *generator) lanePosition(z float64) common.Vec3 {
	for range placementAttempts {
		pos := g.laneAt(g.rng.IntN(Lanes), z)
		if g.clear(pos) {
			g.occupied = append(g.occupied, pos)
			return pos
		}
	}
	pos := g.laneAt(g.rng.IntN(Lanes), z)
	g.occupied = append(g.occupied, pos)
	return pos
}

func (g *generator) laneAt(lane int, z float64) common.Vec3 {
	return common.Vec3{X: LaneX(lane, g.spec.LaneWidth), Y: itemHeight, Z: z}
}

func (g *generator) clear(pos common.Vec3) bool {
	for _, o := range g.occupied {
		if pos.Dist(o) < g.spec.MinDistance {
			return false
		}
	}
	return true
}

func finishGate(spec prefabs.LevelSpec) *Item {
	return &Item{
		Kind:      KindFinish,
		Pos:       common.Vec3{Z: spec.Length},
		HalfWidth: Lanes * spec.LaneWidth,
		HalfDepth: spec.TriggerRadius,
	}
}
