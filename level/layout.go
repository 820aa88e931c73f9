package level

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/MianHassanSohail/NumberSnake/common"
	"github.com/MianHassanSohail/NumberSnake/levels"
	"github.com/MianHassanSohail/NumberSnake/prefabs"
)

var (
	ErrUnknownItem = errors.New("level: unknown item type")
	ErrBadLane     = errors.New("level: lane out of range")
)

// Load builds a field from an embedded JSON layout. Spacing and trigger
// sizes still come from the config; the layout's length wins when set.
func Load(name string, spec prefabs.LevelSpec) (*Field, error) {
	layout, err := levels.LoadLayoutFromFS(name)
	if err != nil {
		return nil, fmt.Errorf("level: load %s: %w", name, err)
	}
	return FromLayout(layout, spec)
}

func FromLayout(layout *levels.Layout, spec prefabs.LevelSpec) (*Field, error) {
	if layout.Length > 0 {
		spec.Length = layout.Length
	}
	field := &Field{Length: spec.Length}
	for i, p := range layout.Items {
		if p.Lane < 0 || p.Lane >= Lanes {
			return nil, fmt.Errorf("%w: %s item %d lane %d", ErrBadLane, layout.Name, i, p.Lane)
		}
		pos := common.Vec3{X: LaneX(p.Lane, spec.LaneWidth), Y: itemHeight, Z: p.Z}
		it := &Item{Pos: pos, HalfWidth: spec.TriggerRadius, HalfDepth: spec.TriggerRadius}
		switch p.Type {
		case "pickup":
			it.Kind = KindPickup
			it.Value = p.Value
		case "obstacle":
			it.Kind = KindObstacle
		default:
			return nil, fmt.Errorf("%w: %s item %d %q", ErrUnknownItem, layout.Name, i, p.Type)
		}
		field.Items = append(field.Items, it)
	}
	field.Items = append(field.Items, finishGate(spec))
	slices.SortStableFunc(field.Items, func(a, b *Item) int {
		return cmp.Compare(a.Pos.Z, b.Pos.Z)
	})
	return field, nil
}
