package level

import (
	"github.com/MianHassanSohail/NumberSnake/common"
	"github.com/jakecoffman/cp"
)

type Kind int

const (
	KindPickup Kind = iota
	KindObstacle
	KindFinish
)

func (k Kind) String() string {
	switch k {
	case KindPickup:
		return "pickup"
	case KindObstacle:
		return "obstacle"
	case KindFinish:
		return "finish"
	}
	return "unknown"
}

// Item is a trigger placed on the track. Extents are half sizes on the
// lateral (X) and forward (Z) axes.
type Item struct {
	Kind      Kind
	Value     int
	Pos       common.Vec3
	HalfWidth float64
	HalfDepth float64
	Consumed  bool
}

// Bounds projects the item onto the ground plane, X to the box's
// horizontal axis and Z to its vertical axis.
func (it *Item) Bounds() cp.BB {
	return groundBB(it.Pos, it.HalfWidth, it.HalfDepth)
}

func groundBB(p common.Vec3, hw, hd float64) cp.BB {
	return cp.BB{L: p.X - hw, B: p.Z - hd, R: p.X + hw, T: p.Z + hd}
}

type Field struct {
	Items  []*Item
	Length float64
}

// Overlaps returns the unconsumed items touching a square of the given
// radius around pos, ordered along the track, and marks them consumed.
func (f *Field) Overlaps(pos common.Vec3, radius float64) []*Item {
	if f == nil {
		return nil
	}
	probe := groundBB(pos, radius, radius)
	var hits []*Item
	for _, it := range f.Items {
		if it.Consumed {
			continue
		}
		if !probe.Intersects(it.Bounds()) {
			continue
		}
		it.Consumed = true
		hits = append(hits, it)
	}
	return hits
}

// Remaining counts unconsumed items of a kind.
func (f *Field) Remaining(kind Kind) int {
	if f == nil {
		return 0
	}
	n := 0
	for _, it := range f.Items {
		if it.Kind == kind && !it.Consumed {
			n++
		}
	}
	return n
}

// Ahead returns unconsumed items between z and z+distance for drawing.
func (f *Field) Ahead(z, distance float64) []*Item {
	if f == nil {
		return nil
	}
	var out []*Item
	for _, it := range f.Items {
		if it.Consumed || it.Pos.Z < z-1 || it.Pos.Z > z+distance {
			continue
		}
		out = append(out, it)
	}
	return out
}
