package view

import (
	"math/rand/v2"
	"testing"

	"github.com/MianHassanSohail/NumberSnake/common"
	"github.com/MianHassanSohail/NumberSnake/event"
	"github.com/MianHassanSohail/NumberSnake/prefabs"
)

func newTestCamera() *Camera {
	return NewCamera(400, 800, 40, rand.New(rand.NewPCG(1, 1)))
}

func TestCameraFollow(t *testing.T) {
	tests := []struct {
		name   string
		smooth float64
		want   float64
	}{
		{name: "snap", smooth: 0, want: 8},
		{name: "half", smooth: 0.5, want: 4},
		{name: "full", smooth: 1, want: 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCamera()
			c.SetSmooth(tt.smooth)
			c.Update(common.Vec3{X: 2, Z: 8}, 1.0/60)
			if c.Z != tt.want {
				t.Fatalf("Z = %v, want %v", c.Z, tt.want)
			}
			if c.X != 0 {
				t.Fatalf("X = %v, camera should stay on the track centre", c.X)
			}
		})
	}
}

func TestProject(t *testing.T) {
	c := newTestCamera()
	c.SnapTo(common.Vec3{Z: 10})

	x, y := c.Project(common.Vec3{Z: 10})
	if x != 200 || y != 600 {
		t.Fatalf("Project(anchor) = %v,%v; want 200,600", x, y)
	}
	x, y = c.Project(common.Vec3{X: -2, Z: 15})
	if x != 120 || y != 400 {
		t.Fatalf("Project = %v,%v; want 120,400", x, y)
	}
	if c.Ahead() != 15 {
		t.Fatalf("Ahead = %v, want 15", c.Ahead())
	}
	if !c.Visible(common.Vec3{Z: 24}, 0) || c.Visible(common.Vec3{Z: 26}, 0) {
		t.Fatalf("visibility cut-off wrong")
	}
}

func TestShakeOnEvents(t *testing.T) {
	spec := prefabs.DefaultGameConfig().Effects
	c := newTestCamera()
	bus := event.NewBus()
	bus.SubscribeAll(c.ShakeOn(spec))

	bus.Emit(event.Event{Kind: event.NumberCollected, Value: 3})
	bus.Dispatch()
	if c.Shaking() {
		t.Fatalf("positive pickup should not shake")
	}

	bus.Emit(event.Event{Kind: event.ObstacleHit})
	bus.Dispatch()
	if !c.Shaking() {
		t.Fatalf("obstacle hit should shake")
	}

	c.Update(common.Vec3{}, 0.1)
	x0, _ := c.Project(common.Vec3{})
	if x0 == 200 {
		t.Fatalf("shake produced no offset")
	}

	for range 20 {
		c.Update(common.Vec3{}, 0.1)
	}
	if c.Shaking() {
		t.Fatalf("shake did not end")
	}
	if x, y := c.Project(common.Vec3{}); x != 200 || y != 600 {
		t.Fatalf("offset left after shake: %v,%v", x, y)
	}
}
