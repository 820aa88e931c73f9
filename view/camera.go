// Package view maps the track onto the screen.
package view

import (
	"math/rand/v2"

	"github.com/MianHassanSohail/NumberSnake/common"
	"github.com/MianHassanSohail/NumberSnake/event"
	"github.com/MianHassanSohail/NumberSnake/prefabs"
	"github.com/MianHassanSohail/NumberSnake/tween"
)

const (
	// fraction of the screen height where the followed point is drawn
	anchorY = 0.75
	// how much item height lifts a sprite, relative to ground distance
	heightLift = 0.5
)

// Camera looks down on the track and follows the leader along Z. The
// track stays centred on X.
type Camera struct {
	X float64
	Z float64

	screenW int
	screenH int
	ppu     float64

	// smoothing factor (0..1). higher -> faster follow.
	smooth float64
	shake  *tween.Shake
}

func NewCamera(screenW, screenH int, pixelsPerUnit float64, rng *rand.Rand) *Camera {
	if pixelsPerUnit <= 0 {
		pixelsPerUnit = 1
	}
	return &Camera{
		screenW: screenW,
		screenH: screenH,
		ppu:     pixelsPerUnit,
		smooth:  0.15,
		shake:   tween.NewShake(rng),
	}
}

func (c *Camera) SetScreenSize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	c.screenW = w
	c.screenH = h
}

func (c *Camera) SetSmooth(f float64) {
	c.smooth = common.Clamp(f, 0, 1)
}

// Update eases toward target and advances any running shake. Call once
// per tick.
func (c *Camera) Update(target common.Vec3, dt float64) {
	if c.smooth <= 0 {
		c.Z = target.Z
	} else {
		c.Z += (target.Z - c.Z) * c.smooth
	}
	c.shake.Advance(dt)
}

// SnapTo places the camera on target without easing, e.g. after a restart.
func (c *Camera) SnapTo(target common.Vec3) {
	c.Z = target.Z
}

// Shake starts a decaying shake unless one is already running.
func (c *Camera) Shake(duration, magnitude float64) bool {
	return c.shake.Start(duration, magnitude)
}

func (c *Camera) Shaking() bool {
	return c.shake.Running()
}

// Project returns the screen position of a world point.
func (c *Camera) Project(p common.Vec3) (float64, float64) {
	ox, oz := c.shake.Offset()
	sx := float64(c.screenW)/2 + (p.X-c.X+ox)*c.ppu
	sy := float64(c.screenH)*anchorY - (p.Z-c.Z+oz)*c.ppu - p.Y*c.ppu*heightLift
	return sx, sy
}

// Visible reports whether a point lands on screen, with margin in pixels.
func (c *Camera) Visible(p common.Vec3, margin float64) bool {
	x, y := c.Project(p)
	return x >= -margin && x <= float64(c.screenW)+margin &&
		y >= -margin && y <= float64(c.screenH)+margin
}

// Ahead is how many world units of track fit above the followed point.
func (c *Camera) Ahead() float64 {
	return float64(c.screenH) * anchorY / c.ppu
}

func (c *Camera) PixelsPerUnit() float64 {
	return c.ppu
}

// ShakeOn returns an event handler that shakes on obstacle hits and on
// negative pickups.
func (c *Camera) ShakeOn(spec prefabs.EffectsSpec) event.Handler {
	return func(evt event.Event) {
		switch {
		case evt.Kind == event.ObstacleHit:
			c.Shake(spec.ObstacleShake.Duration, spec.ObstacleShake.Magnitude)
		case evt.Kind == event.NumberCollected && evt.Value < 0:
			c.Shake(spec.NegativeShake.Duration, spec.NegativeShake.Magnitude)
		}
	}
}
