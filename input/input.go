package input

import (
	"errors"
	"fmt"

	"github.com/MianHassanSohail/NumberSnake/prefabs"
)

var ErrUnknownScheme = errors.New("input: unknown control scheme")

// Pointer is the primary pointer for a tick: the first touch, or the left
// mouse button when no touch is present. X is in screen pixels.
type Pointer struct {
	Down bool
	X    float64
}

// Source is polled once per tick by providers.
type Source interface {
	Pointer() Pointer
	// Axis is the digital steering axis in [-1, 1].
	Axis() float64
}

// Provider turns raw input into a horizontal target delta for the leader.
type Provider interface {
	Update()
	// Horizontal is the delta to add to the leader's target X this tick.
	Horizontal() float64
	// Active reports whether the target should move this tick.
	Active() bool
}

const (
	SchemeTouch    = "touch"
	SchemeDrag     = "drag"
	SchemeKeyboard = "keyboard"
)

// New builds the provider for the configured scheme. Pointer schemes also
// accept the keyboard so desktop builds stay playable.
func New(src Source, controls prefabs.ControlsSpec, platform prefabs.Platform, screenWidth float64) (Provider, error) {
	keys := NewKeyboard(src, controls.KeyboardStep)
	switch controls.Scheme {
	case SchemeTouch, "":
		return First(NewTouch(src, controls.TouchSensitivity, screenWidth), keys), nil
	case SchemeDrag:
		return First(NewDrag(src, controls.Sensitivity(platform)), keys), nil
	case SchemeKeyboard:
		return keys, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, controls.Scheme)
}

// Drag moves the target by how far the pointer travelled since the last
// tick.
type Drag struct {
	src         Source
	sensitivity float64
	last        float64
	dragging    bool
	delta       float64
}

func NewDrag(src Source, sensitivity float64) *Drag {
	return &Drag{src: src, sensitivity: sensitivity}
}

func (d *Drag) Update() {
	d.delta = 0
	p := d.src.Pointer()
	switch {
	case p.Down && !d.dragging:
		d.last = p.X
		d.dragging = true
	case p.Down:
		d.delta = (p.X - d.last) * d.sensitivity
		d.last = p.X
	default:
		d.dragging = false
	}
}

func (d *Drag) Horizontal() float64 { return d.delta }
func (d *Drag) Active() bool        { return d.dragging }

// Touch steers by the offset from where the press started, normalised by
// half the screen width.
type Touch struct {
	src         Source
	sensitivity float64
	halfWidth   float64
	start       float64
	held        bool
	value       float64
}

func NewTouch(src Source, sensitivity, screenWidth float64) *Touch {
	half := screenWidth / 2
	if half <= 0 {
		half = 1
	}
	return &Touch{src: src, sensitivity: sensitivity, halfWidth: half}
}

// SetScreenWidth follows window resizes.
func (t *Touch) SetScreenWidth(w float64) {
	if w > 0 {
		t.halfWidth = w / 2
	}
}

func (t *Touch) Update() {
	t.value = 0
	p := t.src.Pointer()
	if !p.Down {
		t.held = false
		return
	}
	if !t.held {
		t.start = p.X
		t.held = true
	}
	t.value = (p.X - t.start) / t.halfWidth * t.sensitivity
}

func (t *Touch) Horizontal() float64 { return t.value }
func (t *Touch) Active() bool        { return t.held }

// Keyboard nudges the target by a fixed step while a direction is held.
type Keyboard struct {
	src  Source
	step float64
	axis float64
}

func NewKeyboard(src Source, step float64) *Keyboard {
	return &Keyboard{src: src, step: step}
}

func (k *Keyboard) Update()             { k.axis = k.src.Axis() }
func (k *Keyboard) Horizontal() float64 { return k.axis * k.step }
func (k *Keyboard) Active() bool        { return k.axis != 0 }

// First updates every provider and reports the first active one.
func First(providers ...Provider) Provider {
	return &first{providers: providers}
}

type first struct {
	providers []Provider
	current   Provider
}

func (f *first) Update() {
	f.current = nil
	for _, p := range f.providers {
		p.Update()
		if f.current == nil && p.Active() {
			f.current = p
		}
	}
}

func (f *first) Horizontal() float64 {
	if f.current == nil {
		return 0
	}
	return f.current.Horizontal()
}

func (f *first) Active() bool { return f.current != nil }
