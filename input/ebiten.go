package input

import (
	"github.com/hajimehoshi/ebiten/v2"
)

const stickDeadzone = 0.3

// EbitenSource polls touches, the mouse, the keyboard and the first
// gamepad.
type EbitenSource struct {
	touches []ebiten.TouchID
}

func NewEbitenSource() *EbitenSource {
	return &EbitenSource{}
}

func (s *EbitenSource) Pointer() Pointer {
	s.touches = ebiten.AppendTouchIDs(s.touches[:0])
	if len(s.touches) > 0 {
		x, _ := ebiten.TouchPosition(s.touches[0])
		return Pointer{Down: true, X: float64(x)}
	}
	x, _ := ebiten.CursorPosition()
	return Pointer{Down: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), X: float64(x)}
}

func (s *EbitenSource) Axis() float64 {
	var axis float64
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		axis -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		axis += 1
	}

	if ids := ebiten.AppendGamepadIDs(nil); len(ids) > 0 {
		leftX := ebiten.StandardGamepadAxisValue(ids[0], ebiten.StandardGamepadAxisLeftStickHorizontal)
		if leftX < -stickDeadzone {
			axis = -1
		} else if leftX > stickDeadzone {
			axis = 1
		}
	}
	return axis
}
