package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/personality/internal/domain/entity"
)

// InputState holds one frame of player input.
// Aim is the cursor position in world coordinates.
type InputState struct {
	Left         bool
	Right        bool
	JumpPressed  bool
	JumpReleased bool
	Fire         bool
	AimX         float64
	AimY         float64
}

// Axis returns the horizontal input direction: -1, 0 or +1
func (in InputState) Axis() float64 {
	axis := 0.0
	if in.Left {
		axis--
	}
	if in.Right {
		axis++
	}
	return axis
}

// Aim returns the aim target as a vector
func (in InputState) Aim() entity.Vec2 {
	return entity.Vec2{X: in.AimX, Y: in.AimY}
}

// Viewport converts screen pixels to world coordinates
type Viewport interface {
	ScreenToWorld(sx, sy float64) entity.Vec2
}

// InputSystem polls keyboard and mouse through ebiten
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// GetInput reads the current input state. The cursor is mapped to world
// coordinates through view.
func (s *InputSystem) GetInput(view Viewport) InputState {
	mx, my := ebiten.CursorPosition()
	aim := view.ScreenToWorld(float64(mx), float64(my))
	return InputState{
		Left:         ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:        ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		JumpPressed:  inpututil.IsKeyJustPressed(ebiten.KeySpace),
		JumpReleased: inpututil.IsKeyJustReleased(ebiten.KeySpace),
		Fire:         inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		AimX:         aim.X,
		AimY:         aim.Y,
	}
}
