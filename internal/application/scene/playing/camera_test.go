package playing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/personality/internal/application/system"
	"github.com/younwookim/personality/internal/domain/entity"
)

// 860x480 screen over a 256x144 scene: zoom 480/144, view 258 wide
func createTestCamera() *Camera {
	return NewCamera(860, 480, 256, 144, 480.0/144.0)
}

func TestCamera_Follow(t *testing.T) {
	tests := []struct {
		name   string
		screen [2]int
		target entity.Vec2
		wantX  float64
		wantY  float64
	}{
		{"centered on target", [2]int{320, 480}, entity.Vec2{X: 128, Y: 72}, 80, 0},
		{"clamped left", [2]int{320, 480}, entity.Vec2{X: 10, Y: 72}, 0, 0},
		{"clamped right", [2]int{320, 480}, entity.Vec2{X: 250, Y: 72}, 160, 0},
		{"wider than scene", [2]int{864, 480}, entity.Vec2{X: 10, Y: 72}, -1.6, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCamera(tt.screen[0], tt.screen[1], 256, 144, 480.0/144.0)

			c.Follow(tt.target)

			assert.InDelta(t, tt.wantX, c.X, 1e-9)
			assert.InDelta(t, tt.wantY, c.Y, 1e-9)
		})
	}
}

func TestCamera_ScreenToWorld(t *testing.T) {
	c := NewCamera(640, 480, 512, 240, 2)
	c.Follow(entity.Vec2{X: 300, Y: 120})

	assert.Equal(t, entity.Vec2{X: 140, Y: 0}, c.ScreenToWorld(0, 0))
	assert.Equal(t, entity.Vec2{X: 300, Y: 120}, c.ScreenToWorld(320, 240))
}

func TestCamera_RoundTrip(t *testing.T) {
	c := createTestCamera()
	c.Follow(entity.Vec2{X: 200, Y: 100})

	p := entity.Vec2{X: 150, Y: 90}
	sx, sy := c.WorldToScreen(p)
	back := c.ScreenToWorld(sx, sy)

	assert.InDelta(t, p.X, back.X, 1e-9)
	assert.InDelta(t, p.Y, back.Y, 1e-9)
}

func TestCamera_RectToScreen(t *testing.T) {
	c := NewCamera(640, 480, 320, 240, 2)
	c.Follow(entity.Vec2{X: 160, Y: 120})

	x, y, w, h := c.RectToScreen(entity.NewRect(10, 20, 5, 8))

	assert.Equal(t, float32(20), x)
	assert.Equal(t, float32(40), y)
	assert.Equal(t, float32(10), w)
	assert.Equal(t, float32(16), h)
}

func TestCamera_IsViewport(t *testing.T) {
	var _ system.Viewport = createTestCamera()
}
