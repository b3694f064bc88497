package playing

import "github.com/younwookim/personality/internal/domain/entity"

// Camera maps world pixels to screen pixels.
// The view follows a point and never shows anything outside the scene.
type Camera struct {
	X, Y float64 // world position of the view's top-left corner
	Zoom float64

	screenW, screenH float64
	sceneW, sceneH   float64
}

// NewCamera creates a camera for a scene of sceneW x sceneH world pixels
func NewCamera(screenW, screenH, sceneW, sceneH int, zoom float64) *Camera {
	return &Camera{
		Zoom:    zoom,
		screenW: float64(screenW),
		screenH: float64(screenH),
		sceneW:  float64(sceneW),
		sceneH:  float64(sceneH),
	}
}

// ViewSize returns the visible area in world pixels
func (c *Camera) ViewSize() entity.Vec2 {
	return entity.Vec2{X: c.screenW / c.Zoom, Y: c.screenH / c.Zoom}
}

// Follow centers the view on target, clamped to the scene.
// An axis the view is wider than is centered on the scene instead.
func (c *Camera) Follow(target entity.Vec2) {
	view := c.ViewSize()
	c.X = follow(target.X, view.X, c.sceneW)
	c.Y = follow(target.Y, view.Y, c.sceneH)
}

func follow(target, view, scene float64) float64 {
	if view >= scene {
		return (scene - view) / 2
	}
	pos := target - view/2
	if pos < 0 {
		pos = 0
	}
	if pos > scene-view {
		pos = scene - view
	}
	return pos
}

// ScreenToWorld converts a cursor position to world coordinates
func (c *Camera) ScreenToWorld(sx, sy float64) entity.Vec2 {
	return entity.Vec2{X: sx/c.Zoom + c.X, Y: sy/c.Zoom + c.Y}
}

// WorldToScreen converts a world point to screen pixels
func (c *Camera) WorldToScreen(p entity.Vec2) (float64, float64) {
	return (p.X - c.X) * c.Zoom, (p.Y - c.Y) * c.Zoom
}

// RectToScreen converts a world rect to a screen rect
func (c *Camera) RectToScreen(r entity.Rect) (x, y, w, h float32) {
	sx, sy := c.WorldToScreen(r.Position())
	return float32(sx), float32(sy), float32(r.Width * c.Zoom), float32(r.Height * c.Zoom)
}
