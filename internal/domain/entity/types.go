package entity

import "math"

// Vec2 is a point or direction in scene pixel space
type Vec2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * s
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Length returns the euclidean length of v
func (v Vec2) Length() float64 { return math.Hypot(v.X, v.Y) }

// Normalized returns v scaled to unit length.
// The zero vector stays zero.
func (v Vec2) Normalized() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Rect is an axis-aligned box in float pixel units.
// Width and Height are never negative.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRect creates a rect, clamping negative sizes to zero
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, Width: math.Max(w, 0), Height: math.Max(h, 0)}
}

// Position returns the top-left corner
func (r Rect) Position() Vec2 { return Vec2{r.X, r.Y} }

// Size returns width and height as a vector
func (r Rect) Size() Vec2 { return Vec2{r.Width, r.Height} }

// Center returns the center point
func (r Rect) Center() Vec2 { return Vec2{r.X + r.Width/2, r.Y + r.Height/2} }

// Right returns the x coordinate of the right edge
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Overlaps reports whether r and o share any interior area.
// Touching edges do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && r.Right() > o.X &&
		r.Y < o.Bottom() && r.Bottom() > o.Y
}

// Translate returns r moved by d
func (r Rect) Translate(d Vec2) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}

// VerticalStrip returns r stretched to cover [0, height) vertically
func (r Rect) VerticalStrip(height float64) Rect {
	r.Y = 0
	r.Height = height
	return r
}

// Widen returns r grown by margin on the left and right
func (r Rect) Widen(margin float64) Rect {
	r.X -= margin
	r.Width += 2 * margin
	return r
}

// PixelSpan returns the integer pixel range [x0,x1) x [y0,y1) covered by r.
// Edges are floored on the leading side and ceiled on the trailing side.
func (r Rect) PixelSpan() (x0, y0, x1, y1 int) {
	return int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.Right())), int(math.Ceil(r.Bottom()))
}
