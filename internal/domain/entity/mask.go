package entity

import (
	"image"
	"image/color"

	"golang.org/x/image/colornames"
)

// SolidColor is the reference colour marking solid level geometry
var SolidColor color.Color = colornames.Black

// SolidMask is the per-pixel solid classification of a level bitmap.
// It is immutable after construction.
type SolidMask struct {
	width  int
	height int
	solid  []bool
}

// NewSolidMask classifies every pixel of img: a pixel is solid only when
// it equals ref exactly. The mask origin is the image's Min point.
func NewSolidMask(img image.Image, ref color.Color) *SolidMask {
	b := img.Bounds()
	m := &SolidMask{
		width:  b.Dx(),
		height: b.Dy(),
		solid:  make([]bool, b.Dx()*b.Dy()),
	}

	rr, rg, rb, ra := ref.RGBA()
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			r, g, bl, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			m.solid[y*m.width+x] = r == rr && g == rg && bl == rb && a == ra
		}
	}
	return m
}

// IsSolid reports whether pixel (px, py) is solid.
// Pixels outside the grid are never solid.
func (m *SolidMask) IsSolid(px, py int) bool {
	if px < 0 || py < 0 || px >= m.width || py >= m.height {
		return false
	}
	return m.solid[py*m.width+px]
}

// Width returns the mask width in pixels
func (m *SolidMask) Width() int { return m.width }

// Height returns the mask height in pixels
func (m *SolidMask) Height() int { return m.height }

// SolidCount returns the number of solid pixels
func (m *SolidMask) SolidCount() int {
	n := 0
	for _, s := range m.solid {
		if s {
			n++
		}
	}
	return n
}
