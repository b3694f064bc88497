package entity

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestMaskImage() *image.RGBA {
	// 4x3 image: black floor on the bottom row, near-black pixel at (1,1)
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{135, 206, 235, 255})
		}
	}
	for x := 0; x < 4; x++ {
		img.Set(x, 2, color.RGBA{0, 0, 0, 255})
	}
	img.Set(1, 1, color.RGBA{1, 0, 0, 255})
	return img
}

func TestNewSolidMask(t *testing.T) {
	mask := NewSolidMask(createTestMaskImage(), SolidColor)

	require.NotNil(t, mask)
	assert.Equal(t, 4, mask.Width())
	assert.Equal(t, 3, mask.Height())
	assert.Equal(t, 4, mask.SolidCount())
}

func TestSolidMask_IsSolid(t *testing.T) {
	mask := NewSolidMask(createTestMaskImage(), SolidColor)

	tests := []struct {
		name   string
		px, py int
		want   bool
	}{
		{"sky", 0, 0, false},
		{"floor", 2, 2, true},
		{"near-black is not solid", 1, 1, false},
		{"left of grid", -1, 2, false},
		{"below grid", 0, 3, false},
		{"right of grid", 4, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mask.IsSolid(tt.px, tt.py))
		})
	}
}

func TestNewSolidMask_OffsetBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(10, 10, 12, 12))
	img.Set(10, 10, color.Black)

	mask := NewSolidMask(img, SolidColor)

	assert.True(t, mask.IsSolid(0, 0), "mask is indexed from the image origin")
	assert.False(t, mask.IsSolid(1, 1))
}
