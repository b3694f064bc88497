// Package level turns stage configs into the solid mask the simulation
// collides against, plus the bitmap used to draw it.
package level

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/png" // PNG decoder for mask images
	"io/fs"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/younwookim/personality/internal/domain/entity"
	"github.com/younwookim/personality/internal/infrastructure/config"
)

// ErrEmptyLevel is returned for zero-sized mask sources
var ErrEmptyLevel = errors.New("level: empty mask")

// Level is a loaded stage bitmap and its solid classification
type Level struct {
	Image image.Image
	Mask  *entity.SolidMask
}

// Width returns the level width in pixels
func (l *Level) Width() int { return l.Mask.Width() }

// Height returns the level height in pixels
func (l *Level) Height() int { return l.Mask.Height() }

// Build loads the stage's mask from a PNG in fsys or paints it from rows
func Build(fsys fs.FS, cfg *config.StageConfig) (*Level, error) {
	var img image.Image
	if cfg.Mask.Image != "" {
		decoded, err := decode(fsys, cfg.Mask.Image)
		if err != nil {
			return nil, err
		}
		img = decoded
	} else {
		img = Paint(cfg.Mask, cfg.Size.Width, cfg.Size.Height, ParseColor(cfg.Background))
	}

	lvl, err := FromImage(img)
	if err != nil {
		return nil, err
	}
	if lvl.Width() != cfg.Size.Width || lvl.Height() != cfg.Size.Height {
		return nil, fmt.Errorf("level: stage %s mask is %dx%d, expected %dx%d",
			cfg.ID, lvl.Width(), lvl.Height(), cfg.Size.Width, cfg.Size.Height)
	}
	return lvl, nil
}

// FromImage classifies img, rejecting empty images
func FromImage(img image.Image) (*Level, error) {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, ErrEmptyLevel
	}
	return &Level{
		Image: img,
		Mask:  entity.NewSolidMask(img, entity.SolidColor),
	}, nil
}

func decode(fsys fs.FS, name string) (image.Image, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("level: failed to open %s: %w", name, err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("level: failed to decode %s: %w", name, err)
	}
	return img, nil
}

// Paint rasterizes a character grid into a w x h image.
// Solid cells are painted with entity.SolidColor, the rest with bg.
// Rows or columns past the image edge are dropped.
func Paint(mask config.MaskConfig, w, h int, bg color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	solid := image.NewUniform(entity.SolidColor)
	cell := mask.CellSize
	for ty, row := range mask.Rows {
		for tx, ch := range []rune(row) {
			if !strings.ContainsRune(mask.Solid, ch) {
				continue
			}
			r := image.Rect(tx*cell, ty*cell, (tx+1)*cell, (ty+1)*cell).Intersect(img.Bounds())
			if r.Empty() {
				continue
			}
			draw.Draw(img, r, solid, image.Point{}, draw.Src)
		}
	}
	return img
}

// ParseColor resolves an SVG colour name ("skyblue") or a "#rrggbb" hex
// string. Unknown values fall back to transparent.
func ParseColor(s string) color.Color {
	s = strings.TrimSpace(strings.ToLower(s))
	if c, ok := colornames.Map[s]; ok {
		return c
	}
	var r, g, b uint8
	if n, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err == nil && n == 3 {
		return color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return color.Transparent
}
