package system

import (
	"math"

	"github.com/younwookim/personality/internal/domain/entity"
)

// World is what an actor collides against
type World interface {
	IsSolid(px, py int) bool
	Bounds() entity.Rect
	ShieldRect() (entity.Rect, bool)
}

// Collides reports whether box overlaps a solid pixel of the world, or the
// shield's column. The shield blocks actors over the full scene height
// regardless of its drawn size.
func Collides(box entity.Rect, world World) bool {
	if shield, ok := world.ShieldRect(); ok {
		if box.Overlaps(shield.VerticalStrip(world.Bounds().Height)) {
			return true
		}
	}

	x0, y0, x1, y1 := box.PixelSpan()
	for x := x0; x < x1; x++ {
		for y := y0; y < y1; y++ {
			if world.IsSolid(x, y) {
				return true
			}
		}
	}
	return false
}

// Resolve nudges box along dir in steps of 0.5/scale pixels until it no
// longer collides and returns the distance travelled.
//
// If the box leaves the world bounds during the search there is nothing to
// stand on: the nudge is undone and +Inf returned. With undo set the box is
// restored after measuring.
func Resolve(box *entity.Rect, world World, scale float64, dir entity.Vec2, undo bool) float64 {
	step := 0.5 / scale
	bounds := world.Bounds()
	start := *box

	offset := 0.0
	for {
		if !bounds.Overlaps(*box) {
			*box = start
			return math.Inf(1)
		}
		if !Collides(*box, world) {
			break
		}

		offset += step
		*box = box.Translate(dir.Scale(step))
	}

	if undo {
		*box = start
	}
	return offset
}
