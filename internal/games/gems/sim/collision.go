package sim

import (
	"math"

	"github.com/vovakirdan/gem-catcher/internal/core"
)

// resolveMove applies a horizontal displacement one axis at a time so the
// body slides along anything blocking the other axis. A boosted body
// shatters boxes instead of stopping at them.
func (s *Simulation) resolveMove(dx, dy float64) {
	b := &s.body
	limit := float64(s.cfg.Arena.GridSize) * s.cfg.Arena.Cell
	nx := core.ClampF(b.X+dx, -limit, limit)
	ny := core.ClampF(b.Y+dy, -limit, limit)

	if s.ghost {
		b.X, b.Y = nx, ny
		return
	}

	r := s.cfg.Body.Radius
	margin := s.cfg.Jump.ClimbMargin
	diam := 2 * r
	atX := core.Square(nx, b.Y, diam)
	atY := core.Square(b.X, ny, diam)
	area := core.Box{
		X:  (math.Min(nx, b.X) + math.Max(nx, b.X)) / 2,
		Y:  (math.Min(ny, b.Y) + math.Max(ny, b.Y)) / 2,
		SX: math.Abs(nx-b.X) + diam,
		SY: math.Abs(ny-b.Y) + diam,
	}

	// A feature blocks an axis when the body is below its top by more than the climb margin.
	below := func(top float64) bool { return b.Z < top+r-margin }

	var blockedX, blockedY bool
	var struck []*Box
	for _, f := range s.world.index.query(area) {
		switch f := f.(type) {
		case *Box:
			fp := s.world.boxFootprint(f)
			hitX, hitY := fp.Overlaps(atX), fp.Overlaps(atY)
			if !hitX && !hitY {
				continue
			}
			if s.canShatter() {
				struck = append(struck, f)
				continue
			}
			top := s.world.boxHeight
			blockedX = blockedX || (hitX && below(top))
			blockedY = blockedY || (hitY && below(top))
		case *Slab:
			fp := f.Footprint()
			blockedX = blockedX || (fp.Overlaps(atX) && below(f.SZ))
			blockedY = blockedY || (fp.Overlaps(atY) && below(f.SZ))
		case *Ramp:
			fp := f.Footprint()
			if fp.Overlaps(atX) && below(f.HeightAt(nx, b.Y)) {
				blockedX = true
			}
			if fp.Overlaps(atY) && below(f.HeightAt(b.X, ny)) {
				blockedY = true
			}
		}
	}

	for _, box := range struck {
		s.world.shatter(box, s.cfg.Boxes.BreakTTL)
		s.emit(Event{Kind: EventBoxShattered, X: box.X, Y: box.Y})
	}

	if !blockedX {
		b.X = nx
	}
	if !blockedY {
		b.Y = ny
	}
}

func (s *Simulation) canShatter() bool {
	return s.cfg.Features.Breaking && s.BoostActive()
}
