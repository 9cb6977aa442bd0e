package sim

import "github.com/vovakirdan/gem-catcher/internal/core"

// PlacementAttempts is how many lattice points Place samples before giving up.
const PlacementAttempts = 200

// FallbackX and FallbackY are returned when every attempt was rejected.
// Placement never fails: the fallback may coincide with existing features
// and callers accept that.
const (
	FallbackX = 0.0
	FallbackY = 0.0
)

// Placer finds free lattice points by rejection sampling.
type Placer struct {
	rng   Random
	world *World
	body  *Body
	grid  int
	cell  float64

	// Fallbacks counts placements that ended at the fallback coordinate.
	Fallbacks int
}

// NewPlacer creates a placer over the lattice [-grid, grid]² scaled by cell.
// Distances are measured from the body's current position.
func NewPlacer(rng Random, world *World, body *Body, grid int, cell float64) *Placer {
	return &Placer{
		rng:   rng,
		world: world,
		body:  body,
		grid:  grid,
		cell:  cell,
	}
}

// Place returns a point farther than minDist from the body where a square
// footprint touches no box, slab or ramp.
func (p *Placer) Place(minDist, footprint float64) (float64, float64) {
	return p.PlaceRect(minDist, footprint, footprint)
}

// PlaceRect is Place for a rectangular footprint.
func (p *Placer) PlaceRect(minDist, sx, sy float64) (float64, float64) {
	for range PlacementAttempts {
		x := float64(p.rng.Intn(2*p.grid+1)-p.grid) * p.cell
		y := float64(p.rng.Intn(2*p.grid+1)-p.grid) * p.cell
		if core.Dist2(x, y, p.body.X, p.body.Y) <= minDist*minDist {
			continue
		}
		if p.world.Overlapping(core.Box{X: x, Y: y, SX: sx, SY: sy}) {
			continue
		}
		return x, y
	}
	p.Fallbacks++
	return FallbackX, FallbackY
}
