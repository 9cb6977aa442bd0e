package sim

import "github.com/vovakirdan/gem-catcher/internal/core"

// HeightAt returns the highest standable elevation at a point: the maximum
// contribution of every feature whose footprint contains it.
func (w *World) HeightAt(x, y float64) float64 {
	h := 0.0
	for _, f := range w.index.query(core.Square(x, y, 0)) {
		switch f := f.(type) {
		case *Box:
			if w.boxFootprint(f).Contains(x, y) {
				h = max(h, w.boxHeight)
			}
		case *Slab:
			if f.Footprint().Contains(x, y) {
				h = max(h, f.SZ)
			}
		case *Ramp:
			h = max(h, f.HeightAt(x, y))
		}
	}
	return h
}

// SupportHeight is the ground under a body whose square footprint has the
// given extent. Boxes and slabs count as soon as the footprint touches them;
// ramps are sampled at the centre. It is never below HeightAt.
func (w *World) SupportHeight(x, y, extent float64) float64 {
	area := core.Square(x, y, extent)
	h := 0.0
	for _, f := range w.index.query(area) {
		switch f := f.(type) {
		case *Box:
			if w.boxFootprint(f).Overlaps(area) {
				h = max(h, w.boxHeight)
			}
		case *Slab:
			if f.Footprint().Overlaps(area) {
				h = max(h, f.SZ)
			}
		case *Ramp:
			h = max(h, f.HeightAt(x, y))
		}
	}
	return h
}
