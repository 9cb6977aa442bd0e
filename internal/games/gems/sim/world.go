package sim

import (
	"slices"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/gem-catcher/internal/core"
)

// remnant pairs a Remnant with the tween shrinking it.
type remnant struct {
	Remnant
	tween *gween.Tween
}

// World owns every feature collection and the terrain index over them.
type World struct {
	boxSize   float64
	boxHeight float64

	boxes    []*Box
	slabs    []*Slab
	ramps    []*Ramp
	remnants []remnant
	hazards  []Hazard
	pickups  []Pickup
	traps    []Trap

	index *terrainIndex
}

// NewWorld creates an empty world covering [-halfExtent, halfExtent] on both axes.
func NewWorld(halfExtent, boxSize, boxHeight float64) *World {
	return &World{
		boxSize:   boxSize,
		boxHeight: boxHeight,
		index:     newTerrainIndex(halfExtent),
	}
}

func (w *World) boxFootprint(b *Box) core.Box {
	return core.Square(b.X, b.Y, w.boxSize)
}

// AddBox places a box and indexes it.
func (w *World) AddBox(b Box) *Box {
	p := &b
	w.boxes = append(w.boxes, p)
	w.index.add(p, w.boxFootprint(p), tagBox)
	return p
}

// AddSlab places a slab and indexes it.
func (w *World) AddSlab(s Slab) *Slab {
	p := &s
	w.slabs = append(w.slabs, p)
	w.index.add(p, p.Footprint(), tagSlab)
	return p
}

// AddRamp places a ramp and indexes it.
func (w *World) AddRamp(r Ramp) *Ramp {
	p := &r
	w.ramps = append(w.ramps, p)
	w.index.add(p, p.Footprint(), tagRamp)
	return p
}

// removeBox drops a box from the collection and the index.
func (w *World) removeBox(b *Box) {
	w.boxes = slices.DeleteFunc(w.boxes, func(o *Box) bool { return o == b })
	w.index.remove(b)
}

// shatter replaces a box with a remnant that shrinks to nothing over ttl seconds.
func (w *World) shatter(b *Box, ttl float64) {
	w.removeBox(b)
	w.remnants = append(w.remnants, remnant{
		Remnant: Remnant{X: b.X, Y: b.Y, Scale: 1, TTL: ttl},
		tween:   gween.New(1, 0, float32(ttl), ease.Linear),
	})
}

func (w *World) decayRemnants(dt float64) {
	kept := w.remnants[:0]
	for _, r := range w.remnants {
		scale, _ := r.tween.Update(float32(dt))
		r.Scale = max(0, float64(scale))
		r.TTL -= dt
		if r.TTL > 0 {
			kept = append(kept, r)
		}
	}
	clear(w.remnants[len(kept):])
	w.remnants = kept
}

// Overlapping reports whether the area touches any box, slab or ramp footprint.
func (w *World) Overlapping(area core.Box) bool {
	for _, f := range w.index.query(area) {
		if w.footprint(f).Overlaps(area) {
			return true
		}
	}
	return false
}

func (w *World) footprint(feature any) core.Box {
	switch f := feature.(type) {
	case *Box:
		return w.boxFootprint(f)
	case *Slab:
		return f.Footprint()
	case *Ramp:
		return f.Footprint()
	}
	return core.Box{}
}

// TerrainCount returns the number of indexed terrain features.
func (w *World) TerrainCount() int {
	return w.index.size()
}
