package sim

import (
	"math"
	"sort"

	"github.com/solarlune/resolv"

	"github.com/vovakirdan/gem-catcher/internal/core"
)

// resolv works in whole units on a non-negative grid, so world coordinates
// are shifted by the arena half extent plus a margin and scaled up.
const (
	indexScale  = 16  // resolv units per world unit
	indexCell   = 32  // resolv units per cell (two world units)
	indexMargin = 8.0 // world units indexed beyond the lattice
	indexPad    = 2.0 // resolv units added around a query so touching edges share a cell
)

const (
	tagBox  = "box"
	tagSlab = "slab"
	tagRamp = "ramp"
)

// indexEntry is stored in resolv.Object.Data.
type indexEntry struct {
	seq     int
	feature any
}

// terrainIndex is the broadphase over terrain footprints. Queries return
// candidates in insertion order; callers run the exact overlap test.
type terrainIndex struct {
	space   *resolv.Space
	offset  float64
	objects map[any]*resolv.Object
	seq     int
}

func newTerrainIndex(halfExtent float64) *terrainIndex {
	offset := halfExtent + indexMargin
	size := int(math.Ceil(2 * offset * indexScale))
	return &terrainIndex{
		space:   resolv.NewSpace(size, size, indexCell, indexCell),
		offset:  offset,
		objects: make(map[any]*resolv.Object),
	}
}

func (ix *terrainIndex) toSpace(b core.Box) (x, y, w, h float64) {
	return (b.MinX() + ix.offset) * indexScale,
		(b.MinY() + ix.offset) * indexScale,
		b.SX * indexScale,
		b.SY * indexScale
}

// add registers a feature (*Box, *Slab or *Ramp) under its footprint.
func (ix *terrainIndex) add(feature any, footprint core.Box, tag string) {
	x, y, w, h := ix.toSpace(footprint)
	obj := resolv.NewObject(x, y, w, h, tag)
	ix.seq++
	obj.Data = indexEntry{seq: ix.seq, feature: feature}
	ix.space.Add(obj)
	ix.objects[feature] = obj
}

func (ix *terrainIndex) remove(feature any) {
	obj, ok := ix.objects[feature]
	if !ok {
		return
	}
	ix.space.Remove(obj)
	delete(ix.objects, feature)
}

// query returns every feature sharing a cell with the area, optionally
// restricted to tags.
func (ix *terrainIndex) query(area core.Box, tags ...string) []any {
	x, y, w, h := ix.toSpace(area)
	probe := resolv.NewObject(x-indexPad, y-indexPad, w+2*indexPad, h+2*indexPad)
	ix.space.Add(probe)
	defer ix.space.Remove(probe)

	c := probe.Check(0, 0, tags...)
	if c == nil {
		return nil
	}

	entries := make([]indexEntry, 0, len(c.Objects))
	seen := make(map[int]bool, len(c.Objects))
	for _, o := range c.Objects {
		e, ok := o.Data.(indexEntry)
		if !ok || seen[e.seq] {
			continue
		}
		seen[e.seq] = true
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].seq < entries[j].seq })

	features := make([]any, len(entries))
	for i, e := range entries {
		features[i] = e.feature
	}
	return features
}

func (ix *terrainIndex) size() int {
	return len(ix.objects)
}
