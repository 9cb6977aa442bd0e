package sim

// Snapshot is a read-only copy of the session for renderers and tests.
// Nothing in it aliases simulation state.
type Snapshot struct {
	Body Body

	Boxes    []Box
	Remnants []Remnant
	Slabs    []Slab
	Ramps    []Ramp
	Hazards  []Hazard
	Pickups  []Pickup
	Traps    []Trap

	Score       int
	Level       int
	Remaining   float64
	Running     bool
	BoostActive bool
	BoostLeft   float64
	Ghost       bool
	Occupied    bool
	Collected   int
	Speed       float64
	Clock       float64

	GridSize  int
	Cell      float64
	BoxSize   float64
	BoxHeight float64
	Radius    float64

	// Events lists what happened during the last tick, in order.
	Events []Event
	Stats  Stats
}

// Snapshot copies the current state.
func (s *Simulation) Snapshot() Snapshot {
	w := s.world
	snap := Snapshot{
		Body: s.body,

		Boxes:    derefAll(w.boxes),
		Slabs:    derefAll(w.slabs),
		Ramps:    derefAll(w.ramps),
		Remnants: make([]Remnant, len(w.remnants)),
		Hazards:  append([]Hazard(nil), w.hazards...),
		Pickups:  append([]Pickup(nil), w.pickups...),
		Traps:    append([]Trap(nil), w.traps...),

		Score:       s.score,
		Level:       s.level,
		Remaining:   s.remaining,
		Running:     s.running,
		BoostActive: s.BoostActive(),
		BoostLeft:   max(0, s.boostUntil-s.clock),
		Ghost:       s.ghost,
		Occupied:    s.occupied(),
		Collected:   s.collected,
		Speed:       s.EffectiveSpeed(),
		Clock:       s.clock,

		GridSize:  s.cfg.Arena.GridSize,
		Cell:      s.cfg.Arena.Cell,
		BoxSize:   s.cfg.Boxes.Size,
		BoxHeight: s.cfg.Boxes.Height,
		Radius:    s.cfg.Body.Radius,

		Events: append([]Event(nil), s.events...),
		Stats:  s.Stats(),
	}
	for i, r := range w.remnants {
		snap.Remnants[i] = r.Remnant
	}
	return snap
}

func derefAll[T any](items []*T) []T {
	out := make([]T, len(items))
	for i, p := range items {
		out[i] = *p
	}
	return out
}
