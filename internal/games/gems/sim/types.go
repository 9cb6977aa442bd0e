package sim

import (
	"math"

	"github.com/vovakirdan/gem-catcher/internal/core"
)

// Body is the controllable sphere. Speed and boost are derived from the session.
type Body struct {
	X, Y, Z  float64
	VZ       float64
	Grounded bool
}

// Box is a unit obstacle. Size and top height come from the configuration.
type Box struct {
	X, Y float64
}

// Remnant is the visual leftover of a shattered box.
type Remnant struct {
	X, Y  float64
	Scale float64 // 1 when created, 0 at expiry
	TTL   float64
}

// Slab is a solid block with its own footprint and height.
type Slab struct {
	X, Y       float64
	SX, SY, SZ float64
}

// Footprint returns the slab's ground rectangle.
func (s Slab) Footprint() core.Box {
	return core.Box{X: s.X, Y: s.Y, SX: s.SX, SY: s.SY}
}

// Axis is the world axis a ramp climbs along.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

// Ramp is a staircase rising along its axis towards the positive end.
type Ramp struct {
	X, Y       float64
	Axis       Axis
	Length     float64
	Width      float64
	Steps      int
	StepHeight float64
}

// Footprint returns the ramp's ground rectangle.
func (r Ramp) Footprint() core.Box {
	if r.Axis == AxisY {
		return core.Box{X: r.X, Y: r.Y, SX: r.Width, SY: r.Length}
	}
	return core.Box{X: r.X, Y: r.Y, SX: r.Length, SY: r.Width}
}

// HeightAt returns the stepped height at a point, 0 outside the ramp.
func (r Ramp) HeightAt(x, y float64) float64 {
	var along, across, centre, centreAcross float64
	if r.Axis == AxisY {
		along, across, centre, centreAcross = y, x, r.Y, r.X
	} else {
		along, across, centre, centreAcross = x, y, r.X, r.Y
	}
	if math.Abs(across-centreAcross) > r.Width*0.5 {
		return 0
	}
	t := (along - (centre - r.Length*0.5)) / r.Length
	if t < 0 || t > 1 {
		return 0
	}
	idx := core.Clamp(int(math.Floor(t*float64(r.Steps))), 0, r.Steps-1)
	return float64(idx+1) * r.StepHeight
}

// TopHeight returns the height of the highest step.
func (r Ramp) TopHeight() float64 {
	return float64(r.Steps) * r.StepHeight
}

// HighEnd returns the centre of the ramp's top edge.
func (r Ramp) HighEnd() (float64, float64) {
	if r.Axis == AxisY {
		return r.X, r.Y + r.Length*0.5
	}
	return r.X + r.Length*0.5, r.Y
}

// Hazard is a lava pool.
type Hazard struct {
	X, Y   float64
	Radius float64
	TTL    float64
}

// Category is a pickup kind from the fixed catalog.
type Category int

const (
	CategoryRed Category = iota
	CategoryBlue
	CategoryYellow
	CategoryBoost
	CategorySummit
)

type categoryInfo struct {
	name   string
	points int
	boost  bool
}

var catalog = [...]categoryInfo{
	CategoryRed:    {name: "red", points: 10},
	CategoryBlue:   {name: "blue", points: 20},
	CategoryYellow: {name: "yellow", points: 30},
	CategoryBoost:  {name: "boost", boost: true},
	CategorySummit: {name: "summit", points: 50},
}

// scored are the categories rolled for ordinary gems.
var scored = [...]Category{CategoryRed, CategoryBlue, CategoryYellow}

func (c Category) info() categoryInfo {
	if c < 0 || int(c) >= len(catalog) {
		return categoryInfo{name: "unknown"}
	}
	return catalog[c]
}

// Points returns the score awarded on collection.
func (c Category) Points() int { return c.info().points }

// Boost reports whether collecting the pickup starts the boost window.
func (c Category) Boost() bool { return c.info().boost }

func (c Category) String() string { return c.info().name }

// Pickup is a collectible gem.
type Pickup struct {
	X, Y     float64
	Category Category
}

// Effect is what a trap box does when touched.
type Effect int

const (
	EffectTreasure Effect = iota
	EffectTrap
)

func (e Effect) String() string {
	if e == EffectTrap {
		return "trap"
	}
	return "treasure"
}

// Trap is a box whose effect is hidden until contact.
type Trap struct {
	X, Y   float64
	Effect Effect
}
