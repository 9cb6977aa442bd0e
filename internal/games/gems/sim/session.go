// Package sim is the gem catcher engine: a pure, single-threaded simulation
// of one play-through. It performs no I/O; hosts drive Tick and read Snapshot.
package sim

import (
	"math"

	"github.com/vovakirdan/gem-catcher/internal/config"
)

// Input is the control state for one tick. Directions are held keys, the
// rest are one-shot commands. Yaw is the camera heading in degrees.
type Input struct {
	Forward, Back, Left, Right bool

	Jump        bool
	Restart     bool
	ToggleGhost bool
	Recenter    bool

	Yaw float64
}

// Stats are cumulative diagnostics hosts may log.
type Stats struct {
	PlacementFallbacks int
}

// Simulation owns the body, the world and the session scalars.
type Simulation struct {
	cfg    config.GemsConfig
	rng    Random
	world  *World
	placer *Placer
	body   Body

	score       int
	level       int
	remaining   float64
	running     bool
	collected   int
	baseSpeed   float64
	boostUntil  float64
	damageAccum float64
	clock       float64
	ghost       bool

	events    []Event
	fallbacks int // placer fallbacks from previous worlds
}

// New creates a running session and populates its world.
func New(cfg config.GemsConfig, rng Random) *Simulation {
	s := &Simulation{cfg: cfg, rng: rng}
	s.reset()
	return s
}

// reset starts a new play-through on the same random stream. Ghost mode survives.
func (s *Simulation) reset() {
	if s.placer != nil {
		s.fallbacks += s.placer.Fallbacks
	}

	s.body = Body{Z: s.cfg.Body.Radius, Grounded: true}
	s.score = 0
	s.level = 1
	s.remaining = s.cfg.Session.Duration
	s.running = true
	s.collected = 0
	s.baseSpeed = s.cfg.Movement.BaseSpeed
	s.boostUntil = 0
	s.damageAccum = 0
	s.clock = 0

	half := float64(s.cfg.Arena.GridSize) * s.cfg.Arena.Cell
	s.world = NewWorld(half, s.cfg.Boxes.Size, s.cfg.Boxes.Height)
	s.placer = NewPlacer(s.rng, s.world, &s.body, s.cfg.Arena.GridSize, s.cfg.Arena.Cell)
	s.populate()
}

func (s *Simulation) populate() {
	f := s.cfg.Features
	for range s.cfg.Boxes.Count {
		s.spawnBox(s.cfg.Boxes.MinDistance)
	}
	if f.Slabs {
		for range s.cfg.Slabs.Count {
			s.spawnSlab()
		}
	}
	if f.Ramps {
		for range s.cfg.Ramps.Count {
			s.spawnRamp()
		}
	}
	for range s.cfg.Pickups.Count {
		s.spawnPickup()
	}
	if f.Traps {
		for range s.cfg.Traps.Count {
			s.spawnTrap()
		}
	}
	if f.Hazards {
		s.topUpHazards()
	}
}

// Tick advances the session by dt seconds. Frames longer than max_tick run
// as several substeps so a stalled host cannot tunnel the body; one-shot
// commands apply to the first substep only.
func (s *Simulation) Tick(dt float64, in Input) {
	s.events = nil

	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		dt = 0
	}
	limit := s.cfg.Movement.MaxTick
	if limit <= 0 {
		limit = dt
	}

	for {
		step := min(dt, limit)
		if s.step(step, in) {
			return
		}
		dt -= step
		if dt <= 1e-9 {
			return
		}
		in.Jump, in.Restart, in.ToggleGhost, in.Recenter = false, false, false, false
	}
}

// step runs one substep. It reports whether a restart ended the tick.
func (s *Simulation) step(dt float64, in Input) bool {
	s.clock += dt
	if s.running {
		s.remaining = max(0, s.remaining-dt)
		s.checkTimeUp()
	}

	if in.Restart {
		s.reset()
		s.emit(Event{Kind: EventRestarted})
		return true
	}
	if in.ToggleGhost {
		s.ghost = !s.ghost
		s.emit(Event{Kind: EventGhostToggled, X: s.body.X, Y: s.body.Y, On: s.ghost})
		if !s.ghost {
			s.settle()
		}
	}
	if in.Recenter && s.running {
		s.body = Body{Z: s.cfg.Body.Radius, Grounded: true}
	}
	if in.Jump {
		s.jump()
	}

	if s.running {
		speed := s.EffectiveSpeed()
		if dx, dy := moveDirection(in); dx != 0 || dy != 0 {
			s.resolveMove(dx*speed*dt, dy*speed*dt)
		}
		s.integrateVertical(dt)
	}

	s.updateHazards(dt)

	if s.running {
		s.resolvePickups()
		s.resolveTraps()
		s.replenishTraps(dt)
		s.settle()
	}

	s.world.decayRemnants(dt)
	return false
}

// checkTimeUp ends the session once the countdown is exhausted.
func (s *Simulation) checkTimeUp() {
	if s.running && s.remaining <= 0 {
		s.remaining = 0
		s.running = false
		s.emit(Event{Kind: EventGameOver, X: s.body.X, Y: s.body.Y, Points: s.score, Level: s.level})
	}
}

// EffectiveSpeed is the baseline speed with the boost and hazard multipliers applied.
func (s *Simulation) EffectiveSpeed() float64 {
	speed := s.baseSpeed
	if s.BoostActive() {
		speed *= s.cfg.Movement.BoostMultiplier
	}
	if s.hazardEffectsActive() && s.occupied() {
		speed *= s.cfg.Hazards.SlowFactor
	}
	return speed
}

// BoostActive reports whether the boost window is open.
func (s *Simulation) BoostActive() bool {
	return s.clock < s.boostUntil
}

// Running reports whether the session is still counting down.
func (s *Simulation) Running() bool { return s.running }

// Score returns the current score.
func (s *Simulation) Score() int { return s.score }

// Level returns the current level.
func (s *Simulation) Level() int { return s.level }

// Config returns the configuration the session was built with.
func (s *Simulation) Config() config.GemsConfig { return s.cfg }

// Stats returns cumulative diagnostics across restarts.
func (s *Simulation) Stats() Stats {
	return Stats{PlacementFallbacks: s.fallbacks + s.placer.Fallbacks}
}

func (s *Simulation) emit(e Event) {
	s.events = append(s.events, e)
}

// moveDirection turns held keys and camera yaw into a unit world-space vector.
func moveDirection(in Input) (float64, float64) {
	var mx, my float64
	if in.Forward {
		my++
	}
	if in.Back {
		my--
	}
	if in.Left {
		mx++
	}
	if in.Right {
		mx--
	}
	if mx == 0 && my == 0 {
		return 0, 0
	}

	mag := math.Hypot(mx, my)
	mx, my = mx/mag, my/mag

	yaw := in.Yaw * math.Pi / 180
	fx, fy := math.Cos(yaw), math.Sin(yaw)
	lx, ly := -fy, fx
	return fx*my + lx*mx, fy*my + ly*mx
}
