package sim

import (
	"math"

	"github.com/vovakirdan/gem-catcher/internal/core"
)

// hazardTarget is the pool count the lifecycle maintains at the current level.
func (s *Simulation) hazardTarget() int {
	hc := s.cfg.Hazards
	return min(hc.Cap, hc.Base+s.level/2)
}

// occupied reports whether the body stands in any pool.
func (s *Simulation) occupied() bool {
	margin := s.cfg.Hazards.OccupancyMargin
	for _, h := range s.world.hazards {
		reach := h.Radius + margin
		if core.Dist2(s.body.X, s.body.Y, h.X, h.Y) <= reach*reach {
			return true
		}
	}
	return false
}

// hazardEffectsActive reports whether pools slow and damage the body.
// Pools keep aging and spawning after time is up, but only hurt while running
// unless damage_when_over is set.
func (s *Simulation) hazardEffectsActive() bool {
	return s.cfg.Features.Hazards && (s.running || s.cfg.Hazards.DamageWhenOver)
}

// updateHazards applies damage, ages pools and tops them back up to target.
func (s *Simulation) updateHazards(dt float64) {
	if !s.cfg.Features.Hazards {
		return
	}

	if s.hazardEffectsActive() && s.occupied() {
		s.accrueDamage(dt)
	}

	kept := s.world.hazards[:0]
	for _, h := range s.world.hazards {
		h.TTL -= dt
		if h.TTL > 0 {
			kept = append(kept, h)
		}
	}
	s.world.hazards = kept

	s.topUpHazards()
}

// accrueDamage adds dps·dt to the fractional accumulator and deducts its
// whole part from the score, keeping the remainder for later ticks.
func (s *Simulation) accrueDamage(dt float64) {
	s.damageAccum += s.cfg.Hazards.DPS * dt
	whole := math.Floor(s.damageAccum)
	if whole < 1 {
		return
	}
	s.damageAccum -= whole
	s.score = max(0, s.score-int(whole))
}

func (s *Simulation) topUpHazards() {
	for len(s.world.hazards) < s.hazardTarget() {
		s.spawnHazard()
	}
}

func (s *Simulation) spawnHazard() {
	hc := s.cfg.Hazards
	x, y := s.placer.Place(hc.MinDistance, 2*s.cfg.Pickups.Radius)
	s.world.hazards = append(s.world.hazards, Hazard{
		X:      x,
		Y:      y,
		Radius: uniform(s.rng, hc.Radius.Min, hc.Radius.Max),
		TTL:    hc.TTL * uniform(s.rng, 1-hc.TTLJitter, 1+hc.TTLJitter),
	})
}
