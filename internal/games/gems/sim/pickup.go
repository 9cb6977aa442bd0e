package sim

import "github.com/vovakirdan/gem-catcher/internal/core"

// rollCategory picks the category of a freshly spawned gem.
func (s *Simulation) rollCategory() Category {
	if s.cfg.Features.Boost && chance(s.rng, s.cfg.Pickups.BoostChance) {
		return CategoryBoost
	}
	return scored[s.rng.Intn(len(scored))]
}

func (s *Simulation) spawnPickup() {
	cat := s.rollCategory()
	x, y := s.placer.Place(s.cfg.Pickups.MinDistance, 2*s.cfg.Pickups.Radius)
	s.world.pickups = append(s.world.pickups, Pickup{X: x, Y: y, Category: cat})
}

// resolvePickups collects every gem the body touches. Each one is replaced
// immediately so the gem count stays constant, and may advance the level.
func (s *Simulation) resolvePickups() {
	reach := s.cfg.Body.Radius + s.cfg.Pickups.Radius
	var hits []Pickup
	kept := make([]Pickup, 0, len(s.world.pickups))
	for _, p := range s.world.pickups {
		if core.Dist2(p.X, p.Y, s.body.X, s.body.Y) <= reach*reach {
			hits = append(hits, p)
		} else {
			kept = append(kept, p)
		}
	}
	if len(hits) == 0 {
		return
	}
	s.world.pickups = kept

	for _, p := range hits {
		if p.Category.Boost() {
			s.boostUntil = s.clock + s.cfg.Movement.BoostDuration
			s.emit(Event{Kind: EventBoostStarted, X: p.X, Y: p.Y, Time: s.cfg.Movement.BoostDuration})
		} else {
			s.score += p.Category.Points()
			s.emit(Event{Kind: EventGemCollected, X: p.X, Y: p.Y, Points: p.Category.Points()})
		}
		s.collected++
		s.spawnPickup()
		if s.cfg.Features.Levels && s.collected%s.cfg.Levels.Threshold == 0 {
			s.levelUp()
		}
	}
}

func (s *Simulation) spawnTrap() {
	tc := s.cfg.Traps
	x, y := s.placer.Place(tc.MinDistance, 2*s.cfg.Pickups.Radius)
	effect := EffectTrap
	if chance(s.rng, tc.TreasureChance) {
		effect = EffectTreasure
	}
	s.world.traps = append(s.world.traps, Trap{X: x, Y: y, Effect: effect})
}

// resolveTraps springs every trap box within capture range.
func (s *Simulation) resolveTraps() {
	if !s.cfg.Features.Traps {
		return
	}
	tc := s.cfg.Traps
	reach := s.cfg.Body.Radius + tc.CaptureRadius

	var sprung []Trap
	kept := make([]Trap, 0, len(s.world.traps))
	for _, t := range s.world.traps {
		if core.Dist2(t.X, t.Y, s.body.X, s.body.Y) <= reach*reach {
			sprung = append(sprung, t)
		} else {
			kept = append(kept, t)
		}
	}
	if len(sprung) == 0 {
		return
	}
	s.world.traps = kept

	for _, t := range sprung {
		switch t.Effect {
		case EffectTreasure:
			s.score += tc.TreasureBonus
			s.emit(Event{Kind: EventTreasureFound, X: t.X, Y: t.Y, Points: tc.TreasureBonus})
		case EffectTrap:
			s.score = max(0, s.score-tc.TrapScorePenalty)
			s.remaining = max(0, s.remaining-tc.TrapTimePenalty)
			s.emit(Event{Kind: EventTrapSprung, X: t.X, Y: t.Y, Points: -tc.TrapScorePenalty, Time: tc.TrapTimePenalty})
		}
	}
	s.checkTimeUp()

	for range sprung {
		if chance(s.rng, tc.ReplaceChance) {
			s.spawnTrap()
		}
	}
}

// replenishTraps occasionally adds a trap box while below the cap.
func (s *Simulation) replenishTraps(dt float64) {
	tc := s.cfg.Traps
	if !s.cfg.Features.Traps || len(s.world.traps) >= tc.MaxCount {
		return
	}
	if chance(s.rng, tc.SpawnRate*dt) {
		s.spawnTrap()
	}
}
