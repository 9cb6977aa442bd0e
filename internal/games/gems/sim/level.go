package sim

// levelUp advances one level and applies the reward bundle. Features the
// variant disables are skipped, but at least one terrain feature is added.
func (s *Simulation) levelUp() {
	lc := s.cfg.Levels
	f := s.cfg.Features

	s.level++
	s.score += lc.BonusScore
	s.remaining += lc.BonusTime

	for range lc.ExtraPickups {
		s.spawnPickup()
	}

	added := 0
	if f.Slabs {
		for range lc.ExtraSlabs {
			s.spawnSlab()
			added++
		}
	}
	if f.Ramps {
		for range lc.ExtraRamps {
			s.spawnRamp()
			added++
		}
	}
	boxes := lc.ExtraBoxes
	if added+boxes == 0 {
		boxes = 1
	}
	for range boxes {
		s.spawnBox(lc.BoxMinDistance)
	}

	s.baseSpeed += lc.SpeedIncrement

	s.emit(Event{
		Kind:   EventLevelUp,
		X:      s.body.X,
		Y:      s.body.Y,
		Points: lc.BonusScore,
		Time:   lc.BonusTime,
		Level:  s.level,
	})
}

func (s *Simulation) spawnBox(minDist float64) {
	x, y := s.placer.Place(minDist, s.cfg.Boxes.Size)
	s.world.AddBox(Box{X: x, Y: y})
}

func (s *Simulation) spawnSlab() {
	sc := s.cfg.Slabs
	slab := Slab{
		SX: uniform(s.rng, sc.SizeX.Min, sc.SizeX.Max),
		SY: uniform(s.rng, sc.SizeY.Min, sc.SizeY.Max),
		SZ: uniform(s.rng, sc.Height.Min, sc.Height.Max),
	}
	slab.X, slab.Y = s.placer.PlaceRect(sc.MinDistance, slab.SX, slab.SY)
	s.world.AddSlab(slab)
}

// spawnRamp adds a ramp and, when enabled, a summit gem on its high end.
func (s *Simulation) spawnRamp() {
	rc := s.cfg.Ramps
	ramp := Ramp{
		Axis:       Axis(s.rng.Intn(2)),
		Length:     uniform(s.rng, rc.Length.Min, rc.Length.Max),
		Width:      uniform(s.rng, rc.Width.Min, rc.Width.Max),
		Steps:      rc.MinSteps + s.rng.Intn(rc.MaxSteps-rc.MinSteps+1),
		StepHeight: uniform(s.rng, rc.StepHeight.Min, rc.StepHeight.Max),
	}
	fp := ramp.Footprint()
	ramp.X, ramp.Y = s.placer.PlaceRect(rc.MinDistance, fp.SX, fp.SY)
	s.world.AddRamp(ramp)

	if rc.SummitGem {
		// Keep the gem reachable when the ramp pokes past the arena edge.
		limit := float64(s.cfg.Arena.GridSize) * s.cfg.Arena.Cell
		hx, hy := ramp.HighEnd()
		s.world.pickups = append(s.world.pickups, Pickup{
			X:        min(hx, limit),
			Y:        min(hy, limit),
			Category: CategorySummit,
		})
	}
}
