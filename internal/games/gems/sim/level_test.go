package sim

import (
	"testing"

	"github.com/vovakirdan/gem-catcher/internal/config"
)

// collectRed drops a red gem on the body and ticks once.
func collectRed(s *Simulation) {
	s.world.pickups = append(s.world.pickups, Pickup{X: s.body.X, Y: s.body.Y, Category: CategoryRed})
	s.Tick(1.0/64, Input{})
}

func TestLevelUpBundle(t *testing.T) {
	s := newQuietSim(t, nil)

	for i := 0; i < 4; i++ {
		collectRed(s)
	}
	if s.level != 1 || s.score != 40 {
		t.Fatalf("after 4 gems: level %d score %d, expected level 1 score 40", s.level, s.score)
	}
	terrain := s.world.TerrainCount()

	collectRed(s)

	if s.level != 2 {
		t.Errorf("level = %d, expected 2", s.level)
	}
	if s.score != 100 {
		t.Errorf("score = %d, expected 100", s.score)
	}
	if !approx(s.remaining, 300-5.0/64+20) {
		t.Errorf("remaining = %v, expected %v", s.remaining, 300-5.0/64+20)
	}
	if !approx(s.EffectiveSpeed(), 7.6) {
		t.Errorf("speed = %v, expected 7.6", s.EffectiveSpeed())
	}
	lc := s.cfg.Levels
	if got, want := s.world.TerrainCount()-terrain, lc.ExtraSlabs+lc.ExtraRamps+lc.ExtraBoxes; got != want {
		t.Errorf("terrain added = %d, expected %d", got, want)
	}

	var ev *Event
	for _, e := range s.Snapshot().Events {
		if e.Kind == EventLevelUp {
			ev = &e
		}
	}
	if ev == nil {
		t.Fatal("expected a level up event")
	}
	if ev.Level != 2 || ev.Points != 50 || ev.Time != 20 {
		t.Errorf("event = %+v", *ev)
	}
}

func TestLevelUpAddsPickupsOnlyOnLevelUp(t *testing.T) {
	s := newQuietSim(t, func(c *config.GemsConfig) { c.Ramps.SummitGem = false })

	counts := make([]int, 0, 5)
	for i := 0; i < 5; i++ {
		collectRed(s)
		counts = append(counts, len(s.world.pickups))
	}

	// Each collected gem is replaced, so the injected gems only replace
	// themselves until the level up adds two more.
	for i := 1; i < 4; i++ {
		if counts[i] != counts[0]+i {
			t.Errorf("tick %d: pickups = %d, expected %d", i, counts[i], counts[0]+i)
		}
	}
	if counts[4] != counts[3]+1+2 {
		t.Errorf("level up tick: pickups = %d, expected %d", counts[4], counts[3]+3)
	}
}

func TestLevelUpFallsBackToBox(t *testing.T) {
	s := newQuietSim(t, func(c *config.GemsConfig) {
		c.Features.Slabs = false
		c.Features.Ramps = false
		c.Levels.ExtraBoxes = 0
		c.Levels.Threshold = 1
	})

	collectRed(s)

	if s.level != 2 {
		t.Fatalf("level = %d, expected 2", s.level)
	}
	if len(s.world.boxes) != 1 || len(s.world.slabs) != 0 || len(s.world.ramps) != 0 {
		t.Errorf("terrain = %d boxes, %d slabs, %d ramps; expected a single box",
			len(s.world.boxes), len(s.world.slabs), len(s.world.ramps))
	}
}

func TestLevelsDisabled(t *testing.T) {
	s := newQuietSim(t, func(c *config.GemsConfig) { c.Features.Levels = false })

	for i := 0; i < 10; i++ {
		collectRed(s)
	}
	if s.level != 1 {
		t.Errorf("level = %d, expected 1", s.level)
	}
	if s.score != 100 {
		t.Errorf("score = %d, expected 100 without bonuses", s.score)
	}
	if s.EffectiveSpeed() != s.cfg.Movement.BaseSpeed {
		t.Errorf("speed = %v, expected base speed", s.EffectiveSpeed())
	}
}

func TestSummitGemOnRampHighEnd(t *testing.T) {
	s := newQuietSim(t, func(c *config.GemsConfig) { c.Ramps.Count = 3 })

	if len(s.world.ramps) != 3 {
		t.Fatalf("ramps = %d, expected 3", len(s.world.ramps))
	}
	limit := float64(s.cfg.Arena.GridSize) * s.cfg.Arena.Cell
	var summits int
	for _, p := range s.world.pickups {
		if p.Category != CategorySummit {
			continue
		}
		summits++
		if p.X > limit || p.Y > limit {
			t.Errorf("summit gem at (%v, %v) is outside the arena", p.X, p.Y)
		}
	}
	if summits != 3 {
		t.Errorf("summit gems = %d, expected 3", summits)
	}
}
