package sim

import (
	"testing"

	"github.com/vovakirdan/gem-catcher/internal/config"
)

func TestResolveMoveBlocksAndSlides(t *testing.T) {
	s := newQuietSim(t, nil)
	s.world.AddBox(Box{X: 2, Y: 0})

	// Clear of the box.
	s.resolveMove(1.0, 0)
	if !approx(s.body.X, 1.0) {
		t.Fatalf("X = %v, expected 1.0", s.body.X)
	}

	s.body.X = 0
	s.resolveMove(1.1, 0)
	if s.body.X != 0 {
		t.Errorf("X = %v, expected blocked at 0", s.body.X)
	}

	// Diagonal into the box keeps the free axis.
	s.resolveMove(1.1, 0.5)
	if s.body.X != 0 || !approx(s.body.Y, 0.5) {
		t.Errorf("body = (%v, %v), expected (0, 0.5)", s.body.X, s.body.Y)
	}
}

func TestResolveMoveClimbMargin(t *testing.T) {
	tests := []struct {
		name    string
		z       float64
		blocked bool
	}{
		{"on the floor", 0.45, true},
		{"just below the margin", 0.69, true},
		{"within the margin", 0.71, false},
		{"above the top", 1.0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newQuietSim(t, nil)
			s.world.AddSlab(Slab{X: 2, Y: 0, SX: 1, SY: 1, SZ: 0.3})
			s.body.Z = tc.z
			s.resolveMove(1.1, 0)
			if blocked := s.body.X == 0; blocked != tc.blocked {
				t.Errorf("blocked = %v, expected %v", blocked, tc.blocked)
			}
		})
	}
}

func TestResolveMoveRampSamplesCandidate(t *testing.T) {
	s := newQuietSim(t, nil)
	// Ramp rising along +x starting at x = 1.
	s.world.AddRamp(Ramp{X: 3, Y: 0, Axis: AxisX, Length: 4, Width: 2, Steps: 4, StepHeight: 0.5})

	// Footprint overlaps but the centre stays off the ramp.
	s.resolveMove(0.9, 0)
	if !approx(s.body.X, 0.9) {
		t.Fatalf("X = %v, expected 0.9", s.body.X)
	}

	// Centre would land on the first step, too high to walk onto.
	s.resolveMove(0.2, 0)
	if !approx(s.body.X, 0.9) {
		t.Errorf("X = %v, expected blocked at 0.9", s.body.X)
	}

	// Standing on the first step, moving along it is free.
	s.body.X, s.body.Z = 1.5, 0.5+0.45
	s.resolveMove(0.2, 0)
	if !approx(s.body.X, 1.7) {
		t.Errorf("X = %v, expected 1.7 on the same step", s.body.X)
	}
}

func TestBoostShattersBoxes(t *testing.T) {
	s := newQuietSim(t, nil)
	s.world.AddBox(Box{X: 2, Y: 0})
	s.boostUntil = s.clock + 5

	s.resolveMove(1.1, 0)
	if !approx(s.body.X, 1.1) {
		t.Errorf("X = %v, expected 1.1", s.body.X)
	}
	if len(s.world.boxes) != 0 || s.world.TerrainCount() != 0 {
		t.Errorf("box should be removed, have %d", len(s.world.boxes))
	}
	if len(s.world.remnants) != 1 {
		t.Fatalf("remnants = %d, expected 1", len(s.world.remnants))
	}
	if r := s.world.remnants[0]; r.X != 2 || r.Scale != 1 || r.TTL != 0.6 {
		t.Errorf("remnant = %+v", r.Remnant)
	}
	if !hasEvent(s.events, EventBoxShattered) {
		t.Error("expected a box shattered event")
	}
}

func TestBoostWithoutBreakingIsBlocked(t *testing.T) {
	s := newQuietSim(t, func(c *config.GemsConfig) { c.Features.Breaking = false })
	s.world.AddBox(Box{X: 2, Y: 0})
	s.boostUntil = s.clock + 5

	s.resolveMove(1.1, 0)
	if s.body.X != 0 || len(s.world.boxes) != 1 {
		t.Errorf("box should block: X = %v, boxes = %d", s.body.X, len(s.world.boxes))
	}
}

func TestGhostModePassesThrough(t *testing.T) {
	s := newQuietSim(t, nil)
	s.world.AddBox(Box{X: 2, Y: 0})
	s.world.AddSlab(Slab{X: 4, Y: 0, SX: 1, SY: 1, SZ: 2})

	s.Tick(0.01, Input{ToggleGhost: true})
	if !s.ghost || !hasEvent(s.events, EventGhostToggled) {
		t.Fatal("ghost mode should be on")
	}

	s.resolveMove(2, 0)
	s.integrateVertical(0.01)
	if s.body.X != 2 {
		t.Errorf("X = %v, expected to enter the box", s.body.X)
	}
	if s.body.Z != s.cfg.Body.Radius {
		t.Errorf("Z = %v, expected radius while ghosting", s.body.Z)
	}

	// Boxes are not broken by walking through them.
	if len(s.world.boxes) != 1 {
		t.Errorf("boxes = %d, expected 1", len(s.world.boxes))
	}
}

func TestResolveMoveClampsToLattice(t *testing.T) {
	s := newQuietSim(t, nil)
	s.resolveMove(100, -100)
	if s.body.X != 20 || s.body.Y != -20 {
		t.Errorf("body = (%v, %v), expected (20, -20)", s.body.X, s.body.Y)
	}

	s.ghost = true
	s.resolveMove(-100, 100)
	if s.body.X != -20 || s.body.Y != 20 {
		t.Errorf("ghost body = (%v, %v), expected (-20, 20)", s.body.X, s.body.Y)
	}
}
