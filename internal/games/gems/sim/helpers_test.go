package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/gem-catcher/internal/config"
)

// quietConfig is the default tuning with nothing spawned at start.
func quietConfig() config.GemsConfig {
	cfg := config.DefaultGemsConfig()
	cfg.Boxes.Count = 0
	cfg.Slabs.Count = 0
	cfg.Ramps.Count = 0
	cfg.Pickups.Count = 0
	cfg.Traps.Count = 0
	cfg.Traps.SpawnRate = 0
	cfg.Hazards.Base = 0
	cfg.Hazards.Cap = 0
	return cfg
}

func newQuietSim(t *testing.T, mutate func(*config.GemsConfig)) *Simulation {
	t.Helper()
	cfg := quietConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return New(cfg, NewRandom(1))
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func hasEvent(events []Event, kind EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
