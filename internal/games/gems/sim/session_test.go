package sim

import (
	"math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/gem-catcher/internal/config"
)

func TestNewSession(t *testing.T) {
	cfg := config.DefaultGemsConfig()
	s := New(cfg, NewRandom(7))
	snap := s.Snapshot()

	if !snap.Running || snap.Score != 0 || snap.Level != 1 {
		t.Errorf("fresh session: running %v score %d level %d", snap.Running, snap.Score, snap.Level)
	}
	if snap.Remaining != cfg.Session.Duration {
		t.Errorf("remaining = %v, expected %v", snap.Remaining, cfg.Session.Duration)
	}
	if snap.Body.X != 0 || snap.Body.Y != 0 || !snap.Body.Grounded {
		t.Errorf("body = %+v, expected grounded at the origin", snap.Body)
	}
	if len(snap.Boxes) != cfg.Boxes.Count {
		t.Errorf("boxes = %d, expected %d", len(snap.Boxes), cfg.Boxes.Count)
	}
	if len(snap.Slabs) != cfg.Slabs.Count || len(snap.Ramps) != cfg.Ramps.Count {
		t.Errorf("slabs = %d ramps = %d", len(snap.Slabs), len(snap.Ramps))
	}
	// Summit gems come on top of the regular gems.
	if want := cfg.Pickups.Count + cfg.Ramps.Count; len(snap.Pickups) != want {
		t.Errorf("pickups = %d, expected %d", len(snap.Pickups), want)
	}
	if len(snap.Hazards) != cfg.Hazards.Base {
		t.Errorf("hazards = %d, expected %d", len(snap.Hazards), cfg.Hazards.Base)
	}
	if len(snap.Traps) != cfg.Traps.Count {
		t.Errorf("traps = %d, expected %d", len(snap.Traps), cfg.Traps.Count)
	}
}

func TestTimeUpFreezesBody(t *testing.T) {
	s := newQuietSim(t, nil)
	s.body.X = 3
	s.remaining = 0.1
	before := s.body

	s.Tick(0.25, Input{Forward: true, Jump: true, Recenter: true})

	if s.running {
		t.Fatal("session should be over")
	}
	if s.remaining != 0 {
		t.Errorf("remaining = %v, expected 0", s.remaining)
	}
	if s.body != before {
		t.Errorf("body = %+v, expected unchanged %+v", s.body, before)
	}
	if !hasEvent(s.Snapshot().Events, EventGameOver) {
		t.Error("expected a game over event")
	}

	// Later ticks keep the body frozen and do not repeat the event.
	s.Tick(0.25, Input{Left: true, Jump: true})
	if s.body != before {
		t.Errorf("body moved after time up: %+v", s.body)
	}
	if hasEvent(s.Snapshot().Events, EventGameOver) {
		t.Error("game over should be reported once")
	}
}

func TestRestart(t *testing.T) {
	s := newQuietSim(t, func(c *config.GemsConfig) { c.Pickups.Count = 4 })
	s.score = 120
	s.level = 3
	s.remaining = 0
	s.running = false
	s.body.X = 5
	s.ghost = true

	s.Tick(0.25, Input{Restart: true})

	snap := s.Snapshot()
	if !snap.Running || snap.Score != 0 || snap.Level != 1 || snap.Clock != 0 {
		t.Errorf("after restart: %+v", snap)
	}
	if snap.Remaining != s.cfg.Session.Duration {
		t.Errorf("remaining = %v, expected %v", snap.Remaining, s.cfg.Session.Duration)
	}
	if snap.Body.X != 0 {
		t.Errorf("body x = %v, expected 0", snap.Body.X)
	}
	if !snap.Ghost {
		t.Error("ghost mode should survive a restart")
	}
	if len(snap.Pickups) != 4 {
		t.Errorf("pickups = %d, expected a repopulated world", len(snap.Pickups))
	}
	if !hasEvent(snap.Events, EventRestarted) {
		t.Error("expected a restarted event")
	}
}

func TestRecenter(t *testing.T) {
	s := newQuietSim(t, nil)
	s.body = Body{X: 4, Y: -2, Z: 3, VZ: 2}

	s.Tick(1.0/64, Input{Recenter: true})

	if s.body.X != 0 || s.body.Y != 0 || !s.body.Grounded || s.body.Z != s.cfg.Body.Radius {
		t.Errorf("body = %+v, expected grounded at the origin", s.body)
	}
}

func TestGhostToggle(t *testing.T) {
	s := newQuietSim(t, nil)
	s.Tick(1.0/64, Input{ToggleGhost: true})
	if !s.ghost {
		t.Fatal("ghost should be on")
	}
	events := s.Snapshot().Events
	if len(events) != 1 || events[0].Kind != EventGhostToggled || !events[0].On {
		t.Errorf("events = %+v", events)
	}
	s.Tick(1.0/64, Input{ToggleGhost: true})
	if s.ghost {
		t.Error("ghost should be off")
	}
}

func TestGhostOffAfterTimeUpSettlesBody(t *testing.T) {
	s := newQuietSim(t, nil)
	s.world.AddBox(Box{X: 3, Y: 0})
	s.ghost = true
	s.body = Body{X: 3, Z: s.cfg.Body.Radius, Grounded: true}
	s.remaining = 0
	s.running = false

	s.Tick(0.25, Input{ToggleGhost: true})

	want := s.cfg.Boxes.Height + s.cfg.Body.Radius
	if s.ghost || !approx(s.body.Z, want) {
		t.Errorf("ghost %v, z = %v, expected %v on top of the box", s.ghost, s.body.Z, want)
	}
}

func TestTickSplitsLongFrames(t *testing.T) {
	tests := []struct {
		name  string
		dt    float64
		clock float64
	}{
		{"within limit", 0.1, 0.1},
		{"exactly the limit", 0.25, 0.25},
		{"several substeps", 5, 5},
		{"uneven remainder", 0.6, 0.6},
		{"negative", -1, 0},
		{"not a number", math.NaN(), 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newQuietSim(t, nil)
			s.Tick(tc.dt, Input{})
			if !approx(s.clock, tc.clock) {
				t.Errorf("clock = %v, expected %v", s.clock, tc.clock)
			}
			if !approx(s.remaining, s.cfg.Session.Duration-tc.clock) {
				t.Errorf("remaining = %v, expected %v", s.remaining, s.cfg.Session.Duration-tc.clock)
			}
		})
	}
}

func TestLongFrameMatchesShortFrames(t *testing.T) {
	long := newQuietSim(t, nil)
	long.Tick(1.0, Input{Forward: true, Jump: true})

	short := newQuietSim(t, nil)
	short.Tick(0.25, Input{Forward: true, Jump: true})
	for i := 0; i < 3; i++ {
		short.Tick(0.25, Input{Forward: true})
	}

	if long.body != short.body {
		t.Errorf("body after one long frame %+v, after four short ones %+v", long.body, short.body)
	}
	if long.clock != short.clock || long.remaining != short.remaining {
		t.Errorf("clock/remaining %v/%v vs %v/%v", long.clock, long.remaining, short.clock, short.remaining)
	}
}

func TestMoveDirection(t *testing.T) {
	r := math.Sqrt2 / 2
	tests := []struct {
		name   string
		in     Input
		dx, dy float64
	}{
		{"idle", Input{}, 0, 0},
		{"forward", Input{Forward: true}, 1, 0},
		{"back", Input{Back: true}, -1, 0},
		{"left", Input{Left: true}, 0, 1},
		{"right", Input{Right: true}, 0, -1},
		{"opposed", Input{Forward: true, Back: true}, 0, 0},
		{"diagonal", Input{Forward: true, Left: true}, r, r},
		{"forward yaw 90", Input{Forward: true, Yaw: 90}, 0, 1},
		{"left yaw 90", Input{Left: true, Yaw: 90}, -1, 0},
		{"forward yaw 180", Input{Forward: true, Yaw: 180}, -1, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dx, dy := moveDirection(tc.in)
			if math.Abs(dx-tc.dx) > 1e-9 || math.Abs(dy-tc.dy) > 1e-9 {
				t.Errorf("got (%v, %v), expected (%v, %v)", dx, dy, tc.dx, tc.dy)
			}
		})
	}
}

func TestMovementSpeed(t *testing.T) {
	s := newQuietSim(t, nil)
	s.Tick(0.25, Input{Forward: true})
	if !approx(s.body.X, 7*0.25) || s.body.Y != 0 {
		t.Errorf("body at (%v, %v), expected (1.75, 0)", s.body.X, s.body.Y)
	}
}

func TestRemnantShrinksAndExpires(t *testing.T) {
	s := newQuietSim(t, nil)
	b := s.world.AddBox(Box{X: 5, Y: 5})
	s.world.shatter(b, s.cfg.Boxes.BreakTTL)

	if len(s.world.boxes) != 0 || s.world.TerrainCount() != 0 {
		t.Fatal("shattered box should leave the terrain")
	}

	prev := 1.0
	for i := 0; i < 2; i++ {
		s.Tick(0.25, Input{})
		snap := s.Snapshot()
		if len(snap.Remnants) != 1 {
			t.Fatalf("tick %d: remnants = %d, expected 1", i, len(snap.Remnants))
		}
		if scale := snap.Remnants[0].Scale; scale >= prev || scale < 0 {
			t.Errorf("tick %d: scale %v should shrink from %v", i, scale, prev)
		} else {
			prev = scale
		}
	}

	s.Tick(0.25, Input{})
	if n := len(s.Snapshot().Remnants); n != 0 {
		t.Errorf("remnants = %d, expected expired after %vs", n, s.cfg.Boxes.BreakTTL)
	}
}

func TestSnapshotDoesNotAlias(t *testing.T) {
	s := New(config.DefaultGemsConfig(), NewRandom(3))
	snap := s.Snapshot()
	snap.Boxes[0].X = 999
	snap.Pickups[0].X = 999

	again := s.Snapshot()
	if again.Boxes[0].X == 999 || again.Pickups[0].X == 999 {
		t.Error("snapshot shares storage with the simulation")
	}
}

// scriptedInputs is a reproducible input stream without restarts.
func scriptedInputs(seed int64, n int) []Input {
	r := rand.New(rand.NewSource(seed))
	inputs := make([]Input, n)
	yaw := 0.0
	for i := range inputs {
		yaw += float64(r.Intn(9)-4) * 4
		inputs[i] = Input{
			Forward: r.Intn(3) > 0,
			Back:    r.Intn(8) == 0,
			Left:    r.Intn(4) == 0,
			Right:   r.Intn(4) == 0,
			Jump:    r.Intn(20) == 0,
			Yaw:     yaw,
		}
	}
	return inputs
}

func runScripted(seed int64, inputs []Input) []Snapshot {
	s := New(config.DefaultGemsConfig(), NewRandom(seed))
	snaps := make([]Snapshot, 0, len(inputs))
	for _, in := range inputs {
		s.Tick(1.0/32, in)
		snaps = append(snaps, s.Snapshot())
	}
	return snaps
}

func TestDeterminism(t *testing.T) {
	inputs := scriptedInputs(99, 600)

	a := runScripted(42, inputs)
	b := runScripted(42, inputs)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("same seed and inputs produced different sessions")
	}

	c := runScripted(43, inputs)
	if reflect.DeepEqual(a[0], c[0]) {
		t.Error("different seeds produced the same world")
	}
}

func TestInvariantsUnderRandomPlay(t *testing.T) {
	cfg := config.DefaultGemsConfig()
	cfg.Session.Duration = 60
	s := New(cfg, NewRandom(5))
	limit := float64(cfg.Arena.GridSize) * cfg.Arena.Cell
	r := cfg.Body.Radius

	pickups := len(s.world.pickups)
	for i, in := range scriptedInputs(11, 4000) {
		s.Tick(1.0/32, in)
		snap := s.Snapshot()

		if math.Abs(snap.Body.X) > limit || math.Abs(snap.Body.Y) > limit {
			t.Fatalf("tick %d: body left the arena at (%v, %v)", i, snap.Body.X, snap.Body.Y)
		}
		support := s.world.SupportHeight(snap.Body.X, snap.Body.Y, 2*r)
		if snap.Body.Z < support+r-1e-9 {
			t.Fatalf("tick %d: body at z=%v sinks below support %v", i, snap.Body.Z, support)
		}
		if snap.Score < 0 || snap.Remaining < 0 {
			t.Fatalf("tick %d: score %d remaining %v", i, snap.Score, snap.Remaining)
		}
		if want := 1 + snap.Collected/cfg.Levels.Threshold; snap.Level != want {
			t.Fatalf("tick %d: level %d with %d collected", i, snap.Level, snap.Collected)
		}
		if hasEvent(snap.Events, EventLevelUp) {
			pickups = len(snap.Pickups)
		} else if len(snap.Pickups) != pickups {
			t.Fatalf("tick %d: pickups changed from %d to %d without a level up", i, pickups, len(snap.Pickups))
		}
		for _, h := range snap.Hazards {
			if h.TTL <= 0 {
				t.Fatalf("tick %d: expired hazard still present", i)
			}
		}
	}
}
