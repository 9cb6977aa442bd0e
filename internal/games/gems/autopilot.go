package gems

import (
	"math"

	"github.com/vovakirdan/gem-catcher/internal/core"
	"github.com/vovakirdan/gem-catcher/internal/games/gems/sim"
)

// stuckAfter is how long the autopilot tolerates little progress before jumping.
const stuckAfter = 0.5

// Autopilot steers the body toward the nearest pickup. Headless runs use it
// to exercise a session without a keyboard.
type Autopilot struct {
	lastX, lastY float64
	stuck        float64
	started      bool
}

// Next returns the input for the tick following snap.
func (a *Autopilot) Next(snap sim.Snapshot, dt float64) core.InputFrame {
	f := core.NewInputFrame()
	if !snap.Running {
		return f
	}

	body := snap.Body
	target, ok := nearestPickup(snap)
	if !ok {
		return f
	}
	f.Yaw = math.Atan2(target.Y-body.Y, target.X-body.X) * 180 / math.Pi
	if f.Yaw < 0 {
		f.Yaw += 360
	}
	f.Set(core.ActionForward)

	if a.started {
		moved := math.Hypot(body.X-a.lastX, body.Y-a.lastY)
		if moved < snap.Speed*dt*0.25 {
			a.stuck += dt
		} else {
			a.stuck = 0
		}
	}
	a.lastX, a.lastY, a.started = body.X, body.Y, true

	if a.stuck >= stuckAfter && body.Grounded {
		f.Set(core.ActionJump)
		a.stuck = 0
	}
	return f
}

func nearestPickup(snap sim.Snapshot) (sim.Pickup, bool) {
	best, found := sim.Pickup{}, false
	bestD := math.Inf(1)
	for _, p := range snap.Pickups {
		if d := core.Dist2(p.X, p.Y, snap.Body.X, snap.Body.Y); d < bestD {
			best, bestD, found = p, d, true
		}
	}
	return best, found
}
