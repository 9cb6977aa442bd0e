package sim

import "fmt"

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventGemCollected EventKind = iota
	EventBoostStarted
	EventLevelUp
	EventTreasureFound
	EventTrapSprung
	EventBoxShattered
	EventGameOver
	EventRestarted
	EventGhostToggled
)

var eventNames = map[EventKind]string{
	EventGemCollected:  "gem collected",
	EventBoostStarted:  "boost started",
	EventLevelUp:       "level up",
	EventTreasureFound: "treasure found",
	EventTrapSprung:    "trap sprung",
	EventBoxShattered:  "box shattered",
	EventGameOver:      "game over",
	EventRestarted:     "restarted",
	EventGhostToggled:  "ghost toggled",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event is reported in the snapshot of the tick that produced it.
// Points is the score change (negative for penalties), Time the change of the
// remaining time and On the ghost state after a toggle.
type Event struct {
	Kind   EventKind
	X, Y   float64
	Points int
	Time   float64
	Level  int
	On     bool
}

// Popup returns the short banner text a HUD shows for the event, or "".
func (e Event) Popup() string {
	switch e.Kind {
	case EventBoostStarted:
		return "SPEED BOOST!"
	case EventLevelUp:
		return fmt.Sprintf("LEVEL %d!  +%d  +%.0fs", e.Level, e.Points, e.Time)
	case EventTreasureFound:
		return fmt.Sprintf("+%d (treasure)", e.Points)
	case EventTrapSprung:
		return fmt.Sprintf("%d & -%.0fs (trap)", e.Points, e.Time)
	case EventBoxShattered:
		return "SMASH!"
	case EventGhostToggled:
		if e.On {
			return "ghost mode on"
		}
		return "ghost mode off"
	case EventGameOver:
		return "TIME UP"
	}
	return ""
}
