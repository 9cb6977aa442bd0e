// Package gems hosts the gem catcher simulation on the terminal platform.
// It loads the tuning, translates platform input into sim.Input and draws
// a top-down view of the arena.
package gems

import (
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gem-catcher/internal/config"
	"github.com/vovakirdan/gem-catcher/internal/core"
	"github.com/vovakirdan/gem-catcher/internal/games/gems/sim"
	"github.com/vovakirdan/gem-catcher/internal/logging"
	"github.com/vovakirdan/gem-catcher/internal/registry"
)

// popupDuration is how long an event banner stays on screen, in seconds.
const popupDuration = 2.0

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset = config.DifficultyNormal

// logger receives config warnings raised while resetting a game.
var logger = logging.Discard()

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// SetLogger sets the logger used for config warnings.
func SetLogger(l *log.Logger) {
	logger = l
}

// LoadConfig resolves the tuning for a variant: the file found by the
// config search order, the difficulty preset and the variant's features.
func LoadConfig(v config.Variant) (config.GemsConfig, config.Source, error) {
	cfg, src, err := config.LoadGems(configPath)
	if err != nil {
		return config.GemsConfig{}, src, err
	}
	config.ApplyGemsPreset(&cfg, difficultyPreset)
	if err := config.ApplyVariant(&cfg, v); err != nil {
		return config.GemsConfig{}, src, err
	}
	return cfg, src, nil
}

// EventSource is implemented by games that report what happened during a step.
type EventSource interface {
	Events() []sim.Event
	Stats() sim.Stats
}

// Game adapts a sim.Simulation to registry.Game.
type Game struct {
	variant config.Variant
	sim     *sim.Simulation
	snap    sim.Snapshot
	source  config.Source
	yaw     float64

	popup     string
	popupLeft float64
}

// New creates a game for the given variant.
func New(v config.Variant) *Game {
	return &Game{variant: v}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return string(g.variant)
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	switch g.variant {
	case config.VariantClassic:
		return "Gem Catcher (Classic)"
	case config.VariantTreasure:
		return "Gem Catcher (Treasure)"
	default:
		return "Gem Catcher"
	}
}

// Variant returns the feature preset the game runs with.
func (g *Game) Variant() config.Variant {
	return g.variant
}

// Reset loads the config and starts a new session seeded from the runtime config.
// A broken config file is logged and replaced by the defaults.
func (g *Game) Reset(rt core.RuntimeConfig) {
	cfg, src, err := LoadConfig(g.variant)
	if err != nil {
		logger.Warn("using default config", "game", g.ID(), "error", err)
		cfg = config.DefaultGemsConfig()
		config.ApplyGemsPreset(&cfg, difficultyPreset)
		//nolint:errcheck // Known variant
		config.ApplyVariant(&cfg, g.variant)
		src = config.Source{}
	}
	for _, skipped := range src.Skipped {
		logger.Warn("skipped config file", "error", skipped)
	}
	g.ResetWith(rt, cfg)
	g.source = src
}

// ResetWith starts a new session with an explicit config.
func (g *Game) ResetWith(rt core.RuntimeConfig, cfg config.GemsConfig) {
	g.source = config.Source{}
	g.sim = sim.New(cfg, sim.NewRandom(rt.Seed))
	g.snap = g.sim.Snapshot()
	g.popup = ""
	g.popupLeft = 0
}

// Source returns where the config was loaded from.
func (g *Game) Source() config.Source {
	return g.source
}

// Step advances the session by dt seconds.
func (g *Game) Step(dt float64, in core.InputFrame) core.StepResult {
	g.yaw = in.Yaw
	g.sim.Tick(dt, translate(in))
	g.snap = g.sim.Snapshot()

	g.popupLeft -= dt
	for _, e := range g.snap.Events {
		if text := e.Popup(); text != "" {
			g.popup = text
			g.popupLeft = popupDuration
		}
	}
	if g.popupLeft <= 0 {
		g.popup = ""
	}

	return core.StepResult{State: g.State()}
}

// translate maps platform actions onto simulation input.
func translate(in core.InputFrame) sim.Input {
	return sim.Input{
		Forward:     in.Has(core.ActionForward),
		Back:        in.Has(core.ActionBackward),
		Left:        in.Has(core.ActionStrafeLeft),
		Right:       in.Has(core.ActionStrafeRight),
		Jump:        in.Has(core.ActionJump),
		Restart:     in.Has(core.ActionRestart),
		ToggleGhost: in.Has(core.ActionGhost),
		Recenter:    in.Has(core.ActionRecenter),
		Yaw:         in.Yaw,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.snap.Score,
		Level:    g.snap.Level,
		GameOver: !g.snap.Running,
	}
}

// Snapshot returns the state after the last step.
func (g *Game) Snapshot() sim.Snapshot {
	return g.snap
}

// Events returns the events of the last step.
func (g *Game) Events() []sim.Event {
	return g.snap.Events
}

// Stats returns the simulation diagnostics.
func (g *Game) Stats() sim.Stats {
	return g.snap.Stats
}

// LogEvents writes simulation events as structured log lines.
// Frequent events go to debug, milestones to info. The logger owns the
// "level" and "time" keys, so event fields use longer names.
func LogEvents(l *log.Logger, id string, events []sim.Event) {
	for _, e := range events {
		kv := []any{"game", id, "x", round2(e.X), "y", round2(e.Y)}
		switch e.Kind {
		case sim.EventLevelUp:
			l.Info(e.Kind.String(), append(kv, "new_level", e.Level, "bonus", e.Points, "time_bonus", e.Time)...)
		case sim.EventTrapSprung:
			l.Info(e.Kind.String(), append(kv, "points", e.Points, "time_penalty", e.Time)...)
		case sim.EventTreasureFound, sim.EventGemCollected:
			l.Debug(e.Kind.String(), append(kv, "points", e.Points)...)
		case sim.EventGameOver:
			l.Info(e.Kind.String(), append(kv, "score", e.Points, "reached_level", e.Level)...)
		case sim.EventGhostToggled:
			l.Info(e.Kind.String(), append(kv, "on", e.On)...)
		case sim.EventRestarted:
			l.Info(e.Kind.String(), "game", id)
		default:
			l.Debug(e.Kind.String(), kv...)
		}
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Register the variants with the registry
func init() {
	for _, v := range config.Variants {
		registry.Register(string(v), func() registry.Game {
			return New(v)
		})
	}
}
