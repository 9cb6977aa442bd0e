package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const gemsFile = "gems.yaml"

// Source describes where a loaded configuration came from.
type Source struct {
	Path    string  // File that was applied; empty for the embedded defaults
	Skipped []error // Candidate files that exist but could not be used
}

// String returns a short description for logging.
func (s Source) String() string {
	if s.Path == "" {
		return "embedded"
	}
	return s.Path
}

// LoadGems loads the gem catcher configuration.
// Search order: customPath -> ~/.gemcatcher/configs/gems.yaml -> ./configs/gems.yaml -> embedded default.
// Files are overlaid on the embedded defaults, so a partial file only overrides what it names.
// A customPath that cannot be read, parsed or validated is an error; the other
// candidates are skipped and reported in Source.Skipped.
func LoadGems(customPath string) (GemsConfig, Source, error) {
	var src Source
	base := embeddedGems()

	// Try custom path first
	if customPath != "" {
		cfg, err := loadGemsFile(customPath, base)
		if err != nil {
			return base, src, err
		}
		src.Path = customPath
		return cfg, src, nil
	}

	candidates := []string{userConfigPath(gemsFile), filepath.Join("configs", gemsFile)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			continue
		}
		cfg, err := loadGemsFile(path, base)
		if err != nil {
			src.Skipped = append(src.Skipped, err)
			continue
		}
		src.Path = path
		return cfg, src, nil
	}

	return base, src, nil
}

// ParseGems overlays YAML data on the embedded defaults and validates the result.
func ParseGems(data []byte) (GemsConfig, error) {
	cfg := embeddedGems()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: invalid: %w", err)
	}
	return cfg, nil
}

// Marshal renders the configuration as YAML.
func Marshal(cfg GemsConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

func loadGemsFile(path string, base GemsConfig) (GemsConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return base, fmt.Errorf("config: invalid %s: %w", path, err)
	}
	return cfg, nil
}

// embeddedGems parses the embedded defaults, falling back to the hardcoded copy.
func embeddedGems() GemsConfig {
	cfg := DefaultGemsConfig()
	if err := yaml.Unmarshal(defaultGemsYAML, &cfg); err != nil {
		return DefaultGemsConfig()
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gemcatcher", "configs", filename)
}

// Validate reports every problem in the configuration at once.
func (c GemsConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	nonNegative := func(name string, v float64) {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %v", name, v))
		}
	}
	probability := func(name string, v float64) {
		if v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("%s must be within [0, 1], got %v", name, v))
		}
	}
	interval := func(name string, iv Interval) {
		if iv.Min <= 0 || iv.Max < iv.Min {
			errs = append(errs, fmt.Errorf("%s must satisfy 0 < min <= max, got [%v, %v]", name, iv.Min, iv.Max))
		}
	}

	positive("arena.grid_size", float64(c.Arena.GridSize))
	positive("arena.cell", c.Arena.Cell)
	positive("body.radius", c.Body.Radius)
	positive("movement.base_speed", c.Movement.BaseSpeed)
	positive("movement.boost_multiplier", c.Movement.BoostMultiplier)
	nonNegative("movement.boost_duration", c.Movement.BoostDuration)
	nonNegative("movement.max_tick", c.Movement.MaxTick)
	positive("jump.launch_velocity", c.Jump.LaunchVelocity)
	if c.Jump.Gravity >= 0 {
		errs = append(errs, fmt.Errorf("jump.gravity must be negative, got %v", c.Jump.Gravity))
	}
	nonNegative("jump.climb_margin", c.Jump.ClimbMargin)
	positive("session.duration", c.Session.Duration)

	nonNegative("boxes.count", float64(c.Boxes.Count))
	positive("boxes.size", c.Boxes.Size)
	positive("boxes.height", c.Boxes.Height)
	positive("boxes.break_ttl", c.Boxes.BreakTTL)

	nonNegative("slabs.count", float64(c.Slabs.Count))
	interval("slabs.size_x", c.Slabs.SizeX)
	interval("slabs.size_y", c.Slabs.SizeY)
	interval("slabs.height", c.Slabs.Height)

	nonNegative("ramps.count", float64(c.Ramps.Count))
	interval("ramps.length", c.Ramps.Length)
	interval("ramps.width", c.Ramps.Width)
	interval("ramps.step_height", c.Ramps.StepHeight)
	if c.Ramps.MinSteps < 1 || c.Ramps.MaxSteps < c.Ramps.MinSteps {
		errs = append(errs, fmt.Errorf("ramps steps must satisfy 1 <= min <= max, got [%d, %d]", c.Ramps.MinSteps, c.Ramps.MaxSteps))
	}

	nonNegative("pickups.count", float64(c.Pickups.Count))
	positive("pickups.radius", c.Pickups.Radius)
	probability("pickups.boost_chance", c.Pickups.BoostChance)

	nonNegative("hazards.base", float64(c.Hazards.Base))
	nonNegative("hazards.cap", float64(c.Hazards.Cap))
	interval("hazards.radius", c.Hazards.Radius)
	positive("hazards.ttl", c.Hazards.TTL)
	probability("hazards.ttl_jitter", c.Hazards.TTLJitter)
	probability("hazards.slow_factor", c.Hazards.SlowFactor)
	nonNegative("hazards.dps", c.Hazards.DPS)
	nonNegative("hazards.occupancy_margin", c.Hazards.OccupancyMargin)

	nonNegative("traps.count", float64(c.Traps.Count))
	nonNegative("traps.capture_radius", c.Traps.CaptureRadius)
	probability("traps.treasure_chance", c.Traps.TreasureChance)
	probability("traps.replace_chance", c.Traps.ReplaceChance)
	nonNegative("traps.spawn_rate", c.Traps.SpawnRate)
	nonNegative("traps.trap_score_penalty", float64(c.Traps.TrapScorePenalty))
	nonNegative("traps.trap_time_penalty", c.Traps.TrapTimePenalty)

	if c.Levels.Threshold < 1 {
		errs = append(errs, fmt.Errorf("levels.threshold must be at least 1, got %d", c.Levels.Threshold))
	}
	nonNegative("levels.speed_increment", c.Levels.SpeedIncrement)

	return errors.Join(errs...)
}
