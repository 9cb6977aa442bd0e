package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed" // normal tuning, level progression off
)

// ParseDifficulty converts a flag value into a preset. Empty means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyGemsPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyGemsPreset(cfg *GemsConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Features.Levels = false
		return
	}

	switch preset {
	case DifficultyEasy:
		cfg.Session.Duration *= 1.2
		cfg.Movement.BoostDuration += 2
		cfg.Hazards.DPS *= 0.5
		cfg.Hazards.Cap = max(cfg.Hazards.Base, cfg.Hazards.Cap-2)
		cfg.Traps.TreasureChance = min(1, cfg.Traps.TreasureChance+0.2)
		cfg.Traps.TrapScorePenalty /= 2
		cfg.Traps.TrapTimePenalty /= 2
	case DifficultyHard:
		cfg.Session.Duration *= 0.8
		cfg.Movement.BoostDuration = max(1, cfg.Movement.BoostDuration-1)
		cfg.Hazards.DPS *= 1.5
		cfg.Hazards.Base++
		cfg.Hazards.Cap += 2
		cfg.Traps.TreasureChance = max(0, cfg.Traps.TreasureChance-0.2)
		cfg.Traps.TrapScorePenalty += cfg.Traps.TrapScorePenalty / 2
		cfg.Traps.TrapTimePenalty *= 1.5
	}
}
