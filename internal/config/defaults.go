package config

import (
	_ "embed"
)

//go:embed defaults/gems.yaml
var defaultGemsYAML []byte

// DefaultGemsConfig returns the hardcoded default configuration.
// It mirrors defaults/gems.yaml and is used when the embedded file cannot be parsed.
func DefaultGemsConfig() GemsConfig {
	return GemsConfig{
		Arena: ArenaConfig{
			GridSize: 20,
			Cell:     1.0,
		},
		Body: BodyConfig{
			Radius: 0.45,
		},
		Movement: MovementConfig{
			BaseSpeed:       7.0,
			BoostMultiplier: 2.0,
			BoostDuration:   5.0,
			MaxTick:         0.25,
		},
		Jump: JumpConfig{
			LaunchVelocity: 9.5,
			Gravity:        -18.0,
			ClimbMargin:    0.05,
		},
		Session: SessionConfig{
			Duration: 300.0,
		},
		Boxes: BoxConfig{
			Count:       12,
			Size:        1.0,
			Height:      1.0,
			MinDistance: 4.0,
			BreakTTL:    0.6,
		},
		Slabs: SlabConfig{
			Count:       4,
			SizeX:       Interval{Min: 1.2, Max: 3.0},
			SizeY:       Interval{Min: 0.8, Max: 2.2},
			Height:      Interval{Min: 1.0, Max: 2.0},
			MinDistance: 3.0,
		},
		Ramps: RampConfig{
			Count:       1,
			Length:      Interval{Min: 4.0, Max: 7.0},
			Width:       Interval{Min: 1.2, Max: 2.0},
			MinSteps:    4,
			MaxSteps:    6,
			StepHeight:  Interval{Min: 0.35, Max: 0.55},
			MinDistance: 6.0,
			SummitGem:   true,
		},
		Pickups: PickupConfig{
			Count:       8,
			Radius:      0.4,
			MinDistance: 1.0,
			BoostChance: 0.06,
		},
		Hazards: HazardConfig{
			Base:            2,
			Cap:             6,
			Radius:          Interval{Min: 2.5, Max: 4.0},
			TTL:             8.0,
			TTLJitter:       0.2,
			SlowFactor:      0.5,
			DPS:             20.0,
			OccupancyMargin: 0.09,
			MinDistance:     5.0,
		},
		Traps: TrapConfig{
			Count:            2,
			CaptureRadius:    0.8,
			MinDistance:      2.0,
			TreasureChance:   0.5,
			TreasureBonus:    50,
			TrapScorePenalty: 30,
			TrapTimePenalty:  10.0,
			ReplaceChance:    0.8,
			SpawnRate:        0.5,
			MaxCount:         4,
		},
		Levels: LevelConfig{
			Threshold:      5,
			BonusScore:     50,
			BonusTime:      20.0,
			ExtraPickups:   2,
			ExtraSlabs:     2,
			ExtraRamps:     1,
			ExtraBoxes:     1,
			BoxMinDistance: 2.0,
			SpeedIncrement: 0.6,
		},
		Features: FeatureFlags{
			Breaking: true,
			Slabs:    true,
			Ramps:    true,
			Hazards:  true,
			Traps:    true,
			Boost:    true,
			Levels:   true,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultGemsYAML
}
