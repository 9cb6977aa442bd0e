// Package config provides YAML-based game configuration loading,
// difficulty presets and variant feature flags for Gem Catcher.
package config

// GemsConfig contains all tunables of the gem catcher simulation.
type GemsConfig struct {
	Arena    ArenaConfig    `yaml:"arena"`
	Body     BodyConfig     `yaml:"body"`
	Movement MovementConfig `yaml:"movement"`
	Jump     JumpConfig     `yaml:"jump"`
	Session  SessionConfig  `yaml:"session"`
	Boxes    BoxConfig      `yaml:"boxes"`
	Slabs    SlabConfig     `yaml:"slabs"`
	Ramps    RampConfig     `yaml:"ramps"`
	Pickups  PickupConfig   `yaml:"pickups"`
	Hazards  HazardConfig   `yaml:"hazards"`
	Traps    TrapConfig     `yaml:"traps"`
	Levels   LevelConfig    `yaml:"levels"`
	Features FeatureFlags   `yaml:"features"`
}

// ArenaConfig defines the bounded lattice. Coordinates span [-GridSize, GridSize] cells.
type ArenaConfig struct {
	GridSize int     `yaml:"grid_size"`
	Cell     float64 `yaml:"cell"`
}

// BodyConfig defines the player body.
type BodyConfig struct {
	Radius float64 `yaml:"radius"`
}

// MovementConfig defines horizontal movement and the boost window.
type MovementConfig struct {
	BaseSpeed       float64 `yaml:"base_speed"`       // World units per second
	BoostMultiplier float64 `yaml:"boost_multiplier"` // Speed multiplier while boosted
	BoostDuration   float64 `yaml:"boost_duration"`   // Seconds
	MaxTick         float64 `yaml:"max_tick"`         // Largest accepted dt; 0 disables the clamp
}

// JumpConfig defines vertical motion.
type JumpConfig struct {
	LaunchVelocity float64 `yaml:"launch_velocity"`
	Gravity        float64 `yaml:"gravity"` // Negative, units/s²
	ClimbMargin    float64 `yaml:"climb_margin"`
}

// SessionConfig defines the countdown.
type SessionConfig struct {
	Duration float64 `yaml:"duration"` // Seconds
}

// BoxConfig defines the destructible unit boxes.
type BoxConfig struct {
	Count       int     `yaml:"count"`
	Size        float64 `yaml:"size"`
	Height      float64 `yaml:"height"`
	MinDistance float64 `yaml:"min_distance"`
	BreakTTL    float64 `yaml:"break_ttl"` // Remnant lifetime in seconds
}

// SlabConfig defines variable sized solid slabs.
type SlabConfig struct {
	Count       int      `yaml:"count"`
	SizeX       Interval `yaml:"size_x"`
	SizeY       Interval `yaml:"size_y"`
	Height      Interval `yaml:"height"`
	MinDistance float64  `yaml:"min_distance"`
}

// RampConfig defines stepped ramps.
type RampConfig struct {
	Count       int      `yaml:"count"`
	Length      Interval `yaml:"length"`
	Width       Interval `yaml:"width"`
	MinSteps    int      `yaml:"min_steps"`
	MaxSteps    int      `yaml:"max_steps"`
	StepHeight  Interval `yaml:"step_height"`
	MinDistance float64  `yaml:"min_distance"`
	SummitGem   bool     `yaml:"summit_gem"` // Place a summit gem on the high end
}

// PickupConfig defines gems.
type PickupConfig struct {
	Count       int     `yaml:"count"`
	Radius      float64 `yaml:"radius"`
	MinDistance float64 `yaml:"min_distance"`
	BoostChance float64 `yaml:"boost_chance"`
}

// HazardConfig defines lava pools.
type HazardConfig struct {
	Base            int      `yaml:"base"`
	Cap             int      `yaml:"cap"`
	Radius          Interval `yaml:"radius"`
	TTL             float64  `yaml:"ttl"`
	TTLJitter       float64  `yaml:"ttl_jitter"` // Fraction; TTL is uniform in ttl·[1-j, 1+j]
	SlowFactor      float64  `yaml:"slow_factor"`
	DPS             float64  `yaml:"dps"`
	OccupancyMargin float64  `yaml:"occupancy_margin"`
	MinDistance     float64  `yaml:"min_distance"`
	DamageWhenOver  bool     `yaml:"damage_when_over"`
}

// TrapConfig defines treasure/trap boxes.
type TrapConfig struct {
	Count            int     `yaml:"count"`
	CaptureRadius    float64 `yaml:"capture_radius"`
	MinDistance      float64 `yaml:"min_distance"`
	TreasureChance   float64 `yaml:"treasure_chance"`
	TreasureBonus    int     `yaml:"treasure_bonus"`
	TrapScorePenalty int     `yaml:"trap_score_penalty"`
	TrapTimePenalty  float64 `yaml:"trap_time_penalty"`
	ReplaceChance    float64 `yaml:"replace_chance"`
	SpawnRate        float64 `yaml:"spawn_rate"` // Expected spawns per second below MaxCount
	MaxCount         int     `yaml:"max_count"`
}

// LevelConfig defines the level cadence and reward bundle.
type LevelConfig struct {
	Threshold      int     `yaml:"threshold"`
	BonusScore     int     `yaml:"bonus_score"`
	BonusTime      float64 `yaml:"bonus_time"`
	ExtraPickups   int     `yaml:"extra_pickups"`
	ExtraSlabs     int     `yaml:"extra_slabs"`
	ExtraRamps     int     `yaml:"extra_ramps"`
	ExtraBoxes     int     `yaml:"extra_boxes"`
	BoxMinDistance float64 `yaml:"box_min_distance"`
	SpeedIncrement float64 `yaml:"speed_increment"`
}

// FeatureFlags switches engine features on and off. Variants are presets of these.
type FeatureFlags struct {
	Breaking bool `yaml:"breaking"`
	Slabs    bool `yaml:"slabs"`
	Ramps    bool `yaml:"ramps"`
	Hazards  bool `yaml:"hazards"`
	Traps    bool `yaml:"traps"`
	Boost    bool `yaml:"boost"`
	Levels   bool `yaml:"levels"`
}

// Interval is an inclusive [min, max] range.
type Interval struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Lerp maps t in [0, 1] into the interval.
func (iv Interval) Lerp(t float64) float64 {
	return iv.Min + (iv.Max-iv.Min)*t
}
