package config

import "fmt"

// Variant names a feature-flag preset over the same engine.
type Variant string

const (
	VariantClassic  Variant = "classic"  // boxes, gems, boost and levels
	VariantTreasure Variant = "treasure" // classic plus treasure/trap boxes
	VariantArena    Variant = "arena"    // every feature
)

// Variants lists the known variants in menu order.
var Variants = []Variant{VariantArena, VariantTreasure, VariantClassic}

// FeaturesFor returns the feature flags of a variant.
func FeaturesFor(v Variant) (FeatureFlags, error) {
	switch v {
	case VariantClassic:
		return FeatureFlags{Boost: true, Levels: true}, nil
	case VariantTreasure:
		return FeatureFlags{Boost: true, Levels: true, Traps: true}, nil
	case VariantArena:
		return FeatureFlags{
			Breaking: true,
			Slabs:    true,
			Ramps:    true,
			Hazards:  true,
			Traps:    true,
			Boost:    true,
			Levels:   true,
		}, nil
	default:
		return FeatureFlags{}, fmt.Errorf("config: unknown variant %q", v)
	}
}

// ApplyVariant restricts the configured features to those of the variant.
// A feature switched off in the loaded config stays off.
func ApplyVariant(cfg *GemsConfig, v Variant) error {
	f, err := FeaturesFor(v)
	if err != nil {
		return err
	}
	cfg.Features = FeatureFlags{
		Breaking: f.Breaking && cfg.Features.Breaking,
		Slabs:    f.Slabs && cfg.Features.Slabs,
		Ramps:    f.Ramps && cfg.Features.Ramps,
		Hazards:  f.Hazards && cfg.Features.Hazards,
		Traps:    f.Traps && cfg.Features.Traps,
		Boost:    f.Boost && cfg.Features.Boost,
		Levels:   f.Levels && cfg.Features.Levels,
	}
	return nil
}
