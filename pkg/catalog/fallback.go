package catalog

import (
	_ "embed"
	"errors"

	"gopkg.in/yaml.v3"
)

//go:embed plans.yaml
var fallbackPlansYAML []byte

// FallbackPlans parses the embedded fallback plan set. The embedded file
// is part of the build, so a parse or validation failure means the binary
// itself is broken.
func FallbackPlans() ([]Plan, error) {
	var plans []Plan
	if err := yaml.Unmarshal(fallbackPlansYAML, &plans); err != nil {
		return nil, errors.Join(ErrFailedToLoadFallback, err)
	}
	if len(plans) == 0 {
		return nil, ErrFailedToLoadFallback
	}
	for _, p := range plans {
		if err := p.Validate(); err != nil {
			return nil, errors.Join(ErrFailedToLoadFallback, err)
		}
	}
	return plans, nil
}

// MustFallbackPlans is FallbackPlans that panics on failure. Used at
// startup where a broken fallback set must prevent the service from
// starting.
func MustFallbackPlans() []Plan {
	plans, err := FallbackPlans()
	if err != nil {
		panic(err)
	}
	return plans
}
