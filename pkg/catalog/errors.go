package catalog

import "errors"

var (
	// ErrPlanNotFound is returned when a plan ID does not resolve.
	ErrPlanNotFound = errors.New("subscription plan not found")

	// ErrInvalidPlan is returned for plans that fail consistency checks.
	ErrInvalidPlan = errors.New("invalid subscription plan configuration")

	// ErrFailedToLoadFallback indicates the embedded fallback set is broken.
	// This is a build defect, not a runtime condition.
	ErrFailedToLoadFallback = errors.New("failed to load fallback plans")
)
