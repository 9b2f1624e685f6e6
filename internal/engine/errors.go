// Package engine computes crate component layouts from the input
// specifications. All calculators are pure: same inputs, same outputs,
// no shared state.
package engine

import (
	"errors"
	"fmt"
)

// FailureKind classifies a layout failure.
type FailureKind string

const (
	// UnsupportedLoad: no skid rule covers the product weight, or the
	// crate is too narrow to carry the minimum skid count.
	UnsupportedLoad FailureKind = "unsupported_load"

	// InfeasibleFloorboardFit: the floor span cannot be tiled within the
	// gap tolerance and slot capacity.
	InfeasibleFloorboardFit FailureKind = "infeasible_floorboard_fit"

	// InvalidCleatConstraint: a cleat layout was requested with a
	// non-positive spacing limit or panel span.
	InvalidCleatConstraint FailureKind = "invalid_cleat_constraint"

	// InconsistentLayout: a cross-component invariant failed during assembly.
	InconsistentLayout FailureKind = "inconsistent_layout"
)

// Error is a typed layout failure carrying the violated rule and the
// offending measurement.
type Error struct {
	Kind        FailureKind
	Rule        string  // the constraint that failed
	Measurement float64 // the value that violated it
	Detail      string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s (measured %.4f): %s", e.Kind, e.Rule, e.Measurement, e.Detail)
}

func failf(kind FailureKind, rule string, measurement float64, format string, args ...any) *Error {
	return &Error{
		Kind:        kind,
		Rule:        rule,
		Measurement: measurement,
		Detail:      fmt.Sprintf(format, args...),
	}
}

// KindOf extracts the FailureKind from err, or "" when err is not a
// layout failure.
func KindOf(err error) FailureKind {
	var le *Error
	if errors.As(err, &le) {
		return le.Kind
	}
	return ""
}
