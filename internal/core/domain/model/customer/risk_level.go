package customer

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// ErrInvalidRiskLevel is wrapped by RiskLevelFromString for unknown names.
var ErrInvalidRiskLevel = errs.NewValueIsInvalidError("risk level")

// RiskLevel is the credit risk tier assigned to a customer. It drives the
// deposit rate charged by admission control.
type RiskLevel int

const (
	// UnknownRisk is the zero value and never valid.
	UnknownRisk RiskLevel = iota
	Low
	Medium
	High
)

var riskLevelNames = map[RiskLevel]string{
	Low:    "LOW",
	Medium: "MEDIUM",
	High:   "HIGH",
}

// RiskLevelFromString parses LOW, MEDIUM or HIGH (exact match).
func RiskLevelFromString(s string) (RiskLevel, error) {
	for level, name := range riskLevelNames {
		if name == s {
			return level, nil
		}
	}
	return UnknownRisk, fmt.Errorf("%w: %q is not a valid risk level", ErrInvalidRiskLevel, s)
}

func (r RiskLevel) String() string {
	if name, ok := riskLevelNames[r]; ok {
		return name
	}
	return "UNKNOWN"
}

func (r RiskLevel) Validate() error {
	if _, ok := riskLevelNames[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("risk level is invalid", fmt.Errorf("%d is not a valid risk level", r))
	}
	return nil
}
