package domain

import (
	"regexp"
	"strings"
)

// emailPattern is deliberately loose: something@something.something.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidationResult is a field-keyed error map. Validation problems are
// data, not error values; callers render them back to the user.
type ValidationResult struct {
	Errors map[string]string `json:"errors"`
}

// Valid reports whether the validated value had no problems.
func (r ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

func newValidationResult() ValidationResult {
	return ValidationResult{Errors: map[string]string{}}
}

// ValidateClientInput checks a prospective client profile. Name is
// required; email and age are only checked when present.
func ValidateClientInput(in ClientInput) ValidationResult {
	res := newValidationResult()
	if strings.TrimSpace(in.Name) == "" {
		res.Errors["name"] = "Name is required"
	}
	if in.Email != "" && !emailPattern.MatchString(in.Email) {
		res.Errors["email"] = "Invalid email format"
	}
	if in.Age != nil && (*in.Age < 1 || *in.Age > 120) {
		res.Errors["age"] = "Age must be between 1 and 120"
	}
	return res
}

// ValidateWorkoutInput checks a prospective workout log. The date check
// only fires for explicitly zeroed dates; NewWorkoutLog defaults a missing
// date to now.
func ValidateWorkoutInput(in WorkoutInput) ValidationResult {
	res := newValidationResult()
	if strings.TrimSpace(in.Name) == "" {
		res.Errors["name"] = "Workout name is required"
	}
	if in.ClientID == 0 {
		res.Errors["clientId"] = "Client ID is required"
	}
	return res
}
