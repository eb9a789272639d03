package plan

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidationError reports a response that parsed but is structurally
// incomplete: missing fields, wrong cardinality or a dangling recipe
// reference.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid plan structure: " + e.Reason
}

// ValidatePreferences checks the user input before a generation request
// is built from it.
func ValidatePreferences(p Preferences) error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("invalid preferences: %w", err)
	}
	return nil
}

// ValidateWeekly checks the structural invariants of a full-week plan:
// exactly seven days in Monday..Sunday order, and every dinnerRecipeId
// resolving to exactly one recipe in the plan's collection.
func ValidateWeekly(w WeeklyPlanData) error {
	if len(w.WeekPlan) != len(Weekdays) {
		return &ValidationError{Reason: fmt.Sprintf("weekPlan has %d entries, want %d", len(w.WeekPlan), len(Weekdays))}
	}
	for i, d := range w.WeekPlan {
		if d.Day != Weekdays[i] {
			return &ValidationError{Reason: fmt.Sprintf("weekPlan[%d] is %q, want %q", i, d.Day, Weekdays[i])}
		}
		if d.DinnerRecipeID == "" {
			return &ValidationError{Reason: fmt.Sprintf("%s has no dinnerRecipeId", d.Day)}
		}
	}

	seen := make(map[string]int, len(w.Recipes))
	for _, r := range w.Recipes {
		if r.ID == "" {
			return &ValidationError{Reason: fmt.Sprintf("recipe %q has no id", r.Name)}
		}
		seen[r.ID]++
	}
	for _, d := range w.WeekPlan {
		n, ok := seen[d.DinnerRecipeID]
		if !ok {
			return &ValidationError{Reason: fmt.Sprintf("%s references unknown recipe %q", d.Day, d.DinnerRecipeID)}
		}
		if n != 1 {
			return &ValidationError{Reason: fmt.Sprintf("recipe id %q appears %d times", d.DinnerRecipeID, n)}
		}
	}

	if w.BudgetEstimate == "" {
		return &ValidationError{Reason: "missing budgetEstimate"}
	}
	return nil
}

// ValidateDayRegeneration checks a single-day response against the day
// that was requested.
func ValidateDayRegeneration(d DayRegeneration, expectedDay string) error {
	if d.DayPlan.Day != expectedDay {
		return &ValidationError{Reason: fmt.Sprintf("dayPlan is for %q, requested %q", d.DayPlan.Day, expectedDay)}
	}
	if d.Recipe.ID == "" {
		return &ValidationError{Reason: "recipe has no id"}
	}
	if d.DayPlan.DinnerRecipeID != d.Recipe.ID {
		return &ValidationError{Reason: fmt.Sprintf("dinnerRecipeId %q does not match recipe id %q", d.DayPlan.DinnerRecipeID, d.Recipe.ID)}
	}
	return nil
}
