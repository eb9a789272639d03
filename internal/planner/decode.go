package planner

import (
	"encoding/json"
	"strings"

	"smart-meal-planner/internal/plan"
)

// MalformedResponseError reports a generation payload that is not
// syntactically valid JSON.
type MalformedResponseError struct {
	Cause error
	Raw   string
}

func (e *MalformedResponseError) Error() string {
	return "malformed generation response: " + e.Cause.Error()
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Cause
}

// DecodeWeeklyPlan parses a raw full-week payload into the domain
// schema and checks its structural invariants. A syntactically broken
// payload yields MalformedResponseError; a parseable but structurally
// incomplete one yields plan.ValidationError.
func DecodeWeeklyPlan(raw string) (*plan.WeeklyPlanData, error) {
	var weekly plan.WeeklyPlanData
	cleaned := stripCodeFences(raw)
	if err := json.Unmarshal([]byte(cleaned), &weekly); err != nil {
		return nil, &MalformedResponseError{Cause: err, Raw: raw}
	}
	if err := plan.ValidateWeekly(weekly); err != nil {
		return nil, err
	}
	return &weekly, nil
}

// DecodeDayRegeneration parses a raw single-day payload and checks it
// against the weekday that was requested.
func DecodeDayRegeneration(raw, expectedDay string) (*plan.DayRegeneration, error) {
	var regen plan.DayRegeneration
	cleaned := stripCodeFences(raw)
	if err := json.Unmarshal([]byte(cleaned), &regen); err != nil {
		return nil, &MalformedResponseError{Cause: err, Raw: raw}
	}
	if err := plan.ValidateDayRegeneration(regen, expectedDay); err != nil {
		return nil, err
	}
	return &regen, nil
}

// stripCodeFences removes a surrounding markdown code fence. Models are
// instructed to answer without markdown but do not always comply.
func stripCodeFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
