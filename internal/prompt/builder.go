package prompt

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"smart-meal-planner/internal/plan"
)

//go:embed weekly_system_prompt.md
var weeklySystemPrompt string

//go:embed weekly_task_prompt.md
var weeklyTaskPrompt string

//go:embed day_system_prompt.md
var daySystemPrompt string

//go:embed day_task_prompt.md
var dayTaskPrompt string

var (
	weeklySystemTmpl = template.Must(template.New("weekly_system").Parse(weeklySystemPrompt))
	weeklyTaskTmpl   = template.Must(template.New("weekly_task").Parse(weeklyTaskPrompt))
	daySystemTmpl    = template.Must(template.New("day_system").Parse(daySystemPrompt))
	dayTaskTmpl      = template.Must(template.New("day_task").Parse(dayTaskPrompt))
)

// Defaults rendered when the matching preference field is empty, so the
// generation step never receives an ambiguous blank constraint.
const (
	defaultWeeklyCuisine = "Local & Modern European Mix"
	defaultCuisineFocus  = "balanced"
	defaultDayCuisine    = "General"
	noRestrictions       = "None"
	noRestrictionsFocus  = "No restrictions"
	noContext            = "No specific leftovers."
)

// Instructions is the system/task message pair sent to the generation
// endpoint. Building it is pure text construction: no I/O, and the same
// preferences always yield the same pair.
type Instructions struct {
	System string
	User   string
}

type weeklyPromptData struct {
	Location          string
	Budget            string
	Currency          string
	PeopleCount       int
	Cuisine           string
	CuisineFocus      string
	Equipment         string
	Restrictions      string
	RestrictionsFocus string
	Context           string
}

type dayPromptData struct {
	Location     string
	Day          string
	RecipeID     string
	PeopleCount  int
	Cuisine      string
	Equipment    string
	Restrictions string
}

// BuildWeekly renders the full-week instruction pair for the given
// preferences.
func BuildWeekly(prefs plan.Preferences) (Instructions, error) {
	data := weeklyPromptData{
		Location:          prefs.Location,
		Budget:            prefs.Budget,
		Currency:          prefs.Currency,
		PeopleCount:       prefs.PeopleCount,
		Cuisine:           orDefault(prefs.Cuisine, defaultWeeklyCuisine),
		CuisineFocus:      orDefault(prefs.Cuisine, defaultCuisineFocus),
		Equipment:         strings.Join(prefs.EquipmentOrSentinel(), ", "),
		Restrictions:      orDefault(prefs.Restrictions, noRestrictions),
		RestrictionsFocus: orDefault(prefs.Restrictions, noRestrictionsFocus),
		Context:           orDefault(prefs.Context, noContext),
	}

	system, err := render(weeklySystemTmpl, data)
	if err != nil {
		return Instructions{}, err
	}
	user, err := render(weeklyTaskTmpl, data)
	if err != nil {
		return Instructions{}, err
	}
	return Instructions{System: system, User: user}, nil
}

// BuildDay renders the single-day regeneration instruction pair. The day
// must be one of the seven weekday labels.
func BuildDay(prefs plan.Preferences, day string) (Instructions, error) {
	if !plan.IsWeekday(day) {
		return Instructions{}, fmt.Errorf("unknown weekday %q", day)
	}

	data := dayPromptData{
		Location:     prefs.Location,
		Day:          day,
		RecipeID:     DayRecipeID(day),
		PeopleCount:  prefs.PeopleCount,
		Cuisine:      orDefault(prefs.Cuisine, defaultDayCuisine),
		Equipment:    strings.Join(prefs.EquipmentOrSentinel(), ", "),
		Restrictions: orDefault(prefs.Restrictions, noRestrictions),
	}

	system, err := render(daySystemTmpl, data)
	if err != nil {
		return Instructions{}, err
	}
	user, err := render(dayTaskTmpl, data)
	if err != nil {
		return Instructions{}, err
	}
	return Instructions{System: system, User: user}, nil
}

// DayRecipeID derives the recipe id the day prompt instructs the model
// to use, e.g. "wed-dinner" for Wednesday.
func DayRecipeID(day string) string {
	return strings.ToLower(day[:3]) + "-dinner"
}

func render(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render %s prompt: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
