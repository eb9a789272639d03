package prompt

import (
	"strings"
	"testing"

	"smart-meal-planner/internal/plan"
)

func tbilisiPrefs() plan.Preferences {
	return plan.Preferences{
		Location:    "Tbilisi, Georgia",
		Budget:      "225",
		Currency:    "GEL",
		PeopleCount: 2,
		Equipment:   []string{"Stovetop", "Microwave", "Blender"},
	}
}

func TestBuildWeeklyEmbedsConstraints(t *testing.T) {
	instr, err := BuildWeekly(tbilisiPrefs())
	if err != nil {
		t.Fatalf("BuildWeekly failed: %v", err)
	}

	combined := instr.System + "\n" + instr.User
	for _, want := range []string{
		"225 GEL",
		"Tbilisi, Georgia",
		"Stovetop, Microwave, Blender",
		`"weekPlan"`,
		`"shoppingList"`,
		`"batchCooking"`,
		`"recipes"`,
		`"budgetEstimate"`,
	} {
		if !strings.Contains(combined, want) {
			t.Errorf("instructions missing %q", want)
		}
	}
	if !strings.Contains(instr.User, "Do NOT suggest recipes requiring missing equipment") {
		t.Error("task instruction does not forbid unlisted equipment")
	}
}

func TestBuildWeeklyIsDeterministic(t *testing.T) {
	a, err := BuildWeekly(tbilisiPrefs())
	if err != nil {
		t.Fatalf("BuildWeekly failed: %v", err)
	}
	b, _ := BuildWeekly(tbilisiPrefs())
	if a != b {
		t.Error("identical preferences produced different instructions")
	}
}

func TestBuildWeeklyDefaults(t *testing.T) {
	prefs := tbilisiPrefs()
	prefs.Equipment = nil
	prefs.Restrictions = ""
	prefs.Cuisine = ""
	prefs.Context = ""

	instr, err := BuildWeekly(prefs)
	if err != nil {
		t.Fatalf("BuildWeekly failed: %v", err)
	}

	if !strings.Contains(instr.System, plan.NoEquipmentSentinel) {
		t.Error("empty equipment was not replaced by the sentinel")
	}
	if !strings.Contains(instr.System, "Dietary Restrictions/Dislikes: None.") {
		t.Error("empty restrictions did not render as None")
	}
	if !strings.Contains(instr.System, "Local & Modern European Mix") {
		t.Error("empty cuisine did not fall back to the default style")
	}
	if !strings.Contains(instr.User, "No specific leftovers.") {
		t.Error("empty context did not render the default token")
	}
}

func TestBuildDay(t *testing.T) {
	instr, err := BuildDay(tbilisiPrefs(), "Wednesday")
	if err != nil {
		t.Fatalf("BuildDay failed: %v", err)
	}

	for _, want := range []string{"Wednesday", "wed-dinner", `"dayPlan"`, `"recipe"`, "Stovetop, Microwave, Blender"} {
		if !strings.Contains(instr.System+instr.User, want) {
			t.Errorf("day instructions missing %q", want)
		}
	}
}

func TestBuildDayRejectsUnknownDay(t *testing.T) {
	if _, err := BuildDay(tbilisiPrefs(), "Someday"); err == nil {
		t.Error("expected an error for an unknown weekday")
	}
}

func TestDayRecipeID(t *testing.T) {
	cases := map[string]string{
		"Monday":    "mon-dinner",
		"Wednesday": "wed-dinner",
		"Sunday":    "sun-dinner",
	}
	for day, want := range cases {
		if got := DayRecipeID(day); got != want {
			t.Errorf("DayRecipeID(%s) = %s, want %s", day, got, want)
		}
	}
}
