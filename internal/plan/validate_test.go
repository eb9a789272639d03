package plan

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePreferences(t *testing.T) {
	valid := Preferences{
		Location:    "Tbilisi, Georgia",
		Budget:      "225",
		Currency:    "GEL",
		PeopleCount: 2,
		Equipment:   []string{"Stovetop", "Microwave", "Blender"},
	}
	assert.NoError(t, ValidatePreferences(valid))

	cases := map[string]Preferences{
		"missing location":    {Budget: "225", Currency: "GEL", PeopleCount: 2},
		"non-numeric budget":  {Location: "Lisbon", Budget: "lots", Currency: "EUR", PeopleCount: 2},
		"bad currency":        {Location: "Lisbon", Budget: "100", Currency: "EURO", PeopleCount: 2},
		"zero people":         {Location: "Lisbon", Budget: "100", Currency: "EUR", PeopleCount: 0},
	}
	for name, prefs := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, ValidatePreferences(prefs))
		})
	}
}

func TestEquipmentOrSentinel(t *testing.T) {
	assert.Equal(t, []string{NoEquipmentSentinel}, Preferences{}.EquipmentOrSentinel())
	assert.Equal(t, []string{"Oven"}, Preferences{Equipment: []string{"Oven"}}.EquipmentOrSentinel())
}

func TestValidateWeeklyAcceptsCompletePlan(t *testing.T) {
	assert.NoError(t, ValidateWeekly(testWeeklyPlan()))
}

func TestValidateWeeklyRejectsStructuralDefects(t *testing.T) {
	t.Run("wrong day count", func(t *testing.T) {
		w := testWeeklyPlan()
		w.WeekPlan = w.WeekPlan[:6]
		requireValidationError(t, ValidateWeekly(w))
	})

	t.Run("days out of order", func(t *testing.T) {
		w := testWeeklyPlan()
		w.WeekPlan[0], w.WeekPlan[1] = w.WeekPlan[1], w.WeekPlan[0]
		requireValidationError(t, ValidateWeekly(w))
	})

	t.Run("dangling recipe id", func(t *testing.T) {
		w := testWeeklyPlan()
		w.WeekPlan[3].DinnerRecipeID = "nope"
		requireValidationError(t, ValidateWeekly(w))
	})

	t.Run("duplicate recipe id", func(t *testing.T) {
		w := testWeeklyPlan()
		w.Recipes = append(w.Recipes, w.Recipes[0])
		requireValidationError(t, ValidateWeekly(w))
	})

	t.Run("missing budget estimate", func(t *testing.T) {
		w := testWeeklyPlan()
		w.BudgetEstimate = ""
		requireValidationError(t, ValidateWeekly(w))
	})
}

func TestValidateDayRegeneration(t *testing.T) {
	good := DayRegeneration{
		DayPlan: DayPlan{Day: "Wednesday", DinnerRecipeID: "wed-dinner"},
		Recipe:  Recipe{ID: "wed-dinner", Name: "Khinkali"},
	}
	assert.NoError(t, ValidateDayRegeneration(good, "Wednesday"))

	wrongDay := good
	wrongDay.DayPlan.Day = "Thursday"
	requireValidationError(t, ValidateDayRegeneration(wrongDay, "Wednesday"))

	mismatch := good
	mismatch.Recipe.ID = "thu-dinner"
	requireValidationError(t, ValidateDayRegeneration(mismatch, "Wednesday"))
}

func requireValidationError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var verr *ValidationError
	assert.True(t, errors.As(err, &verr), "want *ValidationError, got %T", err)
}
