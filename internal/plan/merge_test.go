package plan

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWeeklyPlan() WeeklyPlanData {
	w := WeeklyPlanData{
		BudgetEstimate: "200 EUR",
		ShoppingList: []ShoppingListCategory{
			{Location: "Local Market", Items: []Ingredient{{Item: "Tomatoes", Quantity: "1 kg"}}},
		},
		BatchCooking: []BatchCookingStep{
			{Step: 1, Instruction: "Cook a pot of rice", TimeEstimate: "30 min"},
		},
	}
	for _, day := range Weekdays {
		id := fmt.Sprintf("%s-dinner", day[:3])
		w.WeekPlan = append(w.WeekPlan, DayPlan{
			Day:            day,
			Breakfast:      "Oatmeal",
			Lunch:          "Leftovers",
			Dinner:         "Dinner for " + day,
			DinnerRecipeID: id,
		})
		w.Recipes = append(w.Recipes, Recipe{
			ID:           id,
			Name:         "Recipe for " + day,
			PrepTime:     "25 min",
			Ingredients:  []string{"Rice", "Vegetables"},
			Instructions: []string{"Chop", "Cook"},
		})
	}
	return w
}

func TestMergeDayReplacesExactlyOneDay(t *testing.T) {
	current := testWeeklyPlan()
	newDay := DayPlan{
		Day:            "Wednesday",
		Breakfast:      "Shakshuka",
		Lunch:          "Salad",
		Dinner:         "Khinkali",
		DinnerRecipeID: "wed-dinner",
	}
	newRecipe := Recipe{ID: "wed-dinner", Name: "Khinkali", PrepTime: "1 h",
		Ingredients: []string{"Flour", "Beef"}, Instructions: []string{"Knead", "Boil"}}

	merged := MergeDay(current, newDay, newRecipe)

	require.Len(t, merged.WeekPlan, 7)
	assert.Equal(t, "Wednesday", merged.WeekPlan[2].Day)
	assert.Equal(t, newDay, merged.WeekPlan[2])

	// Every other day is untouched.
	for i, d := range merged.WeekPlan {
		if i == 2 {
			continue
		}
		assert.Equal(t, current.WeekPlan[i], d, "day %s changed", d.Day)
	}

	// Exactly one recipe carries the regenerated id, even though one
	// with the same id already existed.
	count := 0
	for _, r := range merged.Recipes {
		if r.ID == "wed-dinner" {
			count++
			assert.Equal(t, "Khinkali", r.Name)
		}
	}
	assert.Equal(t, 1, count)
	assert.Len(t, merged.Recipes, len(current.Recipes))
}

func TestMergeDayDoesNotMutateInput(t *testing.T) {
	current := testWeeklyPlan()
	snapshot := testWeeklyPlan()

	newDay := current.WeekPlan[1]
	newDay.Dinner = "Something new"
	MergeDay(current, newDay, Recipe{ID: "tue-dinner", Name: "New"})

	assert.Equal(t, snapshot, current)
}

func TestMergeDayIdempotent(t *testing.T) {
	current := testWeeklyPlan()
	newDay := DayPlan{Day: "Friday", Breakfast: "Eggs", Lunch: "Soup",
		Dinner: "Plov", DinnerRecipeID: "fri-dinner"}
	newRecipe := Recipe{ID: "fri-dinner", Name: "Plov"}

	once := MergeDay(current, newDay, newRecipe)
	twice := MergeDay(once, newDay, newRecipe)

	assert.Equal(t, once, twice)
}

func TestMergeDayKeepsUnrelatedRecipes(t *testing.T) {
	current := testWeeklyPlan()
	merged := MergeDay(current, DayPlan{Day: "Monday", DinnerRecipeID: "mon-dinner"},
		Recipe{ID: "mon-dinner", Name: "Replacement"})

	for _, r := range current.Recipes {
		if r.ID == "mon-dinner" {
			continue
		}
		got, ok := merged.RecipeByID(r.ID)
		require.True(t, ok, "recipe %s missing after merge", r.ID)
		assert.Equal(t, r, got)
	}
}
