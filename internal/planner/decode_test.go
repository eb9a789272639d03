package planner

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"smart-meal-planner/internal/plan"
)

func makeWeekly() plan.WeeklyPlanData {
	w := plan.WeeklyPlanData{
		BudgetEstimate: "225 GEL",
		ShoppingList: []plan.ShoppingListCategory{
			{Location: "Local Market", Items: []plan.Ingredient{{Item: "Potatoes", Quantity: "2 kg"}}},
		},
		BatchCooking: []plan.BatchCookingStep{
			{Step: 1, Instruction: "Roast vegetables", TimeEstimate: "40 min"},
		},
	}
	for _, day := range plan.Weekdays {
		id := fmt.Sprintf("%s-dinner", day[:3])
		w.WeekPlan = append(w.WeekPlan, plan.DayPlan{
			Day: day, Breakfast: "Porridge", Lunch: "Soup",
			Dinner: "Dinner " + day, DinnerRecipeID: id,
		})
		w.Recipes = append(w.Recipes, plan.Recipe{
			ID: id, Name: "Recipe " + day, PrepTime: "30 min",
			Ingredients: []string{"Potatoes"}, Instructions: []string{"Cook"},
		})
	}
	return w
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal fixture: %v", err)
	}
	return string(data)
}

func TestDecodeWeeklyPlan(t *testing.T) {
	raw := mustJSON(t, makeWeekly())

	weekly, err := DecodeWeeklyPlan(raw)
	if err != nil {
		t.Fatalf("DecodeWeeklyPlan failed: %v", err)
	}
	if len(weekly.WeekPlan) != 7 {
		t.Errorf("expected 7 days, got %d", len(weekly.WeekPlan))
	}
	if weekly.WeekPlan[2].Day != "Wednesday" {
		t.Errorf("weekPlan[2].day = %s, want Wednesday", weekly.WeekPlan[2].Day)
	}
}

func TestDecodeWeeklyPlanStripsCodeFences(t *testing.T) {
	raw := "```json\n" + mustJSON(t, makeWeekly()) + "\n```"
	if _, err := DecodeWeeklyPlan(raw); err != nil {
		t.Fatalf("fenced payload rejected: %v", err)
	}
}

func TestDecodeWeeklyPlanMalformed(t *testing.T) {
	_, err := DecodeWeeklyPlan("{not json")
	var merr *MalformedResponseError
	if !errors.As(err, &merr) {
		t.Fatalf("want *MalformedResponseError, got %v", err)
	}
	if merr.Raw != "{not json" {
		t.Error("malformed error lost the raw payload")
	}
}

func TestDecodeWeeklyPlanStructurallyInvalid(t *testing.T) {
	broken := makeWeekly()
	broken.WeekPlan = broken.WeekPlan[:5]

	_, err := DecodeWeeklyPlan(mustJSON(t, broken))
	var verr *plan.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want *plan.ValidationError, got %v", err)
	}
}

func TestDecodeDayRegeneration(t *testing.T) {
	regen := plan.DayRegeneration{
		DayPlan: plan.DayPlan{Day: "Wednesday", Breakfast: "Eggs", Lunch: "Salad",
			Dinner: "Khinkali", DinnerRecipeID: "wed-dinner"},
		Recipe: plan.Recipe{ID: "wed-dinner", Name: "Khinkali"},
	}

	got, err := DecodeDayRegeneration(mustJSON(t, regen), "Wednesday")
	if err != nil {
		t.Fatalf("DecodeDayRegeneration failed: %v", err)
	}
	if got.Recipe.ID != "wed-dinner" {
		t.Errorf("recipe id = %s", got.Recipe.ID)
	}

	if _, err := DecodeDayRegeneration(mustJSON(t, regen), "Thursday"); err == nil {
		t.Error("day mismatch was not rejected")
	}
}
