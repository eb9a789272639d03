package snapshot

import (
	"time"

	"smart-meal-planner/internal/plan"
)

// Kind names the three snapshot families the gateway stores.
type Kind string

const (
	KindPlan   Kind = "plan"
	KindRecipe Kind = "recipe"
	KindList   Kind = "list"
)

// ParseKind maps a request path segment to a snapshot kind.
func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case KindPlan, KindRecipe, KindList:
		return Kind(s), true
	default:
		return "", false
	}
}

// SavedPlan is a persisted, named snapshot of a weekly plan together
// with the preferences it was generated from.
type SavedPlan struct {
	ID             string                      `json:"id,omitempty"`
	UserID         string                      `json:"user_id"`
	Name           string                      `json:"name"`
	Preferences    plan.Preferences            `json:"preferences"`
	WeekPlan       []plan.DayPlan              `json:"week_plan"`
	Recipes        []plan.Recipe               `json:"recipes"`
	BatchCooking   []plan.BatchCookingStep     `json:"batch_cooking"`
	ShoppingList   []plan.ShoppingListCategory `json:"shopping_list"`
	BudgetEstimate string                      `json:"budget_estimate"`
	CreatedAt      time.Time                   `json:"created_at,omitempty"`
	UpdatedAt      time.Time                   `json:"updated_at,omitempty"`
}

// ToWeeklyPlan reassembles the aggregate exactly as it was saved.
func (s SavedPlan) ToWeeklyPlan() plan.WeeklyPlanData {
	return plan.WeeklyPlanData{
		WeekPlan:       s.WeekPlan,
		ShoppingList:   s.ShoppingList,
		BatchCooking:   s.BatchCooking,
		Recipes:        s.Recipes,
		BudgetEstimate: s.BudgetEstimate,
	}
}

// NewSavedPlan builds the persisted envelope for a plan snapshot.
func NewSavedPlan(userID, name string, prefs plan.Preferences, data plan.WeeklyPlanData) SavedPlan {
	return SavedPlan{
		UserID:         userID,
		Name:           name,
		Preferences:    prefs,
		WeekPlan:       data.WeekPlan,
		Recipes:        data.Recipes,
		BatchCooking:   data.BatchCooking,
		ShoppingList:   data.ShoppingList,
		BudgetEstimate: data.BudgetEstimate,
	}
}

// SavedRecipe is a persisted snapshot of one recipe, optionally linked
// to the saved plan it was part of.
type SavedRecipe struct {
	ID        string      `json:"id,omitempty"`
	UserID    string      `json:"user_id"`
	PlanID    string      `json:"plan_id,omitempty"`
	Recipe    plan.Recipe `json:"recipe"`
	CreatedAt time.Time   `json:"created_at,omitempty"`
}

// SavedList is a persisted, named snapshot of a categorized shopping
// list.
type SavedList struct {
	ID           string                      `json:"id,omitempty"`
	UserID       string                      `json:"user_id"`
	Name         string                      `json:"name"`
	ShoppingList []plan.ShoppingListCategory `json:"shopping_list"`
	CreatedAt    time.Time                   `json:"created_at,omitempty"`
	UpdatedAt    time.Time                   `json:"updated_at,omitempty"`
}
