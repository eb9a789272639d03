package export

import (
	"encoding/json"
	"fmt"
	"time"

	"smart-meal-planner/internal/plan"
)

// FormatVersion identifies the export envelope layout.
const FormatVersion = "1.0.0"

// Metadata is the header every JSON export carries.
type Metadata struct {
	ExportDate    time.Time `json:"exportDate"`
	FormatVersion string    `json:"formatVersion"`
	Name          string    `json:"name,omitempty"`
}

type planEnvelope struct {
	Metadata    Metadata            `json:"metadata"`
	Preferences *plan.Preferences   `json:"preferences,omitempty"`
	Plan        plan.WeeklyPlanData `json:"plan"`
}

type recipeEnvelope struct {
	Metadata Metadata    `json:"metadata"`
	Recipe   plan.Recipe `json:"recipe"`
}

type recipesEnvelope struct {
	Metadata Metadata      `json:"metadata"`
	Recipes  []plan.Recipe `json:"recipes"`
}

type listEnvelope struct {
	Metadata     Metadata                    `json:"metadata"`
	ShoppingList []plan.ShoppingListCategory `json:"shoppingList"`
}

// PlanJSON wraps a weekly plan (and the preferences it came from) in
// the export envelope. The payload is passed through unchanged.
func PlanJSON(data plan.WeeklyPlanData, prefs *plan.Preferences, name string, now time.Time) ([]byte, error) {
	return marshal(planEnvelope{
		Metadata:    metadata(name, now),
		Preferences: prefs,
		Plan:        data,
	})
}

// RecipeJSON wraps a single recipe in the export envelope.
func RecipeJSON(rec plan.Recipe, now time.Time) ([]byte, error) {
	return marshal(recipeEnvelope{Metadata: metadata(rec.Name, now), Recipe: rec})
}

// RecipesJSON wraps a recipe collection in the export envelope.
func RecipesJSON(recipes []plan.Recipe, name string, now time.Time) ([]byte, error) {
	return marshal(recipesEnvelope{Metadata: metadata(name, now), Recipes: recipes})
}

// ListJSON wraps a shopping list in the export envelope.
func ListJSON(list []plan.ShoppingListCategory, name string, now time.Time) ([]byte, error) {
	return marshal(listEnvelope{Metadata: metadata(name, now), ShoppingList: list})
}

func metadata(name string, now time.Time) Metadata {
	return Metadata{ExportDate: now.UTC(), FormatVersion: FormatVersion, Name: name}
}

func marshal(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal export: %w", err)
	}
	return data, nil
}
