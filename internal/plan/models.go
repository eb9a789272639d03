package plan

// Weekdays is the fixed day order every weekly plan must follow.
var Weekdays = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// NoEquipmentSentinel replaces an empty equipment list so the generation
// step never sees an empty constraint.
const NoEquipmentSentinel = "No cooking equipment available"

// Preferences is the validated user input a generation request is built from.
// It is treated as immutable once submitted.
type Preferences struct {
	Location     string   `json:"location" validate:"required"`
	Budget       string   `json:"budget" validate:"required,numeric"`
	Currency     string   `json:"currency" validate:"required,len=3"`
	PeopleCount  int      `json:"peopleCount" validate:"required,gt=0"`
	Equipment    []string `json:"equipment"`
	Restrictions string   `json:"restrictions"`
	Cuisine      string   `json:"cuisine"`
	Context      string   `json:"context"`
}

// EquipmentOrSentinel returns the equipment list, substituting the
// no-equipment sentinel when the list is empty.
func (p Preferences) EquipmentOrSentinel() []string {
	if len(p.Equipment) == 0 {
		return []string{NoEquipmentSentinel}
	}
	return p.Equipment
}

// Ingredient is a single shopping list entry.
type Ingredient struct {
	Item     string `json:"item"`
	Quantity string `json:"quantity"`
	Notes    string `json:"notes,omitempty"`
}

// Recipe is a dinner recipe referenced by exactly one day of the week plan.
type Recipe struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	PrepTime     string   `json:"prepTime"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	Tips         string   `json:"tips,omitempty"`
}

// DayPlan holds the three meals of one weekday. DinnerRecipeID must
// resolve to a Recipe within the same WeeklyPlanData.
type DayPlan struct {
	Day            string `json:"day"`
	Breakfast      string `json:"breakfast"`
	Lunch          string `json:"lunch"`
	Dinner         string `json:"dinner"`
	DinnerRecipeID string `json:"dinnerRecipeId"`
}

// ShoppingListCategory groups ingredients by shopping venue.
type ShoppingListCategory struct {
	Location string       `json:"location"`
	Items    []Ingredient `json:"items"`
}

// BatchCookingStep is one preparatory cooking action done once and
// reused across the week.
type BatchCookingStep struct {
	Step         int    `json:"step"`
	Instruction  string `json:"instruction"`
	TimeEstimate string `json:"timeEstimate"`
}

// WeeklyPlanData is the aggregate returned by a full-week generation:
// one DayPlan per weekday in fixed order, the shopping list, batch
// cooking steps, one dinner recipe per day and a budget estimate.
type WeeklyPlanData struct {
	WeekPlan       []DayPlan              `json:"weekPlan"`
	ShoppingList   []ShoppingListCategory `json:"shoppingList"`
	BatchCooking   []BatchCookingStep     `json:"batchCooking"`
	Recipes        []Recipe               `json:"recipes"`
	BudgetEstimate string                 `json:"budgetEstimate"`
}

// DayRegeneration is the single-day variant of a generation response.
type DayRegeneration struct {
	DayPlan DayPlan `json:"dayPlan"`
	Recipe  Recipe  `json:"recipe"`
}

// RecipeByID looks up a recipe in the plan's collection.
func (w WeeklyPlanData) RecipeByID(id string) (Recipe, bool) {
	for _, r := range w.Recipes {
		if r.ID == id {
			return r, true
		}
	}
	return Recipe{}, false
}

// IsWeekday reports whether day is one of the seven weekday labels.
func IsWeekday(day string) bool {
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}
