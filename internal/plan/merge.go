package plan

// MergeDay splices a regenerated day and its recipe into an existing
// weekly plan. The day whose label matches newDay replaces the old one,
// the other six days keep their order and contents. Any recipe sharing
// the new recipe's id is removed before the new one is appended, so the
// id stays unique. The input plan is never mutated; a fresh aggregate is
// returned, which keeps concurrent per-day merges commutative as long as
// each merge reads the latest held plan.
func MergeDay(current WeeklyPlanData, newDay DayPlan, newRecipe Recipe) WeeklyPlanData {
	merged := WeeklyPlanData{
		WeekPlan:       make([]DayPlan, len(current.WeekPlan)),
		ShoppingList:   current.ShoppingList,
		BatchCooking:   current.BatchCooking,
		Recipes:        make([]Recipe, 0, len(current.Recipes)+1),
		BudgetEstimate: current.BudgetEstimate,
	}

	for i, d := range current.WeekPlan {
		if d.Day == newDay.Day {
			merged.WeekPlan[i] = newDay
		} else {
			merged.WeekPlan[i] = d
		}
	}

	for _, r := range current.Recipes {
		if r.ID != newRecipe.ID {
			merged.Recipes = append(merged.Recipes, r)
		}
	}
	merged.Recipes = append(merged.Recipes, newRecipe)

	return merged
}
