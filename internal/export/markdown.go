package export

import (
	"fmt"
	"strings"
	"time"

	"smart-meal-planner/internal/plan"
)

// Markdown renders a weekly plan as a Markdown document with fixed
// section order: shopping list, batch cooking, weekly schedule,
// recipes.
func Markdown(data plan.WeeklyPlanData, prefs *plan.Preferences, now time.Time) string {
	var b strings.Builder

	title := "Custom"
	if prefs != nil && prefs.Location != "" {
		title = prefs.Location
	}
	fmt.Fprintf(&b, "# Weekly Meal Plan - %s\n", title)
	fmt.Fprintf(&b, "**Budget:** %s | **Generated:** %s\n\n", data.BudgetEstimate, now.Format("2006-01-02"))

	b.WriteString("## Shopping List\n")
	for _, cat := range data.ShoppingList {
		fmt.Fprintf(&b, "### %s\n", cat.Location)
		for _, item := range cat.Items {
			fmt.Fprintf(&b, "- [ ] %s (%s)\n", item.Item, item.Quantity)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Batch Cooking (Sunday)\n")
	for _, step := range data.BatchCooking {
		fmt.Fprintf(&b, "1. **%s**: %s\n", step.TimeEstimate, step.Instruction)
	}
	b.WriteString("\n")

	b.WriteString("## Weekly Schedule\n")
	for _, day := range data.WeekPlan {
		fmt.Fprintf(&b, "### %s\n", day.Day)
		fmt.Fprintf(&b, "- **Breakfast**: %s\n", day.Breakfast)
		fmt.Fprintf(&b, "- **Lunch**: %s\n", day.Lunch)
		fmt.Fprintf(&b, "- **Dinner**: %s\n", day.Dinner)
	}

	b.WriteString("\n## Recipes\n")
	for _, rec := range data.Recipes {
		fmt.Fprintf(&b, "### %s\n", rec.Name)
		fmt.Fprintf(&b, "*Prep: %s*\n\n", rec.PrepTime)
		b.WriteString("**Ingredients:**\n")
		for _, ing := range rec.Ingredients {
			fmt.Fprintf(&b, "- %s\n", ing)
		}
		b.WriteString("\n**Instructions:**\n")
		for i, inst := range rec.Instructions {
			fmt.Fprintf(&b, "%d. %s\n", i+1, inst)
		}
		if rec.Tips != "" {
			fmt.Fprintf(&b, "\n**Chef's Tip:** %s\n", rec.Tips)
		}
		b.WriteString("\n---\n")
	}

	return b.String()
}
