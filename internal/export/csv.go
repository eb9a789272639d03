package export

import (
	"strings"

	"smart-meal-planner/internal/plan"
)

// ShoppingListCSV renders a categorized shopping list as CSV with the
// columns Category, Item, Quantity, Notes. Every field is quoted, per
// the export contract, so encoding/csv (which quotes only when forced)
// is not used here.
func ShoppingListCSV(lists []plan.ShoppingListCategory) string {
	var b strings.Builder
	b.WriteString("Category,Item,Quantity,Notes\n")

	for _, cat := range lists {
		for _, item := range cat.Items {
			row := []string{cat.Location, item.Item, item.Quantity, item.Notes}
			for i, field := range row {
				if i > 0 {
					b.WriteByte(',')
				}
				b.WriteString(quoteField(field))
			}
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func quoteField(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
