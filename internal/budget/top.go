package budget

import (
	"sort"

	"budgetly/internal/core"
)

// TopCategories returns up to n category entries in first-seen order. The
// trend chart consumes raw insertion-order truncation; it does not want the
// magnitude sort that the breakdown views use.
func TopCategories(s Summary, n int) []CategoryAmount {
	out := make([]CategoryAmount, 0, n)
	for _, id := range s.CategoryOrder {
		if len(out) == n {
			break
		}
		out = append(out, CategoryAmount{
			Category: id,
			Name:     core.CategoryName(id),
			Amount:   s.CategorySummary[id],
		})
	}
	return out
}

// TopCategoriesByAmount returns up to n category entries sorted descending
// by amount. The sort is stable, so ties keep first-seen order.
func TopCategoriesByAmount(s Summary, n int) []CategoryAmount {
	all := make([]CategoryAmount, 0, len(s.CategoryOrder))
	for _, id := range s.CategoryOrder {
		all = append(all, CategoryAmount{
			Category: id,
			Name:     core.CategoryName(id),
			Amount:   s.CategorySummary[id],
		})
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Amount.Cents > all[j].Amount.Cents
	})
	if len(all) > n {
		all = all[:n]
	}
	return all
}
