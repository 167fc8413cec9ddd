// Package budget contains the aggregation engine: pure functions that turn a
// transaction list into summary figures and time-bucketed series. Every call
// recomputes from its input; nothing here holds state.
package budget

import "budgetly/internal/core"

// CategoryAmount is an amount aggregated under one category id.
type CategoryAmount struct {
	Category string
	Name     string
	Amount   core.Money
}

// Summary holds the derived aggregate figures for a transaction set.
//
// CategorySummary buckets by category id only, so income and expense amounts
// for the same id would merge. The default tables keep the two id sets
// disjoint; reusing an id across types would silently mix totals.
type Summary struct {
	TotalIncome     core.Money
	TotalExpenses   core.Money
	Balance         core.Money
	CategorySummary map[string]core.Money
	// CategoryOrder records first-seen order of category ids so consumers
	// that truncate by insertion order are deterministic.
	CategoryOrder []string
}

// Compute derives a Summary from a transaction list. Input order is
// irrelevant for the totals; it determines CategoryOrder. An empty input
// yields an all-zero summary with an empty map.
func Compute(transactions []core.Transaction) Summary {
	s := Summary{CategorySummary: make(map[string]core.Money)}
	for _, t := range transactions {
		switch t.Type {
		case core.Income:
			s.TotalIncome = s.TotalIncome.Add(t.Amount)
		case core.Expense:
			s.TotalExpenses = s.TotalExpenses.Add(t.Amount)
		}
		if _, seen := s.CategorySummary[t.Category]; !seen {
			s.CategoryOrder = append(s.CategoryOrder, t.Category)
		}
		s.CategorySummary[t.Category] = s.CategorySummary[t.Category].Add(t.Amount)
	}
	s.Balance = s.TotalIncome.Sub(s.TotalExpenses)
	return s
}
