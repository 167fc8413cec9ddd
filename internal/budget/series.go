package budget

import (
	"sort"
	"time"

	"budgetly/internal/core"
)

// MonthlyPoint is one calendar month of aggregated activity.
type MonthlyPoint struct {
	Month    string // display label, e.g. "Jan 2024"
	Income   core.Money
	Expenses core.Money
	Balance  core.Money
}

// DailyPoint is one calendar day of aggregated activity. Balance covers that
// single day only.
type DailyPoint struct {
	Day      string // display label, e.g. "Jan 5"
	Date     core.Date
	Income   core.Money
	Expenses core.Money
	Balance  core.Money
}

// monthsRetained bounds the monthly series to the most recent months present.
const monthsRetained = 6

type yearMonth struct {
	year  int
	month time.Month
}

// MonthlySeries groups transactions by calendar month, ascending, truncated
// to the last 6 months present in the set. Groups are keyed by (year, month)
// so ordering never depends on parsing a display label back into a date.
func MonthlySeries(transactions []core.Transaction) []MonthlyPoint {
	buckets := make(map[yearMonth]*MonthlyPoint)
	for _, t := range transactions {
		key := yearMonth{year: t.Date.Year(), month: t.Date.Month()}
		p, ok := buckets[key]
		if !ok {
			p = &MonthlyPoint{Month: time.Date(key.year, key.month, 1, 0, 0, 0, 0, time.UTC).Format("Jan 2006")}
			buckets[key] = p
		}
		switch t.Type {
		case core.Income:
			p.Income = p.Income.Add(t.Amount)
		case core.Expense:
			p.Expenses = p.Expenses.Add(t.Amount)
		}
	}

	keys := make([]yearMonth, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})
	if len(keys) > monthsRetained {
		keys = keys[len(keys)-monthsRetained:]
	}

	out := make([]MonthlyPoint, 0, len(keys))
	for _, k := range keys {
		p := buckets[k]
		p.Balance = p.Income.Sub(p.Expenses)
		out = append(out, *p)
	}
	return out
}

// DailySeries produces exactly windowDays entries for the trailing window
// ending today (inclusive), one per calendar day, zero-filled for days with
// no matching transactions. Today is passed in so the window is testable.
func DailySeries(transactions []core.Transaction, windowDays int, today core.Date) []DailyPoint {
	if windowDays <= 0 {
		return nil
	}
	byDay := make(map[string]*DailyPoint, windowDays)
	out := make([]DailyPoint, windowDays)
	for i := 0; i < windowDays; i++ {
		d := core.Date{Time: today.AddDate(0, 0, i-windowDays+1)}
		out[i] = DailyPoint{Day: d.Format("Jan 2"), Date: d}
		byDay[d.ISO()] = &out[i]
	}
	for _, t := range transactions {
		p, ok := byDay[t.Date.ISO()]
		if !ok {
			continue
		}
		switch t.Type {
		case core.Income:
			p.Income = p.Income.Add(t.Amount)
		case core.Expense:
			p.Expenses = p.Expenses.Add(t.Amount)
		}
	}
	for i := range out {
		out[i].Balance = out[i].Income.Sub(out[i].Expenses)
	}
	return out
}
