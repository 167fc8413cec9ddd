// Package charts renders dashboard chart images (PNG) from aggregation
// engine outputs.
package charts

import (
	"errors"
	"io"

	"budgetly/internal/budget"
	"budgetly/internal/core"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrNoData is returned when there is nothing to plot.
var ErrNoData = errors.New("no data to chart")

// topCategoryCount bounds how many category slices the donut shows.
const topCategoryCount = 8

var (
	incomeFill  = drawing.Color{R: 76, G: 175, B: 130, A: 255}
	expenseFill = drawing.Color{R: 232, G: 130, B: 95, A: 255}
)

// RenderMonthly draws the monthly income/expense bar chart as a PNG. Bars
// are interleaved per month: one income bar, one expense bar.
func RenderMonthly(w io.Writer, series []budget.MonthlyPoint) error {
	if len(series) == 0 {
		return ErrNoData
	}

	bars := make([]chart.Value, 0, len(series)*2)
	for _, p := range series {
		bars = append(bars, chart.Value{
			Label: p.Month,
			Value: p.Income.Rupees(),
			Style: chart.Style{FillColor: incomeFill, StrokeColor: incomeFill},
		})
		bars = append(bars, chart.Value{
			Label: "",
			Value: p.Expenses.Rupees(),
			Style: chart.Style{FillColor: expenseFill, StrokeColor: expenseFill},
		})
	}

	graph := chart.BarChart{
		Title:    "Monthly Income vs Expenses (Rs)",
		Width:    900,
		Height:   420,
		BarWidth: 40,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 24},
		},
		Bars: bars,
	}
	return graph.Render(chart.PNG, w)
}

// RenderDaily draws the trailing daily trend as income and expense lines.
// A window with no activity at all returns ErrNoData instead of a flat
// zero chart.
func RenderDaily(w io.Writer, series []budget.DailyPoint) error {
	active := false
	for _, p := range series {
		if p.Income.Cents != 0 || p.Expenses.Cents != 0 {
			active = true
			break
		}
	}
	if !active {
		return ErrNoData
	}

	xs := make([]float64, len(series))
	income := make([]float64, len(series))
	expenses := make([]float64, len(series))
	ticks := make([]chart.Tick, 0, len(series)/7+1)
	for i, p := range series {
		xs[i] = float64(i)
		income[i] = p.Income.Rupees()
		expenses[i] = p.Expenses.Rupees()
		if i%7 == 0 || i == len(series)-1 {
			ticks = append(ticks, chart.Tick{Value: float64(i), Label: p.Day})
		}
	}

	graph := chart.Chart{
		Title:  "Daily Activity (Rs)",
		Width:  900,
		Height: 420,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 24},
		},
		XAxis: chart.XAxis{Ticks: ticks},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Income",
				XValues: xs,
				YValues: income,
				Style:   chart.Style{StrokeColor: incomeFill, StrokeWidth: 2},
			},
			chart.ContinuousSeries{
				Name:    "Expenses",
				XValues: xs,
				YValues: expenses,
				Style:   chart.Style{StrokeColor: expenseFill, StrokeWidth: 2},
			},
		},
	}
	return graph.Render(chart.PNG, w)
}

// RenderCategoryDonut draws the top-categories breakdown as a donut, slices
// colored from the fixed category table, ordered by magnitude.
func RenderCategoryDonut(w io.Writer, summary budget.Summary) error {
	top := budget.TopCategoriesByAmount(summary, topCategoryCount)
	if len(top) == 0 {
		return ErrNoData
	}

	values := make([]chart.Value, 0, len(top))
	for _, c := range top {
		fill := hexColor(core.CategoryColor(c.Category))
		values = append(values, chart.Value{
			Label: c.Name,
			Value: c.Amount.Rupees(),
			Style: chart.Style{FillColor: fill, StrokeColor: fill},
		})
	}

	graph := chart.DonutChart{
		Title:  "Spending by Category",
		Width:  520,
		Height: 520,
		Values: values,
	}
	return graph.Render(chart.PNG, w)
}

// hexColor parses "#rrggbb" into a drawing color; malformed input falls back
// to a neutral gray.
func hexColor(s string) drawing.Color {
	if len(s) != 7 || s[0] != '#' {
		return drawing.Color{R: 138, G: 145, B: 156, A: 255}
	}
	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok1 := hexNibble(s[1+i*2])
		lo, ok2 := hexNibble(s[2+i*2])
		if !ok1 || !ok2 {
			return drawing.Color{R: 138, G: 145, B: 156, A: 255}
		}
		rgb[i] = hi<<4 | lo
	}
	return drawing.Color{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
