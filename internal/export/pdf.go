package export

import (
	"bytes"
	"fmt"
	"time"

	"budgetly/internal/budget"
	"budgetly/internal/core"
)

// Fixed layout constants, A4 portrait in millimeters.
const (
	leftMargin  = 14.0
	topMargin   = 20.0
	pageBreakY  = 268.0
	rowHeight   = 7.0
	footerY     = 285.0
	brandName   = "Budgetly"
	brandTag    = "Personal Budget Tracker"
	maxCategory = 12
	maxDesc     = 22
	maxMode     = 8
)

// Column x offsets and widths for the transaction table.
var pdfCols = []struct {
	title string
	x     float64
	width float64
}{
	{"Date", leftMargin, 24},
	{"Type", leftMargin + 24, 20},
	{"Category", leftMargin + 44, 32},
	{"Description", leftMargin + 76, 56},
	{"Payment", leftMargin + 132, 22},
	{"Amount (Rs)", leftMargin + 154, 28},
}

var (
	incomeColor  = [3]int{46, 125, 50}
	expenseColor = [3]int{198, 40, 40}
	mutedColor   = [3]int{110, 110, 110}
	inkColor     = [3]int{35, 35, 35}
	stripeColor  = [3]int{246, 246, 248}
	panelColor   = [3]int{240, 243, 246}
)

// BuildPDFReport renders the transaction list and summary into a paginated
// PDF document. The layout is deterministic: header band, summary panel,
// striped transaction table that breaks across pages without losing or
// duplicating rows, and a footer plus diagonal watermark on every page.
func BuildPDFReport(transactions []core.Transaction, summary budget.Summary) ([]byte, error) {
	return buildPDFReportOn(newPDFSurface(brandName+" Budget Report"), transactions, summary, time.Now())
}

func buildPDFReportOn(s Surface, transactions []core.Transaction, summary budget.Summary, now time.Time) ([]byte, error) {
	s.AddPage()
	page := 1

	y := drawHeader(s, len(transactions), now)
	y = drawSummaryPanel(s, summary, y)

	y += 6
	y = drawTableHeader(s, y)

	for i, t := range transactions {
		if y > pageBreakY {
			drawFooter(s, page, now)
			drawWatermark(s)
			s.AddPage()
			page++
			y = drawTableHeader(s, topMargin)
		}
		drawRow(s, t, i, y)
		y += rowHeight
	}

	drawFooter(s, page, now)
	drawWatermark(s)

	var buf bytes.Buffer
	if err := s.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func drawHeader(s Surface, txCount int, now time.Time) float64 {
	s.SetTextColor(inkColor[0], inkColor[1], inkColor[2])
	s.SetFont("B", 20)
	s.Text(leftMargin, topMargin, brandName)

	s.SetFont("", 10)
	s.SetTextColor(mutedColor[0], mutedColor[1], mutedColor[2])
	s.Text(leftMargin, topMargin+6, brandTag)

	s.SetFont("B", 14)
	s.SetTextColor(inkColor[0], inkColor[1], inkColor[2])
	s.Text(leftMargin, topMargin+16, "Budget Report")

	s.SetFont("", 9)
	s.SetTextColor(mutedColor[0], mutedColor[1], mutedColor[2])
	s.Text(leftMargin, topMargin+22,
		fmt.Sprintf("Generated %s  |  %d transactions", now.Format("02 Jan 2006"), txCount))

	return topMargin + 28
}

func drawSummaryPanel(s Surface, summary budget.Summary, y float64) float64 {
	const panelH = 22.0
	s.SetFillColor(panelColor[0], panelColor[1], panelColor[2])
	s.FillRect(leftMargin, y, 182, panelH)

	labels := []struct {
		name  string
		value core.Money
		color [3]int
	}{
		{"Total Income", summary.TotalIncome, incomeColor},
		{"Total Expenses", summary.TotalExpenses, expenseColor},
		{"Balance", summary.Balance, balanceColor(summary.Balance)},
	}
	colW := 182.0 / 3
	for i, l := range labels {
		x := leftMargin + 4 + float64(i)*colW
		s.SetFont("", 9)
		s.SetTextColor(mutedColor[0], mutedColor[1], mutedColor[2])
		s.Text(x, y+8, l.name)
		s.SetFont("B", 12)
		s.SetTextColor(l.color[0], l.color[1], l.color[2])
		s.Text(x, y+16, core.FormatINR(l.value.Cents))
	}
	return y + panelH
}

func balanceColor(m core.Money) [3]int {
	if m.Cents < 0 {
		return expenseColor
	}
	return incomeColor
}

func drawTableHeader(s Surface, y float64) float64 {
	s.SetFillColor(235, 237, 240)
	s.FillRect(leftMargin, y, 182, rowHeight)
	s.SetFont("B", 9)
	s.SetTextColor(inkColor[0], inkColor[1], inkColor[2])
	for _, c := range pdfCols {
		s.Text(c.x+1, y+5, c.title)
	}
	return y + rowHeight
}

func drawRow(s Surface, t core.Transaction, index int, y float64) {
	if index%2 == 1 {
		s.SetFillColor(stripeColor[0], stripeColor[1], stripeColor[2])
		s.FillRect(leftMargin, y, 182, rowHeight)
	}

	s.SetFont("", 9)
	s.SetTextColor(inkColor[0], inkColor[1], inkColor[2])
	s.Text(pdfCols[0].x+1, y+5, t.Date.Format("02/01/2006"))

	typeColor := incomeColor
	if t.Type == core.Expense {
		typeColor = expenseColor
	}
	s.SetFont("B", 9)
	s.SetTextColor(typeColor[0], typeColor[1], typeColor[2])
	s.Text(pdfCols[1].x+1, y+5, t.Type.Title())

	s.SetFont("", 9)
	s.SetTextColor(inkColor[0], inkColor[1], inkColor[2])
	s.Text(pdfCols[2].x+1, y+5, truncate(t.Category, maxCategory))
	s.Text(pdfCols[3].x+1, y+5, truncate(t.Description, maxDesc))
	s.Text(pdfCols[4].x+1, y+5, truncate(core.PaymentModeName(t.PaymentMode), maxMode))

	s.SetFont("B", 9)
	s.Text(pdfCols[5].x+1, y+5, fmt.Sprintf("%.2f", t.Amount.Rupees()))
}

func drawFooter(s Surface, page int, now time.Time) {
	s.SetFont("", 8)
	s.SetTextColor(mutedColor[0], mutedColor[1], mutedColor[2])
	s.Text(leftMargin, footerY, brandName+" - "+brandTag)
	s.Text(leftMargin, footerY+4, fmt.Sprintf("(c) %d %s. All rights reserved.", now.Year(), brandName))
	s.Text(leftMargin+168, footerY+4, fmt.Sprintf("Page %d", page))
}

func drawWatermark(s Surface) {
	w, h := s.PageSize()
	s.SetAlpha(0.06)
	s.SetFont("B", 60)
	s.SetTextColor(60, 60, 60)
	s.RotatedText(w/2-45, h/2, brandName, 45)
	s.SetAlpha(1)
}

// truncate shortens s to max characters, appending an ellipsis when cut.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}
