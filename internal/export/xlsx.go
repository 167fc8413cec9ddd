package export

import (
	"fmt"
	"time"

	"budgetly/internal/budget"
	"budgetly/internal/core"

	"github.com/xuri/excelize/v2"
)

const (
	summarySheet      = "Summary"
	transactionsSheet = "Transactions"
)

// Column width hints for the transactions sheet, matching the seven columns.
var colWidths = []float64{8, 12, 10, 20, 30, 15, 15}

// BuildWorkbook renders the transaction list into a two-sheet workbook: a
// "Summary" lead sheet with the aggregate figures and a "Transactions" sheet
// with one row per transaction plus trailing summary rows. An empty input
// still produces a valid workbook with zeroed figures and no data rows.
func BuildWorkbook(transactions []core.Transaction) (*excelize.File, error) {
	return buildWorkbookAt(transactions, time.Now())
}

func buildWorkbookAt(transactions []core.Transaction, now time.Time) (*excelize.File, error) {
	summary := budget.Compute(transactions)

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, fmt.Errorf("rename summary sheet: %w", err)
	}
	if _, err := f.NewSheet(transactionsSheet); err != nil {
		return nil, fmt.Errorf("create transactions sheet: %w", err)
	}

	if err := writeSummarySheet(f, summary, len(transactions), now); err != nil {
		return nil, err
	}
	if err := writeTransactionsSheet(f, transactions, summary); err != nil {
		return nil, err
	}
	return f, nil
}

func writeSummarySheet(f *excelize.File, s budget.Summary, txCount int, now time.Time) error {
	cells := []struct {
		cell  string
		value any
	}{
		{"A1", brandName + " - Budget Report"},
		{"A3", "Generated"},
		{"B3", now.Format("02/01/2006")},
		{"A4", "Transactions"},
		{"B4", txCount},
		{"A6", "Total Income"},
		{"B6", s.TotalIncome.Rupees()},
		{"A7", "Total Expenses"},
		{"B7", s.TotalExpenses.Rupees()},
		{"A8", "Balance"},
		{"B8", s.Balance.Rupees()},
	}
	for _, c := range cells {
		if err := f.SetCellValue(summarySheet, c.cell, c.value); err != nil {
			return fmt.Errorf("write summary cell %s: %w", c.cell, err)
		}
	}
	if err := f.SetColWidth(summarySheet, "A", "A", 20); err != nil {
		return fmt.Errorf("set summary column width: %w", err)
	}
	return f.SetColWidth(summarySheet, "B", "B", 16)
}

func writeTransactionsSheet(f *excelize.File, transactions []core.Transaction, s budget.Summary) error {
	header := []any{"S.No", "Date", "Type", "Category", "Description", "Payment Mode", "Amount (Rs)"}
	if err := setRow(f, 1, header); err != nil {
		return err
	}

	row := 2
	for i, t := range transactions {
		values := []any{
			i + 1,
			t.Date.Format("02/01/2006"),
			t.Type.Title(),
			t.Category,
			t.Description,
			core.PaymentModeName(t.PaymentMode),
			t.Amount.Rupees(),
		}
		if err := setRow(f, row, values); err != nil {
			return err
		}
		row++
	}

	// Blank separator, then the three summary rows keyed in the
	// Description column.
	row++
	summaryRows := []struct {
		label string
		value core.Money
	}{
		{"Total Income", s.TotalIncome},
		{"Total Expenses", s.TotalExpenses},
		{"Balance", s.Balance},
	}
	for _, sr := range summaryRows {
		if err := setRow(f, row, []any{"", "", "", "", sr.label, "", sr.value.Rupees()}); err != nil {
			return err
		}
		row++
	}

	for i, w := range colWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("column name: %w", err)
		}
		if err := f.SetColWidth(transactionsSheet, col, col, w); err != nil {
			return fmt.Errorf("set column width %s: %w", col, err)
		}
	}
	return nil
}

func setRow(f *excelize.File, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("row %d cell name: %w", row, err)
	}
	if err := f.SetSheetRow(transactionsSheet, cell, &values); err != nil {
		return fmt.Errorf("write row %d: %w", row, err)
	}
	return nil
}
