package export

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"budgetly/internal/budget"
	"budgetly/internal/core"
)

// fakeSurface records drawing calls so layout decisions can be asserted
// without parsing PDF output.
type fakeSurface struct {
	pages        int
	texts        []string
	rotatedTexts []string
	rects        int
}

func (f *fakeSurface) AddPage()                  { f.pages++ }
func (f *fakeSurface) PageSize() (w, h float64)  { return 210, 297 }
func (f *fakeSurface) SetFont(string, float64)   {}
func (f *fakeSurface) SetTextColor(_, _, _ int)  {}
func (f *fakeSurface) SetFillColor(_, _, _ int)  {}
func (f *fakeSurface) SetAlpha(float64)          {}
func (f *fakeSurface) FillRect(_, _, _, _ float64) {
	f.rects++
}
func (f *fakeSurface) Text(_, _ float64, s string) {
	f.texts = append(f.texts, s)
}
func (f *fakeSurface) RotatedText(_, _ float64, s string, _ float64) {
	f.rotatedTexts = append(f.rotatedTexts, s)
}
func (f *fakeSurface) Output(w io.Writer) error {
	_, err := w.Write([]byte("rendered"))
	return err
}

func reportTransactions(n int) []core.Transaction {
	out := make([]core.Transaction, n)
	for i := range out {
		out[i] = core.Transaction{
			ID:          "tx",
			Type:        core.Expense,
			Amount:      core.Money{Cents: 1000},
			Category:    "food",
			Description: "entry",
			Date:        core.NewDate(2024, 1, 1+i%28),
		}
	}
	return out
}

func (f *fakeSurface) hasText(s string) bool {
	for _, t := range f.texts {
		if strings.Contains(t, s) {
			return true
		}
	}
	return false
}

func TestReportSinglePage(t *testing.T) {
	f := &fakeSurface{}
	tx := reportTransactions(5)
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	data, err := buildPDFReportOn(f, tx, budget.Compute(tx), now)
	if err != nil {
		t.Fatalf("build error: %v", err)
	}
	if !bytes.Equal(data, []byte("rendered")) {
		t.Errorf("unexpected output: %q", data)
	}
	if f.pages != 1 {
		t.Errorf("pages = %d, want 1", f.pages)
	}
	if !f.hasText("Generated 15 Mar 2024") {
		t.Error("missing generated date in header")
	}
	if !f.hasText("5 transactions") {
		t.Error("missing transaction count in header")
	}
	if !f.hasText("Page 1") {
		t.Error("missing page footer")
	}
	if len(f.rotatedTexts) != 1 {
		t.Errorf("watermarks = %d, want 1", len(f.rotatedTexts))
	}
}

func TestReportPaginates(t *testing.T) {
	// The first page holds 27 table rows below the header and summary panel;
	// one more row forces a second page.
	f := &fakeSurface{}
	tx := reportTransactions(28)

	if _, err := buildPDFReportOn(f, tx, budget.Compute(tx), time.Now()); err != nil {
		t.Fatalf("build error: %v", err)
	}
	if f.pages != 2 {
		t.Errorf("pages = %d, want 2", f.pages)
	}
	if !f.hasText("Page 2") {
		t.Error("missing second page footer")
	}
	// Watermark appears on every page.
	if len(f.rotatedTexts) != 2 {
		t.Errorf("watermarks = %d, want 2", len(f.rotatedTexts))
	}
	// Rows are neither lost nor duplicated across the break.
	var amounts int
	for _, s := range f.texts {
		if s == "10.00" {
			amounts++
		}
	}
	if amounts != 28 {
		t.Errorf("rendered %d amount cells, want 28", amounts)
	}
}

func TestReportEmptyInput(t *testing.T) {
	f := &fakeSurface{}
	if _, err := buildPDFReportOn(f, nil, budget.Compute(nil), time.Now()); err != nil {
		t.Fatalf("build error: %v", err)
	}
	if f.pages != 1 {
		t.Errorf("pages = %d, want 1", f.pages)
	}
	if !f.hasText("0 transactions") {
		t.Error("missing zero transaction count")
	}
	if !f.hasText("₹0") {
		t.Error("missing zeroed summary figures")
	}
}

func TestBuildPDFReportProducesPDF(t *testing.T) {
	tx := reportTransactions(3)
	data, err := BuildPDFReport(tx, budget.Compute(tx))
	if err != nil {
		t.Fatalf("BuildPDFReport error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output does not start with %%PDF header")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 12, "short"},
		{"exactly-12ch", 12, "exactly-12ch"},
		{"a rather long description", 10, "a rather l..."},
		{"दैनिक खर्च की सूची", 6, "दैनिक ..."},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}
