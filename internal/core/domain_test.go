package core

import (
	"errors"
	"testing"
)

func validTransaction() Transaction {
	return Transaction{
		ID:          "tx-1",
		Type:        Expense,
		Amount:      Money{Cents: 45000},
		Category:    "food",
		Description: "Groceries",
		Date:        NewDate(2024, 1, 15),
		PaymentMode: "upi",
	}
}

func TestTransactionValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Transaction)
		wantErr error
	}{
		{name: "valid", mutate: func(tx *Transaction) {}},
		{name: "empty payment mode allowed", mutate: func(tx *Transaction) { tx.PaymentMode = "" }},
		{
			name:    "bad type",
			mutate:  func(tx *Transaction) { tx.Type = "transfer" },
			wantErr: ErrInvalidType,
		},
		{
			name:    "zero amount",
			mutate:  func(tx *Transaction) { tx.Amount = Money{} },
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "blank description",
			mutate:  func(tx *Transaction) { tx.Description = "   " },
			wantErr: ErrEmptyDescription,
		},
		{
			name:    "unknown category",
			mutate:  func(tx *Transaction) { tx.Category = "vacation" },
			wantErr: ErrUnknownCategory,
		},
		{
			name:    "income category on expense",
			mutate:  func(tx *Transaction) { tx.Category = "salary" },
			wantErr: ErrCategoryType,
		},
		{
			name:    "unknown payment mode",
			mutate:  func(tx *Transaction) { tx.PaymentMode = "cheque" },
			wantErr: ErrInvalidPaymentMode,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := validTransaction()
			tt.mutate(&tx)
			err := tx.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestTransactionValidateRejectsZeroDate(t *testing.T) {
	tx := validTransaction()
	tx.Date = Date{}
	if err := tx.Validate(); err == nil {
		t.Error("expected error for zero date")
	}
}

func TestTransactionValidateRejectsLongDescription(t *testing.T) {
	tx := validTransaction()
	for len(tx.Description) <= 200 {
		tx.Description += "x"
	}
	if err := tx.Validate(); err == nil {
		t.Error("expected error for description over 200 characters")
	}
}

func TestDateISO(t *testing.T) {
	d := NewDate(2024, 2, 5)
	if got := d.ISO(); got != "2024-02-05" {
		t.Errorf("ISO() = %q, want 2024-02-05", got)
	}
	back, err := ParseISO(d.ISO())
	if err != nil {
		t.Fatalf("ParseISO error: %v", err)
	}
	if !back.Equal(d.Time) {
		t.Errorf("round trip mismatch: %v vs %v", back, d)
	}
	if _, err := ParseISO("05/02/2024"); err == nil {
		t.Error("expected error for non-ISO format")
	}
}

func TestTypeTitle(t *testing.T) {
	if got := Income.Title(); got != "Income" {
		t.Errorf("Income.Title() = %q", got)
	}
	if got := Expense.Title(); got != "Expense" {
		t.Errorf("Expense.Title() = %q", got)
	}
}

func TestPaymentModeName(t *testing.T) {
	if got := PaymentModeName("upi"); got != "UPI" {
		t.Errorf("PaymentModeName(upi) = %q", got)
	}
	if got := PaymentModeName(""); got != "Not specified" {
		t.Errorf("PaymentModeName(empty) = %q", got)
	}
	if got := PaymentModeName("barter"); got != "Not specified" {
		t.Errorf("PaymentModeName(unknown) = %q", got)
	}
}

func TestCategoryTablesAreDisjoint(t *testing.T) {
	seen := make(map[string]TransactionType)
	for _, c := range DefaultCategories {
		if prev, ok := seen[c.ID]; ok {
			t.Errorf("category id %q appears for both %s and %s", c.ID, prev, c.Type)
		}
		seen[c.ID] = c.Type
	}
	if len(CategoriesByType(Income)) != 4 {
		t.Errorf("expected 4 income categories, got %d", len(CategoriesByType(Income)))
	}
	if len(CategoriesByType(Expense)) != 9 {
		t.Errorf("expected 9 expense categories, got %d", len(CategoriesByType(Expense)))
	}
}

func TestCategoryLookups(t *testing.T) {
	if got := CategoryName("food"); got != "Food & Dining" {
		t.Errorf("CategoryName(food) = %q", got)
	}
	if got := CategoryName("mystery"); got != "mystery" {
		t.Errorf("CategoryName(unknown) = %q, want raw id", got)
	}
	if got := CategoryColor("mystery"); got != fallbackColor {
		t.Errorf("CategoryColor(unknown) = %q, want fallback", got)
	}
}
