package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

type (
	TransactionType string

	Date struct {
		time.Time
	}

	// Transaction is a single recorded income or expense event. Transactions
	// are never mutated in place: edits are not supported, only create and
	// delete.
	Transaction struct {
		ID          string
		Type        TransactionType
		Amount      Money
		Category    string // category id, drawn from the fixed table for Type
		Description string
		Date        Date
		PaymentMode string // optional, one of PaymentModes
	}
)

var (
	ErrInvalidType        = errors.New("invalid transaction type")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrEmptyDescription   = errors.New("empty description")
	ErrUnknownCategory    = errors.New("unknown category")
	ErrCategoryType       = errors.New("category does not match transaction type")
	ErrInvalidPaymentMode = errors.New("invalid payment mode")
)

func (t TransactionType) Valid() bool {
	return t == Income || t == Expense
}

// Title returns the capitalized form used in exports ("Income", "Expense").
func (t TransactionType) Title() string {
	s := string(t)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func (d Date) Validate() error {
	if d.IsZero() {
		return errors.New("date cannot be zero")
	}
	return nil
}

// NewDate creates a Date at day precision (midnight UTC).
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to day precision.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), int(t.Month()), t.Day())
}

// ISO returns the date as YYYY-MM-DD, the persisted representation.
func (d Date) ISO() string {
	return d.Format("2006-01-02")
}

// ParseISO parses a YYYY-MM-DD date string.
func ParseISO(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

func (t Transaction) Validate() error {
	if !t.Type.Valid() {
		return ErrInvalidType
	}
	if err := t.Date.Validate(); err != nil {
		return err
	}
	if len(strings.TrimSpace(t.Description)) == 0 {
		return ErrEmptyDescription
	}
	if len(t.Description) > 200 {
		return errors.New("description too long (max 200 characters)")
	}
	if err := t.Amount.Validate(); err != nil {
		return err
	}
	cat, ok := CategoryByID(t.Category)
	if !ok {
		return ErrUnknownCategory
	}
	if cat.Type != t.Type {
		return ErrCategoryType
	}
	if t.PaymentMode != "" && !ValidPaymentMode(t.PaymentMode) {
		return ErrInvalidPaymentMode
	}
	return nil
}

// PaymentMode is an entry of the fixed payment mode enumeration.
type PaymentMode struct {
	ID   string
	Name string
}

// PaymentModes is the fixed set of accepted payment modes.
var PaymentModes = []PaymentMode{
	{ID: "upi", Name: "UPI"},
	{ID: "credit-card", Name: "Credit Card"},
	{ID: "debit-card", Name: "Debit Card"},
	{ID: "netbanking", Name: "Net Banking"},
	{ID: "cash", Name: "Cash"},
	{ID: "wallet", Name: "Digital Wallet"},
}

func ValidPaymentMode(id string) bool {
	for _, m := range PaymentModes {
		if m.ID == id {
			return true
		}
	}
	return false
}

// PaymentModeName resolves a payment mode id to its display name. Unknown or
// empty ids fall through to "Not specified", which is what exports print.
func PaymentModeName(id string) string {
	for _, m := range PaymentModes {
		if m.ID == id {
			return m.Name
		}
	}
	return "Not specified"
}
