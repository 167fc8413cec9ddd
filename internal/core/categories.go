package core

// Category is a fixed classification label scoped to income or expense.
// The table is static and not user-editable; colors feed chart rendering.
type Category struct {
	ID    string
	Name  string
	Type  TransactionType
	Color string // hex, used by the chart renderer
}

// DefaultCategories is the fixed category table. Income and expense
// categories are disjoint sets; Transaction.Validate enforces that a
// transaction's category matches its type.
var DefaultCategories = []Category{
	{ID: "salary", Name: "Salary", Type: Income, Color: "#4caf82"},
	{ID: "freelance", Name: "Freelance", Type: Income, Color: "#5cb88c"},
	{ID: "investment", Name: "Investment", Type: Income, Color: "#6cc096"},
	{ID: "other-income", Name: "Other Income", Type: Income, Color: "#7cc8a0"},

	{ID: "food", Name: "Food & Dining", Type: Expense, Color: "#e8825f"},
	{ID: "transportation", Name: "Transportation", Type: Expense, Color: "#dd8f55"},
	{ID: "housing", Name: "Housing", Type: Expense, Color: "#d39a50"},
	{ID: "utilities", Name: "Utilities", Type: Expense, Color: "#c9a34e"},
	{ID: "entertainment", Name: "Entertainment", Type: Expense, Color: "#b3a352"},
	{ID: "healthcare", Name: "Healthcare", Type: Expense, Color: "#8aa05b"},
	{ID: "shopping", Name: "Shopping", Type: Expense, Color: "#a279d1"},
	{ID: "education", Name: "Education", Type: Expense, Color: "#5b9fc2"},
	{ID: "other-expense", Name: "Other Expenses", Type: Expense, Color: "#c25b9e"},
}

const fallbackColor = "#8a919c"

// CategoryByID looks up a category in the fixed table.
func CategoryByID(id string) (Category, bool) {
	for _, c := range DefaultCategories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// CategoryName resolves a category id to its display name, falling back to
// the raw id for values not in the table.
func CategoryName(id string) string {
	if c, ok := CategoryByID(id); ok {
		return c.Name
	}
	return id
}

// CategoryColor returns the chart color for a category id.
func CategoryColor(id string) string {
	if c, ok := CategoryByID(id); ok {
		return c.Color
	}
	return fallbackColor
}

// CategoriesByType returns the fixed table filtered to one transaction type.
func CategoriesByType(t TransactionType) []Category {
	var out []Category
	for _, c := range DefaultCategories {
		if c.Type == t {
			out = append(out, c)
		}
	}
	return out
}
