package core

// Currency describes a supported reporting currency. Rate is the value of
// one rupee expressed in this currency (INR itself has rate 1).
type Currency struct {
	Code   string
	Symbol string
	Name   string
	Rate   float64
}

// Currencies is the fixed currency table. INR is the reporting default; the
// rest exist for display-side conversion only.
var Currencies = []Currency{
	{Code: "INR", Symbol: "₹", Name: "Indian Rupee", Rate: 1},
	{Code: "USD", Symbol: "$", Name: "US Dollar", Rate: 0.012},
	{Code: "EUR", Symbol: "€", Name: "Euro", Rate: 0.011},
	{Code: "GBP", Symbol: "£", Name: "British Pound", Rate: 0.0095},
	{Code: "JPY", Symbol: "¥", Name: "Japanese Yen", Rate: 1.8},
	{Code: "AUD", Symbol: "A$", Name: "Australian Dollar", Rate: 0.018},
	{Code: "CAD", Symbol: "C$", Name: "Canadian Dollar", Rate: 0.016},
}

// DefaultCurrency returns the reporting currency (INR).
func DefaultCurrency() Currency {
	return Currencies[0]
}

// CurrencyByCode looks up a currency; unknown codes fall back to INR.
func CurrencyByCode(code string) Currency {
	for _, c := range Currencies {
		if c.Code == code {
			return c
		}
	}
	return DefaultCurrency()
}

// ConvertCurrency converts an amount between two currency codes by routing
// through INR. Unknown codes leave the amount unchanged.
func ConvertCurrency(amount float64, fromCode, toCode string) float64 {
	var from, to *Currency
	for i := range Currencies {
		if Currencies[i].Code == fromCode {
			from = &Currencies[i]
		}
		if Currencies[i].Code == toCode {
			to = &Currencies[i]
		}
	}
	if from == nil || to == nil {
		return amount
	}
	inr := amount / from.Rate
	return inr * to.Rate
}
