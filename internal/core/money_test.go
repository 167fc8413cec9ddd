package core

import "testing"

func TestParseDecimalToCents(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{name: "whole number", input: "42", want: 4200},
		{name: "two decimals dot", input: "12.34", want: 1234},
		{name: "two decimals comma", input: "12,34", want: 1234},
		{name: "one decimal", input: "5.7", want: 570},
		{name: "rounds half up", input: "1.005", want: 101},
		{name: "rounds down below half", input: "1.004", want: 100},
		{name: "leading dot", input: ".50", want: 50},
		{name: "surrounding whitespace", input: "  9.99  ", want: 999},
		{name: "empty", input: "", wantErr: true},
		{name: "zero", input: "0", wantErr: true},
		{name: "zero decimal", input: "0.00", wantErr: true},
		{name: "negative", input: "-5", wantErr: true},
		{name: "explicit plus", input: "+5", wantErr: true},
		{name: "not a number", input: "abc", wantErr: true},
		{name: "two separators", input: "1.2.3", wantErr: true},
		{name: "mixed separators", input: "1,2.3", wantErr: true},
		{name: "overflow", input: "99999999999999999999", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDecimalToCents(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDecimalToCents(%q) = %d, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDecimalToCents(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseDecimalToCents(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatINR(t *testing.T) {
	tests := []struct {
		name  string
		cents int64
		want  string
	}{
		{name: "zero", cents: 0, want: "₹0"},
		{name: "whole rupees omit fraction", cents: 50000, want: "₹500"},
		{name: "fraction shown", cents: 123456, want: "₹1,234.56"},
		{name: "indian grouping lakh", cents: 12345678, want: "₹1,23,456.78"},
		{name: "indian grouping crore", cents: 1234567800, want: "₹1,23,45,678"},
		{name: "single paisa pads", cents: 101, want: "₹1.01"},
		{name: "negative", cents: -123456, want: "-₹1,234.56"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatINR(tt.cents); got != tt.want {
				t.Errorf("FormatINR(%d) = %q, want %q", tt.cents, got, tt.want)
			}
		})
	}
}

func TestMoneyArithmetic(t *testing.T) {
	a := Money{Cents: 1500}
	b := Money{Cents: 700}
	if got := a.Add(b); got.Cents != 2200 {
		t.Errorf("Add = %d, want 2200", got.Cents)
	}
	if got := b.Sub(a); got.Cents != -800 {
		t.Errorf("Sub = %d, want -800", got.Cents)
	}
	if err := (Money{Cents: -1}).Validate(); err == nil {
		t.Error("expected negative amount to be invalid")
	}
	if err := (Money{Cents: 0}).Validate(); err == nil {
		t.Error("expected zero amount to be invalid")
	}
	if err := (Money{Cents: 1}).Validate(); err != nil {
		t.Errorf("unexpected error for positive amount: %v", err)
	}
}
