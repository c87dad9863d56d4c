package services

import "testing"

func TestRate_Defaults(t *testing.T) {
	resolver := NewTariffResolver()

	testCases := []struct {
		coo      string
		expected float64
	}{
		{"China", 0.25},
		{"Shenzhen, China", 0.25},
		{"CN", 0.25},
		{"Taiwan", 0.0},
		{"TW", 0.0},
		{"Germany", 0.035},
		{"Unknown", 0.035},
		{"", 0.035},
	}

	for _, tc := range testCases {
		if got := resolver.Rate(tc.coo, nil); got != tc.expected {
			t.Errorf("Rate(%q) = %g, expected %g", tc.coo, got, tc.expected)
		}
	}
}

func TestRate_CustomOverrides(t *testing.T) {
	resolver := NewTariffResolver()

	custom := []CustomTariff{
		{Country: "China", Rate: 0.60},
		{Country: "Vietnam", Rate: 0.10},
	}

	if got := resolver.Rate("China", custom); got != 0.60 {
		t.Errorf("Expected custom China rate 0.60, got %g", got)
	}
	if got := resolver.Rate("vietnam", custom); got != 0.10 {
		t.Errorf("Expected custom Vietnam rate 0.10, got %g", got)
	}
	// Unmatched countries fall through to defaults
	if got := resolver.Rate("Japan", custom); got != 0.035 {
		t.Errorf("Expected baseline rate for Japan, got %g", got)
	}
}

func TestRate_CustomOrderDecidesTieBreak(t *testing.T) {
	resolver := NewTariffResolver()

	first := []CustomTariff{
		{Country: "Korea", Rate: 0.05},
		{Country: "South Korea", Rate: 0.15},
	}
	if got := resolver.Rate("South Korea", first); got != 0.05 {
		t.Errorf("Expected first matching entry (0.05), got %g", got)
	}

	reversed := []CustomTariff{
		{Country: "South Korea", Rate: 0.15},
		{Country: "Korea", Rate: 0.05},
	}
	if got := resolver.Rate("South Korea", reversed); got != 0.15 {
		t.Errorf("Expected first matching entry (0.15), got %g", got)
	}
}

func TestRate_EmptyCustomCountryIgnored(t *testing.T) {
	resolver := NewTariffResolver()

	custom := []CustomTariff{{Country: "", Rate: 0.99}}
	if got := resolver.Rate("Germany", custom); got != 0.035 {
		t.Errorf("Empty custom country must not match everything, got %g", got)
	}
}
