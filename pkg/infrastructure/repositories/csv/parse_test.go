package csv

import (
	"testing"

	"github.com/vsinha/sourcing/pkg/domain/entities"
)

func TestParseMoney(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
		ok       bool
	}{
		{"0.4372", "0.4372", true},
		{"$1,234.56", "1234.56", true},
		{" $0.10 ", "0.1", true},
		{"25%", "25", true},
		{"", "", false},
		{"N/A", "", false},
		{"none", "", false},
		{"NaN", "", false},
		{"abc", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			d, ok := ParseMoney(tc.input)
			if ok != tc.ok {
				t.Fatalf("ParseMoney(%q) ok=%v, expected %v", tc.input, ok, tc.ok)
			}
			if ok && d.String() != tc.expected {
				t.Errorf("ParseMoney(%q) = %s, expected %s", tc.input, d, tc.expected)
			}
		})
	}
}

func TestParseLeadTime(t *testing.T) {
	testCases := []struct {
		input    string
		expected entities.LeadTime
	}{
		{"stock", entities.KnownLeadTime(0)},
		{"Stock", entities.KnownLeadTime(0)},
		{"8 weeks", entities.KnownLeadTime(56)},
		{"1 week", entities.KnownLeadTime(7)},
		{"2.5 weeks", entities.KnownLeadTime(18)},
		{"42", entities.KnownLeadTime(42)},
		{"42 days", entities.KnownLeadTime(42)},
		{"", entities.UnknownLeadTime()},
		{"N/A", entities.UnknownLeadTime()},
		{"unknown", entities.UnknownLeadTime()},
		{"call for availability", entities.UnknownLeadTime()},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got := ParseLeadTime(tc.input)
			if !got.Equal(tc.expected) {
				t.Errorf("ParseLeadTime(%q) = %v, expected %v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestParsePriceBreaks(t *testing.T) {
	pbs, err := ParsePriceBreaks("1:0.4372; 10:0.3952;100:$0.31")
	if err != nil {
		t.Fatalf("ParsePriceBreaks failed: %v", err)
	}
	if len(pbs) != 3 {
		t.Fatalf("Expected 3 breaks, got %d", len(pbs))
	}
	if pbs[1].Qty != 10 || pbs[1].Price.String() != "0.3952" {
		t.Errorf("Unexpected second break: %+v", pbs[1])
	}
	if pbs[2].Price.String() != "0.31" {
		t.Errorf("Expected dollar sign stripped, got %s", pbs[2].Price)
	}

	if pbs, err := ParsePriceBreaks("  "); err != nil || pbs != nil {
		t.Errorf("Expected empty ladder for blank input, got %v, %v", pbs, err)
	}

	for _, bad := range []string{"0:1.0", "x:1.0", "5:", "5:-1", "5"} {
		if _, err := ParsePriceBreaks(bad); err == nil {
			t.Errorf("Expected error for %q", bad)
		}
	}
}
