package csv

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vsinha/sourcing/pkg/domain/entities"
)

var numberPattern = regexp.MustCompile(`\d+(\.\d+)?`)

// placeholder strings that mean "no value" in supplier exports
var emptyValues = map[string]bool{
	"": true, "n/a": true, "na": true, "nan": true, "none": true, "unknown": true,
}

// ParseMoney parses a money string, tolerating $ signs, thousands separators
// and percent signs. The second return is false when the string carries no
// usable value.
func ParseMoney(s string) (decimal.Decimal, bool) {
	cleaned := strings.ToLower(strings.TrimSpace(s))
	cleaned = strings.NewReplacer("$", "", ",", "", "%", "", " ", "").Replace(cleaned)
	if emptyValues[cleaned] {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// ParseLeadTime normalizes supplier lead time text to days. "stock" means
// zero days, "8 weeks" means 56, a bare number is taken as days, and
// unparseable or placeholder text yields an unknown lead time.
func ParseLeadTime(s string) entities.LeadTime {
	cleaned := strings.ToLower(strings.TrimSpace(s))
	if emptyValues[cleaned] {
		return entities.UnknownLeadTime()
	}
	if cleaned == "stock" {
		return entities.KnownLeadTime(0)
	}
	match := numberPattern.FindString(cleaned)
	if match == "" {
		return entities.UnknownLeadTime()
	}
	num, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return entities.UnknownLeadTime()
	}
	if strings.Contains(cleaned, "week") {
		num *= 7
	}
	return entities.KnownLeadTime(int(num + 0.5))
}

// ParsePriceBreaks parses a qty:price ladder like "1:0.4372;10:0.3952".
// Entries the cost optimizer would reject (bad quantity, negative or missing
// price) fail loudly here since the file is under the caller's control.
func ParsePriceBreaks(s string) ([]entities.PriceBreak, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, nil
	}

	var pbs []entities.PriceBreak
	for _, entry := range strings.Split(trimmed, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("malformed price break %q, want qty:price", entry)
		}
		qty, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
		if err != nil || qty <= 0 {
			return nil, fmt.Errorf("invalid price break quantity %q", parts[0])
		}
		price, ok := ParseMoney(parts[1])
		if !ok || price.Sign() < 0 {
			return nil, fmt.Errorf("invalid price break price %q", parts[1])
		}
		pbs = append(pbs, entities.PriceBreak{Qty: entities.Quantity(qty), Price: price})
	}
	return pbs, nil
}

// parseBool accepts the usual CSV spellings of a boolean flag
func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "y":
		return true
	default:
		return false
	}
}

// normalizeColumn reduces a header cell to a comparable key
func normalizeColumn(name string) string {
	return strings.NewReplacer(" ", "", "_", "", ".", "").Replace(strings.ToLower(strings.TrimSpace(name)))
}
