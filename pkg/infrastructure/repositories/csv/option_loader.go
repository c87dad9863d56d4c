package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/vsinha/sourcing/pkg/domain/entities"
)

var optionHeader = []string{
	"part_number", "source", "source_part_number", "manufacturer_part_number",
	"manufacturer", "description", "stock", "lead_time", "min_order_qty",
	"price_breaks", "country_of_origin", "end_of_life", "discontinued",
	"datasheet_url",
}

// LoadOptions loads standardized supplier options from a CSV file, keyed by
// BOM part number. Per-part option order follows file order, which the
// engine's tie-breaks depend on.
func (l *Loader) LoadOptions(filename string) (map[entities.PartNumber][]entities.SupplierOption, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open options file %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read options CSV: %w", err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("options CSV must have header and at least one data row")
	}

	if !validateHeader(records[0], optionHeader) {
		return nil, fmt.Errorf("options CSV header mismatch. Expected: %v, Got: %v", optionHeader, records[0])
	}

	byPart := make(map[entities.PartNumber][]entities.SupplierOption)
	for i, record := range records[1:] {
		if len(record) != len(optionHeader) {
			return nil, fmt.Errorf("options CSV row %d: expected %d columns, got %d", i+2, len(optionHeader), len(record))
		}

		pn, option, err := parseOption(record)
		if err != nil {
			return nil, fmt.Errorf("options CSV row %d: %w", i+2, err)
		}

		byPart[pn] = append(byPart[pn], option)
	}

	return byPart, nil
}

func parseOption(record []string) (entities.PartNumber, entities.SupplierOption, error) {
	pn := entities.PartNumber(strings.TrimSpace(record[0]))
	if pn == "" {
		return "", entities.SupplierOption{}, fmt.Errorf("part number cannot be empty")
	}

	stock := int64(0)
	if s := strings.TrimSpace(record[6]); s != "" {
		parsed, err := strconv.ParseInt(s, 10, 64)
		if err != nil || parsed < 0 {
			return "", entities.SupplierOption{}, fmt.Errorf("invalid stock %q", record[6])
		}
		stock = parsed
	}

	moq := int64(1)
	if s := strings.TrimSpace(record[8]); s != "" {
		parsed, err := strconv.ParseInt(s, 10, 64)
		if err != nil || parsed < 1 {
			return "", entities.SupplierOption{}, fmt.Errorf("invalid min order qty %q", record[8])
		}
		moq = parsed
	}

	priceBreaks, err := ParsePriceBreaks(record[9])
	if err != nil {
		return "", entities.SupplierOption{}, err
	}

	return pn, entities.SupplierOption{
		Source:                 strings.TrimSpace(record[1]),
		SourcePartNumber:       strings.TrimSpace(record[2]),
		ManufacturerPartNumber: strings.TrimSpace(record[3]),
		Manufacturer:           strings.TrimSpace(record[4]),
		Description:            strings.TrimSpace(record[5]),
		Stock:                  entities.Quantity(stock),
		LeadTime:               ParseLeadTime(record[7]),
		MinOrderQty:            entities.Quantity(moq),
		PriceBreaks:            priceBreaks,
		CountryOfOrigin:        strings.TrimSpace(record[10]),
		EndOfLife:              parseBool(record[11]),
		Discontinued:           parseBool(record[12]),
		DatasheetURL:           strings.TrimSpace(record[13]),
	}, nil
}

// validateHeader checks that the CSV header matches the expected format
func validateHeader(header, expected []string) bool {
	if len(header) != len(expected) {
		return false
	}
	for i, col := range expected {
		if strings.TrimSpace(strings.ToLower(header[i])) != col {
			return false
		}
	}
	return true
}
