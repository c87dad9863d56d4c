package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/vsinha/sourcing/pkg/domain/entities"
)

// Loader handles loading BOM and supplier option data from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// Recognized spellings for BOM columns, after normalization
var (
	partNumberColumns   = map[string]bool{"partnumber": true, "pn": true, "mpn": true, "partno": true, "partnum": true}
	quantityColumns     = map[string]bool{"quantity": true, "qty": true, "q": true, "amount": true, "qtyperunit": true}
	manufacturerColumns = map[string]bool{"manufacturer": true, "mfg": true, "mfr": true}
	descriptionColumns  = map[string]bool{"description": true, "desc": true, "partdescription": true}
)

// LoadBOM loads BOM lines from a CSV file. Column headers are matched
// case-insensitively against common spellings ("Part Number", "pn", "MPN",
// "Qty", ...); part number and quantity columns are required. Rows with an
// empty part number are dropped, and unparseable quantities default to 1.
func (l *Loader) LoadBOM(filename string) ([]entities.BOMLine, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open BOM file %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read BOM CSV: %w", err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("BOM CSV must have header and at least one data row")
	}

	pnCol, qtyCol, mfgCol, descCol := -1, -1, -1, -1
	for i, name := range records[0] {
		switch key := normalizeColumn(name); {
		case partNumberColumns[key] && pnCol < 0:
			pnCol = i
		case quantityColumns[key] && qtyCol < 0:
			qtyCol = i
		case manufacturerColumns[key] && mfgCol < 0:
			mfgCol = i
		case descriptionColumns[key] && descCol < 0:
			descCol = i
		}
	}
	if pnCol < 0 || qtyCol < 0 {
		return nil, fmt.Errorf("BOM CSV must have 'Part Number' and 'Quantity' columns, got: %v", records[0])
	}

	var lines []entities.BOMLine
	for i, record := range records[1:] {
		pn := strings.TrimSpace(field(record, pnCol))
		if pn == "" {
			continue
		}

		qty, err := strconv.ParseFloat(strings.TrimSpace(field(record, qtyCol)), 64)
		if err != nil || qty <= 0 {
			qty = 1
		}

		line, err := entities.NewBOMLine(
			entities.PartNumber(pn),
			strings.TrimSpace(field(record, mfgCol)),
			strings.TrimSpace(field(record, descCol)),
			qty,
		)
		if err != nil {
			return nil, fmt.Errorf("BOM CSV row %d: %w", i+2, err)
		}
		lines = append(lines, *line)
	}

	return lines, nil
}

// field returns a column value, tolerating short rows and absent columns
func field(record []string, col int) string {
	if col < 0 || col >= len(record) {
		return ""
	}
	return record[col]
}
