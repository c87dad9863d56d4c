package entities

import "fmt"

// PartNumber represents a unique part identifier
type PartNumber string

// Quantity represents an integer quantity value for discrete component units
type Quantity int64

// BOMLine represents a single line in an uploaded Bill of Materials
type BOMLine struct {
	PartNumber   PartNumber
	Manufacturer string
	Description  string
	QtyPerUnit   float64
}

// NewBOMLine creates a validated BOMLine
func NewBOMLine(partNumber PartNumber, manufacturer, description string, qtyPerUnit float64) (*BOMLine, error) {
	if string(partNumber) == "" {
		return nil, fmt.Errorf("part number cannot be empty")
	}
	if qtyPerUnit <= 0 {
		return nil, fmt.Errorf("quantity per unit must be positive, got %g", qtyPerUnit)
	}

	return &BOMLine{
		PartNumber:   partNumber,
		Manufacturer: manufacturer,
		Description:  description,
		QtyPerUnit:   qtyPerUnit,
	}, nil
}
