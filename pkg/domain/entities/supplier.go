package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PriceBreak represents one row of a supplier's quantity price ladder
type PriceBreak struct {
	Qty   Quantity
	Price decimal.Decimal
}

// LeadTime represents a supplier lead time in days. Known=false means the
// supplier reported no usable lead time; comparisons treat it as infinite.
type LeadTime struct {
	Days  int
	Known bool
}

// KnownLeadTime creates a lead time of the given number of days
func KnownLeadTime(days int) LeadTime {
	return LeadTime{Days: days, Known: true}
}

// UnknownLeadTime creates an unknown (effectively infinite) lead time
func UnknownLeadTime() LeadTime {
	return LeadTime{}
}

// Before reports whether lt sorts strictly ahead of other. Unknown lead
// times sort after every known lead time.
func (lt LeadTime) Before(other LeadTime) bool {
	if !lt.Known {
		return false
	}
	if !other.Known {
		return true
	}
	return lt.Days < other.Days
}

// Equal reports whether two lead times compare as the same value
func (lt LeadTime) Equal(other LeadTime) bool {
	if lt.Known != other.Known {
		return false
	}
	return !lt.Known || lt.Days == other.Days
}

func (lt LeadTime) String() string {
	if !lt.Known {
		return "N/A"
	}
	return fmt.Sprintf("%d", lt.Days)
}

// LifecycleStatus represents the lifecycle state of a supplier offer
type LifecycleStatus int

const (
	Active LifecycleStatus = iota
	EOL
	Discontinued
)

// String method for LifecycleStatus enum
func (s LifecycleStatus) String() string {
	switch s {
	case Active:
		return "Active"
	case EOL:
		return "EOL"
	case Discontinued:
		return "DISC"
	default:
		return "Unknown"
	}
}

// SupplierOption represents one standardized offer for one part from one
// supplier, as delivered by the (external) data acquisition layer
type SupplierOption struct {
	Source                 string
	SourcePartNumber       string
	ManufacturerPartNumber string
	Manufacturer           string
	Description            string
	Stock                  Quantity
	LeadTime               LeadTime
	MinOrderQty            Quantity
	PriceBreaks            []PriceBreak
	CountryOfOrigin        string
	EndOfLife              bool
	Discontinued           bool
	DatasheetURL           string
}

// Lifecycle returns the lifecycle status label for the offer. EOL wins over
// Discontinued when a supplier flags both.
func (o SupplierOption) Lifecycle() LifecycleStatus {
	if o.EndOfLife {
		return EOL
	}
	if o.Discontinued {
		return Discontinued
	}
	return Active
}
