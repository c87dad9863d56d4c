package repositories

import (
	"context"

	"github.com/vsinha/sourcing/pkg/domain/entities"
)

// OptionRepository provides access to standardized supplier offers keyed by
// part number. The acquisition layer (API clients, file imports) populates
// it; the decision engine only reads. An unknown part yields an empty list,
// not an error.
type OptionRepository interface {
	// GetOptions returns the supplier options for a part in their original
	// supplier-result order
	GetOptions(ctx context.Context, partNumber entities.PartNumber) ([]entities.SupplierOption, error)

	// GetPartNumbers returns all part numbers with at least one option
	GetPartNumbers(ctx context.Context) ([]entities.PartNumber, error)
}
