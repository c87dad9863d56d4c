package memory

import (
	"context"

	"github.com/vsinha/sourcing/pkg/domain/entities"
	"github.com/vsinha/sourcing/pkg/domain/repositories"
)

// OptionRepository provides in-memory supplier option storage. Options are
// kept in insertion order per part, which the decision engine relies on for
// its first-match-wins tie-breaks.
type OptionRepository struct {
	options map[entities.PartNumber][]entities.SupplierOption
	order   []entities.PartNumber
}

// NewOptionRepository creates a new in-memory option repository
func NewOptionRepository(expectedParts int) *OptionRepository {
	return &OptionRepository{
		options: make(map[entities.PartNumber][]entities.SupplierOption, expectedParts),
		order:   make([]entities.PartNumber, 0, expectedParts),
	}
}

// Verify interface compliance
var _ repositories.OptionRepository = (*OptionRepository)(nil)

// AddOptions appends supplier options for a part, preserving order
func (r *OptionRepository) AddOptions(partNumber entities.PartNumber, options ...entities.SupplierOption) {
	if _, exists := r.options[partNumber]; !exists {
		r.order = append(r.order, partNumber)
	}
	r.options[partNumber] = append(r.options[partNumber], options...)
}

// LoadOptions loads a part-keyed option table into the repository
func (r *OptionRepository) LoadOptions(byPart map[entities.PartNumber][]entities.SupplierOption) error {
	for pn, options := range byPart {
		r.AddOptions(pn, options...)
	}
	return nil
}

// GetOptions returns the supplier options for a part in insertion order.
// Unknown parts yield an empty list so evaluation can mark them Not Found.
func (r *OptionRepository) GetOptions(ctx context.Context, partNumber entities.PartNumber) ([]entities.SupplierOption, error) {
	stored, exists := r.options[partNumber]
	if !exists {
		return nil, nil
	}
	options := make([]entities.SupplierOption, len(stored))
	copy(options, stored)
	return options, nil
}

// GetPartNumbers returns all part numbers with options, in first-seen order
func (r *OptionRepository) GetPartNumbers(ctx context.Context) ([]entities.PartNumber, error) {
	parts := make([]entities.PartNumber, len(r.order))
	copy(parts, r.order)
	return parts, nil
}
