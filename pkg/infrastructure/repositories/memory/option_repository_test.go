package memory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/vsinha/sourcing/pkg/domain/entities"
)

func TestOptionRepository_PreservesInsertionOrder(t *testing.T) {
	repo := NewOptionRepository(2)
	ctx := context.Background()

	repo.AddOptions("PN-1",
		entities.SupplierOption{Source: "Mouser"},
		entities.SupplierOption{Source: "Nexar"},
	)
	repo.AddOptions("PN-1", entities.SupplierOption{Source: "DigiKey"})

	options, err := repo.GetOptions(ctx, "PN-1")
	if err != nil {
		t.Fatalf("GetOptions failed: %v", err)
	}
	expected := []string{"Mouser", "Nexar", "DigiKey"}
	if len(options) != len(expected) {
		t.Fatalf("Expected %d options, got %d", len(expected), len(options))
	}
	for i, src := range expected {
		if options[i].Source != src {
			t.Errorf("Position %d: expected %q, got %q", i, src, options[i].Source)
		}
	}
}

func TestOptionRepository_UnknownPartYieldsEmpty(t *testing.T) {
	repo := NewOptionRepository(0)

	options, err := repo.GetOptions(context.Background(), "NOPE")
	if err != nil {
		t.Fatalf("Expected no error for unknown part, got %v", err)
	}
	if len(options) != 0 {
		t.Errorf("Expected empty options, got %d", len(options))
	}
}

func TestOptionRepository_GetOptionsReturnsCopy(t *testing.T) {
	repo := NewOptionRepository(1)
	repo.AddOptions("PN-1", entities.SupplierOption{Source: "Mouser", Stock: 10})

	first, _ := repo.GetOptions(context.Background(), "PN-1")
	first[0].Stock = 9999

	second, _ := repo.GetOptions(context.Background(), "PN-1")
	if second[0].Stock != 10 {
		t.Errorf("Repository contents mutated through returned slice: stock %d", second[0].Stock)
	}
}

func TestOptionRepository_LoadOptions(t *testing.T) {
	repo := NewOptionRepository(2)

	err := repo.LoadOptions(map[entities.PartNumber][]entities.SupplierOption{
		"A": {{Source: "Mouser", PriceBreaks: []entities.PriceBreak{{Qty: 1, Price: decimal.NewFromFloat(0.1)}}}},
		"B": {{Source: "Nexar"}},
	})
	if err != nil {
		t.Fatalf("LoadOptions failed: %v", err)
	}

	parts, err := repo.GetPartNumbers(context.Background())
	if err != nil {
		t.Fatalf("GetPartNumbers failed: %v", err)
	}
	if len(parts) != 2 {
		t.Errorf("Expected 2 parts, got %d", len(parts))
	}
}
