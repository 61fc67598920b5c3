package services

import (
	"testing"

	domain "github.com/fastbite/api/internal/domain"
)

func pizzaFixture() domain.Product {
	return domain.Product{
		ID:    "7",
		Name:  "Pizza",
		Price: 8990,
		Ingredients: []domain.IngredientAssociation{
			{IngredientID: "1", IngredientName: "Mushrooms", ExtraCost: 600, IsActive: true},
			{IngredientID: "2", IngredientName: "Olives", ExtraCost: 400, IsActive: true},
			{IngredientID: "3", IngredientName: "Tomato", DefaultIncluded: true, IsActive: true},
		},
	}
}

func TestPricingEngineQuoteSumsSelectedExtras(t *testing.T) {
	quote := NewPricingEngine().Quote(pizzaFixture(), []string{"1", "2"})

	if quote.BasePrice != 8990 {
		t.Fatalf("expected base price 8990, got %d", quote.BasePrice)
	}
	if quote.ExtrasTotal != 1000 {
		t.Fatalf("expected extras total 1000, got %d", quote.ExtrasTotal)
	}
	if quote.Total != 9990 {
		t.Fatalf("expected total 9990, got %d", quote.Total)
	}
	if len(quote.Extras) != 2 {
		t.Fatalf("expected 2 extra charges, got %d", len(quote.Extras))
	}
}

func TestPricingEngineQuoteDeduplicatesIDs(t *testing.T) {
	quote := NewPricingEngine().Quote(pizzaFixture(), []string{"1", "1", "", "1"})

	if quote.ExtrasTotal != 600 {
		t.Fatalf("duplicate ids must charge once, got %d", quote.ExtrasTotal)
	}
	if len(quote.ExtraIDs) != 1 || quote.ExtraIDs[0] != "1" {
		t.Fatalf("expected single deduplicated id, got %v", quote.ExtraIDs)
	}
}

func TestPricingEngineQuoteUnknownIDEchoedWithZeroCharge(t *testing.T) {
	quote := NewPricingEngine().Quote(pizzaFixture(), []string{"99"})

	if quote.Total != 8990 {
		t.Fatalf("unknown id must not change the total, got %d", quote.Total)
	}
	if len(quote.Extras) != 1 {
		t.Fatalf("expected the unknown id echoed, got %d charges", len(quote.Extras))
	}
	charge := quote.Extras[0]
	if charge.IngredientName != "Extra" || charge.UnitPrice != 0 {
		t.Fatalf("unexpected unknown charge %+v", charge)
	}
}

func TestPricingEngineQuoteNoExtras(t *testing.T) {
	quote := NewPricingEngine().Quote(pizzaFixture(), nil)

	if quote.Total != quote.BasePrice {
		t.Fatalf("expected total to equal base price, got %d", quote.Total)
	}
	if quote.ExtraIDs == nil {
		t.Fatalf("expected empty, non-nil extra ids")
	}
}
