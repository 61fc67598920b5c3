package services

import (
	domain "github.com/fastbite/api/internal/domain"
)

const unknownExtraName = "Extra"

type pricingEngine struct{}

// NewPricingEngine constructs the deterministic product pricing calculator.
func NewPricingEngine() PricingEngine {
	return pricingEngine{}
}

// Quote prices a product together with the selected billed extras. Each
// distinct extra id charges its association cost once; ids without a matching
// association are echoed back with a zero charge so callers can surface them.
func (pricingEngine) Quote(product domain.Product, extraIDs []string) domain.PriceQuote {
	quote := domain.PriceQuote{
		ProductID: product.ID,
		BasePrice: product.Price,
		ExtraIDs:  make([]string, 0, len(extraIDs)),
	}

	seen := make(map[string]bool, len(extraIDs))
	for _, extraID := range extraIDs {
		if extraID == "" || seen[extraID] {
			continue
		}
		seen[extraID] = true
		quote.ExtraIDs = append(quote.ExtraIDs, extraID)

		charge := domain.ExtraCharge{
			IngredientID:   extraID,
			IngredientName: unknownExtraName,
		}
		if assoc, ok := product.Association(extraID); ok {
			charge.IngredientName = assoc.IngredientName
			charge.UnitPrice = assoc.ExtraCost
		}
		quote.Extras = append(quote.Extras, charge)
		quote.ExtrasTotal += charge.UnitPrice
	}

	quote.Total = quote.BasePrice + quote.ExtrasTotal
	return quote
}
