package domain

// ExtraCharge lists one priced ingredient add-on inside a quote.
type ExtraCharge struct {
	IngredientID   string
	IngredientName string
	UnitPrice      int64
}

// PriceQuote captures the monetary results of pricing a product with a set
// of selected extra ingredients. BasePrice is the product price unchanged by
// selection; ExtrasTotal sums the selected associations' extra costs.
type PriceQuote struct {
	ProductID   string
	BasePrice   int64
	ExtrasTotal int64
	Total       int64
	ExtraIDs    []string
	Extras      []ExtraCharge
}
