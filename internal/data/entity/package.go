package entity

import "encoding/json"

// Package is a priced bundle of safaris (package_safaris join table).
type Package struct {
	Base
	Title              string          `db:"title"`
	Description        string          `db:"description"`
	BasePrice          float64         `db:"base_price"`
	DiscountPercentage float64         `db:"discount_percentage"`
	SpecialOffers      *string         `db:"special_offers"`
	SeasonalPricing    json.RawMessage `db:"seasonal_pricing"` // {"jan_2025": 1500, ...}
	GroupDiscounts     json.RawMessage `db:"group_discounts"`  // {"5": 5, "10": 10}
	Image              *string         `db:"image"`
}
