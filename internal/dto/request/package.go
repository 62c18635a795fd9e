package request

import "encoding/json"

type CreatePackageRequest struct {
	Title              string          `json:"title" validate:"required,max=200"`
	Description        string          `json:"description" validate:"required"`
	BasePrice          float64         `json:"base_price" validate:"required,gt=0"`
	DiscountPercentage float64         `json:"discount_percentage" validate:"min=0,max=100"`
	SpecialOffers      *string         `json:"special_offers,omitempty"`
	SeasonalPricing    json.RawMessage `json:"seasonal_pricing,omitempty"`
	GroupDiscounts     json.RawMessage `json:"group_discounts,omitempty"`
	Image              *string         `json:"image,omitempty"`
	SafariIDs          []string        `json:"safari_ids,omitempty" validate:"omitempty,dive,uuid4"`
}

type UpdatePackageRequest struct {
	Title              *string         `json:"title,omitempty" validate:"omitempty,max=200"`
	Description        *string         `json:"description,omitempty"`
	BasePrice          *float64        `json:"base_price,omitempty" validate:"omitempty,gt=0"`
	DiscountPercentage *float64        `json:"discount_percentage,omitempty" validate:"omitempty,min=0,max=100"`
	SpecialOffers      *string         `json:"special_offers,omitempty"`
	SeasonalPricing    json.RawMessage `json:"seasonal_pricing,omitempty"`
	GroupDiscounts     json.RawMessage `json:"group_discounts,omitempty"`
	Image              *string         `json:"image,omitempty"`
}

type PackageSafariRequest struct {
	SafariID string `json:"safari_id" validate:"required,uuid4"`
}
