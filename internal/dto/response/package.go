package response

import (
	"encoding/json"
	"time"

	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/data/entity"
)

type PackageResponse struct {
	ID                 string          `json:"id"`
	Title              string          `json:"title"`
	Description        string          `json:"description"`
	BasePrice          float64         `json:"base_price"`
	DiscountPercentage float64         `json:"discount_percentage"`
	DiscountedPrice    float64         `json:"discounted_price"`
	SpecialOffers      *string         `json:"special_offers,omitempty"`
	SeasonalPricing    json.RawMessage `json:"seasonal_pricing,omitempty"`
	GroupDiscounts     json.RawMessage `json:"group_discounts,omitempty"`
	Image              *string         `json:"image,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
}

type PackageDetailResponse struct {
	PackageResponse
	Safaris []SafariResponse `json:"safaris"`
}

// Helper converters
func PackageToResponse(p *entity.Package, discountedPrice float64) PackageResponse {
	return PackageResponse{
		ID:                 p.ID.String(),
		Title:              p.Title,
		Description:        p.Description,
		BasePrice:          p.BasePrice,
		DiscountPercentage: p.DiscountPercentage,
		DiscountedPrice:    discountedPrice,
		SpecialOffers:      p.SpecialOffers,
		SeasonalPricing:    p.SeasonalPricing,
		GroupDiscounts:     p.GroupDiscounts,
		Image:              p.Image,
		CreatedAt:          p.CreatedAt,
	}
}
