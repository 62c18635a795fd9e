package entity

import "github.com/google/uuid"

type AccommodationType string

const (
	AccommodationTypeLodge AccommodationType = "lodge"
	AccommodationTypeCamp  AccommodationType = "camp"
	AccommodationTypeHotel AccommodationType = "hotel"
)

type Accommodation struct {
	Base
	Name          string            `db:"name"`
	Type          AccommodationType `db:"type"`
	Location      string            `db:"location"`
	Description   string            `db:"description"`
	PricePerNight float64           `db:"price_per_night"`
	Amenities     string            `db:"amenities"`
	Image         *string           `db:"image"`
	Rating        float64           `db:"rating"`
	IsFeatured    bool              `db:"is_featured"`
}

type AccommodationGallery struct {
	BaseSimple
	AccommodationID uuid.UUID `db:"accommodation_id"`
	Image           string    `db:"image"`
	Caption         *string   `db:"caption"`
}
