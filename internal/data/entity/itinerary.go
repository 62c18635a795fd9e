package entity

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Itinerary is one day of a safari. (safari_id, day_number) is unique.
type Itinerary struct {
	Base
	SafariID        uuid.UUID       `db:"safari_id"`
	DayNumber       int             `db:"day_number"`
	Title           string          `db:"title"`
	Description     string          `db:"description"`
	Activities      json.RawMessage `db:"activities"`
	AccommodationID *uuid.UUID      `db:"accommodation_id"`
	MealsIncluded   json.RawMessage `db:"meals_included"`
	StartTime       *string         `db:"start_time"`
	EndTime         *string         `db:"end_time"`
}
