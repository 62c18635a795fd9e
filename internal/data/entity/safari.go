package entity

import (
	"encoding/json"

	"github.com/google/uuid"
)

type DifficultyLevel string

const (
	DifficultyEasy        DifficultyLevel = "easy"
	DifficultyModerate    DifficultyLevel = "moderate"
	DifficultyChallenging DifficultyLevel = "challenging"
)

type Safari struct {
	Base
	DestinationID        uuid.UUID       `db:"destination_id"`
	Title                string          `db:"title"`
	Description          string          `db:"description"`
	Duration             int             `db:"duration"` // days
	Price                float64         `db:"price"`
	Image                *string         `db:"image"`
	Included             string          `db:"included"`
	Excluded             string          `db:"excluded"`
	DifficultyLevel      DifficultyLevel `db:"difficulty_level"`
	MaxGroupSize         int             `db:"max_group_size"`
	MinAgeRequirement    int             `db:"min_age_requirement"`
	SeasonalAvailability json.RawMessage `db:"seasonal_availability"` // {"jan": true, ...}
	DeparturePoints      json.RawMessage `db:"departure_points"`      // [{"location": ..., "pickup_time": ...}]
}
