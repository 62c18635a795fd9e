package request

import "encoding/json"

type CreateSafariRequest struct {
	DestinationID        string          `json:"destination_id" validate:"required,uuid4"`
	Title                string          `json:"title" validate:"required,max=200"`
	Description          string          `json:"description" validate:"required"`
	Duration             int             `json:"duration" validate:"required,min=1"`
	Price                float64         `json:"price" validate:"required,gt=0"`
	Image                *string         `json:"image,omitempty"`
	Included             string          `json:"included"`
	Excluded             string          `json:"excluded"`
	DifficultyLevel      string          `json:"difficulty_level" validate:"required,oneof=easy moderate challenging"`
	MaxGroupSize         int             `json:"max_group_size" validate:"min=1"`
	MinAgeRequirement    int             `json:"min_age_requirement" validate:"min=0"`
	SeasonalAvailability json.RawMessage `json:"seasonal_availability,omitempty"`
	DeparturePoints      json.RawMessage `json:"departure_points,omitempty"`
}

type UpdateSafariRequest struct {
	DestinationID        *string         `json:"destination_id,omitempty" validate:"omitempty,uuid4"`
	Title                *string         `json:"title,omitempty" validate:"omitempty,max=200"`
	Description          *string         `json:"description,omitempty"`
	Duration             *int            `json:"duration,omitempty" validate:"omitempty,min=1"`
	Price                *float64        `json:"price,omitempty" validate:"omitempty,gt=0"`
	Image                *string         `json:"image,omitempty"`
	Included             *string         `json:"included,omitempty"`
	Excluded             *string         `json:"excluded,omitempty"`
	DifficultyLevel      *string         `json:"difficulty_level,omitempty" validate:"omitempty,oneof=easy moderate challenging"`
	MaxGroupSize         *int            `json:"max_group_size,omitempty" validate:"omitempty,min=1"`
	MinAgeRequirement    *int            `json:"min_age_requirement,omitempty" validate:"omitempty,min=0"`
	SeasonalAvailability json.RawMessage `json:"seasonal_availability,omitempty"`
	DeparturePoints      json.RawMessage `json:"departure_points,omitempty"`
}

type CreateItineraryRequest struct {
	DayNumber       int             `json:"day_number" validate:"required,min=1"`
	Title           string          `json:"title" validate:"required,max=200"`
	Description     string          `json:"description" validate:"required"`
	Activities      json.RawMessage `json:"activities,omitempty"`
	AccommodationID *string         `json:"accommodation_id,omitempty" validate:"omitempty,uuid4"`
	MealsIncluded   json.RawMessage `json:"meals_included,omitempty"`
	StartTime       *string         `json:"start_time,omitempty"`
	EndTime         *string         `json:"end_time,omitempty"`
}
