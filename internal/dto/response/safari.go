package response

import (
	"encoding/json"
	"time"

	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/data/entity"
)

type SafariResponse struct {
	ID                   string                 `json:"id"`
	DestinationID        string                 `json:"destination_id"`
	Title                string                 `json:"title"`
	Description          string                 `json:"description"`
	Duration             int                    `json:"duration"`
	Price                float64                `json:"price"`
	Image                *string                `json:"image,omitempty"`
	Included             string                 `json:"included"`
	Excluded             string                 `json:"excluded"`
	DifficultyLevel      entity.DifficultyLevel `json:"difficulty_level"`
	MaxGroupSize         int                    `json:"max_group_size"`
	MinAgeRequirement    int                    `json:"min_age_requirement"`
	SeasonalAvailability json.RawMessage        `json:"seasonal_availability,omitempty"`
	DeparturePoints      json.RawMessage        `json:"departure_points,omitempty"`
	CreatedAt            time.Time              `json:"created_at"`
}

type SafariDetailResponse struct {
	SafariResponse
	Itinerary []ItineraryResponse `json:"itinerary"`
	Reviews   []ReviewResponse    `json:"reviews"`
}

type ItineraryResponse struct {
	ID              string          `json:"id"`
	SafariID        string          `json:"safari_id"`
	DayNumber       int             `json:"day_number"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Activities      json.RawMessage `json:"activities,omitempty"`
	AccommodationID *string         `json:"accommodation_id,omitempty"`
	MealsIncluded   json.RawMessage `json:"meals_included,omitempty"`
	StartTime       *string         `json:"start_time,omitempty"`
	EndTime         *string         `json:"end_time,omitempty"`
}

// Helper converters
func SafariToResponse(s *entity.Safari) SafariResponse {
	return SafariResponse{
		ID:                   s.ID.String(),
		DestinationID:        s.DestinationID.String(),
		Title:                s.Title,
		Description:          s.Description,
		Duration:             s.Duration,
		Price:                s.Price,
		Image:                s.Image,
		Included:             s.Included,
		Excluded:             s.Excluded,
		DifficultyLevel:      s.DifficultyLevel,
		MaxGroupSize:         s.MaxGroupSize,
		MinAgeRequirement:    s.MinAgeRequirement,
		SeasonalAvailability: s.SeasonalAvailability,
		DeparturePoints:      s.DeparturePoints,
		CreatedAt:            s.CreatedAt,
	}
}

func SafarisToResponse(safaris []*entity.Safari) []SafariResponse {
	out := make([]SafariResponse, 0, len(safaris))
	for _, s := range safaris {
		out = append(out, SafariToResponse(s))
	}
	return out
}

func ItineraryToResponse(i *entity.Itinerary) ItineraryResponse {
	resp := ItineraryResponse{
		ID:            i.ID.String(),
		SafariID:      i.SafariID.String(),
		DayNumber:     i.DayNumber,
		Title:         i.Title,
		Description:   i.Description,
		Activities:    i.Activities,
		MealsIncluded: i.MealsIncluded,
		StartTime:     i.StartTime,
		EndTime:       i.EndTime,
	}
	if i.AccommodationID != nil {
		id := i.AccommodationID.String()
		resp.AccommodationID = &id
	}
	return resp
}

func ItinerariesToResponse(items []*entity.Itinerary) []ItineraryResponse {
	out := make([]ItineraryResponse, 0, len(items))
	for _, i := range items {
		out = append(out, ItineraryToResponse(i))
	}
	return out
}
