package response

import (
	"time"

	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/data/entity"
)

type DestinationResponse struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Location            string    `json:"location"`
	Description         string    `json:"description"`
	Image               *string   `json:"image,omitempty"`
	Highlights          string    `json:"highlights"`
	BestTime            string    `json:"best_time"`
	WeatherInformation  *string   `json:"weather_information,omitempty"`
	LocalCulture        *string   `json:"local_culture,omitempty"`
	WildlifeInformation *string   `json:"wildlife_information,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}

func DestinationToResponse(d *entity.Destination) DestinationResponse {
	return DestinationResponse{
		ID:                  d.ID.String(),
		Name:                d.Name,
		Location:            d.Location,
		Description:         d.Description,
		Image:               d.Image,
		Highlights:          d.Highlights,
		BestTime:            d.BestTime,
		WeatherInformation:  d.WeatherInformation,
		LocalCulture:        d.LocalCulture,
		WildlifeInformation: d.WildlifeInformation,
		CreatedAt:           d.CreatedAt,
	}
}

func DestinationsToResponse(destinations []*entity.Destination) []DestinationResponse {
	out := make([]DestinationResponse, 0, len(destinations))
	for _, d := range destinations {
		out = append(out, DestinationToResponse(d))
	}
	return out
}
