package response

import (
	"time"

	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/data/entity"
)

type AccommodationResponse struct {
	ID            string                   `json:"id"`
	Name          string                   `json:"name"`
	Type          entity.AccommodationType `json:"type"`
	Location      string                   `json:"location"`
	Description   string                   `json:"description"`
	PricePerNight float64                  `json:"price_per_night"`
	Amenities     string                   `json:"amenities"`
	Image         *string                  `json:"image,omitempty"`
	Rating        float64                  `json:"rating"`
	IsFeatured    bool                     `json:"is_featured"`
	CreatedAt     time.Time                `json:"created_at"`
}

type AccommodationDetailResponse struct {
	AccommodationResponse
	Gallery []GalleryImageResponse `json:"gallery"`
}

type GalleryImageResponse struct {
	ID      string  `json:"id"`
	Image   string  `json:"image"`
	Caption *string `json:"caption,omitempty"`
}

// Helper converters
func AccommodationToResponse(a *entity.Accommodation) AccommodationResponse {
	return AccommodationResponse{
		ID:            a.ID.String(),
		Name:          a.Name,
		Type:          a.Type,
		Location:      a.Location,
		Description:   a.Description,
		PricePerNight: a.PricePerNight,
		Amenities:     a.Amenities,
		Image:         a.Image,
		Rating:        a.Rating,
		IsFeatured:    a.IsFeatured,
		CreatedAt:     a.CreatedAt,
	}
}

func AccommodationsToResponse(accommodations []*entity.Accommodation) []AccommodationResponse {
	out := make([]AccommodationResponse, 0, len(accommodations))
	for _, a := range accommodations {
		out = append(out, AccommodationToResponse(a))
	}
	return out
}

func GalleryImageToResponse(g *entity.AccommodationGallery) GalleryImageResponse {
	return GalleryImageResponse{
		ID:      g.ID.String(),
		Image:   g.Image,
		Caption: g.Caption,
	}
}

func GalleryImagesToResponse(images []*entity.AccommodationGallery) []GalleryImageResponse {
	out := make([]GalleryImageResponse, 0, len(images))
	for _, g := range images {
		out = append(out, GalleryImageToResponse(g))
	}
	return out
}
