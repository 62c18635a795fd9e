package request

type CreateAccommodationRequest struct {
	Name          string  `json:"name" validate:"required,max=200"`
	Type          string  `json:"type" validate:"required,oneof=lodge camp hotel"`
	Location      string  `json:"location" validate:"required,max=200"`
	Description   string  `json:"description" validate:"required"`
	PricePerNight float64 `json:"price_per_night" validate:"required,gt=0"`
	Amenities     string  `json:"amenities"`
	Image         *string `json:"image,omitempty"`
	Rating        float64 `json:"rating" validate:"min=0,max=5"`
	IsFeatured    bool    `json:"is_featured"`
}

type UpdateAccommodationRequest struct {
	Name          *string  `json:"name,omitempty" validate:"omitempty,max=200"`
	Type          *string  `json:"type,omitempty" validate:"omitempty,oneof=lodge camp hotel"`
	Location      *string  `json:"location,omitempty" validate:"omitempty,max=200"`
	Description   *string  `json:"description,omitempty"`
	PricePerNight *float64 `json:"price_per_night,omitempty" validate:"omitempty,gt=0"`
	Amenities     *string  `json:"amenities,omitempty"`
	Image         *string  `json:"image,omitempty"`
	Rating        *float64 `json:"rating,omitempty" validate:"omitempty,min=0,max=5"`
	IsFeatured    *bool    `json:"is_featured,omitempty"`
}

type AddGalleryImageRequest struct {
	Image   string  `json:"image" validate:"required"`
	Caption *string `json:"caption,omitempty" validate:"omitempty,max=200"`
}
