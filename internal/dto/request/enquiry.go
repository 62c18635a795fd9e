package request

type CreateEnquiryRequest struct {
	Name            string  `json:"name" validate:"required,max=200"`
	Email           string  `json:"email" validate:"required,email"`
	Phone           *string `json:"phone,omitempty" validate:"omitempty,min=10,max=15"`
	AccommodationID string  `json:"accommodation_id" validate:"required,uuid4"`
	PriceRange      *string `json:"price_range,omitempty" validate:"omitempty,max=100"`
	Message         *string `json:"message,omitempty"`
}

type UpdateEnquiryStatusRequest struct {
	Status        string  `json:"status" validate:"required,oneof=pending in_progress completed cancelled"`
	AdminResponse *string `json:"admin_response,omitempty"`
}

type CreateEnquiryMessageRequest struct {
	Message string `json:"message" validate:"required"`
}
