package response

import (
	"time"

	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/data/entity"
)

type EnquiryResponse struct {
	ID                string               `json:"id"`
	UserID            *string              `json:"user_id,omitempty"`
	Name              string               `json:"name"`
	Email             string               `json:"email"`
	Phone             *string              `json:"phone,omitempty"`
	AccommodationID   string               `json:"accommodation_id"`
	AccommodationName string               `json:"accommodation_name,omitempty"`
	PriceRange        *string              `json:"price_range,omitempty"`
	Message           *string              `json:"message,omitempty"`
	Status            entity.EnquiryStatus `json:"status"`
	AdminResponse     *string              `json:"admin_response,omitempty"`
	CreatedAt         time.Time            `json:"created_at"`
}

type EnquiryDetailResponse struct {
	EnquiryResponse
	Messages []EnquiryMessageResponse `json:"messages"`
}

type EnquiryMessageResponse struct {
	ID        string               `json:"id"`
	Sender    entity.EnquirySender `json:"sender"`
	Message   string               `json:"message"`
	IsRead    bool                 `json:"is_read"`
	CreatedAt time.Time            `json:"created_at"`
}

// Helper converters
func EnquiryToResponse(e *entity.AccommodationEnquiry) EnquiryResponse {
	resp := EnquiryResponse{
		ID:              e.ID.String(),
		Name:            e.Name,
		Email:           e.Email,
		Phone:           e.Phone,
		AccommodationID: e.AccommodationID.String(),
		PriceRange:      e.PriceRange,
		Message:         e.Message,
		Status:          e.Status,
		AdminResponse:   e.AdminResponse,
		CreatedAt:       e.CreatedAt,
	}
	if e.UserID != nil {
		id := e.UserID.String()
		resp.UserID = &id
	}
	return resp
}

func EnquiriesToResponse(enquiries []*entity.AccommodationEnquiry) []EnquiryResponse {
	out := make([]EnquiryResponse, 0, len(enquiries))
	for _, e := range enquiries {
		out = append(out, EnquiryToResponse(e))
	}
	return out
}

func EnquiryMessageToResponse(m *entity.AccommodationEnquiryMessage) EnquiryMessageResponse {
	return EnquiryMessageResponse{
		ID:        m.ID.String(),
		Sender:    m.Sender,
		Message:   m.Message,
		IsRead:    m.IsRead,
		CreatedAt: m.CreatedAt,
	}
}

func EnquiryMessagesToResponse(messages []*entity.AccommodationEnquiryMessage) []EnquiryMessageResponse {
	out := make([]EnquiryMessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, EnquiryMessageToResponse(m))
	}
	return out
}
