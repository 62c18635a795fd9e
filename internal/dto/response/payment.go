package response

import (
	"time"

	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/data/entity"
)

type PaymentResponse struct {
	ID          string                `json:"id"`
	BookingID   *string               `json:"booking_id,omitempty"`
	EnquiryID   *string               `json:"enquiry_id,omitempty"`
	Amount      float64               `json:"amount"`
	Currency    string                `json:"currency"`
	Status      entity.PaymentStatus  `json:"status"`
	Reference   string                `json:"reference"`
	Gateway     entity.PaymentGateway `json:"gateway"`
	PaymentType entity.PaymentType    `json:"payment_type"`
	IsDeposit   bool                  `json:"is_deposit"`
	CreatedAt   time.Time             `json:"created_at"`
}

// InitiatePaymentResponse adds the gateway handoff details to the stored
// payment record.
type InitiatePaymentResponse struct {
	PaymentResponse
	RedirectURL string `json:"redirect_url,omitempty"`
	ProviderRef string `json:"provider_ref,omitempty"`
}

// Helper converters
func PaymentToResponse(p *entity.Payment) PaymentResponse {
	resp := PaymentResponse{
		ID:          p.ID.String(),
		Amount:      p.Amount,
		Currency:    p.Currency,
		Status:      p.Status,
		Reference:   p.Reference,
		Gateway:     p.Gateway,
		PaymentType: p.PaymentType,
		IsDeposit:   p.IsDeposit,
		CreatedAt:   p.CreatedAt,
	}
	if p.BookingID != nil {
		id := p.BookingID.String()
		resp.BookingID = &id
	}
	if p.EnquiryID != nil {
		id := p.EnquiryID.String()
		resp.EnquiryID = &id
	}
	return resp
}

func PaymentsToResponse(payments []*entity.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, PaymentToResponse(p))
	}
	return out
}
