package response

import (
	"encoding/json"
	"time"

	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/data/entity"
)

type BookingResponse struct {
	ID                         string                      `json:"id"`
	Name                       string                      `json:"name"`
	Email                      string                      `json:"email"`
	Phone                      string                      `json:"phone"`
	Date                       string                      `json:"date"`
	Guests                     int                         `json:"guests"`
	SpecialRequirements        string                      `json:"special_requirements,omitempty"`
	SafariID                   string                      `json:"safari_id"`
	SafariTitle                string                      `json:"safari_title,omitempty"`
	Status                     entity.BookingStatus        `json:"status"`
	TotalPrice                 float64                     `json:"total_price"`
	PaymentStatus              entity.BookingPaymentStatus `json:"payment_status"`
	PaymentHistory             json.RawMessage             `json:"payment_history,omitempty"`
	CancellationPolicy         *string                     `json:"cancellation_policy,omitempty"`
	RefundTerms                *string                     `json:"refund_terms,omitempty"`
	InsuranceOptions           json.RawMessage             `json:"insurance_options,omitempty"`
	EmergencyContactName       *string                     `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone      *string                     `json:"emergency_contact_phone,omitempty"`
	SpecialDietaryRequirements *string                     `json:"special_dietary_requirements,omitempty"`
	PaymentMethod              entity.PaymentMethod        `json:"payment_method"`
	DepositAmount              float64                     `json:"deposit_amount"`
	ProofOfPayment             *string                     `json:"proof_of_payment,omitempty"`
	CreatedAt                  time.Time                   `json:"created_at"`
}

// Helper converters
func BookingToResponse(b *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:                         b.ID.String(),
		Name:                       b.Name,
		Email:                      b.Email,
		Phone:                      b.Phone,
		Date:                       b.Date.Format("2006-01-02"),
		Guests:                     b.Guests,
		SpecialRequirements:        b.SpecialRequirements,
		SafariID:                   b.SafariID.String(),
		Status:                     b.Status,
		TotalPrice:                 b.TotalPrice,
		PaymentStatus:              b.PaymentStatus,
		PaymentHistory:             b.PaymentHistory,
		CancellationPolicy:         b.CancellationPolicy,
		RefundTerms:                b.RefundTerms,
		InsuranceOptions:           b.InsuranceOptions,
		EmergencyContactName:       b.EmergencyContactName,
		EmergencyContactPhone:      b.EmergencyContactPhone,
		SpecialDietaryRequirements: b.SpecialDietaryRequirements,
		PaymentMethod:              b.PaymentMethod,
		DepositAmount:              b.DepositAmount,
		ProofOfPayment:             b.ProofOfPayment,
		CreatedAt:                  b.CreatedAt,
	}
}

func BookingsToResponse(bookings []*entity.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, BookingToResponse(b))
	}
	return out
}
