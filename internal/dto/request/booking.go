package request

import "encoding/json"

type CreateBookingRequest struct {
	Name                       string          `json:"name" validate:"required,max=200"`
	Email                      string          `json:"email" validate:"required,email"`
	Phone                      string          `json:"phone" validate:"required,min=10,max=15"`
	Date                       string          `json:"date" validate:"required,datetime=2006-01-02"`
	Guests                     int             `json:"guests" validate:"required,min=1"`
	SpecialRequirements        string          `json:"special_requirements"`
	SafariID                   string          `json:"safari_id" validate:"required,uuid4"`
	PaymentMethod              string          `json:"payment_method" validate:"required,oneof=bank_transfer cash_on_arrival online"`
	InsuranceOptions           json.RawMessage `json:"insurance_options,omitempty"`
	EmergencyContactName       *string         `json:"emergency_contact_name,omitempty" validate:"omitempty,max=200"`
	EmergencyContactPhone      *string         `json:"emergency_contact_phone,omitempty" validate:"omitempty,min=10,max=15"`
	SpecialDietaryRequirements *string         `json:"special_dietary_requirements,omitempty"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled"`
}

type UploadProofOfPaymentRequest struct {
	ProofOfPayment string `json:"proof_of_payment" validate:"required"`
}
