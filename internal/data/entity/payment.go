package entity

import (
	"encoding/json"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

type PaymentGateway string

const (
	GatewayIntaSend PaymentGateway = "intasend"
	GatewayPayPal   PaymentGateway = "paypal"
	GatewayMpesa    PaymentGateway = "mpesa"
)

type PaymentType string

const (
	PaymentTypeFull    PaymentType = "full"
	PaymentTypeDeposit PaymentType = "deposit"
)

// Payment is one gateway transaction attempt. Exactly one of BookingID
// and EnquiryID is set.
type Payment struct {
	Base
	UserID      uuid.UUID       `db:"user_id"`
	BookingID   *uuid.UUID      `db:"booking_id"`
	EnquiryID   *uuid.UUID      `db:"accommodation_enquiry_id"`
	Amount      float64         `db:"amount"`
	Currency    string          `db:"currency"`
	Status      PaymentStatus   `db:"status"`
	Reference   string          `db:"reference"` // unique gateway reference
	Gateway     PaymentGateway  `db:"gateway"`
	RawResponse json.RawMessage `db:"raw_response"`
	PaymentType PaymentType     `db:"payment_type"`
	IsDeposit   bool            `db:"is_deposit"`
}
