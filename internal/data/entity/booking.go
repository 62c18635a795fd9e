package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type BookingPaymentStatus string

const (
	BookingPaymentPending  BookingPaymentStatus = "pending"
	BookingPaymentPaid     BookingPaymentStatus = "paid"
	BookingPaymentRefunded BookingPaymentStatus = "refunded"
	BookingPaymentFailed   BookingPaymentStatus = "failed"
)

type PaymentMethod string

const (
	PaymentMethodBankTransfer  PaymentMethod = "bank_transfer"
	PaymentMethodCashOnArrival PaymentMethod = "cash_on_arrival"
	PaymentMethodOnline        PaymentMethod = "online"
)

type Booking struct {
	Base
	Name                       string               `db:"name"`
	Email                      string               `db:"email"`
	Phone                      string               `db:"phone"`
	Date                       time.Time            `db:"date"`
	Guests                     int                  `db:"guests"`
	SpecialRequirements        string               `db:"special_requirements"`
	SafariID                   uuid.UUID            `db:"safari_id"`
	Status                     BookingStatus        `db:"status"`
	TotalPrice                 float64              `db:"total_price"`
	PaymentStatus              BookingPaymentStatus `db:"payment_status"`
	PaymentHistory             json.RawMessage      `db:"payment_history"` // append-only transaction log
	CancellationPolicy         *string              `db:"cancellation_policy"`
	RefundTerms                *string              `db:"refund_terms"`
	InsuranceOptions           json.RawMessage      `db:"insurance_options"`
	EmergencyContactName       *string              `db:"emergency_contact_name"`
	EmergencyContactPhone      *string              `db:"emergency_contact_phone"`
	SpecialDietaryRequirements *string              `db:"special_dietary_requirements"`
	PaymentMethod              PaymentMethod        `db:"payment_method"`
	DepositAmount              float64              `db:"deposit_amount"`
	ProofOfPayment             *string              `db:"proof_of_payment"`
}
