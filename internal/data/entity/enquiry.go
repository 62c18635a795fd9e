package entity

import "github.com/google/uuid"

type EnquiryStatus string

const (
	EnquiryStatusPending    EnquiryStatus = "pending"
	EnquiryStatusInProgress EnquiryStatus = "in_progress"
	EnquiryStatusCompleted  EnquiryStatus = "completed"
	EnquiryStatusCancelled  EnquiryStatus = "cancelled"
)

type EnquirySender string

const (
	SenderUser  EnquirySender = "user"
	SenderAdmin EnquirySender = "admin"
)

// AccommodationEnquiry is a pre-booking lead about an accommodation.
type AccommodationEnquiry struct {
	BaseSimple
	UserID          *uuid.UUID    `db:"user_id"`
	Name            string        `db:"name"`
	Email           string        `db:"email"`
	Phone           *string       `db:"phone"`
	AccommodationID uuid.UUID     `db:"accommodation_id"`
	PriceRange      *string       `db:"price_range"`
	Message         *string       `db:"message"`
	Status          EnquiryStatus `db:"status"`
	AdminResponse   *string       `db:"admin_response"`
}

// AccommodationEnquiryMessage is one turn in the two-party enquiry thread.
type AccommodationEnquiryMessage struct {
	BaseSimple
	EnquiryID uuid.UUID     `db:"enquiry_id"`
	Sender    EnquirySender `db:"sender"`
	Message   string        `db:"message"`
	IsRead    bool          `db:"is_read"`
}
