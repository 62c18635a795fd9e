package entity

import "github.com/google/uuid"

// Wishlist favorites a safari for a user. (user_id, safari_id) is unique.
type Wishlist struct {
	BaseSimple
	UserID   uuid.UUID `db:"user_id"`
	SafariID uuid.UUID `db:"safari_id"`
}

// BookingHistory links a registered user to a booking made with their email.
type BookingHistory struct {
	BaseSimple
	UserID    uuid.UUID `db:"user_id"`
	BookingID uuid.UUID `db:"booking_id"`
}
