package response

import (
	"time"

	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/data/entity"
)

// WishlistItemResponse embeds the safari so the frontend can render the
// list without extra lookups.
type WishlistItemResponse struct {
	ID        string          `json:"id"`
	Safari    *SafariResponse `json:"safari,omitempty"`
	SafariID  string          `json:"safari_id"`
	CreatedAt time.Time       `json:"created_at"`
}

type BookingHistoryResponse struct {
	ID        string           `json:"id"`
	Booking   *BookingResponse `json:"booking,omitempty"`
	BookingID string           `json:"booking_id"`
	CreatedAt time.Time        `json:"created_at"`
}

func WishlistItemToResponse(item *entity.Wishlist, safari *entity.Safari) WishlistItemResponse {
	resp := WishlistItemResponse{
		ID:        item.ID.String(),
		SafariID:  item.SafariID.String(),
		CreatedAt: item.CreatedAt,
	}
	if safari != nil {
		s := SafariToResponse(safari)
		resp.Safari = &s
	}
	return resp
}

func BookingHistoryToResponse(entry *entity.BookingHistory, booking *entity.Booking) BookingHistoryResponse {
	resp := BookingHistoryResponse{
		ID:        entry.ID.String(),
		BookingID: entry.BookingID.String(),
		CreatedAt: entry.CreatedAt,
	}
	if booking != nil {
		b := BookingToResponse(booking)
		resp.Booking = &b
	}
	return resp
}
