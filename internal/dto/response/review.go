package response

import (
	"time"

	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/data/entity"
)

type ReviewResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	SafariID    string    `json:"safari_id"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment"`
	IsModerated bool      `json:"is_moderated"`
	CreatedAt   time.Time `json:"created_at"`
}

func ReviewToResponse(r *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:          r.ID.String(),
		UserID:      r.UserID.String(),
		SafariID:    r.SafariID.String(),
		Rating:      r.Rating,
		Comment:     r.Comment,
		IsModerated: r.IsModerated,
		CreatedAt:   r.CreatedAt,
	}
}

func ReviewsToResponse(reviews []*entity.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, ReviewToResponse(r))
	}
	return out
}
