package request

type CreateReviewRequest struct {
	SafariID string `json:"safari_id" validate:"required,uuid4"`
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	Comment  string `json:"comment" validate:"required"`
}
