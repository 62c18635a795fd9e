package request

type AddWishlistRequest struct {
	SafariID string `json:"safari_id" validate:"required,uuid4"`
}
