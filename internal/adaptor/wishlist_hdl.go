package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/dto/request"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/usecase"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type WishlistHandler struct {
	service usecase.WishlistService
	log     *zap.Logger
}

func NewWishlistHandler(service usecase.WishlistService, log *zap.Logger) *WishlistHandler {
	return &WishlistHandler{
		service: service,
		log:     log.With(zap.String("handler", "wishlist")),
	}
}

// List handles GET /api/wishlist (protected)
func (h *WishlistHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	items, err := h.service.GetWishlist(r.Context(), userID.String())
	if err != nil {
		handleServiceError(w, h.log, err, "get wishlist")
		return
	}

	utils.ResponseSuccess(w, "success", items)
}

// Add handles POST /api/wishlist (protected)
func (h *WishlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.AddWishlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	item, err := h.service.AddToWishlist(r.Context(), userID.String(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "add to wishlist")
		return
	}

	utils.ResponseCreated(w, "success", item)
}

// Remove handles DELETE /api/wishlist/{id} (protected)
func (h *WishlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	id := chi.URLParam(r, "id")

	if err := h.service.RemoveFromWishlist(r.Context(), userID.String(), id); err != nil {
		handleServiceError(w, h.log, err, "remove from wishlist")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
