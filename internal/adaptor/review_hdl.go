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

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// SafariReviews handles GET /api/safaris/{id}/reviews (public)
func (h *ReviewHandler) SafariReviews(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	reviews, err := h.service.GetSafariReviews(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get safari reviews")
		return
	}

	utils.ResponseSuccess(w, "success", reviews)
}

// Create handles POST /api/reviews (protected)
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	review, err := h.service.CreateReview(r.Context(), userID.String(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create review")
		return
	}

	utils.ResponseCreated(w, "success", review)
}

// Pending handles GET /api/reviews/pending (admin)
func (h *ReviewHandler) Pending(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.service.ListPendingReviews(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list pending reviews")
		return
	}

	utils.ResponseSuccess(w, "success", reviews)
}

// Approve handles POST /api/reviews/{id}/approve (admin)
func (h *ReviewHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.ApproveReview(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "approve review")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// Delete handles DELETE /api/reviews/{id} (admin)
func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.DeleteReview(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete review")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
