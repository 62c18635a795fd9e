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

type AccommodationHandler struct {
	service usecase.AccommodationService
	log     *zap.Logger
}

func NewAccommodationHandler(service usecase.AccommodationService, log *zap.Logger) *AccommodationHandler {
	return &AccommodationHandler{
		service: service,
		log:     log.With(zap.String("handler", "accommodation")),
	}
}

// List handles GET /api/accommodations (public)
func (h *AccommodationHandler) List(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	accommodations, err := h.service.ListAccommodations(r.Context(), search)
	if err != nil {
		handleServiceError(w, h.log, err, "list accommodations")
		return
	}

	utils.ResponseSuccess(w, "success", accommodations)
}

// Featured handles GET /api/accommodations/featured (public)
func (h *AccommodationHandler) Featured(w http.ResponseWriter, r *http.Request) {
	accommodations, err := h.service.GetFeaturedAccommodations(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get featured accommodations")
		return
	}

	utils.ResponseSuccess(w, "success", accommodations)
}

// Get handles GET /api/accommodations/{id} (public)
func (h *AccommodationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	accommodation, err := h.service.GetAccommodation(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get accommodation")
		return
	}

	utils.ResponseSuccess(w, "success", accommodation)
}

// Create handles POST /api/accommodations (admin)
func (h *AccommodationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateAccommodationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	accommodation, err := h.service.CreateAccommodation(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create accommodation")
		return
	}

	utils.ResponseCreated(w, "success", accommodation)
}

// Update handles PUT /api/accommodations/{id} (admin)
func (h *AccommodationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req request.UpdateAccommodationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	accommodation, err := h.service.UpdateAccommodation(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update accommodation")
		return
	}

	utils.ResponseSuccess(w, "success", accommodation)
}

// Delete handles DELETE /api/accommodations/{id} (admin)
func (h *AccommodationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.DeleteAccommodation(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete accommodation")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// AddGalleryImage handles POST /api/accommodations/{id}/gallery (admin)
func (h *AccommodationHandler) AddGalleryImage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req request.AddGalleryImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	image, err := h.service.AddGalleryImage(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "add gallery image")
		return
	}

	utils.ResponseCreated(w, "success", image)
}

// DeleteGalleryImage handles DELETE /api/accommodations/{id}/gallery/{imageId} (admin)
func (h *AccommodationHandler) DeleteGalleryImage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	imageID := chi.URLParam(r, "imageId")

	if err := h.service.DeleteGalleryImage(r.Context(), id, imageID); err != nil {
		handleServiceError(w, h.log, err, "delete gallery image")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
