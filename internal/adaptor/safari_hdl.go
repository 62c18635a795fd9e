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

type SafariHandler struct {
	service usecase.SafariService
	log     *zap.Logger
}

func NewSafariHandler(service usecase.SafariService, log *zap.Logger) *SafariHandler {
	return &SafariHandler{
		service: service,
		log:     log.With(zap.String("handler", "safari")),
	}
}

// List handles GET /api/safaris (public)
func (h *SafariHandler) List(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	orderBy := r.URL.Query().Get("order_by")

	safaris, err := h.service.ListSafaris(r.Context(), search, orderBy)
	if err != nil {
		handleServiceError(w, h.log, err, "list safaris")
		return
	}

	utils.ResponseSuccess(w, "success", safaris)
}

// Featured handles GET /api/safaris/featured (public)
func (h *SafariHandler) Featured(w http.ResponseWriter, r *http.Request) {
	limit := utils.ParseInt(r.URL.Query().Get("limit"), 3)

	safaris, err := h.service.GetFeaturedSafaris(r.Context(), limit)
	if err != nil {
		handleServiceError(w, h.log, err, "get featured safaris")
		return
	}

	utils.ResponseSuccess(w, "success", safaris)
}

// Get handles GET /api/safaris/{id} (public)
func (h *SafariHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	safari, err := h.service.GetSafari(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get safari")
		return
	}

	utils.ResponseSuccess(w, "success", safari)
}

// Create handles POST /api/safaris (admin)
func (h *SafariHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateSafariRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	safari, err := h.service.CreateSafari(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create safari")
		return
	}

	utils.ResponseCreated(w, "success", safari)
}

// Update handles PUT /api/safaris/{id} (admin)
func (h *SafariHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req request.UpdateSafariRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	safari, err := h.service.UpdateSafari(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update safari")
		return
	}

	utils.ResponseSuccess(w, "success", safari)
}

// Delete handles DELETE /api/safaris/{id} (admin)
func (h *SafariHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.DeleteSafari(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete safari")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// AddItinerary handles POST /api/safaris/{id}/itinerary (admin)
func (h *SafariHandler) AddItinerary(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req request.CreateItineraryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	itinerary, err := h.service.AddItineraryDay(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "add itinerary day")
		return
	}

	utils.ResponseCreated(w, "success", itinerary)
}

// UpdateItinerary handles PUT /api/safaris/{id}/itinerary/{itineraryId} (admin)
func (h *SafariHandler) UpdateItinerary(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	itineraryID := chi.URLParam(r, "itineraryId")

	var req request.CreateItineraryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	itinerary, err := h.service.UpdateItineraryDay(r.Context(), id, itineraryID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update itinerary day")
		return
	}

	utils.ResponseSuccess(w, "success", itinerary)
}

// DeleteItinerary handles DELETE /api/safaris/{id}/itinerary/{itineraryId} (admin)
func (h *SafariHandler) DeleteItinerary(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	itineraryID := chi.URLParam(r, "itineraryId")

	if err := h.service.DeleteItineraryDay(r.Context(), id, itineraryID); err != nil {
		handleServiceError(w, h.log, err, "delete itinerary day")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
