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

type DestinationHandler struct {
	service usecase.DestinationService
	log     *zap.Logger
}

func NewDestinationHandler(service usecase.DestinationService, log *zap.Logger) *DestinationHandler {
	return &DestinationHandler{
		service: service,
		log:     log.With(zap.String("handler", "destination")),
	}
}

// List handles GET /api/destinations (public)
func (h *DestinationHandler) List(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	destinations, err := h.service.ListDestinations(r.Context(), search)
	if err != nil {
		handleServiceError(w, h.log, err, "list destinations")
		return
	}

	utils.ResponseSuccess(w, "success", destinations)
}

// Get handles GET /api/destinations/{id} (public)
func (h *DestinationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	destination, err := h.service.GetDestination(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get destination")
		return
	}

	utils.ResponseSuccess(w, "success", destination)
}

// GetSafaris handles GET /api/destinations/{id}/safaris (public)
func (h *DestinationHandler) GetSafaris(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	safaris, err := h.service.GetDestinationSafaris(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get destination safaris")
		return
	}

	utils.ResponseSuccess(w, "success", safaris)
}

// Create handles POST /api/destinations (admin)
func (h *DestinationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateDestinationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	destination, err := h.service.CreateDestination(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create destination")
		return
	}

	utils.ResponseCreated(w, "success", destination)
}

// Update handles PUT /api/destinations/{id} (admin)
func (h *DestinationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req request.UpdateDestinationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	destination, err := h.service.UpdateDestination(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update destination")
		return
	}

	utils.ResponseSuccess(w, "success", destination)
}

// Delete handles DELETE /api/destinations/{id} (admin)
func (h *DestinationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.DeleteDestination(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete destination")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
