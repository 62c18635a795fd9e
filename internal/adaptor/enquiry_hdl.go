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

type EnquiryHandler struct {
	service usecase.EnquiryService
	log     *zap.Logger
}

func NewEnquiryHandler(service usecase.EnquiryService, log *zap.Logger) *EnquiryHandler {
	return &EnquiryHandler{
		service: service,
		log:     log.With(zap.String("handler", "enquiry")),
	}
}

// Create handles POST /api/enquiries (public, attaches the user when logged in)
func (h *EnquiryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateEnquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	var userID string
	if id, ok := utils.GetUserIDFromContext(r.Context()); ok {
		userID = id.String()
	}

	enquiry, err := h.service.CreateEnquiry(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create enquiry")
		return
	}

	utils.ResponseCreated(w, "success", enquiry)
}

// MyEnquiries handles GET /api/enquiries/me (protected)
func (h *EnquiryHandler) MyEnquiries(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	enquiries, err := h.service.GetMyEnquiries(r.Context(), userID.String())
	if err != nil {
		handleServiceError(w, h.log, err, "get my enquiries")
		return
	}

	utils.ResponseSuccess(w, "success", enquiries)
}

// Get handles GET /api/enquiries/{id} (protected, owner or admin)
func (h *EnquiryHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	id := chi.URLParam(r, "id")

	enquiry, err := h.service.GetEnquiry(r.Context(), userID.String(), utils.IsAdminContext(r.Context()), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get enquiry")
		return
	}

	utils.ResponseSuccess(w, "success", enquiry)
}

// AddMessage handles POST /api/enquiries/{id}/messages (protected, owner or admin)
func (h *EnquiryHandler) AddMessage(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	id := chi.URLParam(r, "id")

	var req request.CreateEnquiryMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	message, err := h.service.AddMessage(r.Context(), userID.String(), utils.IsAdminContext(r.Context()), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "add enquiry message")
		return
	}

	utils.ResponseCreated(w, "success", message)
}

// MarkRead handles POST /api/enquiries/{id}/read (protected)
func (h *EnquiryHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	id := chi.URLParam(r, "id")

	if err := h.service.MarkMessagesRead(r.Context(), userID.String(), id); err != nil {
		handleServiceError(w, h.log, err, "mark enquiry messages read")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// List handles GET /api/enquiries (admin)
func (h *EnquiryHandler) List(w http.ResponseWriter, r *http.Request) {
	enquiries, err := h.service.ListEnquiries(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list enquiries")
		return
	}

	utils.ResponseSuccess(w, "success", enquiries)
}

// UpdateStatus handles PUT /api/enquiries/{id}/status (admin)
func (h *EnquiryHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req request.UpdateEnquiryStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	enquiry, err := h.service.UpdateEnquiryStatus(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update enquiry status")
		return
	}

	utils.ResponseSuccess(w, "success", enquiry)
}
