package adaptor

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/dto/request"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/usecase"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	service usecase.PaymentService
	log     *zap.Logger
}

func NewPaymentHandler(service usecase.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		log:     log.With(zap.String("handler", "payment")),
	}
}

// Initiate handles POST /api/payments/initiate (protected)
func (h *PaymentHandler) Initiate(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.InitiatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	payment, err := h.service.InitiatePayment(r.Context(), userID.String(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "initiate payment")
		return
	}

	utils.ResponseCreated(w, "success", payment)
}

// MyPayments handles GET /api/payments/me (protected)
func (h *PaymentHandler) MyPayments(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	payments, err := h.service.GetMyPayments(r.Context(), userID.String())
	if err != nil {
		handleServiceError(w, h.log, err, "get my payments")
		return
	}

	utils.ResponseSuccess(w, "success", payments)
}

// Get handles GET /api/payments/{id} (protected)
func (h *PaymentHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	id := chi.URLParam(r, "id")

	payment, err := h.service.GetPayment(r.Context(), userID.String(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get payment")
		return
	}

	utils.ResponseSuccess(w, "success", payment)
}

// PayPalWebhook handles POST /api/payments/webhooks/paypal. Providers retry on
// non-2xx responses, so webhook endpoints acknowledge everything and leave
// reconciliation problems to the logs.
func (h *PaymentHandler) PayPalWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.log.Warn("Failed to read PayPal webhook body", zap.Error(err))
		utils.ResponseSuccess(w, "received", nil)
		return
	}

	var req request.PayPalWebhookRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.log.Warn("Failed to decode PayPal webhook payload", zap.Error(err))
		utils.ResponseSuccess(w, "received", nil)
		return
	}

	if err := h.service.HandlePayPalWebhook(r.Context(), &req, body); err != nil {
		h.log.Error("PayPal webhook processing failed", zap.Error(err))
	}

	utils.ResponseSuccess(w, "received", nil)
}

// MpesaCallback handles POST /api/payments/webhooks/mpesa
func (h *PaymentHandler) MpesaCallback(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.log.Warn("Failed to read M-Pesa callback body", zap.Error(err))
		utils.ResponseSuccess(w, "received", nil)
		return
	}

	var req request.MpesaCallbackRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.log.Warn("Failed to decode M-Pesa callback payload", zap.Error(err))
		utils.ResponseSuccess(w, "received", nil)
		return
	}

	if err := h.service.HandleMpesaCallback(r.Context(), &req, body); err != nil {
		h.log.Error("M-Pesa callback processing failed", zap.Error(err))
	}

	utils.ResponseSuccess(w, "received", nil)
}

// IntaSendWebhook handles POST /api/payments/webhooks/intasend
func (h *PaymentHandler) IntaSendWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.log.Warn("Failed to read IntaSend webhook body", zap.Error(err))
		utils.ResponseSuccess(w, "received", nil)
		return
	}

	var req request.IntaSendWebhookRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.log.Warn("Failed to decode IntaSend webhook payload", zap.Error(err))
		utils.ResponseSuccess(w, "received", nil)
		return
	}

	if err := h.service.HandleIntaSendWebhook(r.Context(), &req, body); err != nil {
		h.log.Error("IntaSend webhook processing failed", zap.Error(err))
	}

	utils.ResponseSuccess(w, "received", nil)
}
