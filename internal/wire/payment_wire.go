package wire

import (
	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/adaptor"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/pkg/middleware"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePayment(
	r chi.Router,
	paymentHandler *adaptor.PaymentHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthJWT(config.JWT, log))

		r.Post("/api/payments/initiate", paymentHandler.Initiate)
		r.Get("/api/payments/me", paymentHandler.MyPayments)
		r.Get("/api/payments/{id}", paymentHandler.Get)
	})

	// ==================== WEBHOOK ROUTES ====================
	// Providers call these directly, no auth.
	r.Post("/api/payments/webhooks/paypal", paymentHandler.PayPalWebhook)
	r.Post("/api/payments/webhooks/mpesa", paymentHandler.MpesaCallback)
	r.Post("/api/payments/webhooks/intasend", paymentHandler.IntaSendWebhook)
}
