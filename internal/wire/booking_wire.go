package wire

import (
	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/adaptor"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/pkg/middleware"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Guests can book without an account; a later registration with the same
	// email links the booking to them.
	r.Post("/api/bookings", bookingHandler.Create)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthJWT(config.JWT, log))

		// /me and /history before /{id} so chi matches them first.
		r.Get("/api/bookings/me", bookingHandler.MyBookings)
		r.Get("/api/bookings/history", bookingHandler.MyHistory)
		r.Get("/api/bookings/{id}", bookingHandler.Get)
		r.Post("/api/bookings/{id}/proof-of-payment", bookingHandler.UploadProof)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/bookings", func(r chi.Router) {
		r.Use(middleware.AuthJWT(config.JWT, log))
		r.Use(middleware.Admin(log))

		r.Get("/", bookingHandler.List)
		r.Put("/{id}/status", bookingHandler.UpdateStatus)
		r.Delete("/{id}", bookingHandler.Delete)
	})
}
