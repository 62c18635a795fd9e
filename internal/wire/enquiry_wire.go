package wire

import (
	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/adaptor"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/pkg/middleware"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireEnquiry(
	r chi.Router,
	enquiryHandler *adaptor.EnquiryHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Anonymous visitors can enquire; logged-in users get the enquiry attached
	// to their account.
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthJWTOptional(config.JWT, log))

		r.Post("/api/enquiries", enquiryHandler.Create)
	})

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthJWT(config.JWT, log))

		r.Get("/api/enquiries/me", enquiryHandler.MyEnquiries)
		r.Get("/api/enquiries/{id}", enquiryHandler.Get)
		r.Post("/api/enquiries/{id}/messages", enquiryHandler.AddMessage)
		r.Post("/api/enquiries/{id}/read", enquiryHandler.MarkRead)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/enquiries", func(r chi.Router) {
		r.Use(middleware.AuthJWT(config.JWT, log))
		r.Use(middleware.Admin(log))

		r.Get("/", enquiryHandler.List)
		r.Put("/{id}/status", enquiryHandler.UpdateStatus)
	})
}
