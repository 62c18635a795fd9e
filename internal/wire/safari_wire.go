package wire

import (
	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/adaptor"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/pkg/middleware"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireSafari(
	r chi.Router,
	safariHandler *adaptor.SafariHandler,
	reviewHandler *adaptor.ReviewHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// /featured must be registered before /{id} so chi does not treat it as an ID.
	r.Get("/api/safaris", safariHandler.List)
	r.Get("/api/safaris/featured", safariHandler.Featured)
	r.Get("/api/safaris/{id}", safariHandler.Get)
	r.Get("/api/safaris/{id}/reviews", reviewHandler.SafariReviews)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/safaris", func(r chi.Router) {
		r.Use(middleware.AuthJWT(config.JWT, log))
		r.Use(middleware.Admin(log))

		r.Post("/", safariHandler.Create)
		r.Put("/{id}", safariHandler.Update)
		r.Delete("/{id}", safariHandler.Delete)

		r.Post("/{id}/itinerary", safariHandler.AddItinerary)
		r.Put("/{id}/itinerary/{itineraryId}", safariHandler.UpdateItinerary)
		r.Delete("/{id}/itinerary/{itineraryId}", safariHandler.DeleteItinerary)
	})
}
