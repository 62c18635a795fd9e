package wire

import (
	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/adaptor"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/pkg/middleware"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAccommodation(
	r chi.Router,
	accommodationHandler *adaptor.AccommodationHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/accommodations", accommodationHandler.List)
	r.Get("/api/accommodations/featured", accommodationHandler.Featured)
	r.Get("/api/accommodations/{id}", accommodationHandler.Get)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/accommodations", func(r chi.Router) {
		r.Use(middleware.AuthJWT(config.JWT, log))
		r.Use(middleware.Admin(log))

		r.Post("/", accommodationHandler.Create)
		r.Put("/{id}", accommodationHandler.Update)
		r.Delete("/{id}", accommodationHandler.Delete)

		r.Post("/{id}/gallery", accommodationHandler.AddGalleryImage)
		r.Delete("/{id}/gallery/{imageId}", accommodationHandler.DeleteGalleryImage)
	})
}
