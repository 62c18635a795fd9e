package wire

import (
	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/adaptor"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/pkg/middleware"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireDestination(
	r chi.Router,
	destinationHandler *adaptor.DestinationHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/destinations", destinationHandler.List)
	r.Get("/api/destinations/{id}", destinationHandler.Get)
	r.Get("/api/destinations/{id}/safaris", destinationHandler.GetSafaris)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/destinations", func(r chi.Router) {
		r.Use(middleware.AuthJWT(config.JWT, log))
		r.Use(middleware.Admin(log))

		r.Post("/", destinationHandler.Create)
		r.Put("/{id}", destinationHandler.Update)
		r.Delete("/{id}", destinationHandler.Delete)
	})
}
