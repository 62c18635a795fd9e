package wire

import (
	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/adaptor"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/pkg/middleware"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePackage(
	r chi.Router,
	packageHandler *adaptor.PackageHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/packages", packageHandler.List)
	r.Get("/api/packages/{id}", packageHandler.Get)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/packages", func(r chi.Router) {
		r.Use(middleware.AuthJWT(config.JWT, log))
		r.Use(middleware.Admin(log))

		r.Post("/", packageHandler.Create)
		r.Put("/{id}", packageHandler.Update)
		r.Delete("/{id}", packageHandler.Delete)

		r.Post("/{id}/safaris", packageHandler.AddSafari)
		r.Delete("/{id}/safaris/{safariId}", packageHandler.RemoveSafari)
	})
}
