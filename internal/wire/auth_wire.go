package wire

import (
	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/adaptor"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/pkg/middleware"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/auth/register", authHandler.Register)
	r.Post("/api/auth/login", authHandler.Login)
	r.Post("/api/auth/refresh", authHandler.Refresh)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthJWT(config.JWT, log))

		r.Get("/api/auth/profile", authHandler.GetProfile)
		r.Put("/api/auth/profile", authHandler.UpdateProfile)
	})
}
