package wire

import (
	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/adaptor"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/pkg/middleware"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireWishlist(
	r chi.Router,
	wishlistHandler *adaptor.WishlistHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthJWT(config.JWT, log))

		r.Get("/api/wishlist", wishlistHandler.List)
		r.Post("/api/wishlist", wishlistHandler.Add)
		r.Delete("/api/wishlist/{id}", wishlistHandler.Remove)
	})
}
