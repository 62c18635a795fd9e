package wire

import (
	"net/http"

	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/adaptor"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/data/repository"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/gateway"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/usecase"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/pkg/mailer"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/pkg/middleware"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired dependencies.
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and routes.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	mail := mailer.NewMailer(config.Email, logger)
	gateways := gateway.Set{
		IntaSend: gateway.NewIntaSendClient(config.IntaSend, logger),
		PayPal:   gateway.NewPayPalClient(config.PayPal, logger),
		Mpesa:    gateway.NewMpesaClient(config.Mpesa, logger),
	}

	service := usecase.NewService(repo, config, mail, gateways, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireAuth(r, handler.Auth, config, logger)
	wireDestination(r, handler.Destination, config, logger)
	wireSafari(r, handler.Safari, handler.Review, config, logger)
	wireAccommodation(r, handler.Accommodation, config, logger)
	wirePackage(r, handler.Package, config, logger)
	wireBooking(r, handler.Booking, config, logger)
	wirePayment(r, handler.Payment, config, logger)
	wireEnquiry(r, handler.Enquiry, config, logger)
	wireReview(r, handler.Review, config, logger)
	wireWishlist(r, handler.Wishlist, config, logger)
	wireContent(r, handler.Content, config, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
