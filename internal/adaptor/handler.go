package adaptor

import (
	"net/http"
	"strings"

	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/usecase"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth          *AuthHandler
	Destination   *DestinationHandler
	Safari        *SafariHandler
	Accommodation *AccommodationHandler
	Package       *PackageHandler
	Booking       *BookingHandler
	Payment       *PaymentHandler
	Enquiry       *EnquiryHandler
	Review        *ReviewHandler
	Wishlist      *WishlistHandler
	Content       *ContentHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:          NewAuthHandler(service.Auth, log),
		Destination:   NewDestinationHandler(service.Destination, log),
		Safari:        NewSafariHandler(service.Safari, log),
		Accommodation: NewAccommodationHandler(service.Accommodation, log),
		Package:       NewPackageHandler(service.Package, log),
		Booking:       NewBookingHandler(service.Booking, log),
		Payment:       NewPaymentHandler(service.Payment, log),
		Enquiry:       NewEnquiryHandler(service.Enquiry, log),
		Review:        NewReviewHandler(service.Review, log),
		Wishlist:      NewWishlistHandler(service.Wishlist, log),
		Content:       NewContentHandler(service.Content, log),
	}
}

// handleServiceError maps service error strings onto HTTP statuses. Services
// signal the class of failure in the message, everything else is a 500.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "invalid"):
		log.Warn("Invalid input for "+operation, zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "unauthorized"):
		log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, errMsg)

	case strings.Contains(errMsg, "already"),
		strings.Contains(errMsg, "cannot"),
		strings.Contains(errMsg, "exceeds"),
		strings.Contains(errMsg, "required"),
		strings.Contains(errMsg, "only applies"):
		log.Warn(operation+" rejected", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		log.Error(operation+" failed", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
