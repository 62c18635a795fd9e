package usecase

import (
	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/data/repository"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/gateway"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/pkg/mailer"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth          AuthService
	Destination   DestinationService
	Safari        SafariService
	Accommodation AccommodationService
	Package       PackageService
	Booking       BookingService
	Payment       PaymentService
	Enquiry       EnquiryService
	Review        ReviewService
	Wishlist      WishlistService
	Content       ContentService
}

func NewService(
	repo *repository.Repository,
	config *utils.Config,
	mail mailer.Mailer,
	gateways gateway.Set,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:          NewAuthService(repo, config, log),
		Destination:   NewDestinationService(repo, log),
		Safari:        NewSafariService(repo, log),
		Accommodation: NewAccommodationService(repo, log),
		Package:       NewPackageService(repo, log),
		Booking:       NewBookingService(repo, mail, log),
		Payment:       NewPaymentService(repo, gateways, mail, log),
		Enquiry:       NewEnquiryService(repo, mail, log),
		Review:        NewReviewService(repo, log),
		Wishlist:      NewWishlistService(repo, log),
		Content:       NewContentService(repo, log),
	}
}
