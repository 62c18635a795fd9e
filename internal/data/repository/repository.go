package repository

import (
	"github.com/solvotoursandsafaris/solvotoursandsafaris/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User                 UserRepository
	Destination          DestinationRepository
	Safari               SafariRepository
	Itinerary            ItineraryRepository
	Accommodation        AccommodationRepository
	AccommodationGallery AccommodationGalleryRepository
	Package              PackageRepository
	Booking              BookingRepository
	BookingHistory       BookingHistoryRepository
	Payment              PaymentRepository
	Enquiry              EnquiryRepository
	EnquiryMessage       EnquiryMessageRepository
	Review               ReviewRepository
	Wishlist             WishlistRepository
	FAQ                  FAQRepository
	Blog                 BlogRepository
	Gallery              GalleryRepository
	Content              ContentRepository
	Contact              ContactRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:                 NewUserRepository(db, log),
		Destination:          NewDestinationRepository(db, log),
		Safari:               NewSafariRepository(db, log),
		Itinerary:            NewItineraryRepository(db, log),
		Accommodation:        NewAccommodationRepository(db, log),
		AccommodationGallery: NewAccommodationGalleryRepository(db, log),
		Package:              NewPackageRepository(db, log),
		Booking:              NewBookingRepository(db, log),
		BookingHistory:       NewBookingHistoryRepository(db, log),
		Payment:              NewPaymentRepository(db, log),
		Enquiry:              NewEnquiryRepository(db, log),
		EnquiryMessage:       NewEnquiryMessageRepository(db, log),
		Review:               NewReviewRepository(db, log),
		Wishlist:             NewWishlistRepository(db, log),
		FAQ:                  NewFAQRepository(db, log),
		Blog:                 NewBlogRepository(db, log),
		Gallery:              NewGalleryRepository(db, log),
		Content:              NewContentRepository(db, log),
		Contact:              NewContactRepository(db, log),
	}
}
