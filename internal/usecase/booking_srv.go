package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/data/entity"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/data/repository"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/dto/request"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/dto/response"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/pkg/mailer"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Deposit charged up front for pay-on-arrival bookings.
const depositRate = 0.30

type BookingService interface {
	// Public endpoints
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetBooking(ctx context.Context, email string, isAdmin bool, id string) (*response.BookingResponse, error)

	// Authenticated endpoints
	GetMyBookings(ctx context.Context, email string) ([]response.BookingResponse, error)
	GetMyBookingHistory(ctx context.Context, userID string) ([]response.BookingHistoryResponse, error)
	UploadProofOfPayment(ctx context.Context, id string, req *request.UploadProofOfPaymentRequest) (*response.BookingResponse, error)

	// Admin endpoints
	ListBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	UpdateBookingStatus(ctx context.Context, id string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error)
	DeleteBooking(ctx context.Context, id string) error
}

type bookingService struct {
	repo *repository.Repository
	mail mailer.Mailer
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, mail mailer.Mailer, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		mail: mail,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	safariID, err := uuid.Parse(req.SafariID)
	if err != nil {
		return nil, fmt.Errorf("invalid safari ID format %s: %w", req.SafariID, err)
	}

	safari, err := s.repo.Safari.FindByID(ctx, safariID)
	if err != nil {
		return nil, fmt.Errorf("find safari: %w", err)
	}
	if safari == nil {
		return nil, fmt.Errorf("safari %s not found", req.SafariID)
	}

	if req.Guests > safari.MaxGroupSize {
		return nil, fmt.Errorf("group of %d exceeds maximum of %d for this safari", req.Guests, safari.MaxGroupSize)
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %s: %w", req.Date, err)
	}
	if date.Before(time.Now().Truncate(24 * time.Hour)) {
		return nil, fmt.Errorf("booking date cannot be in the past")
	}

	totalPrice := utils.RoundMoney(safari.Price * float64(req.Guests))

	// Only pay-on-arrival bookings carry an up-front deposit. Online and
	// bank transfer settle the full amount through their own flows.
	depositAmount := 0.0
	paymentMethod := entity.PaymentMethod(req.PaymentMethod)
	if paymentMethod == entity.PaymentMethodCashOnArrival {
		depositAmount = utils.RoundMoney(totalPrice * depositRate)
	}

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:                       req.Name,
		Email:                      req.Email,
		Phone:                      req.Phone,
		Date:                       date,
		Guests:                     req.Guests,
		SpecialRequirements:        req.SpecialRequirements,
		SafariID:                   safariID,
		Status:                     entity.BookingStatusPending,
		TotalPrice:                 totalPrice,
		PaymentStatus:              entity.BookingPaymentPending,
		PaymentHistory:             []byte("[]"),
		InsuranceOptions:           req.InsuranceOptions,
		EmergencyContactName:       req.EmergencyContactName,
		EmergencyContactPhone:      req.EmergencyContactPhone,
		SpecialDietaryRequirements: req.SpecialDietaryRequirements,
		PaymentMethod:              paymentMethod,
		DepositAmount:              depositAmount,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.linkToUser(ctx, booking)
	s.sendConfirmationEmail(booking, safari)

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("safari_id", safariID.String()),
		zap.Float64("total_price", totalPrice),
		zap.String("payment_method", req.PaymentMethod),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) GetBooking(ctx context.Context, email string, isAdmin bool, id string) (*response.BookingResponse, error) {
	booking, err := s.findBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	// Non-staff may only read bookings made with their own email.
	if !isAdmin && booking.Email != email {
		return nil, fmt.Errorf("booking %s not found", id)
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) GetMyBookings(ctx context.Context, email string) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	return response.BookingsToResponse(bookings), nil
}

func (s *bookingService) GetMyBookingHistory(ctx context.Context, userID string) ([]response.BookingHistoryResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	entries, err := s.repo.BookingHistory.FindByUserID(ctx, userUUID)
	if err != nil {
		return nil, fmt.Errorf("find booking history: %w", err)
	}

	out := make([]response.BookingHistoryResponse, 0, len(entries))
	for _, entry := range entries {
		booking, err := s.repo.Booking.FindByID(ctx, entry.BookingID)
		if err != nil {
			s.log.Warn("Failed to load booking for history entry",
				zap.Error(err),
				zap.String("booking_id", entry.BookingID.String()),
			)
		}
		out = append(out, response.BookingHistoryToResponse(entry, booking))
	}
	return out, nil
}

func (s *bookingService) UploadProofOfPayment(ctx context.Context, id string, req *request.UploadProofOfPaymentRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	booking, err := s.findBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	if booking.PaymentMethod != entity.PaymentMethodBankTransfer {
		return nil, fmt.Errorf("proof of payment only applies to bank transfer bookings")
	}

	booking.ProofOfPayment = &req.ProofOfPayment
	booking.UpdatedAt = time.Now()

	if err := s.repo.Booking.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}

	s.log.Info("Proof of payment uploaded", zap.String("booking_id", booking.ID.String()))

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) ListBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	bookings, err := s.repo.Booking.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	total, err := s.repo.Booking.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	return response.NewPaginatedResponse(response.BookingsToResponse(bookings), page, req.Limit(), total), nil
}

func (s *bookingService) UpdateBookingStatus(ctx context.Context, id string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	booking, err := s.findBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	newStatus := entity.BookingStatus(req.Status)
	if booking.Status == entity.BookingStatusCancelled && newStatus != entity.BookingStatusCancelled {
		return nil, fmt.Errorf("cannot reopen a cancelled booking")
	}

	booking.Status = newStatus
	booking.UpdatedAt = time.Now()

	if err := s.repo.Booking.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}

	s.log.Info("Booking status updated",
		zap.String("booking_id", booking.ID.String()),
		zap.String("status", req.Status),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) DeleteBooking(ctx context.Context, id string) error {
	bookingID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid booking ID format %s: %w", id, err)
	}

	return s.repo.Booking.Delete(ctx, bookingID)
}

// linkToUser records the booking in the matching user's history when the
// booking email belongs to a registered account. Failures are logged and
// swallowed; the booking stands either way.
func (s *bookingService) linkToUser(ctx context.Context, booking *entity.Booking) {
	user, err := s.repo.User.FindByEmail(ctx, booking.Email)
	if err != nil {
		s.log.Warn("Failed to look up user for booking history",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return
	}
	if user == nil {
		return
	}

	entry := &entity.BookingHistory{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:    user.ID,
		BookingID: booking.ID,
	}
	if err := s.repo.BookingHistory.Create(ctx, entry); err != nil {
		s.log.Warn("Failed to create booking history entry",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
	}
}

// sendConfirmationEmail is best effort. The booking is already persisted, so
// a mail failure must not surface to the caller.
func (s *bookingService) sendConfirmationEmail(booking *entity.Booking, safari *entity.Safari) {
	subject := "Booking Received: " + safari.Title
	body := fmt.Sprintf(
		"Dear %s,\n\nWe have received your booking for %s on %s for %d guest(s).\n"+
			"Total price: %.2f\nStatus: pending\n\nOur team will be in touch shortly to confirm.\n",
		booking.Name, safari.Title, booking.Date.Format("2006-01-02"), booking.Guests, booking.TotalPrice,
	)

	if err := s.mail.Send(booking.Email, subject, body); err != nil {
		s.log.Warn("Failed to send booking confirmation email",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
	}
}

func (s *bookingService) findBooking(ctx context.Context, id string) (*entity.Booking, error) {
	bookingID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", id, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", id)
	}

	return booking, nil
}
