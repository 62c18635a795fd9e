package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/data/entity"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/data/repository"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testSafari(price float64, maxGroup int) *entity.Safari {
	now := time.Now()
	return &entity.Safari{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		DestinationID: uuid.New(),
		Title:         "Masai Mara Classic",
		Description:   "Five days in the Mara",
		Duration:      5,
		Price:         price,
		MaxGroupSize:  maxGroup,
	}
}

func futureDate() string {
	return time.Now().AddDate(0, 1, 0).Format("2006-01-02")
}

func newBookingService(repo *repository.Repository, mail *fakeMailer) BookingService {
	return NewBookingService(repo, mail, zap.NewNop())
}

func validBookingRequest(safariID, method string) *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		Name:          "Jane Traveller",
		Email:         "jane@example.com",
		Phone:         "0712345678",
		Date:          futureDate(),
		Guests:        3,
		SafariID:      safariID,
		PaymentMethod: method,
	}
}

func TestCreateBookingCashOnArrivalCharges30PercentDeposit(t *testing.T) {
	safari := testSafari(1000, 12)
	repo := &repository.Repository{
		Safari:         newFakeSafariRepo(safari),
		Booking:        newFakeBookingRepo(),
		BookingHistory: &fakeBookingHistoryRepo{},
		User:           newFakeUserRepo(),
	}
	svc := newBookingService(repo, &fakeMailer{})

	resp, err := svc.CreateBooking(context.Background(), validBookingRequest(safari.ID.String(), "cash_on_arrival"))
	require.NoError(t, err)

	assert.Equal(t, 3000.0, resp.TotalPrice)
	assert.Equal(t, 900.0, resp.DepositAmount)
	assert.Equal(t, entity.BookingStatusPending, resp.Status)
	assert.Equal(t, entity.BookingPaymentPending, resp.PaymentStatus)
}

func TestCreateBookingBankTransferHasNoDeposit(t *testing.T) {
	safari := testSafari(850.50, 12)
	repo := &repository.Repository{
		Safari:         newFakeSafariRepo(safari),
		Booking:        newFakeBookingRepo(),
		BookingHistory: &fakeBookingHistoryRepo{},
		User:           newFakeUserRepo(),
	}
	svc := newBookingService(repo, &fakeMailer{})

	resp, err := svc.CreateBooking(context.Background(), validBookingRequest(safari.ID.String(), "bank_transfer"))
	require.NoError(t, err)

	assert.Equal(t, 2551.5, resp.TotalPrice)
	assert.Zero(t, resp.DepositAmount)
}

func TestCreateBookingRejectsOversizedGroup(t *testing.T) {
	safari := testSafari(1000, 2)
	repo := &repository.Repository{
		Safari:         newFakeSafariRepo(safari),
		Booking:        newFakeBookingRepo(),
		BookingHistory: &fakeBookingHistoryRepo{},
		User:           newFakeUserRepo(),
	}
	svc := newBookingService(repo, &fakeMailer{})

	_, err := svc.CreateBooking(context.Background(), validBookingRequest(safari.ID.String(), "online"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds maximum")
}

func TestCreateBookingRejectsPastDate(t *testing.T) {
	safari := testSafari(1000, 12)
	repo := &repository.Repository{
		Safari:         newFakeSafariRepo(safari),
		Booking:        newFakeBookingRepo(),
		BookingHistory: &fakeBookingHistoryRepo{},
		User:           newFakeUserRepo(),
	}
	svc := newBookingService(repo, &fakeMailer{})

	req := validBookingRequest(safari.ID.String(), "online")
	req.Date = time.Now().AddDate(0, 0, -2).Format("2006-01-02")

	_, err := svc.CreateBooking(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be in the past")
}

func TestCreateBookingUnknownSafari(t *testing.T) {
	repo := &repository.Repository{
		Safari:         newFakeSafariRepo(),
		Booking:        newFakeBookingRepo(),
		BookingHistory: &fakeBookingHistoryRepo{},
		User:           newFakeUserRepo(),
	}
	svc := newBookingService(repo, &fakeMailer{})

	_, err := svc.CreateBooking(context.Background(), validBookingRequest(uuid.NewString(), "online"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestCreateBookingSucceedsWhenEmailFails(t *testing.T) {
	safari := testSafari(1000, 12)
	bookings := newFakeBookingRepo()
	repo := &repository.Repository{
		Safari:         newFakeSafariRepo(safari),
		Booking:        bookings,
		BookingHistory: &fakeBookingHistoryRepo{},
		User:           newFakeUserRepo(),
	}
	svc := newBookingService(repo, &fakeMailer{fail: true})

	resp, err := svc.CreateBooking(context.Background(), validBookingRequest(safari.ID.String(), "online"))
	require.NoError(t, err)
	assert.Len(t, bookings.bookings, 1)
	assert.Equal(t, entity.BookingStatusPending, resp.Status)
}

func TestCreateBookingLinksRegisteredUserHistory(t *testing.T) {
	safari := testSafari(1000, 12)
	user := &entity.User{
		Base:     entity.Base{ID: uuid.New()},
		Username: "jane",
		Email:    "jane@example.com",
		Role:     entity.RoleCustomer,
		IsActive: true,
	}
	history := &fakeBookingHistoryRepo{}
	repo := &repository.Repository{
		Safari:         newFakeSafariRepo(safari),
		Booking:        newFakeBookingRepo(),
		BookingHistory: history,
		User:           newFakeUserRepo(user),
	}
	svc := newBookingService(repo, &fakeMailer{})

	resp, err := svc.CreateBooking(context.Background(), validBookingRequest(safari.ID.String(), "online"))
	require.NoError(t, err)

	require.Len(t, history.entries, 1)
	assert.Equal(t, user.ID, history.entries[0].UserID)
	assert.Equal(t, resp.ID, history.entries[0].BookingID.String())
}

func TestCreateBookingGuestEmailSkipsHistory(t *testing.T) {
	safari := testSafari(1000, 12)
	history := &fakeBookingHistoryRepo{}
	repo := &repository.Repository{
		Safari:         newFakeSafariRepo(safari),
		Booking:        newFakeBookingRepo(),
		BookingHistory: history,
		User:           newFakeUserRepo(),
	}
	svc := newBookingService(repo, &fakeMailer{})

	_, err := svc.CreateBooking(context.Background(), validBookingRequest(safari.ID.String(), "online"))
	require.NoError(t, err)
	assert.Empty(t, history.entries)
}

func TestUploadProofOfPaymentOnlyForBankTransfer(t *testing.T) {
	booking := &entity.Booking{
		Base:          entity.Base{ID: uuid.New()},
		PaymentMethod: entity.PaymentMethodOnline,
		Status:        entity.BookingStatusPending,
	}
	repo := &repository.Repository{
		Booking: newFakeBookingRepo(booking),
	}
	svc := newBookingService(repo, &fakeMailer{})

	_, err := svc.UploadProofOfPayment(context.Background(), booking.ID.String(),
		&request.UploadProofOfPaymentRequest{ProofOfPayment: "receipt.jpg"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "only applies to bank transfer")
}

func TestUploadProofOfPaymentStoresReceipt(t *testing.T) {
	booking := &entity.Booking{
		Base:          entity.Base{ID: uuid.New()},
		PaymentMethod: entity.PaymentMethodBankTransfer,
		Status:        entity.BookingStatusPending,
	}
	repo := &repository.Repository{
		Booking: newFakeBookingRepo(booking),
	}
	svc := newBookingService(repo, &fakeMailer{})

	resp, err := svc.UploadProofOfPayment(context.Background(), booking.ID.String(),
		&request.UploadProofOfPaymentRequest{ProofOfPayment: "receipt.jpg"})
	require.NoError(t, err)
	require.NotNil(t, resp.ProofOfPayment)
	assert.Equal(t, "receipt.jpg", *resp.ProofOfPayment)
}

func TestUpdateBookingStatusCannotReopenCancelled(t *testing.T) {
	booking := &entity.Booking{
		Base:   entity.Base{ID: uuid.New()},
		Status: entity.BookingStatusCancelled,
	}
	repo := &repository.Repository{
		Booking: newFakeBookingRepo(booking),
	}
	svc := newBookingService(repo, &fakeMailer{})

	_, err := svc.UpdateBookingStatus(context.Background(), booking.ID.String(),
		&request.UpdateBookingStatusRequest{Status: "confirmed"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot reopen")
}

func TestGetMyBookingHistoryLoadsBookings(t *testing.T) {
	userID := uuid.New()
	booking := &entity.Booking{
		Base:   entity.Base{ID: uuid.New()},
		Email:  "jane@example.com",
		Status: entity.BookingStatusConfirmed,
	}
	history := &fakeBookingHistoryRepo{entries: []*entity.BookingHistory{{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		UserID:     userID,
		BookingID:  booking.ID,
	}}}
	repo := &repository.Repository{
		Booking:        newFakeBookingRepo(booking),
		BookingHistory: history,
	}
	svc := newBookingService(repo, &fakeMailer{})

	entries, err := svc.GetMyBookingHistory(context.Background(), userID.String())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.NotNil(t, entries[0].Booking)
	assert.Equal(t, booking.ID.String(), entries[0].Booking.ID)
}

func TestGetBookingHidesForeignBookings(t *testing.T) {
	booking := &entity.Booking{
		Base:   entity.Base{ID: uuid.New(), CreatedAt: time.Now()},
		Email:  "jane@example.com",
		Status: entity.BookingStatusPending,
	}
	repo := &repository.Repository{
		Booking: newFakeBookingRepo(booking),
	}
	svc := newBookingService(repo, &fakeMailer{})

	_, err := svc.GetBooking(context.Background(), "stranger@example.com", false, booking.ID.String())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	resp, err := svc.GetBooking(context.Background(), "jane@example.com", false, booking.ID.String())
	require.NoError(t, err)
	assert.Equal(t, booking.ID.String(), resp.ID)

	// Staff can read any booking.
	_, err = svc.GetBooking(context.Background(), "admin@example.com", true, booking.ID.String())
	require.NoError(t, err)
}
