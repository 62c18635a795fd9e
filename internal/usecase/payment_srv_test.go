package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/data/entity"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/data/repository"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/dto/request"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/gateway"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func pendingBooking(total, deposit float64) *entity.Booking {
	now := time.Now()
	return &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:          "jane@example.com",
		Status:         entity.BookingStatusPending,
		TotalPrice:     total,
		PaymentStatus:  entity.BookingPaymentPending,
		PaymentHistory: []byte("[]"),
		DepositAmount:  deposit,
	}
}

func pendingPayment(bookingID *uuid.UUID, enquiryID *uuid.UUID, gw entity.PaymentGateway, reference string) *entity.Payment {
	now := time.Now()
	return &entity.Payment{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:      uuid.New(),
		BookingID:   bookingID,
		EnquiryID:   enquiryID,
		Amount:      500,
		Currency:    "USD",
		Status:      entity.PaymentStatusPending,
		Reference:   reference,
		Gateway:     gw,
		PaymentType: entity.PaymentTypeFull,
	}
}

func newPaymentService(repo *repository.Repository, gateways gateway.Set) PaymentService {
	return NewPaymentService(repo, gateways, &fakeMailer{}, zap.NewNop())
}

func TestInitiatePaymentRequiresExactlyOneTarget(t *testing.T) {
	svc := newPaymentService(&repository.Repository{}, gateway.Set{})

	_, err := svc.InitiatePayment(context.Background(), uuid.NewString(), &request.InitiatePaymentRequest{
		Gateway:     "paypal",
		PaymentType: "full",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one of booking_id and enquiry_id")

	bookingID := uuid.NewString()
	enquiryID := uuid.NewString()
	_, err = svc.InitiatePayment(context.Background(), uuid.NewString(), &request.InitiatePaymentRequest{
		BookingID:   &bookingID,
		EnquiryID:   &enquiryID,
		Gateway:     "paypal",
		PaymentType: "full",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one of booking_id and enquiry_id")
}

func TestInitiatePaymentRejectsPaidBooking(t *testing.T) {
	booking := pendingBooking(1000, 0)
	booking.PaymentStatus = entity.BookingPaymentPaid
	repo := &repository.Repository{
		Booking: newFakeBookingRepo(booking),
		Payment: newFakePaymentRepo(),
	}
	client := &fakeGatewayClient{result: &gateway.CheckoutResult{RedirectURL: "https://pay"}}
	svc := newPaymentService(repo, gateway.Set{PayPal: client})

	bookingID := booking.ID.String()
	_, err := svc.InitiatePayment(context.Background(), uuid.NewString(), &request.InitiatePaymentRequest{
		BookingID:   &bookingID,
		Gateway:     "paypal",
		PaymentType: "full",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already paid")
}

func TestInitiatePaymentDepositFallsBackTo30Percent(t *testing.T) {
	booking := pendingBooking(2000, 0)
	payments := newFakePaymentRepo()
	repo := &repository.Repository{
		Booking: newFakeBookingRepo(booking),
		Payment: payments,
	}
	client := &fakeGatewayClient{result: &gateway.CheckoutResult{RedirectURL: "https://pay"}}
	svc := newPaymentService(repo, gateway.Set{PayPal: client})

	bookingID := booking.ID.String()
	resp, err := svc.InitiatePayment(context.Background(), uuid.NewString(), &request.InitiatePaymentRequest{
		BookingID:   &bookingID,
		Gateway:     "paypal",
		PaymentType: "deposit",
	})
	require.NoError(t, err)

	assert.Equal(t, 600.0, resp.Amount)
	assert.True(t, resp.IsDeposit)
	assert.Equal(t, 600.0, client.lastRequest.Amount)
	assert.Len(t, payments.payments, 1)
}

func TestInitiatePaymentMpesaRequiresPhone(t *testing.T) {
	booking := pendingBooking(1000, 0)
	repo := &repository.Repository{
		Booking: newFakeBookingRepo(booking),
		Payment: newFakePaymentRepo(),
	}
	client := &fakeGatewayClient{result: &gateway.CheckoutResult{ProviderRef: "ws_CO_1"}}
	svc := newPaymentService(repo, gateway.Set{Mpesa: client})

	bookingID := booking.ID.String()
	_, err := svc.InitiatePayment(context.Background(), uuid.NewString(), &request.InitiatePaymentRequest{
		BookingID:   &bookingID,
		Gateway:     "mpesa",
		PaymentType: "full",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "phone is required")
}

func TestInitiatePaymentMpesaKeysOnProviderRef(t *testing.T) {
	booking := pendingBooking(1000, 0)
	payments := newFakePaymentRepo()
	repo := &repository.Repository{
		Booking: newFakeBookingRepo(booking),
		Payment: payments,
	}
	client := &fakeGatewayClient{result: &gateway.CheckoutResult{ProviderRef: "ws_CO_260831"}}
	svc := newPaymentService(repo, gateway.Set{Mpesa: client})

	bookingID := booking.ID.String()
	resp, err := svc.InitiatePayment(context.Background(), uuid.NewString(), &request.InitiatePaymentRequest{
		BookingID:   &bookingID,
		Gateway:     "mpesa",
		PaymentType: "full",
		Phone:       "254712345678",
	})
	require.NoError(t, err)

	// The STK callback carries the CheckoutRequestID, so the stored reference
	// must match it for reconciliation to find the payment.
	assert.Equal(t, "ws_CO_260831", resp.Reference)
	assert.Equal(t, "KES", resp.Currency)
}

func TestInitiatePaymentEnquiryNeedsAmount(t *testing.T) {
	enquiry := &entity.AccommodationEnquiry{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		Email:      "jane@example.com",
		Status:     entity.EnquiryStatusPending,
	}
	repo := &repository.Repository{
		Enquiry: newFakeEnquiryRepo(enquiry),
		Payment: newFakePaymentRepo(),
	}
	client := &fakeGatewayClient{result: &gateway.CheckoutResult{RedirectURL: "https://pay"}}
	svc := newPaymentService(repo, gateway.Set{IntaSend: client})

	enquiryID := enquiry.ID.String()
	_, err := svc.InitiatePayment(context.Background(), uuid.NewString(), &request.InitiatePaymentRequest{
		EnquiryID:   &enquiryID,
		Gateway:     "intasend",
		PaymentType: "full",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "amount is required")

	resp, err := svc.InitiatePayment(context.Background(), uuid.NewString(), &request.InitiatePaymentRequest{
		EnquiryID:   &enquiryID,
		Gateway:     "intasend",
		PaymentType: "full",
		Amount:      450,
	})
	require.NoError(t, err)
	assert.Equal(t, 450.0, resp.Amount)
}

func TestPayPalWebhookUnknownReferenceIsDropped(t *testing.T) {
	payments := newFakePaymentRepo()
	svc := newPaymentService(&repository.Repository{Payment: payments}, gateway.Set{})

	req := &request.PayPalWebhookRequest{EventType: "CHECKOUT.ORDER.APPROVED"}
	req.Resource.CustomID = "PAY-NOPE"

	err := svc.HandlePayPalWebhook(context.Background(), req, json.RawMessage(`{}`))
	require.NoError(t, err)
}

func TestPayPalWebhookSuccessConfirmsBooking(t *testing.T) {
	booking := pendingBooking(1000, 0)
	payment := pendingPayment(&booking.ID, nil, entity.GatewayPayPal, "PAY-123")
	bookings := newFakeBookingRepo(booking)
	repo := &repository.Repository{
		Booking: bookings,
		Payment: newFakePaymentRepo(payment),
		User:    newFakeUserRepo(),
	}
	svc := newPaymentService(repo, gateway.Set{})

	req := &request.PayPalWebhookRequest{EventType: "PAYMENT.CAPTURE.COMPLETED"}
	req.Resource.CustomID = "PAY-123"

	raw := json.RawMessage(`{"event_type":"PAYMENT.CAPTURE.COMPLETED"}`)
	require.NoError(t, svc.HandlePayPalWebhook(context.Background(), req, raw))

	assert.Equal(t, entity.PaymentStatusCompleted, payment.Status)
	assert.Equal(t, entity.BookingStatusConfirmed, booking.Status)
	assert.Equal(t, entity.BookingPaymentPaid, booking.PaymentStatus)

	record := bookings.appendedHistory[booking.ID]
	require.NotNil(t, record)
	assert.Contains(t, string(record), "PAY-123")
}

func TestWebhookRedeliveryIsIdempotent(t *testing.T) {
	booking := pendingBooking(1000, 0)
	payment := pendingPayment(&booking.ID, nil, entity.GatewayPayPal, "PAY-123")
	payment.Status = entity.PaymentStatusCompleted
	bookings := newFakeBookingRepo(booking)
	repo := &repository.Repository{
		Booking: bookings,
		Payment: newFakePaymentRepo(payment),
		User:    newFakeUserRepo(),
	}
	svc := newPaymentService(repo, gateway.Set{})

	req := &request.PayPalWebhookRequest{EventType: "PAYMENT.CAPTURE.COMPLETED"}
	req.Resource.CustomID = "PAY-123"

	require.NoError(t, svc.HandlePayPalWebhook(context.Background(), req, json.RawMessage(`{}`)))

	// Already completed, so the booking must not be touched again.
	assert.Equal(t, entity.BookingStatusPending, booking.Status)
	assert.Empty(t, bookings.appendedHistory)
}

func TestMpesaCallbackFailureFailsPaymentOnly(t *testing.T) {
	booking := pendingBooking(1000, 0)
	payment := pendingPayment(&booking.ID, nil, entity.GatewayMpesa, "ws_CO_42")
	repo := &repository.Repository{
		Booking: newFakeBookingRepo(booking),
		Payment: newFakePaymentRepo(payment),
		User:    newFakeUserRepo(),
	}
	svc := newPaymentService(repo, gateway.Set{})

	req := &request.MpesaCallbackRequest{}
	req.Body.StkCallback.CheckoutRequestID = "ws_CO_42"
	req.Body.StkCallback.ResultCode = 1032
	req.Body.StkCallback.ResultDesc = "Request cancelled by user"

	require.NoError(t, svc.HandleMpesaCallback(context.Background(), req, json.RawMessage(`{}`)))

	assert.Equal(t, entity.PaymentStatusFailed, payment.Status)
	// Failure never cascades; the customer can retry another method.
	assert.Equal(t, entity.BookingStatusPending, booking.Status)
	assert.Equal(t, entity.BookingPaymentPending, booking.PaymentStatus)
}

func TestIntaSendWebhookCompletesEnquiry(t *testing.T) {
	enquiry := &entity.AccommodationEnquiry{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		Email:      "jane@example.com",
		Status:     entity.EnquiryStatusInProgress,
	}
	payment := pendingPayment(nil, &enquiry.ID, entity.GatewayIntaSend, "STS-REF-1")
	repo := &repository.Repository{
		Enquiry: newFakeEnquiryRepo(enquiry),
		Payment: newFakePaymentRepo(payment),
		User:    newFakeUserRepo(),
	}
	svc := newPaymentService(repo, gateway.Set{})

	req := &request.IntaSendWebhookRequest{APIRef: "STS-REF-1", State: "COMPLETE"}
	require.NoError(t, svc.HandleIntaSendWebhook(context.Background(), req, json.RawMessage(`{}`)))

	assert.Equal(t, entity.PaymentStatusCompleted, payment.Status)
	assert.Equal(t, entity.EnquiryStatusCompleted, enquiry.Status)
}

func TestIntaSendWebhookIgnoresIntermediateStates(t *testing.T) {
	payment := pendingPayment(nil, nil, entity.GatewayIntaSend, "STS-REF-2")
	repo := &repository.Repository{
		Payment: newFakePaymentRepo(payment),
	}
	svc := newPaymentService(repo, gateway.Set{})

	req := &request.IntaSendWebhookRequest{APIRef: "STS-REF-2", State: "PROCESSING"}
	require.NoError(t, svc.HandleIntaSendWebhook(context.Background(), req, json.RawMessage(`{}`)))

	assert.Equal(t, entity.PaymentStatusPending, payment.Status)
}

func TestGetPaymentHidesForeignPayments(t *testing.T) {
	payment := pendingPayment(nil, nil, entity.GatewayPayPal, "PAY-9")
	repo := &repository.Repository{
		Payment: newFakePaymentRepo(payment),
	}
	svc := newPaymentService(repo, gateway.Set{})

	_, err := svc.GetPayment(context.Background(), uuid.NewString(), payment.ID.String())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	resp, err := svc.GetPayment(context.Background(), payment.UserID.String(), payment.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "PAY-9", resp.Reference)
}
