package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/data/entity"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/data/repository"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/dto/request"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/dto/response"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/gateway"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/pkg/mailer"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PaymentService interface {
	// Authenticated endpoints
	InitiatePayment(ctx context.Context, userID string, req *request.InitiatePaymentRequest) (*response.InitiatePaymentResponse, error)
	GetMyPayments(ctx context.Context, userID string) ([]response.PaymentResponse, error)
	GetPayment(ctx context.Context, userID, id string) (*response.PaymentResponse, error)

	// Webhook endpoints. These always succeed from the provider's point of
	// view; an unknown reference is logged and dropped so the provider stops
	// retrying.
	HandlePayPalWebhook(ctx context.Context, req *request.PayPalWebhookRequest, raw json.RawMessage) error
	HandleMpesaCallback(ctx context.Context, req *request.MpesaCallbackRequest, raw json.RawMessage) error
	HandleIntaSendWebhook(ctx context.Context, req *request.IntaSendWebhookRequest, raw json.RawMessage) error
}

type paymentService struct {
	repo     *repository.Repository
	gateways gateway.Set
	mail     mailer.Mailer
	log      *zap.Logger
}

func NewPaymentService(repo *repository.Repository, gateways gateway.Set, mail mailer.Mailer, log *zap.Logger) PaymentService {
	return &paymentService{
		repo:     repo,
		gateways: gateways,
		mail:     mail,
		log:      log.With(zap.String("service", "payment")),
	}
}

func (s *paymentService) InitiatePayment(ctx context.Context, userID string, req *request.InitiatePaymentRequest) (*response.InitiatePaymentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Initiate payment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if (req.BookingID == nil) == (req.EnquiryID == nil) {
		return nil, fmt.Errorf("validation failed: exactly one of booking_id and enquiry_id is required")
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	paymentType := entity.PaymentType(req.PaymentType)
	gw := entity.PaymentGateway(req.Gateway)

	client, err := s.client(gw)
	if err != nil {
		return nil, err
	}
	if gw == entity.GatewayMpesa && req.Phone == "" {
		return nil, fmt.Errorf("validation failed: phone is required for mpesa payments")
	}

	var (
		bookingID   *uuid.UUID
		enquiryID   *uuid.UUID
		amount      float64
		email       string
		description string
	)

	switch {
	case req.BookingID != nil:
		booking, err := s.findBooking(ctx, *req.BookingID)
		if err != nil {
			return nil, err
		}
		if booking.PaymentStatus == entity.BookingPaymentPaid {
			return nil, fmt.Errorf("booking %s is already paid", *req.BookingID)
		}

		amount = booking.TotalPrice
		if paymentType == entity.PaymentTypeDeposit {
			amount = booking.DepositAmount
			if amount <= 0 {
				amount = utils.RoundMoney(booking.TotalPrice * depositRate)
			}
		}

		bookingID = &booking.ID
		email = booking.Email
		description = fmt.Sprintf("Safari booking %s", booking.ID.String())

	case req.EnquiryID != nil:
		enquiry, err := s.findEnquiry(ctx, *req.EnquiryID)
		if err != nil {
			return nil, err
		}
		if enquiry.Status == entity.EnquiryStatusCompleted {
			return nil, fmt.Errorf("enquiry %s is already completed", *req.EnquiryID)
		}
		if req.Amount <= 0 {
			return nil, fmt.Errorf("validation failed: amount is required for enquiry payments")
		}

		amount = utils.RoundMoney(req.Amount)
		enquiryID = &enquiry.ID
		email = enquiry.Email
		description = fmt.Sprintf("Accommodation enquiry %s", enquiry.ID.String())
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
		if gw == entity.GatewayMpesa {
			currency = "KES"
		}
	}

	reference := utils.GeneratePaymentReference()

	result, err := client.Checkout(ctx, gateway.CheckoutRequest{
		Reference:   reference,
		Amount:      amount,
		Currency:    currency,
		Email:       email,
		Phone:       req.Phone,
		Description: description,
	})
	if err != nil {
		s.log.Error("Gateway checkout failed",
			zap.Error(err),
			zap.String("gateway", req.Gateway),
			zap.String("reference", reference),
		)
		return nil, fmt.Errorf("payment gateway unavailable")
	}

	// M-Pesa reports back with the CheckoutRequestID, not our reference, so
	// that is what we key the payment on.
	if gw == entity.GatewayMpesa && result.ProviderRef != "" {
		reference = result.ProviderRef
	}

	now := time.Now()
	payment := &entity.Payment{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:      userUUID,
		BookingID:   bookingID,
		EnquiryID:   enquiryID,
		Amount:      amount,
		Currency:    currency,
		Status:      entity.PaymentStatusPending,
		Reference:   reference,
		Gateway:     gw,
		RawResponse: result.Raw,
		PaymentType: paymentType,
		IsDeposit:   paymentType == entity.PaymentTypeDeposit,
	}

	if err := s.repo.Payment.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}

	s.log.Info("Payment initiated",
		zap.String("payment_id", payment.ID.String()),
		zap.String("reference", reference),
		zap.String("gateway", req.Gateway),
		zap.Float64("amount", amount),
	)

	return &response.InitiatePaymentResponse{
		PaymentResponse: response.PaymentToResponse(payment),
		RedirectURL:     result.RedirectURL,
		ProviderRef:     result.ProviderRef,
	}, nil
}

func (s *paymentService) GetMyPayments(ctx context.Context, userID string) ([]response.PaymentResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	payments, err := s.repo.Payment.FindByUserID(ctx, userUUID)
	if err != nil {
		return nil, fmt.Errorf("find payments: %w", err)
	}
	return response.PaymentsToResponse(payments), nil
}

func (s *paymentService) GetPayment(ctx context.Context, userID, id string) (*response.PaymentResponse, error) {
	paymentID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid payment ID format %s: %w", id, err)
	}

	payment, err := s.repo.Payment.FindByID(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("find payment: %w", err)
	}
	if payment == nil || payment.UserID.String() != userID {
		return nil, fmt.Errorf("payment %s not found", id)
	}

	resp := response.PaymentToResponse(payment)
	return &resp, nil
}

// TODO: verify provider webhook signatures once the keys are provisioned.

func (s *paymentService) HandlePayPalWebhook(ctx context.Context, req *request.PayPalWebhookRequest, raw json.RawMessage) error {
	payment, err := s.lookup(ctx, req.Resource.CustomID, entity.GatewayPayPal)
	if err != nil || payment == nil {
		return err
	}

	switch {
	case req.EventType == "CHECKOUT.ORDER.APPROVED",
		req.EventType == "PAYMENT.CAPTURE.COMPLETED",
		req.Resource.Status == "COMPLETED",
		req.Resource.Status == "APPROVED":
		return s.markSuccess(ctx, payment, raw)
	case req.EventType == "PAYMENT.CAPTURE.DENIED",
		req.Resource.Status == "FAILED":
		return s.markFailure(ctx, payment, raw)
	}

	s.log.Info("Ignoring PayPal event",
		zap.String("event_type", req.EventType),
		zap.String("reference", payment.Reference),
	)
	return nil
}

func (s *paymentService) HandleMpesaCallback(ctx context.Context, req *request.MpesaCallbackRequest, raw json.RawMessage) error {
	cb := req.Body.StkCallback

	payment, err := s.lookup(ctx, cb.CheckoutRequestID, entity.GatewayMpesa)
	if err != nil || payment == nil {
		return err
	}

	if cb.ResultCode == 0 {
		return s.markSuccess(ctx, payment, raw)
	}

	s.log.Info("M-Pesa payment failed",
		zap.String("reference", payment.Reference),
		zap.Int("result_code", cb.ResultCode),
		zap.String("result_desc", cb.ResultDesc),
	)
	return s.markFailure(ctx, payment, raw)
}

func (s *paymentService) HandleIntaSendWebhook(ctx context.Context, req *request.IntaSendWebhookRequest, raw json.RawMessage) error {
	payment, err := s.lookup(ctx, req.APIRef, entity.GatewayIntaSend)
	if err != nil || payment == nil {
		return err
	}

	switch req.State {
	case "COMPLETE", "COMPLETED", "PAID":
		return s.markSuccess(ctx, payment, raw)
	case "FAILED":
		return s.markFailure(ctx, payment, raw)
	}

	s.log.Info("Ignoring IntaSend state",
		zap.String("state", req.State),
		zap.String("reference", payment.Reference),
	)
	return nil
}

// lookup resolves a webhook reference to a payment. A miss is not an error;
// the provider may be notifying about a payment we never recorded.
func (s *paymentService) lookup(ctx context.Context, reference string, gw entity.PaymentGateway) (*entity.Payment, error) {
	if reference == "" {
		s.log.Warn("Webhook without reference", zap.String("gateway", string(gw)))
		return nil, nil
	}

	payment, err := s.repo.Payment.FindByReference(ctx, reference, gw)
	if err != nil {
		return nil, fmt.Errorf("find payment by reference: %w", err)
	}
	if payment == nil {
		s.log.Warn("Webhook for unknown payment",
			zap.String("reference", reference),
			zap.String("gateway", string(gw)),
		)
		return nil, nil
	}
	return payment, nil
}

// markSuccess completes the payment and cascades to whatever it was paying
// for. Re-delivery of a success notification is a no-op.
func (s *paymentService) markSuccess(ctx context.Context, payment *entity.Payment, raw json.RawMessage) error {
	if payment.Status == entity.PaymentStatusCompleted {
		s.log.Info("Payment already completed", zap.String("reference", payment.Reference))
		return nil
	}

	if err := s.repo.Payment.UpdateStatus(ctx, payment.ID, entity.PaymentStatusCompleted, raw); err != nil {
		return fmt.Errorf("complete payment %s: %w", payment.Reference, err)
	}

	switch {
	case payment.BookingID != nil:
		if err := s.repo.Booking.UpdateStatuses(ctx, *payment.BookingID,
			entity.BookingStatusConfirmed, entity.BookingPaymentPaid); err != nil {
			return fmt.Errorf("confirm booking for payment %s: %w", payment.Reference, err)
		}

		record, err := json.Marshal([]map[string]any{{
			"reference": payment.Reference,
			"gateway":   payment.Gateway,
			"amount":    payment.Amount,
			"currency":  payment.Currency,
			"status":    entity.PaymentStatusCompleted,
			"timestamp": time.Now().Format(time.RFC3339),
		}})
		if err == nil {
			if err := s.repo.Booking.AppendPaymentHistory(ctx, *payment.BookingID, record); err != nil {
				s.log.Warn("Failed to append payment history",
					zap.Error(err),
					zap.String("booking_id", payment.BookingID.String()),
				)
			}
		}

	case payment.EnquiryID != nil:
		if err := s.repo.Enquiry.UpdateStatus(ctx, *payment.EnquiryID,
			entity.EnquiryStatusCompleted, nil); err != nil {
			return fmt.Errorf("complete enquiry for payment %s: %w", payment.Reference, err)
		}
	}

	s.sendReceiptEmail(ctx, payment)

	s.log.Info("Payment completed",
		zap.String("payment_id", payment.ID.String()),
		zap.String("reference", payment.Reference),
		zap.String("gateway", string(payment.Gateway)),
	)
	return nil
}

// sendReceiptEmail is best effort; reconciliation already happened.
func (s *paymentService) sendReceiptEmail(ctx context.Context, payment *entity.Payment) {
	user, err := s.repo.User.FindByID(ctx, payment.UserID)
	if err != nil || user == nil {
		return
	}

	body := fmt.Sprintf(
		"Dear %s,\n\nWe have received your payment of %.2f %s (reference %s).\nThank you for travelling with us.\n",
		user.Username, payment.Amount, payment.Currency, payment.Reference,
	)
	if err := s.mail.Send(user.Email, "Payment Received", body); err != nil {
		s.log.Warn("Failed to send payment receipt email",
			zap.Error(err),
			zap.String("payment_id", payment.ID.String()),
		)
	}
}

// markFailure fails the payment record only. The booking or enquiry stays
// open so the customer can retry with another method.
func (s *paymentService) markFailure(ctx context.Context, payment *entity.Payment, raw json.RawMessage) error {
	if payment.Status == entity.PaymentStatusFailed {
		return nil
	}

	if err := s.repo.Payment.UpdateStatus(ctx, payment.ID, entity.PaymentStatusFailed, raw); err != nil {
		return fmt.Errorf("fail payment %s: %w", payment.Reference, err)
	}

	s.log.Info("Payment failed",
		zap.String("payment_id", payment.ID.String()),
		zap.String("reference", payment.Reference),
	)
	return nil
}

func (s *paymentService) client(gw entity.PaymentGateway) (gateway.Client, error) {
	switch gw {
	case entity.GatewayIntaSend:
		return s.gateways.IntaSend, nil
	case entity.GatewayPayPal:
		return s.gateways.PayPal, nil
	case entity.GatewayMpesa:
		return s.gateways.Mpesa, nil
	}
	return nil, fmt.Errorf("invalid payment gateway %s", gw)
}

func (s *paymentService) findBooking(ctx context.Context, id string) (*entity.Booking, error) {
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

func (s *paymentService) findEnquiry(ctx context.Context, id string) (*entity.AccommodationEnquiry, error) {
	enquiryID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid enquiry ID format %s: %w", id, err)
	}

	enquiry, err := s.repo.Enquiry.FindByID(ctx, enquiryID)
	if err != nil {
		return nil, fmt.Errorf("find enquiry: %w", err)
	}
	if enquiry == nil {
		return nil, fmt.Errorf("enquiry %s not found", id)
	}
	return enquiry, nil
}
