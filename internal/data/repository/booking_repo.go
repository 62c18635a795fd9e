package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/data/entity"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Booking, error)
	FindByEmail(ctx context.Context, email string) ([]*entity.Booking, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, booking *entity.Booking) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Reconciliation updates
	UpdateStatuses(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus, paymentStatus entity.BookingPaymentStatus) error
	AppendPaymentHistory(ctx context.Context, bookingID uuid.UUID, record []byte) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, name, email, phone, date, guests, special_requirements, safari_id,
	status, total_price, payment_status, payment_history, cancellation_policy, refund_terms,
	insurance_options, emergency_contact_name, emergency_contact_phone,
	special_dietary_requirements, payment_method, deposit_amount, proof_of_payment,
	created_at, updated_at`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var b entity.Booking
	err := row.Scan(
		&b.ID,
		&b.Name,
		&b.Email,
		&b.Phone,
		&b.Date,
		&b.Guests,
		&b.SpecialRequirements,
		&b.SafariID,
		&b.Status,
		&b.TotalPrice,
		&b.PaymentStatus,
		&b.PaymentHistory,
		&b.CancellationPolicy,
		&b.RefundTerms,
		&b.InsuranceOptions,
		&b.EmergencyContactName,
		&b.EmergencyContactPhone,
		&b.SpecialDietaryRequirements,
		&b.PaymentMethod,
		&b.DepositAmount,
		&b.ProofOfPayment,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, name, email, phone, date, guests, special_requirements,
			safari_id, status, total_price, payment_status, payment_history,
			cancellation_policy, refund_terms, insurance_options, emergency_contact_name,
			emergency_contact_phone, special_dietary_requirements, payment_method,
			deposit_amount, proof_of_payment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17,
			$18, $19, $20, $21, $22, $23)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.Name,
		booking.Email,
		booking.Phone,
		booking.Date,
		booking.Guests,
		booking.SpecialRequirements,
		booking.SafariID,
		booking.Status,
		booking.TotalPrice,
		booking.PaymentStatus,
		booking.PaymentHistory,
		booking.CancellationPolicy,
		booking.RefundTerms,
		booking.InsuranceOptions,
		booking.EmergencyContactName,
		booking.EmergencyContactPhone,
		booking.SpecialDietaryRequirements,
		booking.PaymentMethod,
		booking.DepositAmount,
		booking.ProofOfPayment,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("email", booking.Email),
			zap.String("safari_id", booking.SafariID.String()),
		)
		return fmt.Errorf("create booking for %s: %w", booking.Email, err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + `
		FROM bookings
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	return r.collect(rows)
}

func (r *bookingRepository) FindByEmail(ctx context.Context, email string) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + `
		FROM bookings
		WHERE email = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		r.log.Error("Failed to find bookings by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find bookings by email %s: %w", email, err)
	}
	defer rows.Close()

	return r.collect(rows)
}

func (r *bookingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bookings`).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, fmt.Errorf("count bookings: %w", err)
	}
	return count, nil
}

func (r *bookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	query := `
		UPDATE bookings
		SET name = $2, email = $3, phone = $4, date = $5, guests = $6,
		    special_requirements = $7, safari_id = $8, status = $9, total_price = $10,
		    payment_status = $11, payment_history = $12, cancellation_policy = $13,
		    refund_terms = $14, insurance_options = $15, emergency_contact_name = $16,
		    emergency_contact_phone = $17, special_dietary_requirements = $18,
		    payment_method = $19, deposit_amount = $20, proof_of_payment = $21,
		    updated_at = $22
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.Name,
		booking.Email,
		booking.Phone,
		booking.Date,
		booking.Guests,
		booking.SpecialRequirements,
		booking.SafariID,
		booking.Status,
		booking.TotalPrice,
		booking.PaymentStatus,
		booking.PaymentHistory,
		booking.CancellationPolicy,
		booking.RefundTerms,
		booking.InsuranceOptions,
		booking.EmergencyContactName,
		booking.EmergencyContactPhone,
		booking.SpecialDietaryRequirements,
		booking.PaymentMethod,
		booking.DepositAmount,
		booking.ProofOfPayment,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return fmt.Errorf("update booking %s: %w", booking.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", booking.ID.String())
	}

	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM bookings WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return fmt.Errorf("delete booking %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", id.String())
	}

	r.log.Info("Booking deleted", zap.String("booking_id", id.String()))
	return nil
}

func (r *bookingRepository) UpdateStatuses(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus, paymentStatus entity.BookingPaymentStatus) error {
	query := `UPDATE bookings SET status = $2, payment_status = $3, updated_at = $4 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, bookingID, status, paymentStatus, time.Now())
	if err != nil {
		r.log.Error("Failed to update booking statuses",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("status", string(status)),
			zap.String("payment_status", string(paymentStatus)),
		)
		return fmt.Errorf("update booking %s statuses: %w", bookingID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", bookingID.String())
	}

	return nil
}

func (r *bookingRepository) AppendPaymentHistory(ctx context.Context, bookingID uuid.UUID, record []byte) error {
	// payment_history is an append-only jsonb array
	query := `
		UPDATE bookings
		SET payment_history = payment_history || $2::jsonb, updated_at = $3
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, bookingID, record, time.Now())
	if err != nil {
		r.log.Error("Failed to append payment history",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return fmt.Errorf("append payment history for booking %s: %w", bookingID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", bookingID.String())
	}

	return nil
}

func (r *bookingRepository) collect(rows pgx.Rows) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}
	return bookings, nil
}
