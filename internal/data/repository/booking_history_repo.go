package repository

import (
	"context"
	"fmt"

	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/data/entity"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingHistoryRepository interface {
	Create(ctx context.Context, history *entity.BookingHistory) error
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.BookingHistory, error)
	ExistsByBookingID(ctx context.Context, bookingID uuid.UUID) (bool, error)
}

type bookingHistoryRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingHistoryRepository(db database.PgxIface, log *zap.Logger) BookingHistoryRepository {
	return &bookingHistoryRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking_history")),
	}
}

func (r *bookingHistoryRepository) Create(ctx context.Context, history *entity.BookingHistory) error {
	query := `
		INSERT INTO booking_history (id, user_id, booking_id, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT DO NOTHING
	`

	_, err := r.db.Exec(ctx, query,
		history.ID,
		history.UserID,
		history.BookingID,
		history.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking history entry",
			zap.Error(err),
			zap.String("user_id", history.UserID.String()),
			zap.String("booking_id", history.BookingID.String()),
		)
		return fmt.Errorf("create booking history entry: %w", err)
	}

	return nil
}

func (r *bookingHistoryRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.BookingHistory, error) {
	query := `
		SELECT id, user_id, booking_id, created_at
		FROM booking_history
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find booking history",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find booking history for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var entries []*entity.BookingHistory
	for rows.Next() {
		var entry entity.BookingHistory
		err := rows.Scan(&entry.ID, &entry.UserID, &entry.BookingID, &entry.CreatedAt)
		if err != nil {
			r.log.Error("Failed to scan booking history row", zap.Error(err))
			return nil, fmt.Errorf("scan booking history row: %w", err)
		}
		entries = append(entries, &entry)
	}

	return entries, nil
}

func (r *bookingHistoryRepository) ExistsByBookingID(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM booking_history WHERE booking_id = $1)`

	err := r.db.QueryRow(ctx, query, bookingID).Scan(&exists)
	if err != nil {
		r.log.Error("Failed to check booking history",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return false, fmt.Errorf("check booking history for booking %s: %w", bookingID.String(), err)
	}

	return exists, nil
}
