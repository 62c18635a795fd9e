package repository

import (
	"context"
	"fmt"

	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/data/entity"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ItineraryRepository interface {
	Create(ctx context.Context, itinerary *entity.Itinerary) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Itinerary, error)
	FindBySafariID(ctx context.Context, safariID uuid.UUID) ([]*entity.Itinerary, error)
	Update(ctx context.Context, itinerary *entity.Itinerary) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type itineraryRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewItineraryRepository(db database.PgxIface, log *zap.Logger) ItineraryRepository {
	return &itineraryRepository{
		db:  db,
		log: log.With(zap.String("repository", "itinerary")),
	}
}

const itineraryColumns = `id, safari_id, day_number, title, description, activities,
	accommodation_id, meals_included, start_time, end_time, created_at, updated_at`

func scanItinerary(row pgx.Row) (*entity.Itinerary, error) {
	var it entity.Itinerary
	err := row.Scan(
		&it.ID,
		&it.SafariID,
		&it.DayNumber,
		&it.Title,
		&it.Description,
		&it.Activities,
		&it.AccommodationID,
		&it.MealsIncluded,
		&it.StartTime,
		&it.EndTime,
		&it.CreatedAt,
		&it.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *itineraryRepository) Create(ctx context.Context, itinerary *entity.Itinerary) error {
	query := `
		INSERT INTO itineraries (id, safari_id, day_number, title, description, activities,
			accommodation_id, meals_included, start_time, end_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query,
		itinerary.ID,
		itinerary.SafariID,
		itinerary.DayNumber,
		itinerary.Title,
		itinerary.Description,
		itinerary.Activities,
		itinerary.AccommodationID,
		itinerary.MealsIncluded,
		itinerary.StartTime,
		itinerary.EndTime,
		itinerary.CreatedAt,
		itinerary.UpdatedAt,
	)

	if err != nil {
		if database.IsUniqueViolation(err) {
			// itineraries_safari_day_key: one row per day per safari
			return fmt.Errorf("day %d already exists for safari %s", itinerary.DayNumber, itinerary.SafariID.String())
		}
		r.log.Error("Failed to create itinerary day",
			zap.Error(err),
			zap.String("safari_id", itinerary.SafariID.String()),
			zap.Int("day_number", itinerary.DayNumber),
		)
		return fmt.Errorf("create itinerary day %d: %w", itinerary.DayNumber, err)
	}

	return nil
}

func (r *itineraryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Itinerary, error) {
	query := `SELECT ` + itineraryColumns + ` FROM itineraries WHERE id = $1`

	itinerary, err := scanItinerary(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find itinerary by ID",
			zap.Error(err),
			zap.String("itinerary_id", id.String()),
		)
		return nil, fmt.Errorf("find itinerary by ID %s: %w", id.String(), err)
	}

	return itinerary, nil
}

func (r *itineraryRepository) FindBySafariID(ctx context.Context, safariID uuid.UUID) ([]*entity.Itinerary, error) {
	query := `SELECT ` + itineraryColumns + ` FROM itineraries WHERE safari_id = $1 ORDER BY day_number`

	rows, err := r.db.Query(ctx, query, safariID)
	if err != nil {
		r.log.Error("Failed to find itinerary by safari",
			zap.Error(err),
			zap.String("safari_id", safariID.String()),
		)
		return nil, fmt.Errorf("find itinerary by safari %s: %w", safariID.String(), err)
	}
	defer rows.Close()

	var itineraries []*entity.Itinerary
	for rows.Next() {
		itinerary, err := scanItinerary(rows)
		if err != nil {
			r.log.Error("Failed to scan itinerary row", zap.Error(err))
			return nil, fmt.Errorf("scan itinerary row: %w", err)
		}
		itineraries = append(itineraries, itinerary)
	}

	return itineraries, nil
}

func (r *itineraryRepository) Update(ctx context.Context, itinerary *entity.Itinerary) error {
	query := `
		UPDATE itineraries
		SET day_number = $2, title = $3, description = $4, activities = $5,
		    accommodation_id = $6, meals_included = $7, start_time = $8, end_time = $9,
		    updated_at = $10
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		itinerary.ID,
		itinerary.DayNumber,
		itinerary.Title,
		itinerary.Description,
		itinerary.Activities,
		itinerary.AccommodationID,
		itinerary.MealsIncluded,
		itinerary.StartTime,
		itinerary.EndTime,
		itinerary.UpdatedAt,
	)

	if err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("day %d already exists for safari %s", itinerary.DayNumber, itinerary.SafariID.String())
		}
		r.log.Error("Failed to update itinerary",
			zap.Error(err),
			zap.String("itinerary_id", itinerary.ID.String()),
		)
		return fmt.Errorf("update itinerary %s: %w", itinerary.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("itinerary %s not found", itinerary.ID.String())
	}

	return nil
}

func (r *itineraryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM itineraries WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete itinerary",
			zap.Error(err),
			zap.String("itinerary_id", id.String()),
		)
		return fmt.Errorf("delete itinerary %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("itinerary %s not found", id.String())
	}

	return nil
}
