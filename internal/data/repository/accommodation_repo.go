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

type AccommodationRepository interface {
	Create(ctx context.Context, accommodation *entity.Accommodation) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Accommodation, error)
	FindAll(ctx context.Context, search string) ([]*entity.Accommodation, error)
	FindFeatured(ctx context.Context) ([]*entity.Accommodation, error)
	Update(ctx context.Context, accommodation *entity.Accommodation) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type accommodationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAccommodationRepository(db database.PgxIface, log *zap.Logger) AccommodationRepository {
	return &accommodationRepository{
		db:  db,
		log: log.With(zap.String("repository", "accommodation")),
	}
}

const accommodationColumns = `id, name, type, location, description, price_per_night,
	amenities, image, rating, is_featured, created_at, updated_at`

func scanAccommodation(row pgx.Row) (*entity.Accommodation, error) {
	var a entity.Accommodation
	err := row.Scan(
		&a.ID,
		&a.Name,
		&a.Type,
		&a.Location,
		&a.Description,
		&a.PricePerNight,
		&a.Amenities,
		&a.Image,
		&a.Rating,
		&a.IsFeatured,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *accommodationRepository) Create(ctx context.Context, accommodation *entity.Accommodation) error {
	query := `
		INSERT INTO accommodations (id, name, type, location, description, price_per_night,
			amenities, image, rating, is_featured, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query,
		accommodation.ID,
		accommodation.Name,
		accommodation.Type,
		accommodation.Location,
		accommodation.Description,
		accommodation.PricePerNight,
		accommodation.Amenities,
		accommodation.Image,
		accommodation.Rating,
		accommodation.IsFeatured,
		accommodation.CreatedAt,
		accommodation.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create accommodation",
			zap.Error(err),
			zap.String("name", accommodation.Name),
		)
		return fmt.Errorf("create accommodation %s: %w", accommodation.Name, err)
	}

	return nil
}

func (r *accommodationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Accommodation, error) {
	query := `SELECT ` + accommodationColumns + ` FROM accommodations WHERE id = $1`

	accommodation, err := scanAccommodation(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find accommodation by ID",
			zap.Error(err),
			zap.String("accommodation_id", id.String()),
		)
		return nil, fmt.Errorf("find accommodation by ID %s: %w", id.String(), err)
	}

	return accommodation, nil
}

func (r *accommodationRepository) FindAll(ctx context.Context, search string) ([]*entity.Accommodation, error) {
	query := `SELECT ` + accommodationColumns + `
		FROM accommodations
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%'
			OR location ILIKE '%' || $1 || '%')
		ORDER BY is_featured DESC, name`

	rows, err := r.db.Query(ctx, query, search)
	if err != nil {
		r.log.Error("Failed to list accommodations", zap.Error(err), zap.String("search", search))
		return nil, fmt.Errorf("list accommodations: %w", err)
	}
	defer rows.Close()

	return r.collect(rows)
}

func (r *accommodationRepository) FindFeatured(ctx context.Context) ([]*entity.Accommodation, error) {
	query := `SELECT ` + accommodationColumns + ` FROM accommodations WHERE is_featured ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find featured accommodations", zap.Error(err))
		return nil, fmt.Errorf("find featured accommodations: %w", err)
	}
	defer rows.Close()

	return r.collect(rows)
}

func (r *accommodationRepository) Update(ctx context.Context, accommodation *entity.Accommodation) error {
	query := `
		UPDATE accommodations
		SET name = $2, type = $3, location = $4, description = $5, price_per_night = $6,
		    amenities = $7, image = $8, rating = $9, is_featured = $10, updated_at = $11
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		accommodation.ID,
		accommodation.Name,
		accommodation.Type,
		accommodation.Location,
		accommodation.Description,
		accommodation.PricePerNight,
		accommodation.Amenities,
		accommodation.Image,
		accommodation.Rating,
		accommodation.IsFeatured,
		accommodation.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update accommodation",
			zap.Error(err),
			zap.String("accommodation_id", accommodation.ID.String()),
		)
		return fmt.Errorf("update accommodation %s: %w", accommodation.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("accommodation %s not found", accommodation.ID.String())
	}

	return nil
}

func (r *accommodationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM accommodations WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete accommodation",
			zap.Error(err),
			zap.String("accommodation_id", id.String()),
		)
		return fmt.Errorf("delete accommodation %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("accommodation %s not found", id.String())
	}

	r.log.Info("Accommodation deleted", zap.String("accommodation_id", id.String()))
	return nil
}

func (r *accommodationRepository) collect(rows pgx.Rows) ([]*entity.Accommodation, error) {
	var accommodations []*entity.Accommodation
	for rows.Next() {
		accommodation, err := scanAccommodation(rows)
		if err != nil {
			r.log.Error("Failed to scan accommodation row", zap.Error(err))
			return nil, fmt.Errorf("scan accommodation row: %w", err)
		}
		accommodations = append(accommodations, accommodation)
	}
	return accommodations, nil
}
