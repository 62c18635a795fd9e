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

type SafariRepository interface {
	Create(ctx context.Context, safari *entity.Safari) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Safari, error)
	FindAll(ctx context.Context, search, orderBy string) ([]*entity.Safari, error)
	FindByDestinationID(ctx context.Context, destinationID uuid.UUID) ([]*entity.Safari, error)
	FindFeatured(ctx context.Context, limit int) ([]*entity.Safari, error)
	FindByPackageID(ctx context.Context, packageID uuid.UUID) ([]*entity.Safari, error)
	Update(ctx context.Context, safari *entity.Safari) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type safariRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSafariRepository(db database.PgxIface, log *zap.Logger) SafariRepository {
	return &safariRepository{
		db:  db,
		log: log.With(zap.String("repository", "safari")),
	}
}

const safariColumns = `id, destination_id, title, description, duration, price, image,
	included, excluded, difficulty_level, max_group_size, min_age_requirement,
	seasonal_availability, departure_points, created_at, updated_at`

func scanSafari(row pgx.Row) (*entity.Safari, error) {
	var s entity.Safari
	err := row.Scan(
		&s.ID,
		&s.DestinationID,
		&s.Title,
		&s.Description,
		&s.Duration,
		&s.Price,
		&s.Image,
		&s.Included,
		&s.Excluded,
		&s.DifficultyLevel,
		&s.MaxGroupSize,
		&s.MinAgeRequirement,
		&s.SeasonalAvailability,
		&s.DeparturePoints,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *safariRepository) Create(ctx context.Context, safari *entity.Safari) error {
	query := `
		INSERT INTO safaris (id, destination_id, title, description, duration, price, image,
			included, excluded, difficulty_level, max_group_size, min_age_requirement,
			seasonal_availability, departure_points, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	_, err := r.db.Exec(ctx, query,
		safari.ID,
		safari.DestinationID,
		safari.Title,
		safari.Description,
		safari.Duration,
		safari.Price,
		safari.Image,
		safari.Included,
		safari.Excluded,
		safari.DifficultyLevel,
		safari.MaxGroupSize,
		safari.MinAgeRequirement,
		safari.SeasonalAvailability,
		safari.DeparturePoints,
		safari.CreatedAt,
		safari.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create safari",
			zap.Error(err),
			zap.String("title", safari.Title),
		)
		return fmt.Errorf("create safari %s: %w", safari.Title, err)
	}

	return nil
}

func (r *safariRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Safari, error) {
	query := `SELECT ` + safariColumns + ` FROM safaris WHERE id = $1`

	safari, err := scanSafari(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find safari by ID",
			zap.Error(err),
			zap.String("safari_id", id.String()),
		)
		return nil, fmt.Errorf("find safari by ID %s: %w", id.String(), err)
	}

	return safari, nil
}

func (r *safariRepository) FindAll(ctx context.Context, search, orderBy string) ([]*entity.Safari, error) {
	// orderBy is restricted to declared fields, never interpolated from raw input.
	order := "created_at DESC"
	switch orderBy {
	case "price":
		order = "price"
	case "-price":
		order = "price DESC"
	case "duration":
		order = "duration"
	case "-duration":
		order = "duration DESC"
	}

	query := `SELECT ` + safariColumns + `
		FROM safaris
		WHERE ($1 = '' OR title ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')
		ORDER BY ` + order

	rows, err := r.db.Query(ctx, query, search)
	if err != nil {
		r.log.Error("Failed to list safaris", zap.Error(err), zap.String("search", search))
		return nil, fmt.Errorf("list safaris: %w", err)
	}
	defer rows.Close()

	return r.collect(rows)
}

func (r *safariRepository) FindByDestinationID(ctx context.Context, destinationID uuid.UUID) ([]*entity.Safari, error) {
	query := `SELECT ` + safariColumns + ` FROM safaris WHERE destination_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, destinationID)
	if err != nil {
		r.log.Error("Failed to find safaris by destination",
			zap.Error(err),
			zap.String("destination_id", destinationID.String()),
		)
		return nil, fmt.Errorf("find safaris by destination %s: %w", destinationID.String(), err)
	}
	defer rows.Close()

	return r.collect(rows)
}

func (r *safariRepository) FindFeatured(ctx context.Context, limit int) ([]*entity.Safari, error) {
	query := `SELECT ` + safariColumns + ` FROM safaris ORDER BY price DESC LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		r.log.Error("Failed to find featured safaris", zap.Error(err))
		return nil, fmt.Errorf("find featured safaris: %w", err)
	}
	defer rows.Close()

	return r.collect(rows)
}

func (r *safariRepository) FindByPackageID(ctx context.Context, packageID uuid.UUID) ([]*entity.Safari, error) {
	query := `
		SELECT s.id, s.destination_id, s.title, s.description, s.duration, s.price, s.image,
			s.included, s.excluded, s.difficulty_level, s.max_group_size, s.min_age_requirement,
			s.seasonal_availability, s.departure_points, s.created_at, s.updated_at
		FROM safaris s
		JOIN package_safaris ps ON ps.safari_id = s.id
		WHERE ps.package_id = $1
		ORDER BY s.title
	`

	rows, err := r.db.Query(ctx, query, packageID)
	if err != nil {
		r.log.Error("Failed to find safaris by package",
			zap.Error(err),
			zap.String("package_id", packageID.String()),
		)
		return nil, fmt.Errorf("find safaris by package %s: %w", packageID.String(), err)
	}
	defer rows.Close()

	return r.collect(rows)
}

func (r *safariRepository) Update(ctx context.Context, safari *entity.Safari) error {
	query := `
		UPDATE safaris
		SET destination_id = $2, title = $3, description = $4, duration = $5, price = $6,
		    image = $7, included = $8, excluded = $9, difficulty_level = $10,
		    max_group_size = $11, min_age_requirement = $12, seasonal_availability = $13,
		    departure_points = $14, updated_at = $15
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		safari.ID,
		safari.DestinationID,
		safari.Title,
		safari.Description,
		safari.Duration,
		safari.Price,
		safari.Image,
		safari.Included,
		safari.Excluded,
		safari.DifficultyLevel,
		safari.MaxGroupSize,
		safari.MinAgeRequirement,
		safari.SeasonalAvailability,
		safari.DeparturePoints,
		safari.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update safari",
			zap.Error(err),
			zap.String("safari_id", safari.ID.String()),
		)
		return fmt.Errorf("update safari %s: %w", safari.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("safari %s not found", safari.ID.String())
	}

	return nil
}

func (r *safariRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM safaris WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete safari",
			zap.Error(err),
			zap.String("safari_id", id.String()),
		)
		return fmt.Errorf("delete safari %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("safari %s not found", id.String())
	}

	r.log.Info("Safari deleted", zap.String("safari_id", id.String()))
	return nil
}

func (r *safariRepository) collect(rows pgx.Rows) ([]*entity.Safari, error) {
	var safaris []*entity.Safari
	for rows.Next() {
		safari, err := scanSafari(rows)
		if err != nil {
			r.log.Error("Failed to scan safari row", zap.Error(err))
			return nil, fmt.Errorf("scan safari row: %w", err)
		}
		safaris = append(safaris, safari)
	}
	return safaris, nil
}
