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

type DestinationRepository interface {
	Create(ctx context.Context, destination *entity.Destination) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Destination, error)
	FindAll(ctx context.Context, search string) ([]*entity.Destination, error)
	Update(ctx context.Context, destination *entity.Destination) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type destinationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewDestinationRepository(db database.PgxIface, log *zap.Logger) DestinationRepository {
	return &destinationRepository{
		db:  db,
		log: log.With(zap.String("repository", "destination")),
	}
}

const destinationColumns = `id, name, location, description, image, highlights, best_time,
	weather_information, local_culture, wildlife_information, created_at, updated_at`

func scanDestination(row pgx.Row) (*entity.Destination, error) {
	var d entity.Destination
	err := row.Scan(
		&d.ID,
		&d.Name,
		&d.Location,
		&d.Description,
		&d.Image,
		&d.Highlights,
		&d.BestTime,
		&d.WeatherInformation,
		&d.LocalCulture,
		&d.WildlifeInformation,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *destinationRepository) Create(ctx context.Context, destination *entity.Destination) error {
	query := `
		INSERT INTO destinations (id, name, location, description, image, highlights, best_time,
			weather_information, local_culture, wildlife_information, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query,
		destination.ID,
		destination.Name,
		destination.Location,
		destination.Description,
		destination.Image,
		destination.Highlights,
		destination.BestTime,
		destination.WeatherInformation,
		destination.LocalCulture,
		destination.WildlifeInformation,
		destination.CreatedAt,
		destination.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create destination",
			zap.Error(err),
			zap.String("name", destination.Name),
		)
		return fmt.Errorf("create destination %s: %w", destination.Name, err)
	}

	return nil
}

func (r *destinationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Destination, error) {
	query := `SELECT ` + destinationColumns + ` FROM destinations WHERE id = $1`

	destination, err := scanDestination(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find destination by ID",
			zap.Error(err),
			zap.String("destination_id", id.String()),
		)
		return nil, fmt.Errorf("find destination by ID %s: %w", id.String(), err)
	}

	return destination, nil
}

func (r *destinationRepository) FindAll(ctx context.Context, search string) ([]*entity.Destination, error) {
	query := `SELECT ` + destinationColumns + `
		FROM destinations
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')
		ORDER BY name`

	rows, err := r.db.Query(ctx, query, search)
	if err != nil {
		r.log.Error("Failed to list destinations", zap.Error(err), zap.String("search", search))
		return nil, fmt.Errorf("list destinations: %w", err)
	}
	defer rows.Close()

	var destinations []*entity.Destination
	for rows.Next() {
		destination, err := scanDestination(rows)
		if err != nil {
			r.log.Error("Failed to scan destination row", zap.Error(err))
			return nil, fmt.Errorf("scan destination row: %w", err)
		}
		destinations = append(destinations, destination)
	}

	return destinations, nil
}

func (r *destinationRepository) Update(ctx context.Context, destination *entity.Destination) error {
	query := `
		UPDATE destinations
		SET name = $2, location = $3, description = $4, image = $5, highlights = $6,
		    best_time = $7, weather_information = $8, local_culture = $9,
		    wildlife_information = $10, updated_at = $11
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		destination.ID,
		destination.Name,
		destination.Location,
		destination.Description,
		destination.Image,
		destination.Highlights,
		destination.BestTime,
		destination.WeatherInformation,
		destination.LocalCulture,
		destination.WildlifeInformation,
		destination.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update destination",
			zap.Error(err),
			zap.String("destination_id", destination.ID.String()),
		)
		return fmt.Errorf("update destination %s: %w", destination.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("destination %s not found", destination.ID.String())
	}

	return nil
}

func (r *destinationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM destinations WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete destination",
			zap.Error(err),
			zap.String("destination_id", id.String()),
		)
		return fmt.Errorf("delete destination %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("destination %s not found", id.String())
	}

	r.log.Info("Destination deleted", zap.String("destination_id", id.String()))
	return nil
}
