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

type GalleryRepository interface {
	Create(ctx context.Context, item *entity.Gallery) error
	FindAll(ctx context.Context, safariID, destinationID *uuid.UUID) ([]*entity.Gallery, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type galleryRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewGalleryRepository(db database.PgxIface, log *zap.Logger) GalleryRepository {
	return &galleryRepository{
		db:  db,
		log: log.With(zap.String("repository", "gallery")),
	}
}

const galleryColumns = `id, title, description, image, safari_id, destination_id, created_at`

func scanGallery(row pgx.Row) (*entity.Gallery, error) {
	var g entity.Gallery
	err := row.Scan(
		&g.ID,
		&g.Title,
		&g.Description,
		&g.Image,
		&g.SafariID,
		&g.DestinationID,
		&g.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *galleryRepository) Create(ctx context.Context, item *entity.Gallery) error {
	query := `
		INSERT INTO gallery (id, title, description, image, safari_id, destination_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		item.ID,
		item.Title,
		item.Description,
		item.Image,
		item.SafariID,
		item.DestinationID,
		item.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create gallery item",
			zap.Error(err),
			zap.String("title", item.Title),
		)
		return fmt.Errorf("create gallery item %s: %w", item.Title, err)
	}

	return nil
}

func (r *galleryRepository) FindAll(ctx context.Context, safariID, destinationID *uuid.UUID) ([]*entity.Gallery, error) {
	query := `SELECT ` + galleryColumns + `
		FROM gallery
		WHERE ($1::uuid IS NULL OR safari_id = $1)
		  AND ($2::uuid IS NULL OR destination_id = $2)
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, safariID, destinationID)
	if err != nil {
		r.log.Error("Failed to list gallery items", zap.Error(err))
		return nil, fmt.Errorf("list gallery items: %w", err)
	}
	defer rows.Close()

	var items []*entity.Gallery
	for rows.Next() {
		item, err := scanGallery(rows)
		if err != nil {
			r.log.Error("Failed to scan gallery row", zap.Error(err))
			return nil, fmt.Errorf("scan gallery row: %w", err)
		}
		items = append(items, item)
	}

	return items, nil
}

func (r *galleryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM gallery WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete gallery item",
			zap.Error(err),
			zap.String("gallery_id", id.String()),
		)
		return fmt.Errorf("delete gallery item %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("gallery item %s not found", id.String())
	}

	return nil
}
