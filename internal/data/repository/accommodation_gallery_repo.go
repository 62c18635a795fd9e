package repository

import (
	"context"
	"fmt"

	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/data/entity"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AccommodationGalleryRepository interface {
	Create(ctx context.Context, image *entity.AccommodationGallery) error
	FindByAccommodationID(ctx context.Context, accommodationID uuid.UUID) ([]*entity.AccommodationGallery, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type accommodationGalleryRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAccommodationGalleryRepository(db database.PgxIface, log *zap.Logger) AccommodationGalleryRepository {
	return &accommodationGalleryRepository{
		db:  db,
		log: log.With(zap.String("repository", "accommodation_gallery")),
	}
}

func (r *accommodationGalleryRepository) Create(ctx context.Context, image *entity.AccommodationGallery) error {
	query := `
		INSERT INTO accommodation_gallery (id, accommodation_id, image, caption, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		image.ID,
		image.AccommodationID,
		image.Image,
		image.Caption,
		image.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create gallery image",
			zap.Error(err),
			zap.String("accommodation_id", image.AccommodationID.String()),
		)
		return fmt.Errorf("create gallery image: %w", err)
	}

	return nil
}

func (r *accommodationGalleryRepository) FindByAccommodationID(ctx context.Context, accommodationID uuid.UUID) ([]*entity.AccommodationGallery, error) {
	query := `
		SELECT id, accommodation_id, image, caption, created_at
		FROM accommodation_gallery
		WHERE accommodation_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, accommodationID)
	if err != nil {
		r.log.Error("Failed to find gallery images",
			zap.Error(err),
			zap.String("accommodation_id", accommodationID.String()),
		)
		return nil, fmt.Errorf("find gallery images for %s: %w", accommodationID.String(), err)
	}
	defer rows.Close()

	var images []*entity.AccommodationGallery
	for rows.Next() {
		var image entity.AccommodationGallery
		err := rows.Scan(
			&image.ID,
			&image.AccommodationID,
			&image.Image,
			&image.Caption,
			&image.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan gallery image row", zap.Error(err))
			return nil, fmt.Errorf("scan gallery image row: %w", err)
		}
		images = append(images, &image)
	}

	return images, nil
}

func (r *accommodationGalleryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM accommodation_gallery WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete gallery image",
			zap.Error(err),
			zap.String("image_id", id.String()),
		)
		return fmt.Errorf("delete gallery image %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("gallery image %s not found", id.String())
	}

	return nil
}
