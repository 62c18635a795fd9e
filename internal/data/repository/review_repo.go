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

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	FindModeratedBySafariID(ctx context.Context, safariID uuid.UUID) ([]*entity.Review, error)
	FindUnmoderated(ctx context.Context) ([]*entity.Review, error)
	Approve(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

const reviewColumns = `id, user_id, safari_id, rating, comment, is_moderated, created_at, updated_at`

func scanReview(row pgx.Row) (*entity.Review, error) {
	var rv entity.Review
	err := row.Scan(
		&rv.ID,
		&rv.UserID,
		&rv.SafariID,
		&rv.Rating,
		&rv.Comment,
		&rv.IsModerated,
		&rv.CreatedAt,
		&rv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (id, user_id, safari_id, rating, comment, is_moderated, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		review.ID,
		review.UserID,
		review.SafariID,
		review.Rating,
		review.Comment,
		review.IsModerated,
		review.CreatedAt,
		review.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("user_id", review.UserID.String()),
			zap.String("safari_id", review.SafariID.String()),
		)
		return fmt.Errorf("create review for safari %s: %w", review.SafariID.String(), err)
	}

	return nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE id = $1`

	review, err := scanReview(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by ID",
			zap.Error(err),
			zap.String("review_id", id.String()),
		)
		return nil, fmt.Errorf("find review by ID %s: %w", id.String(), err)
	}

	return review, nil
}

func (r *reviewRepository) FindModeratedBySafariID(ctx context.Context, safariID uuid.UUID) ([]*entity.Review, error) {
	query := `SELECT ` + reviewColumns + `
		FROM reviews
		WHERE safari_id = $1 AND is_moderated
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, safariID)
	if err != nil {
		r.log.Error("Failed to find reviews by safari",
			zap.Error(err),
			zap.String("safari_id", safariID.String()),
		)
		return nil, fmt.Errorf("find reviews for safari %s: %w", safariID.String(), err)
	}
	defer rows.Close()

	return r.collect(rows)
}

func (r *reviewRepository) FindUnmoderated(ctx context.Context) ([]*entity.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE NOT is_moderated ORDER BY created_at`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find unmoderated reviews", zap.Error(err))
		return nil, fmt.Errorf("find unmoderated reviews: %w", err)
	}
	defer rows.Close()

	return r.collect(rows)
}

func (r *reviewRepository) Approve(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE reviews SET is_moderated = TRUE, updated_at = $2 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, time.Now())
	if err != nil {
		r.log.Error("Failed to approve review",
			zap.Error(err),
			zap.String("review_id", id.String()),
		)
		return fmt.Errorf("approve review %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("review %s not found", id.String())
	}

	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM reviews WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete review",
			zap.Error(err),
			zap.String("review_id", id.String()),
		)
		return fmt.Errorf("delete review %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("review %s not found", id.String())
	}

	return nil
}

func (r *reviewRepository) collect(rows pgx.Rows) ([]*entity.Review, error) {
	var reviews []*entity.Review
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, review)
	}
	return reviews, nil
}
