package repository

import (
	"context"
	"fmt"

	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/data/entity"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type WishlistRepository interface {
	Create(ctx context.Context, item *entity.Wishlist) error
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Wishlist, error)
	Delete(ctx context.Context, userID, itemID uuid.UUID) error
}

type wishlistRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewWishlistRepository(db database.PgxIface, log *zap.Logger) WishlistRepository {
	return &wishlistRepository{
		db:  db,
		log: log.With(zap.String("repository", "wishlist")),
	}
}

func (r *wishlistRepository) Create(ctx context.Context, item *entity.Wishlist) error {
	query := `
		INSERT INTO wishlists (id, user_id, safari_id, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query,
		item.ID,
		item.UserID,
		item.SafariID,
		item.CreatedAt,
	)

	if err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("safari already in wishlist")
		}
		r.log.Error("Failed to create wishlist item",
			zap.Error(err),
			zap.String("user_id", item.UserID.String()),
			zap.String("safari_id", item.SafariID.String()),
		)
		return fmt.Errorf("create wishlist item: %w", err)
	}

	return nil
}

func (r *wishlistRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Wishlist, error) {
	query := `
		SELECT id, user_id, safari_id, created_at
		FROM wishlists
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find wishlist",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find wishlist for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var items []*entity.Wishlist
	for rows.Next() {
		var item entity.Wishlist
		err := rows.Scan(&item.ID, &item.UserID, &item.SafariID, &item.CreatedAt)
		if err != nil {
			r.log.Error("Failed to scan wishlist row", zap.Error(err))
			return nil, fmt.Errorf("scan wishlist row: %w", err)
		}
		items = append(items, &item)
	}

	return items, nil
}

func (r *wishlistRepository) Delete(ctx context.Context, userID, itemID uuid.UUID) error {
	// Scoped to the owner so one user cannot remove another's item.
	query := `DELETE FROM wishlists WHERE id = $1 AND user_id = $2`

	result, err := r.db.Exec(ctx, query, itemID, userID)
	if err != nil {
		r.log.Error("Failed to delete wishlist item",
			zap.Error(err),
			zap.String("item_id", itemID.String()),
			zap.String("user_id", userID.String()),
		)
		return fmt.Errorf("delete wishlist item %s: %w", itemID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("wishlist item %s not found", itemID.String())
	}

	return nil
}
