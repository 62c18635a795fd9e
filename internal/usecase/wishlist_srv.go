package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/data/entity"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/data/repository"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/dto/request"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/dto/response"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type WishlistService interface {
	GetWishlist(ctx context.Context, userID string) ([]response.WishlistItemResponse, error)
	AddToWishlist(ctx context.Context, userID string, req *request.AddWishlistRequest) (*response.WishlistItemResponse, error)
	RemoveFromWishlist(ctx context.Context, userID, itemID string) error
}

type wishlistService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewWishlistService(repo *repository.Repository, log *zap.Logger) WishlistService {
	return &wishlistService{
		repo: repo,
		log:  log.With(zap.String("service", "wishlist")),
	}
}

func (s *wishlistService) GetWishlist(ctx context.Context, userID string) ([]response.WishlistItemResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	items, err := s.repo.Wishlist.FindByUserID(ctx, userUUID)
	if err != nil {
		return nil, fmt.Errorf("find wishlist: %w", err)
	}

	out := make([]response.WishlistItemResponse, 0, len(items))
	for _, item := range items {
		safari, err := s.repo.Safari.FindByID(ctx, item.SafariID)
		if err != nil {
			s.log.Warn("Failed to load safari for wishlist item",
				zap.Error(err),
				zap.String("safari_id", item.SafariID.String()),
			)
		}
		out = append(out, response.WishlistItemToResponse(item, safari))
	}
	return out, nil
}

func (s *wishlistService) AddToWishlist(ctx context.Context, userID string, req *request.AddWishlistRequest) (*response.WishlistItemResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	safariID, err := uuid.Parse(req.SafariID)
	if err != nil {
		return nil, fmt.Errorf("invalid safari ID format %s: %w", req.SafariID, err)
	}

	safari, err := s.repo.Safari.FindByID(ctx, safariID)
	if err != nil {
		return nil, fmt.Errorf("find safari: %w", err)
	}
	if safari == nil {
		return nil, fmt.Errorf("safari %s not found", req.SafariID)
	}

	item := &entity.Wishlist{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:   userUUID,
		SafariID: safariID,
	}

	if err := s.repo.Wishlist.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("add to wishlist: %w", err)
	}

	s.log.Info("Safari added to wishlist",
		zap.String("user_id", userID),
		zap.String("safari_id", req.SafariID),
	)

	resp := response.WishlistItemToResponse(item, safari)
	return &resp, nil
}

func (s *wishlistService) RemoveFromWishlist(ctx context.Context, userID, itemID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	itemUUID, err := uuid.Parse(itemID)
	if err != nil {
		return fmt.Errorf("invalid wishlist item ID format %s: %w", itemID, err)
	}

	return s.repo.Wishlist.Delete(ctx, userUUID, itemUUID)
}
