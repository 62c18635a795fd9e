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

type ReviewService interface {
	// Public endpoints. Only moderated reviews are listed.
	GetSafariReviews(ctx context.Context, safariID string) ([]response.ReviewResponse, error)

	// Authenticated endpoints
	CreateReview(ctx context.Context, userID string, req *request.CreateReviewRequest) (*response.ReviewResponse, error)

	// Admin moderation
	ListPendingReviews(ctx context.Context) ([]response.ReviewResponse, error)
	ApproveReview(ctx context.Context, id string) error
	DeleteReview(ctx context.Context, id string) error
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) GetSafariReviews(ctx context.Context, safariID string) ([]response.ReviewResponse, error) {
	safariUUID, err := uuid.Parse(safariID)
	if err != nil {
		return nil, fmt.Errorf("invalid safari ID format %s: %w", safariID, err)
	}

	reviews, err := s.repo.Review.FindModeratedBySafariID(ctx, safariUUID)
	if err != nil {
		return nil, fmt.Errorf("find reviews for safari %s: %w", safariID, err)
	}
	return response.ReviewsToResponse(reviews), nil
}

func (s *reviewService) CreateReview(ctx context.Context, userID string, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
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

	now := time.Now()
	review := &entity.Review{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:      userUUID,
		SafariID:    safariID,
		Rating:      req.Rating,
		Comment:     req.Comment,
		IsModerated: false,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review submitted for moderation",
		zap.String("review_id", review.ID.String()),
		zap.String("safari_id", req.SafariID),
		zap.Int("rating", req.Rating),
	)

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) ListPendingReviews(ctx context.Context) ([]response.ReviewResponse, error) {
	reviews, err := s.repo.Review.FindUnmoderated(ctx)
	if err != nil {
		return nil, fmt.Errorf("find pending reviews: %w", err)
	}
	return response.ReviewsToResponse(reviews), nil
}

func (s *reviewService) ApproveReview(ctx context.Context, id string) error {
	reviewID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid review ID format %s: %w", id, err)
	}

	return s.repo.Review.Approve(ctx, reviewID)
}

func (s *reviewService) DeleteReview(ctx context.Context, id string) error {
	reviewID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid review ID format %s: %w", id, err)
	}

	return s.repo.Review.Delete(ctx, reviewID)
}
