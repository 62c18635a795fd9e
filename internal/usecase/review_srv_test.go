package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/data/entity"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/data/repository"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCreateReviewStartsUnmoderated(t *testing.T) {
	safari := testSafari(1000, 12)
	reviews := newFakeReviewRepo()
	repo := &repository.Repository{
		Safari: newFakeSafariRepo(safari),
		Review: reviews,
	}
	svc := NewReviewService(repo, zap.NewNop())

	resp, err := svc.CreateReview(context.Background(), uuid.NewString(), &request.CreateReviewRequest{
		SafariID: safari.ID.String(),
		Rating:   5,
		Comment:  "Unforgettable trip.",
	})
	require.NoError(t, err)

	assert.False(t, resp.IsModerated)
	require.Len(t, reviews.reviews, 1)
}

func TestSafariReviewsListsOnlyModerated(t *testing.T) {
	safariID := uuid.New()
	moderated := &entity.Review{
		Base:        entity.Base{ID: uuid.New(), CreatedAt: time.Now()},
		SafariID:    safariID,
		Rating:      4,
		Comment:     "Great guides",
		IsModerated: true,
	}
	pending := &entity.Review{
		Base:     entity.Base{ID: uuid.New(), CreatedAt: time.Now()},
		SafariID: safariID,
		Rating:   1,
		Comment:  "Awaiting moderation",
	}
	repo := &repository.Repository{
		Review: newFakeReviewRepo(moderated, pending),
	}
	svc := NewReviewService(repo, zap.NewNop())

	out, err := svc.GetSafariReviews(context.Background(), safariID.String())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, moderated.ID.String(), out[0].ID)
}

func TestApproveReviewMakesItVisible(t *testing.T) {
	safariID := uuid.New()
	review := &entity.Review{
		Base:     entity.Base{ID: uuid.New(), CreatedAt: time.Now()},
		SafariID: safariID,
		Rating:   5,
		Comment:  "Amazing",
	}
	repo := &repository.Repository{
		Review: newFakeReviewRepo(review),
	}
	svc := NewReviewService(repo, zap.NewNop())

	pending, err := svc.ListPendingReviews(context.Background())
	require.NoError(t, err)
	require.Len(t, pending, 1)

	require.NoError(t, svc.ApproveReview(context.Background(), review.ID.String()))

	visible, err := svc.GetSafariReviews(context.Background(), safariID.String())
	require.NoError(t, err)
	assert.Len(t, visible, 1)

	pending, err = svc.ListPendingReviews(context.Background())
	require.NoError(t, err)
	assert.Empty(t, pending)
}
