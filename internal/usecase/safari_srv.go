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

type SafariService interface {
	// Public endpoints
	ListSafaris(ctx context.Context, search, orderBy string) ([]response.SafariResponse, error)
	GetSafari(ctx context.Context, id string) (*response.SafariDetailResponse, error)
	GetFeaturedSafaris(ctx context.Context, limit int) ([]response.SafariResponse, error)

	// Admin endpoints
	CreateSafari(ctx context.Context, req *request.CreateSafariRequest) (*response.SafariResponse, error)
	UpdateSafari(ctx context.Context, id string, req *request.UpdateSafariRequest) (*response.SafariResponse, error)
	DeleteSafari(ctx context.Context, id string) error

	// Itinerary management
	AddItineraryDay(ctx context.Context, safariID string, req *request.CreateItineraryRequest) (*response.ItineraryResponse, error)
	UpdateItineraryDay(ctx context.Context, safariID, itineraryID string, req *request.CreateItineraryRequest) (*response.ItineraryResponse, error)
	DeleteItineraryDay(ctx context.Context, safariID, itineraryID string) error
}

type safariService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewSafariService(repo *repository.Repository, log *zap.Logger) SafariService {
	return &safariService{
		repo: repo,
		log:  log.With(zap.String("service", "safari")),
	}
}

func (s *safariService) ListSafaris(ctx context.Context, search, orderBy string) ([]response.SafariResponse, error) {
	safaris, err := s.repo.Safari.FindAll(ctx, search, orderBy)
	if err != nil {
		return nil, fmt.Errorf("list safaris: %w", err)
	}
	return response.SafarisToResponse(safaris), nil
}

func (s *safariService) GetSafari(ctx context.Context, id string) (*response.SafariDetailResponse, error) {
	safari, err := s.findSafari(ctx, id)
	if err != nil {
		return nil, err
	}

	itinerary, err := s.repo.Itinerary.FindBySafariID(ctx, safari.ID)
	if err != nil {
		return nil, fmt.Errorf("find itinerary for safari %s: %w", id, err)
	}

	reviews, err := s.repo.Review.FindModeratedBySafariID(ctx, safari.ID)
	if err != nil {
		return nil, fmt.Errorf("find reviews for safari %s: %w", id, err)
	}

	resp := &response.SafariDetailResponse{
		SafariResponse: response.SafariToResponse(safari),
		Itinerary:      response.ItinerariesToResponse(itinerary),
		Reviews:        response.ReviewsToResponse(reviews),
	}
	return resp, nil
}

func (s *safariService) GetFeaturedSafaris(ctx context.Context, limit int) ([]response.SafariResponse, error) {
	if limit < 1 || limit > 20 {
		limit = 3
	}

	safaris, err := s.repo.Safari.FindFeatured(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("find featured safaris: %w", err)
	}
	return response.SafarisToResponse(safaris), nil
}

func (s *safariService) CreateSafari(ctx context.Context, req *request.CreateSafariRequest) (*response.SafariResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create safari validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	destinationID, err := uuid.Parse(req.DestinationID)
	if err != nil {
		return nil, fmt.Errorf("invalid destination ID format %s: %w", req.DestinationID, err)
	}

	destination, err := s.repo.Destination.FindByID(ctx, destinationID)
	if err != nil {
		return nil, fmt.Errorf("find destination: %w", err)
	}
	if destination == nil {
		return nil, fmt.Errorf("destination %s not found", req.DestinationID)
	}

	now := time.Now()
	safari := &entity.Safari{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		DestinationID:        destinationID,
		Title:                req.Title,
		Description:          req.Description,
		Duration:             req.Duration,
		Price:                req.Price,
		Image:                req.Image,
		Included:             req.Included,
		Excluded:             req.Excluded,
		DifficultyLevel:      entity.DifficultyLevel(req.DifficultyLevel),
		MaxGroupSize:         req.MaxGroupSize,
		MinAgeRequirement:    req.MinAgeRequirement,
		SeasonalAvailability: req.SeasonalAvailability,
		DeparturePoints:      req.DeparturePoints,
	}

	if err := s.repo.Safari.Create(ctx, safari); err != nil {
		return nil, fmt.Errorf("create safari: %w", err)
	}

	s.log.Info("Safari created",
		zap.String("safari_id", safari.ID.String()),
		zap.String("title", safari.Title),
	)

	resp := response.SafariToResponse(safari)
	return &resp, nil
}

func (s *safariService) UpdateSafari(ctx context.Context, id string, req *request.UpdateSafariRequest) (*response.SafariResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	safari, err := s.findSafari(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.DestinationID != nil {
		destinationID, err := uuid.Parse(*req.DestinationID)
		if err != nil {
			return nil, fmt.Errorf("invalid destination ID format %s: %w", *req.DestinationID, err)
		}
		destination, err := s.repo.Destination.FindByID(ctx, destinationID)
		if err != nil {
			return nil, fmt.Errorf("find destination: %w", err)
		}
		if destination == nil {
			return nil, fmt.Errorf("destination %s not found", *req.DestinationID)
		}
		safari.DestinationID = destinationID
	}
	if req.Title != nil {
		safari.Title = *req.Title
	}
	if req.Description != nil {
		safari.Description = *req.Description
	}
	if req.Duration != nil {
		safari.Duration = *req.Duration
	}
	if req.Price != nil {
		safari.Price = *req.Price
	}
	if req.Image != nil {
		safari.Image = req.Image
	}
	if req.Included != nil {
		safari.Included = *req.Included
	}
	if req.Excluded != nil {
		safari.Excluded = *req.Excluded
	}
	if req.DifficultyLevel != nil {
		safari.DifficultyLevel = entity.DifficultyLevel(*req.DifficultyLevel)
	}
	if req.MaxGroupSize != nil {
		safari.MaxGroupSize = *req.MaxGroupSize
	}
	if req.MinAgeRequirement != nil {
		safari.MinAgeRequirement = *req.MinAgeRequirement
	}
	if req.SeasonalAvailability != nil {
		safari.SeasonalAvailability = req.SeasonalAvailability
	}
	if req.DeparturePoints != nil {
		safari.DeparturePoints = req.DeparturePoints
	}
	safari.UpdatedAt = time.Now()

	if err := s.repo.Safari.Update(ctx, safari); err != nil {
		return nil, fmt.Errorf("update safari: %w", err)
	}

	resp := response.SafariToResponse(safari)
	return &resp, nil
}

func (s *safariService) DeleteSafari(ctx context.Context, id string) error {
	safariID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid safari ID format %s: %w", id, err)
	}

	return s.repo.Safari.Delete(ctx, safariID)
}

func (s *safariService) AddItineraryDay(ctx context.Context, safariID string, req *request.CreateItineraryRequest) (*response.ItineraryResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	safari, err := s.findSafari(ctx, safariID)
	if err != nil {
		return nil, err
	}

	if req.DayNumber > safari.Duration {
		return nil, fmt.Errorf("day %d exceeds safari duration of %d days", req.DayNumber, safari.Duration)
	}

	accommodationID, err := s.resolveAccommodation(ctx, req.AccommodationID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	itinerary := &entity.Itinerary{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		SafariID:        safari.ID,
		DayNumber:       req.DayNumber,
		Title:           req.Title,
		Description:     req.Description,
		Activities:      req.Activities,
		AccommodationID: accommodationID,
		MealsIncluded:   req.MealsIncluded,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
	}

	if err := s.repo.Itinerary.Create(ctx, itinerary); err != nil {
		return nil, fmt.Errorf("create itinerary day: %w", err)
	}

	s.log.Info("Itinerary day added",
		zap.String("safari_id", safari.ID.String()),
		zap.Int("day_number", req.DayNumber),
	)

	resp := response.ItineraryToResponse(itinerary)
	return &resp, nil
}

func (s *safariService) UpdateItineraryDay(ctx context.Context, safariID, itineraryID string, req *request.CreateItineraryRequest) (*response.ItineraryResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	safari, err := s.findSafari(ctx, safariID)
	if err != nil {
		return nil, err
	}

	itineraryUUID, err := uuid.Parse(itineraryID)
	if err != nil {
		return nil, fmt.Errorf("invalid itinerary ID format %s: %w", itineraryID, err)
	}

	itinerary, err := s.repo.Itinerary.FindByID(ctx, itineraryUUID)
	if err != nil {
		return nil, fmt.Errorf("find itinerary day: %w", err)
	}
	if itinerary == nil || itinerary.SafariID != safari.ID {
		return nil, fmt.Errorf("itinerary day %s not found", itineraryID)
	}

	if req.DayNumber > safari.Duration {
		return nil, fmt.Errorf("day %d exceeds safari duration of %d days", req.DayNumber, safari.Duration)
	}

	accommodationID, err := s.resolveAccommodation(ctx, req.AccommodationID)
	if err != nil {
		return nil, err
	}

	itinerary.DayNumber = req.DayNumber
	itinerary.Title = req.Title
	itinerary.Description = req.Description
	itinerary.Activities = req.Activities
	itinerary.AccommodationID = accommodationID
	itinerary.MealsIncluded = req.MealsIncluded
	itinerary.StartTime = req.StartTime
	itinerary.EndTime = req.EndTime
	itinerary.UpdatedAt = time.Now()

	if err := s.repo.Itinerary.Update(ctx, itinerary); err != nil {
		return nil, fmt.Errorf("update itinerary day: %w", err)
	}

	resp := response.ItineraryToResponse(itinerary)
	return &resp, nil
}

func (s *safariService) DeleteItineraryDay(ctx context.Context, safariID, itineraryID string) error {
	safari, err := s.findSafari(ctx, safariID)
	if err != nil {
		return err
	}

	itineraryUUID, err := uuid.Parse(itineraryID)
	if err != nil {
		return fmt.Errorf("invalid itinerary ID format %s: %w", itineraryID, err)
	}

	itinerary, err := s.repo.Itinerary.FindByID(ctx, itineraryUUID)
	if err != nil {
		return fmt.Errorf("find itinerary day: %w", err)
	}
	if itinerary == nil || itinerary.SafariID != safari.ID {
		return fmt.Errorf("itinerary day %s not found", itineraryID)
	}

	return s.repo.Itinerary.Delete(ctx, itineraryUUID)
}

func (s *safariService) findSafari(ctx context.Context, id string) (*entity.Safari, error) {
	safariID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid safari ID format %s: %w", id, err)
	}

	safari, err := s.repo.Safari.FindByID(ctx, safariID)
	if err != nil {
		return nil, fmt.Errorf("find safari: %w", err)
	}
	if safari == nil {
		return nil, fmt.Errorf("safari %s not found", id)
	}

	return safari, nil
}

func (s *safariService) resolveAccommodation(ctx context.Context, id *string) (*uuid.UUID, error) {
	if id == nil {
		return nil, nil
	}

	accommodationID, err := uuid.Parse(*id)
	if err != nil {
		return nil, fmt.Errorf("invalid accommodation ID format %s: %w", *id, err)
	}

	accommodation, err := s.repo.Accommodation.FindByID(ctx, accommodationID)
	if err != nil {
		return nil, fmt.Errorf("find accommodation: %w", err)
	}
	if accommodation == nil {
		return nil, fmt.Errorf("accommodation %s not found", *id)
	}

	return &accommodationID, nil
}
