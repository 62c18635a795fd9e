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

type DestinationService interface {
	// Public endpoints
	ListDestinations(ctx context.Context, search string) ([]response.DestinationResponse, error)
	GetDestination(ctx context.Context, id string) (*response.DestinationResponse, error)
	GetDestinationSafaris(ctx context.Context, id string) ([]response.SafariResponse, error)

	// Admin endpoints
	CreateDestination(ctx context.Context, req *request.CreateDestinationRequest) (*response.DestinationResponse, error)
	UpdateDestination(ctx context.Context, id string, req *request.UpdateDestinationRequest) (*response.DestinationResponse, error)
	DeleteDestination(ctx context.Context, id string) error
}

type destinationService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewDestinationService(repo *repository.Repository, log *zap.Logger) DestinationService {
	return &destinationService{
		repo: repo,
		log:  log.With(zap.String("service", "destination")),
	}
}

func (s *destinationService) ListDestinations(ctx context.Context, search string) ([]response.DestinationResponse, error) {
	destinations, err := s.repo.Destination.FindAll(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("list destinations: %w", err)
	}
	return response.DestinationsToResponse(destinations), nil
}

func (s *destinationService) GetDestination(ctx context.Context, id string) (*response.DestinationResponse, error) {
	destination, err := s.findDestination(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := response.DestinationToResponse(destination)
	return &resp, nil
}

func (s *destinationService) GetDestinationSafaris(ctx context.Context, id string) ([]response.SafariResponse, error) {
	destination, err := s.findDestination(ctx, id)
	if err != nil {
		return nil, err
	}

	safaris, err := s.repo.Safari.FindByDestinationID(ctx, destination.ID)
	if err != nil {
		return nil, fmt.Errorf("find safaris for destination %s: %w", id, err)
	}

	return response.SafarisToResponse(safaris), nil
}

func (s *destinationService) CreateDestination(ctx context.Context, req *request.CreateDestinationRequest) (*response.DestinationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create destination validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	destination := &entity.Destination{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:                req.Name,
		Location:            req.Location,
		Description:         req.Description,
		Image:               req.Image,
		Highlights:          req.Highlights,
		BestTime:            req.BestTime,
		WeatherInformation:  req.WeatherInformation,
		LocalCulture:        req.LocalCulture,
		WildlifeInformation: req.WildlifeInformation,
	}

	if err := s.repo.Destination.Create(ctx, destination); err != nil {
		return nil, fmt.Errorf("create destination: %w", err)
	}

	s.log.Info("Destination created",
		zap.String("destination_id", destination.ID.String()),
		zap.String("name", destination.Name),
	)

	resp := response.DestinationToResponse(destination)
	return &resp, nil
}

func (s *destinationService) UpdateDestination(ctx context.Context, id string, req *request.UpdateDestinationRequest) (*response.DestinationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	destination, err := s.findDestination(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		destination.Name = *req.Name
	}
	if req.Location != nil {
		destination.Location = *req.Location
	}
	if req.Description != nil {
		destination.Description = *req.Description
	}
	if req.Image != nil {
		destination.Image = req.Image
	}
	if req.Highlights != nil {
		destination.Highlights = *req.Highlights
	}
	if req.BestTime != nil {
		destination.BestTime = *req.BestTime
	}
	if req.WeatherInformation != nil {
		destination.WeatherInformation = req.WeatherInformation
	}
	if req.LocalCulture != nil {
		destination.LocalCulture = req.LocalCulture
	}
	if req.WildlifeInformation != nil {
		destination.WildlifeInformation = req.WildlifeInformation
	}
	destination.UpdatedAt = time.Now()

	if err := s.repo.Destination.Update(ctx, destination); err != nil {
		return nil, fmt.Errorf("update destination: %w", err)
	}

	resp := response.DestinationToResponse(destination)
	return &resp, nil
}

func (s *destinationService) DeleteDestination(ctx context.Context, id string) error {
	destinationID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid destination ID format %s: %w", id, err)
	}

	return s.repo.Destination.Delete(ctx, destinationID)
}

func (s *destinationService) findDestination(ctx context.Context, id string) (*entity.Destination, error) {
	destinationID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid destination ID format %s: %w", id, err)
	}

	destination, err := s.repo.Destination.FindByID(ctx, destinationID)
	if err != nil {
		return nil, fmt.Errorf("find destination: %w", err)
	}
	if destination == nil {
		return nil, fmt.Errorf("destination %s not found", id)
	}

	return destination, nil
}
