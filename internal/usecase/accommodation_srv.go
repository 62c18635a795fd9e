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

type AccommodationService interface {
	// Public endpoints
	ListAccommodations(ctx context.Context, search string) ([]response.AccommodationResponse, error)
	GetAccommodation(ctx context.Context, id string) (*response.AccommodationDetailResponse, error)
	GetFeaturedAccommodations(ctx context.Context) ([]response.AccommodationResponse, error)

	// Admin endpoints
	CreateAccommodation(ctx context.Context, req *request.CreateAccommodationRequest) (*response.AccommodationResponse, error)
	UpdateAccommodation(ctx context.Context, id string, req *request.UpdateAccommodationRequest) (*response.AccommodationResponse, error)
	DeleteAccommodation(ctx context.Context, id string) error
	AddGalleryImage(ctx context.Context, id string, req *request.AddGalleryImageRequest) (*response.GalleryImageResponse, error)
	DeleteGalleryImage(ctx context.Context, id, imageID string) error
}

type accommodationService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAccommodationService(repo *repository.Repository, log *zap.Logger) AccommodationService {
	return &accommodationService{
		repo: repo,
		log:  log.With(zap.String("service", "accommodation")),
	}
}

func (s *accommodationService) ListAccommodations(ctx context.Context, search string) ([]response.AccommodationResponse, error) {
	accommodations, err := s.repo.Accommodation.FindAll(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("list accommodations: %w", err)
	}
	return response.AccommodationsToResponse(accommodations), nil
}

func (s *accommodationService) GetAccommodation(ctx context.Context, id string) (*response.AccommodationDetailResponse, error) {
	accommodation, err := s.findAccommodation(ctx, id)
	if err != nil {
		return nil, err
	}

	gallery, err := s.repo.AccommodationGallery.FindByAccommodationID(ctx, accommodation.ID)
	if err != nil {
		return nil, fmt.Errorf("find gallery for accommodation %s: %w", id, err)
	}

	resp := &response.AccommodationDetailResponse{
		AccommodationResponse: response.AccommodationToResponse(accommodation),
		Gallery:               response.GalleryImagesToResponse(gallery),
	}
	return resp, nil
}

func (s *accommodationService) GetFeaturedAccommodations(ctx context.Context) ([]response.AccommodationResponse, error) {
	accommodations, err := s.repo.Accommodation.FindFeatured(ctx)
	if err != nil {
		return nil, fmt.Errorf("find featured accommodations: %w", err)
	}
	return response.AccommodationsToResponse(accommodations), nil
}

func (s *accommodationService) CreateAccommodation(ctx context.Context, req *request.CreateAccommodationRequest) (*response.AccommodationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create accommodation validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	accommodation := &entity.Accommodation{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:          req.Name,
		Type:          entity.AccommodationType(req.Type),
		Location:      req.Location,
		Description:   req.Description,
		PricePerNight: req.PricePerNight,
		Amenities:     req.Amenities,
		Image:         req.Image,
		Rating:        req.Rating,
		IsFeatured:    req.IsFeatured,
	}

	if err := s.repo.Accommodation.Create(ctx, accommodation); err != nil {
		return nil, fmt.Errorf("create accommodation: %w", err)
	}

	s.log.Info("Accommodation created",
		zap.String("accommodation_id", accommodation.ID.String()),
		zap.String("name", accommodation.Name),
	)

	resp := response.AccommodationToResponse(accommodation)
	return &resp, nil
}

func (s *accommodationService) UpdateAccommodation(ctx context.Context, id string, req *request.UpdateAccommodationRequest) (*response.AccommodationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	accommodation, err := s.findAccommodation(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		accommodation.Name = *req.Name
	}
	if req.Type != nil {
		accommodation.Type = entity.AccommodationType(*req.Type)
	}
	if req.Location != nil {
		accommodation.Location = *req.Location
	}
	if req.Description != nil {
		accommodation.Description = *req.Description
	}
	if req.PricePerNight != nil {
		accommodation.PricePerNight = *req.PricePerNight
	}
	if req.Amenities != nil {
		accommodation.Amenities = *req.Amenities
	}
	if req.Image != nil {
		accommodation.Image = req.Image
	}
	if req.Rating != nil {
		accommodation.Rating = *req.Rating
	}
	if req.IsFeatured != nil {
		accommodation.IsFeatured = *req.IsFeatured
	}
	accommodation.UpdatedAt = time.Now()

	if err := s.repo.Accommodation.Update(ctx, accommodation); err != nil {
		return nil, fmt.Errorf("update accommodation: %w", err)
	}

	resp := response.AccommodationToResponse(accommodation)
	return &resp, nil
}

func (s *accommodationService) DeleteAccommodation(ctx context.Context, id string) error {
	accommodationID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid accommodation ID format %s: %w", id, err)
	}

	return s.repo.Accommodation.Delete(ctx, accommodationID)
}

func (s *accommodationService) AddGalleryImage(ctx context.Context, id string, req *request.AddGalleryImageRequest) (*response.GalleryImageResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	accommodation, err := s.findAccommodation(ctx, id)
	if err != nil {
		return nil, err
	}

	image := &entity.AccommodationGallery{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		AccommodationID: accommodation.ID,
		Image:           req.Image,
		Caption:         req.Caption,
	}

	if err := s.repo.AccommodationGallery.Create(ctx, image); err != nil {
		return nil, fmt.Errorf("add gallery image: %w", err)
	}

	resp := response.GalleryImageToResponse(image)
	return &resp, nil
}

func (s *accommodationService) DeleteGalleryImage(ctx context.Context, id, imageID string) error {
	if _, err := s.findAccommodation(ctx, id); err != nil {
		return err
	}

	imageUUID, err := uuid.Parse(imageID)
	if err != nil {
		return fmt.Errorf("invalid image ID format %s: %w", imageID, err)
	}

	return s.repo.AccommodationGallery.Delete(ctx, imageUUID)
}

func (s *accommodationService) findAccommodation(ctx context.Context, id string) (*entity.Accommodation, error) {
	accommodationID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid accommodation ID format %s: %w", id, err)
	}

	accommodation, err := s.repo.Accommodation.FindByID(ctx, accommodationID)
	if err != nil {
		return nil, fmt.Errorf("find accommodation: %w", err)
	}
	if accommodation == nil {
		return nil, fmt.Errorf("accommodation %s not found", id)
	}

	return accommodation, nil
}
