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

type PackageService interface {
	// Public endpoints
	ListPackages(ctx context.Context, search, orderBy string) ([]response.PackageResponse, error)
	GetPackage(ctx context.Context, id string) (*response.PackageDetailResponse, error)

	// Admin endpoints
	CreatePackage(ctx context.Context, req *request.CreatePackageRequest) (*response.PackageResponse, error)
	UpdatePackage(ctx context.Context, id string, req *request.UpdatePackageRequest) (*response.PackageResponse, error)
	DeletePackage(ctx context.Context, id string) error
	AddSafariToPackage(ctx context.Context, id string, req *request.PackageSafariRequest) error
	RemoveSafariFromPackage(ctx context.Context, id, safariID string) error
}

type packageService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewPackageService(repo *repository.Repository, log *zap.Logger) PackageService {
	return &packageService{
		repo: repo,
		log:  log.With(zap.String("service", "package")),
	}
}

func (s *packageService) ListPackages(ctx context.Context, search, orderBy string) ([]response.PackageResponse, error) {
	packages, err := s.repo.Package.FindAll(ctx, search, orderBy)
	if err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}

	out := make([]response.PackageResponse, 0, len(packages))
	for _, pkg := range packages {
		out = append(out, response.PackageToResponse(pkg, discountedPrice(pkg)))
	}
	return out, nil
}

func (s *packageService) GetPackage(ctx context.Context, id string) (*response.PackageDetailResponse, error) {
	pkg, err := s.findPackage(ctx, id)
	if err != nil {
		return nil, err
	}

	safaris, err := s.repo.Safari.FindByPackageID(ctx, pkg.ID)
	if err != nil {
		return nil, fmt.Errorf("find safaris for package %s: %w", id, err)
	}

	resp := &response.PackageDetailResponse{
		PackageResponse: response.PackageToResponse(pkg, discountedPrice(pkg)),
		Safaris:         response.SafarisToResponse(safaris),
	}
	return resp, nil
}

func (s *packageService) CreatePackage(ctx context.Context, req *request.CreatePackageRequest) (*response.PackageResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create package validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	pkg := &entity.Package{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:              req.Title,
		Description:        req.Description,
		BasePrice:          req.BasePrice,
		DiscountPercentage: req.DiscountPercentage,
		SpecialOffers:      req.SpecialOffers,
		SeasonalPricing:    req.SeasonalPricing,
		GroupDiscounts:     req.GroupDiscounts,
		Image:              req.Image,
	}

	if err := s.repo.Package.Create(ctx, pkg); err != nil {
		return nil, fmt.Errorf("create package: %w", err)
	}

	for _, safariID := range req.SafariIDs {
		safariUUID, err := uuid.Parse(safariID)
		if err != nil {
			return nil, fmt.Errorf("invalid safari ID format %s: %w", safariID, err)
		}
		if err := s.repo.Package.AddSafari(ctx, pkg.ID, safariUUID); err != nil {
			return nil, fmt.Errorf("add safari to package: %w", err)
		}
	}

	s.log.Info("Package created",
		zap.String("package_id", pkg.ID.String()),
		zap.String("title", pkg.Title),
	)

	resp := response.PackageToResponse(pkg, discountedPrice(pkg))
	return &resp, nil
}

func (s *packageService) UpdatePackage(ctx context.Context, id string, req *request.UpdatePackageRequest) (*response.PackageResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	pkg, err := s.findPackage(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		pkg.Title = *req.Title
	}
	if req.Description != nil {
		pkg.Description = *req.Description
	}
	if req.BasePrice != nil {
		pkg.BasePrice = *req.BasePrice
	}
	if req.DiscountPercentage != nil {
		pkg.DiscountPercentage = *req.DiscountPercentage
	}
	if req.SpecialOffers != nil {
		pkg.SpecialOffers = req.SpecialOffers
	}
	if req.SeasonalPricing != nil {
		pkg.SeasonalPricing = req.SeasonalPricing
	}
	if req.GroupDiscounts != nil {
		pkg.GroupDiscounts = req.GroupDiscounts
	}
	if req.Image != nil {
		pkg.Image = req.Image
	}
	pkg.UpdatedAt = time.Now()

	if err := s.repo.Package.Update(ctx, pkg); err != nil {
		return nil, fmt.Errorf("update package: %w", err)
	}

	resp := response.PackageToResponse(pkg, discountedPrice(pkg))
	return &resp, nil
}

func (s *packageService) DeletePackage(ctx context.Context, id string) error {
	packageID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid package ID format %s: %w", id, err)
	}

	return s.repo.Package.Delete(ctx, packageID)
}

func (s *packageService) AddSafariToPackage(ctx context.Context, id string, req *request.PackageSafariRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	pkg, err := s.findPackage(ctx, id)
	if err != nil {
		return err
	}

	safariID, err := uuid.Parse(req.SafariID)
	if err != nil {
		return fmt.Errorf("invalid safari ID format %s: %w", req.SafariID, err)
	}

	safari, err := s.repo.Safari.FindByID(ctx, safariID)
	if err != nil {
		return fmt.Errorf("find safari: %w", err)
	}
	if safari == nil {
		return fmt.Errorf("safari %s not found", req.SafariID)
	}

	return s.repo.Package.AddSafari(ctx, pkg.ID, safariID)
}

func (s *packageService) RemoveSafariFromPackage(ctx context.Context, id, safariID string) error {
	pkg, err := s.findPackage(ctx, id)
	if err != nil {
		return err
	}

	safariUUID, err := uuid.Parse(safariID)
	if err != nil {
		return fmt.Errorf("invalid safari ID format %s: %w", safariID, err)
	}

	return s.repo.Package.RemoveSafari(ctx, pkg.ID, safariUUID)
}

func (s *packageService) findPackage(ctx context.Context, id string) (*entity.Package, error) {
	packageID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid package ID format %s: %w", id, err)
	}

	pkg, err := s.repo.Package.FindByID(ctx, packageID)
	if err != nil {
		return nil, fmt.Errorf("find package: %w", err)
	}
	if pkg == nil {
		return nil, fmt.Errorf("package %s not found", id)
	}

	return pkg, nil
}

func discountedPrice(pkg *entity.Package) float64 {
	return utils.RoundMoney(pkg.BasePrice * (1 - pkg.DiscountPercentage/100))
}
