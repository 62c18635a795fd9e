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

func testPackage(basePrice, discount float64) *entity.Package {
	now := time.Now()
	return &entity.Package{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:              "Kenya Highlights",
		Description:        "Mara, Amboseli and Tsavo in one trip.",
		BasePrice:          basePrice,
		DiscountPercentage: discount,
	}
}

func TestGetPackageAppliesDiscount(t *testing.T) {
	pkg := testPackage(1000, 15)
	repo := &repository.Repository{
		Package: newFakePackageRepo(pkg),
		Safari:  newFakeSafariRepo(),
	}
	svc := NewPackageService(repo, zap.NewNop())

	resp, err := svc.GetPackage(context.Background(), pkg.ID.String())
	require.NoError(t, err)

	assert.Equal(t, 1000.0, resp.BasePrice)
	assert.Equal(t, 850.0, resp.DiscountedPrice)
}

func TestGetPackageWithoutDiscountKeepsBasePrice(t *testing.T) {
	pkg := testPackage(2499.99, 0)
	repo := &repository.Repository{
		Package: newFakePackageRepo(pkg),
		Safari:  newFakeSafariRepo(),
	}
	svc := NewPackageService(repo, zap.NewNop())

	resp, err := svc.GetPackage(context.Background(), pkg.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 2499.99, resp.DiscountedPrice)
}

func TestCreatePackageLinksSafaris(t *testing.T) {
	safari := testSafari(1200, 10)
	packages := newFakePackageRepo()
	repo := &repository.Repository{
		Package: packages,
		Safari:  newFakeSafariRepo(safari),
	}
	svc := NewPackageService(repo, zap.NewNop())

	resp, err := svc.CreatePackage(context.Background(), &request.CreatePackageRequest{
		Title:              "Honeymoon Escape",
		Description:        "A week of romance in the wild.",
		BasePrice:          3200,
		DiscountPercentage: 10,
		SafariIDs:          []string{safari.ID.String()},
	})
	require.NoError(t, err)

	pkgID, err := uuid.Parse(resp.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{safari.ID}, packages.safaris[pkgID])
}

func TestAddSafariToPackageRequiresExistingSafari(t *testing.T) {
	pkg := testPackage(1000, 0)
	repo := &repository.Repository{
		Package: newFakePackageRepo(pkg),
		Safari:  newFakeSafariRepo(),
	}
	svc := NewPackageService(repo, zap.NewNop())

	err := svc.AddSafariToPackage(context.Background(), pkg.ID.String(), &request.PackageSafariRequest{
		SafariID: uuid.NewString(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestUpdatePackageRecomputesDiscount(t *testing.T) {
	pkg := testPackage(1000, 0)
	repo := &repository.Repository{
		Package: newFakePackageRepo(pkg),
		Safari:  newFakeSafariRepo(),
	}
	svc := NewPackageService(repo, zap.NewNop())

	discount := 25.0
	resp, err := svc.UpdatePackage(context.Background(), pkg.ID.String(), &request.UpdatePackageRequest{
		DiscountPercentage: &discount,
	})
	require.NoError(t, err)
	assert.Equal(t, 750.0, resp.DiscountedPrice)
}
