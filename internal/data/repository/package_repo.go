package repository

import (
	"context"
	"fmt"

	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/data/entity"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PackageRepository interface {
	Create(ctx context.Context, pkg *entity.Package) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Package, error)
	FindAll(ctx context.Context, search, orderBy string) ([]*entity.Package, error)
	Update(ctx context.Context, pkg *entity.Package) error
	Delete(ctx context.Context, id uuid.UUID) error

	// package_safaris join table
	AddSafari(ctx context.Context, packageID, safariID uuid.UUID) error
	RemoveSafari(ctx context.Context, packageID, safariID uuid.UUID) error
}

type packageRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPackageRepository(db database.PgxIface, log *zap.Logger) PackageRepository {
	return &packageRepository{
		db:  db,
		log: log.With(zap.String("repository", "package")),
	}
}

const packageColumns = `id, title, description, base_price, discount_percentage,
	special_offers, seasonal_pricing, group_discounts, image, created_at, updated_at`

func scanPackage(row pgx.Row) (*entity.Package, error) {
	var p entity.Package
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.BasePrice,
		&p.DiscountPercentage,
		&p.SpecialOffers,
		&p.SeasonalPricing,
		&p.GroupDiscounts,
		&p.Image,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *packageRepository) Create(ctx context.Context, pkg *entity.Package) error {
	query := `
		INSERT INTO packages (id, title, description, base_price, discount_percentage,
			special_offers, seasonal_pricing, group_discounts, image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		pkg.ID,
		pkg.Title,
		pkg.Description,
		pkg.BasePrice,
		pkg.DiscountPercentage,
		pkg.SpecialOffers,
		pkg.SeasonalPricing,
		pkg.GroupDiscounts,
		pkg.Image,
		pkg.CreatedAt,
		pkg.UpdatedAt,
	)

	if err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("package %s already exists", pkg.Title)
		}
		r.log.Error("Failed to create package",
			zap.Error(err),
			zap.String("title", pkg.Title),
		)
		return fmt.Errorf("create package %s: %w", pkg.Title, err)
	}

	return nil
}

func (r *packageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Package, error) {
	query := `SELECT ` + packageColumns + ` FROM packages WHERE id = $1`

	pkg, err := scanPackage(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find package by ID",
			zap.Error(err),
			zap.String("package_id", id.String()),
		)
		return nil, fmt.Errorf("find package by ID %s: %w", id.String(), err)
	}

	return pkg, nil
}

func (r *packageRepository) FindAll(ctx context.Context, search, orderBy string) ([]*entity.Package, error) {
	order := "title"
	switch orderBy {
	case "base_price":
		order = "base_price"
	case "-base_price":
		order = "base_price DESC"
	}

	query := `SELECT ` + packageColumns + `
		FROM packages
		WHERE ($1 = '' OR title ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')
		ORDER BY ` + order

	rows, err := r.db.Query(ctx, query, search)
	if err != nil {
		r.log.Error("Failed to list packages", zap.Error(err), zap.String("search", search))
		return nil, fmt.Errorf("list packages: %w", err)
	}
	defer rows.Close()

	var packages []*entity.Package
	for rows.Next() {
		pkg, err := scanPackage(rows)
		if err != nil {
			r.log.Error("Failed to scan package row", zap.Error(err))
			return nil, fmt.Errorf("scan package row: %w", err)
		}
		packages = append(packages, pkg)
	}

	return packages, nil
}

func (r *packageRepository) Update(ctx context.Context, pkg *entity.Package) error {
	query := `
		UPDATE packages
		SET title = $2, description = $3, base_price = $4, discount_percentage = $5,
		    special_offers = $6, seasonal_pricing = $7, group_discounts = $8, image = $9,
		    updated_at = $10
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		pkg.ID,
		pkg.Title,
		pkg.Description,
		pkg.BasePrice,
		pkg.DiscountPercentage,
		pkg.SpecialOffers,
		pkg.SeasonalPricing,
		pkg.GroupDiscounts,
		pkg.Image,
		pkg.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update package",
			zap.Error(err),
			zap.String("package_id", pkg.ID.String()),
		)
		return fmt.Errorf("update package %s: %w", pkg.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("package %s not found", pkg.ID.String())
	}

	return nil
}

func (r *packageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM packages WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete package",
			zap.Error(err),
			zap.String("package_id", id.String()),
		)
		return fmt.Errorf("delete package %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("package %s not found", id.String())
	}

	return nil
}

func (r *packageRepository) AddSafari(ctx context.Context, packageID, safariID uuid.UUID) error {
	query := `
		INSERT INTO package_safaris (package_id, safari_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`

	_, err := r.db.Exec(ctx, query, packageID, safariID)
	if err != nil {
		r.log.Error("Failed to add safari to package",
			zap.Error(err),
			zap.String("package_id", packageID.String()),
			zap.String("safari_id", safariID.String()),
		)
		return fmt.Errorf("add safari %s to package %s: %w", safariID.String(), packageID.String(), err)
	}

	return nil
}

func (r *packageRepository) RemoveSafari(ctx context.Context, packageID, safariID uuid.UUID) error {
	query := `DELETE FROM package_safaris WHERE package_id = $1 AND safari_id = $2`

	_, err := r.db.Exec(ctx, query, packageID, safariID)
	if err != nil {
		r.log.Error("Failed to remove safari from package",
			zap.Error(err),
			zap.String("package_id", packageID.String()),
			zap.String("safari_id", safariID.String()),
		)
		return fmt.Errorf("remove safari %s from package %s: %w", safariID.String(), packageID.String(), err)
	}

	return nil
}
