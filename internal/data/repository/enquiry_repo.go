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

type EnquiryRepository interface {
	Create(ctx context.Context, enquiry *entity.AccommodationEnquiry) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.AccommodationEnquiry, error)
	FindAll(ctx context.Context) ([]*entity.AccommodationEnquiry, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.AccommodationEnquiry, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.EnquiryStatus, adminResponse *string) error
}

type enquiryRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewEnquiryRepository(db database.PgxIface, log *zap.Logger) EnquiryRepository {
	return &enquiryRepository{
		db:  db,
		log: log.With(zap.String("repository", "enquiry")),
	}
}

const enquiryColumns = `id, user_id, name, email, phone, accommodation_id, price_range,
	message, status, admin_response, created_at`

func scanEnquiry(row pgx.Row) (*entity.AccommodationEnquiry, error) {
	var e entity.AccommodationEnquiry
	err := row.Scan(
		&e.ID,
		&e.UserID,
		&e.Name,
		&e.Email,
		&e.Phone,
		&e.AccommodationID,
		&e.PriceRange,
		&e.Message,
		&e.Status,
		&e.AdminResponse,
		&e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *enquiryRepository) Create(ctx context.Context, enquiry *entity.AccommodationEnquiry) error {
	query := `
		INSERT INTO accommodation_enquiries (id, user_id, name, email, phone, accommodation_id,
			price_range, message, status, admin_response, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		enquiry.ID,
		enquiry.UserID,
		enquiry.Name,
		enquiry.Email,
		enquiry.Phone,
		enquiry.AccommodationID,
		enquiry.PriceRange,
		enquiry.Message,
		enquiry.Status,
		enquiry.AdminResponse,
		enquiry.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create enquiry",
			zap.Error(err),
			zap.String("email", enquiry.Email),
			zap.String("accommodation_id", enquiry.AccommodationID.String()),
		)
		return fmt.Errorf("create enquiry for %s: %w", enquiry.Email, err)
	}

	return nil
}

func (r *enquiryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AccommodationEnquiry, error) {
	query := `SELECT ` + enquiryColumns + ` FROM accommodation_enquiries WHERE id = $1`

	enquiry, err := scanEnquiry(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find enquiry by ID",
			zap.Error(err),
			zap.String("enquiry_id", id.String()),
		)
		return nil, fmt.Errorf("find enquiry by ID %s: %w", id.String(), err)
	}

	return enquiry, nil
}

func (r *enquiryRepository) FindAll(ctx context.Context) ([]*entity.AccommodationEnquiry, error) {
	query := `SELECT ` + enquiryColumns + ` FROM accommodation_enquiries ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list enquiries", zap.Error(err))
		return nil, fmt.Errorf("list enquiries: %w", err)
	}
	defer rows.Close()

	return r.collect(rows)
}

func (r *enquiryRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.AccommodationEnquiry, error) {
	query := `SELECT ` + enquiryColumns + `
		FROM accommodation_enquiries
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find enquiries by user",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find enquiries for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	return r.collect(rows)
}

func (r *enquiryRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.EnquiryStatus, adminResponse *string) error {
	query := `
		UPDATE accommodation_enquiries
		SET status = $2, admin_response = COALESCE($3, admin_response)
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, id, status, adminResponse)
	if err != nil {
		r.log.Error("Failed to update enquiry status",
			zap.Error(err),
			zap.String("enquiry_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update enquiry %s status: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("enquiry %s not found", id.String())
	}

	return nil
}

func (r *enquiryRepository) collect(rows pgx.Rows) ([]*entity.AccommodationEnquiry, error) {
	var enquiries []*entity.AccommodationEnquiry
	for rows.Next() {
		enquiry, err := scanEnquiry(rows)
		if err != nil {
			r.log.Error("Failed to scan enquiry row", zap.Error(err))
			return nil, fmt.Errorf("scan enquiry row: %w", err)
		}
		enquiries = append(enquiries, enquiry)
	}
	return enquiries, nil
}
