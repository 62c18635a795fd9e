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

type FAQRepository interface {
	Create(ctx context.Context, faq *entity.FAQ) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.FAQ, error)
	FindAll(ctx context.Context, category string) ([]*entity.FAQ, error)
	Update(ctx context.Context, faq *entity.FAQ) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type faqRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFAQRepository(db database.PgxIface, log *zap.Logger) FAQRepository {
	return &faqRepository{
		db:  db,
		log: log.With(zap.String("repository", "faq")),
	}
}

const faqColumns = `id, question, answer, category, display_order, created_at, updated_at`

func scanFAQ(row pgx.Row) (*entity.FAQ, error) {
	var f entity.FAQ
	err := row.Scan(
		&f.ID,
		&f.Question,
		&f.Answer,
		&f.Category,
		&f.Order,
		&f.CreatedAt,
		&f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *faqRepository) Create(ctx context.Context, faq *entity.FAQ) error {
	query := `
		INSERT INTO faqs (id, question, answer, category, display_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		faq.ID,
		faq.Question,
		faq.Answer,
		faq.Category,
		faq.Order,
		faq.CreatedAt,
		faq.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create FAQ", zap.Error(err))
		return fmt.Errorf("create FAQ: %w", err)
	}

	return nil
}

func (r *faqRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.FAQ, error) {
	query := `SELECT ` + faqColumns + ` FROM faqs WHERE id = $1`

	faq, err := scanFAQ(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find FAQ by ID",
			zap.Error(err),
			zap.String("faq_id", id.String()),
		)
		return nil, fmt.Errorf("find FAQ by ID %s: %w", id.String(), err)
	}

	return faq, nil
}

func (r *faqRepository) FindAll(ctx context.Context, category string) ([]*entity.FAQ, error) {
	query := `SELECT ` + faqColumns + `
		FROM faqs
		WHERE ($1 = '' OR category = $1)
		ORDER BY display_order, created_at`

	rows, err := r.db.Query(ctx, query, category)
	if err != nil {
		r.log.Error("Failed to list FAQs", zap.Error(err), zap.String("category", category))
		return nil, fmt.Errorf("list FAQs: %w", err)
	}
	defer rows.Close()

	var faqs []*entity.FAQ
	for rows.Next() {
		faq, err := scanFAQ(rows)
		if err != nil {
			r.log.Error("Failed to scan FAQ row", zap.Error(err))
			return nil, fmt.Errorf("scan FAQ row: %w", err)
		}
		faqs = append(faqs, faq)
	}

	return faqs, nil
}

func (r *faqRepository) Update(ctx context.Context, faq *entity.FAQ) error {
	query := `
		UPDATE faqs
		SET question = $2, answer = $3, category = $4, display_order = $5, updated_at = $6
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		faq.ID,
		faq.Question,
		faq.Answer,
		faq.Category,
		faq.Order,
		faq.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update FAQ",
			zap.Error(err),
			zap.String("faq_id", faq.ID.String()),
		)
		return fmt.Errorf("update FAQ %s: %w", faq.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("FAQ %s not found", faq.ID.String())
	}

	return nil
}

func (r *faqRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM faqs WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete FAQ",
			zap.Error(err),
			zap.String("faq_id", id.String()),
		)
		return fmt.Errorf("delete FAQ %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("FAQ %s not found", id.String())
	}

	return nil
}
