package repository

import (
	"context"
	"fmt"

	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/data/entity"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ContentRepository serves the flat site-content tables. They are singletons
// or small admin-curated lists, so only read paths are exposed over HTTP.
type ContentRepository interface {
	GetHomePage(ctx context.Context) (*entity.HomePage, error)
	GetAboutPage(ctx context.Context) (*entity.AboutPage, error)
	FindTeamMembers(ctx context.Context) ([]*entity.TeamMember, error)
	FindTestimonials(ctx context.Context) ([]*entity.Testimonial, error)
}

type contentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewContentRepository(db database.PgxIface, log *zap.Logger) ContentRepository {
	return &contentRepository{
		db:  db,
		log: log.With(zap.String("repository", "content")),
	}
}

func (r *contentRepository) GetHomePage(ctx context.Context) (*entity.HomePage, error) {
	query := `
		SELECT id, title, subtitle, hero_image, created_at, updated_at
		FROM home_page
		ORDER BY updated_at DESC
		LIMIT 1
	`

	var page entity.HomePage
	err := r.db.QueryRow(ctx, query).Scan(
		&page.ID,
		&page.Title,
		&page.Subtitle,
		&page.HeroImage,
		&page.CreatedAt,
		&page.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to get home page", zap.Error(err))
		return nil, fmt.Errorf("get home page: %w", err)
	}

	return &page, nil
}

func (r *contentRepository) GetAboutPage(ctx context.Context) (*entity.AboutPage, error) {
	query := `
		SELECT id, title, content, image, created_at, updated_at
		FROM about_page
		ORDER BY updated_at DESC
		LIMIT 1
	`

	var page entity.AboutPage
	err := r.db.QueryRow(ctx, query).Scan(
		&page.ID,
		&page.Title,
		&page.Content,
		&page.Image,
		&page.CreatedAt,
		&page.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to get about page", zap.Error(err))
		return nil, fmt.Errorf("get about page: %w", err)
	}

	return &page, nil
}

func (r *contentRepository) FindTeamMembers(ctx context.Context) ([]*entity.TeamMember, error) {
	query := `
		SELECT id, name, role, image, description, created_at, updated_at
		FROM team_members
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list team members", zap.Error(err))
		return nil, fmt.Errorf("list team members: %w", err)
	}
	defer rows.Close()

	var members []*entity.TeamMember
	for rows.Next() {
		var member entity.TeamMember
		err := rows.Scan(
			&member.ID,
			&member.Name,
			&member.Role,
			&member.Image,
			&member.Description,
			&member.CreatedAt,
			&member.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan team member row", zap.Error(err))
			return nil, fmt.Errorf("scan team member row: %w", err)
		}
		members = append(members, &member)
	}

	return members, nil
}

func (r *contentRepository) FindTestimonials(ctx context.Context) ([]*entity.Testimonial, error) {
	query := `
		SELECT id, name, location, comment, rating, image, created_at, updated_at
		FROM testimonials
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list testimonials", zap.Error(err))
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	defer rows.Close()

	var testimonials []*entity.Testimonial
	for rows.Next() {
		var testimonial entity.Testimonial
		err := rows.Scan(
			&testimonial.ID,
			&testimonial.Name,
			&testimonial.Location,
			&testimonial.Comment,
			&testimonial.Rating,
			&testimonial.Image,
			&testimonial.CreatedAt,
			&testimonial.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan testimonial row", zap.Error(err))
			return nil, fmt.Errorf("scan testimonial row: %w", err)
		}
		testimonials = append(testimonials, &testimonial)
	}

	return testimonials, nil
}
