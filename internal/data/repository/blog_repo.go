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

type BlogRepository interface {
	Create(ctx context.Context, blog *entity.Blog) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Blog, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Blog, error)
	FindAll(ctx context.Context) ([]*entity.Blog, error)
	Update(ctx context.Context, blog *entity.Blog) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type blogRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBlogRepository(db database.PgxIface, log *zap.Logger) BlogRepository {
	return &blogRepository{
		db:  db,
		log: log.With(zap.String("repository", "blog")),
	}
}

const blogColumns = `id, title, slug, author_id, content, image, published_date, created_at, updated_at`

func scanBlog(row pgx.Row) (*entity.Blog, error) {
	var b entity.Blog
	err := row.Scan(
		&b.ID,
		&b.Title,
		&b.Slug,
		&b.AuthorID,
		&b.Content,
		&b.Image,
		&b.PublishedDate,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *blogRepository) Create(ctx context.Context, blog *entity.Blog) error {
	query := `
		INSERT INTO blogs (id, title, slug, author_id, content, image, published_date,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		blog.ID,
		blog.Title,
		blog.Slug,
		blog.AuthorID,
		blog.Content,
		blog.Image,
		blog.PublishedDate,
		blog.CreatedAt,
		blog.UpdatedAt,
	)

	if err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("blog post %s already exists", blog.Slug)
		}
		r.log.Error("Failed to create blog post",
			zap.Error(err),
			zap.String("slug", blog.Slug),
		)
		return fmt.Errorf("create blog post %s: %w", blog.Slug, err)
	}

	return nil
}

func (r *blogRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Blog, error) {
	query := `SELECT ` + blogColumns + ` FROM blogs WHERE id = $1`

	blog, err := scanBlog(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find blog post by ID",
			zap.Error(err),
			zap.String("blog_id", id.String()),
		)
		return nil, fmt.Errorf("find blog post by ID %s: %w", id.String(), err)
	}

	return blog, nil
}

func (r *blogRepository) FindBySlug(ctx context.Context, slug string) (*entity.Blog, error) {
	query := `SELECT ` + blogColumns + ` FROM blogs WHERE slug = $1`

	blog, err := scanBlog(r.db.QueryRow(ctx, query, slug))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find blog post by slug",
			zap.Error(err),
			zap.String("slug", slug),
		)
		return nil, fmt.Errorf("find blog post by slug %s: %w", slug, err)
	}

	return blog, nil
}

func (r *blogRepository) FindAll(ctx context.Context) ([]*entity.Blog, error) {
	query := `SELECT ` + blogColumns + ` FROM blogs ORDER BY published_date DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list blog posts", zap.Error(err))
		return nil, fmt.Errorf("list blog posts: %w", err)
	}
	defer rows.Close()

	var blogs []*entity.Blog
	for rows.Next() {
		blog, err := scanBlog(rows)
		if err != nil {
			r.log.Error("Failed to scan blog row", zap.Error(err))
			return nil, fmt.Errorf("scan blog row: %w", err)
		}
		blogs = append(blogs, blog)
	}

	return blogs, nil
}

func (r *blogRepository) Update(ctx context.Context, blog *entity.Blog) error {
	query := `
		UPDATE blogs
		SET title = $2, slug = $3, author_id = $4, content = $5, image = $6,
		    published_date = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		blog.ID,
		blog.Title,
		blog.Slug,
		blog.AuthorID,
		blog.Content,
		blog.Image,
		blog.PublishedDate,
		blog.UpdatedAt,
	)

	if err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("blog post %s already exists", blog.Slug)
		}
		r.log.Error("Failed to update blog post",
			zap.Error(err),
			zap.String("blog_id", blog.ID.String()),
		)
		return fmt.Errorf("update blog post %s: %w", blog.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("blog post %s not found", blog.ID.String())
	}

	return nil
}

func (r *blogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM blogs WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete blog post",
			zap.Error(err),
			zap.String("blog_id", id.String()),
		)
		return fmt.Errorf("delete blog post %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("blog post %s not found", id.String())
	}

	return nil
}
