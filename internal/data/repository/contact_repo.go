package repository

import (
	"context"
	"fmt"

	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/data/entity"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/pkg/database"

	"go.uber.org/zap"
)

type ContactRepository interface {
	CreateMessage(ctx context.Context, message *entity.ContactMessage) error
	FindMessages(ctx context.Context) ([]*entity.ContactMessage, error)
	CreateChatMessage(ctx context.Context, message *entity.ChatMessage) error
	Subscribe(ctx context.Context, subscription *entity.NewsletterSubscription) error
}

type contactRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewContactRepository(db database.PgxIface, log *zap.Logger) ContactRepository {
	return &contactRepository{
		db:  db,
		log: log.With(zap.String("repository", "contact")),
	}
}

func (r *contactRepository) CreateMessage(ctx context.Context, message *entity.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (id, name, email, subject, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		message.ID,
		message.Name,
		message.Email,
		message.Subject,
		message.Message,
		message.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create contact message",
			zap.Error(err),
			zap.String("email", message.Email),
		)
		return fmt.Errorf("create contact message from %s: %w", message.Email, err)
	}

	return nil
}

func (r *contactRepository) FindMessages(ctx context.Context) ([]*entity.ContactMessage, error) {
	query := `
		SELECT id, name, email, subject, message, created_at
		FROM contact_messages
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list contact messages", zap.Error(err))
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	defer rows.Close()

	var messages []*entity.ContactMessage
	for rows.Next() {
		var message entity.ContactMessage
		err := rows.Scan(
			&message.ID,
			&message.Name,
			&message.Email,
			&message.Subject,
			&message.Message,
			&message.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan contact message row", zap.Error(err))
			return nil, fmt.Errorf("scan contact message row: %w", err)
		}
		messages = append(messages, &message)
	}

	return messages, nil
}

func (r *contactRepository) CreateChatMessage(ctx context.Context, message *entity.ChatMessage) error {
	query := `
		INSERT INTO chat_messages (id, text, sender, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query,
		message.ID,
		message.Text,
		message.Sender,
		message.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create chat message", zap.Error(err))
		return fmt.Errorf("create chat message: %w", err)
	}

	return nil
}

func (r *contactRepository) Subscribe(ctx context.Context, subscription *entity.NewsletterSubscription) error {
	query := `
		INSERT INTO newsletter_subscriptions (id, email, created_at)
		VALUES ($1, $2, $3)
	`

	_, err := r.db.Exec(ctx, query,
		subscription.ID,
		subscription.Email,
		subscription.CreatedAt,
	)

	if err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("email %s already subscribed", subscription.Email)
		}
		r.log.Error("Failed to create newsletter subscription",
			zap.Error(err),
			zap.String("email", subscription.Email),
		)
		return fmt.Errorf("subscribe %s: %w", subscription.Email, err)
	}

	return nil
}
