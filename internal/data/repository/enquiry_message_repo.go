package repository

import (
	"context"
	"fmt"

	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/data/entity"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type EnquiryMessageRepository interface {
	Create(ctx context.Context, message *entity.AccommodationEnquiryMessage) error
	FindByEnquiryID(ctx context.Context, enquiryID uuid.UUID) ([]*entity.AccommodationEnquiryMessage, error)
	MarkAdminMessagesRead(ctx context.Context, enquiryID uuid.UUID) error
}

type enquiryMessageRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewEnquiryMessageRepository(db database.PgxIface, log *zap.Logger) EnquiryMessageRepository {
	return &enquiryMessageRepository{
		db:  db,
		log: log.With(zap.String("repository", "enquiry_message")),
	}
}

func (r *enquiryMessageRepository) Create(ctx context.Context, message *entity.AccommodationEnquiryMessage) error {
	query := `
		INSERT INTO accommodation_enquiry_messages (id, enquiry_id, sender, message, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		message.ID,
		message.EnquiryID,
		message.Sender,
		message.Message,
		message.IsRead,
		message.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create enquiry message",
			zap.Error(err),
			zap.String("enquiry_id", message.EnquiryID.String()),
			zap.String("sender", string(message.Sender)),
		)
		return fmt.Errorf("create message for enquiry %s: %w", message.EnquiryID.String(), err)
	}

	return nil
}

func (r *enquiryMessageRepository) FindByEnquiryID(ctx context.Context, enquiryID uuid.UUID) ([]*entity.AccommodationEnquiryMessage, error) {
	query := `
		SELECT id, enquiry_id, sender, message, is_read, created_at
		FROM accommodation_enquiry_messages
		WHERE enquiry_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, enquiryID)
	if err != nil {
		r.log.Error("Failed to find enquiry messages",
			zap.Error(err),
			zap.String("enquiry_id", enquiryID.String()),
		)
		return nil, fmt.Errorf("find messages for enquiry %s: %w", enquiryID.String(), err)
	}
	defer rows.Close()

	var messages []*entity.AccommodationEnquiryMessage
	for rows.Next() {
		var message entity.AccommodationEnquiryMessage
		err := rows.Scan(
			&message.ID,
			&message.EnquiryID,
			&message.Sender,
			&message.Message,
			&message.IsRead,
			&message.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan enquiry message row", zap.Error(err))
			return nil, fmt.Errorf("scan enquiry message row: %w", err)
		}
		messages = append(messages, &message)
	}

	return messages, nil
}

func (r *enquiryMessageRepository) MarkAdminMessagesRead(ctx context.Context, enquiryID uuid.UUID) error {
	query := `
		UPDATE accommodation_enquiry_messages
		SET is_read = TRUE
		WHERE enquiry_id = $1 AND sender = $2 AND NOT is_read
	`

	_, err := r.db.Exec(ctx, query, enquiryID, entity.SenderAdmin)
	if err != nil {
		r.log.Error("Failed to mark enquiry messages read",
			zap.Error(err),
			zap.String("enquiry_id", enquiryID.String()),
		)
		return fmt.Errorf("mark messages read for enquiry %s: %w", enquiryID.String(), err)
	}

	return nil
}
