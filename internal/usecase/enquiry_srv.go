package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/data/entity"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/data/repository"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/dto/request"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/dto/response"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/pkg/mailer"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type EnquiryService interface {
	// Public endpoint. userID is empty for anonymous enquiries.
	CreateEnquiry(ctx context.Context, userID string, req *request.CreateEnquiryRequest) (*response.EnquiryResponse, error)

	// Authenticated endpoints
	GetMyEnquiries(ctx context.Context, userID string) ([]response.EnquiryResponse, error)
	GetEnquiry(ctx context.Context, userID string, isAdmin bool, id string) (*response.EnquiryDetailResponse, error)
	AddMessage(ctx context.Context, userID string, isAdmin bool, id string, req *request.CreateEnquiryMessageRequest) (*response.EnquiryMessageResponse, error)
	MarkMessagesRead(ctx context.Context, userID string, id string) error

	// Admin endpoints
	ListEnquiries(ctx context.Context) ([]response.EnquiryResponse, error)
	UpdateEnquiryStatus(ctx context.Context, id string, req *request.UpdateEnquiryStatusRequest) (*response.EnquiryResponse, error)
}

type enquiryService struct {
	repo *repository.Repository
	mail mailer.Mailer
	log  *zap.Logger
}

func NewEnquiryService(repo *repository.Repository, mail mailer.Mailer, log *zap.Logger) EnquiryService {
	return &enquiryService{
		repo: repo,
		mail: mail,
		log:  log.With(zap.String("service", "enquiry")),
	}
}

func (s *enquiryService) CreateEnquiry(ctx context.Context, userID string, req *request.CreateEnquiryRequest) (*response.EnquiryResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create enquiry validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	accommodationID, err := uuid.Parse(req.AccommodationID)
	if err != nil {
		return nil, fmt.Errorf("invalid accommodation ID format %s: %w", req.AccommodationID, err)
	}

	accommodation, err := s.repo.Accommodation.FindByID(ctx, accommodationID)
	if err != nil {
		return nil, fmt.Errorf("find accommodation: %w", err)
	}
	if accommodation == nil {
		return nil, fmt.Errorf("accommodation %s not found", req.AccommodationID)
	}

	var userUUID *uuid.UUID
	if userID != "" {
		parsed, err := uuid.Parse(userID)
		if err != nil {
			return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
		}
		userUUID = &parsed
	}

	enquiry := &entity.AccommodationEnquiry{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:          userUUID,
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		AccommodationID: accommodationID,
		PriceRange:      req.PriceRange,
		Message:         req.Message,
		Status:          entity.EnquiryStatusPending,
	}

	if err := s.repo.Enquiry.Create(ctx, enquiry); err != nil {
		return nil, fmt.Errorf("create enquiry: %w", err)
	}

	// Seed the thread with the initial message so the conversation view
	// starts populated.
	if req.Message != nil && *req.Message != "" {
		message := &entity.AccommodationEnquiryMessage{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: time.Now(),
			},
			EnquiryID: enquiry.ID,
			Sender:    entity.SenderUser,
			Message:   *req.Message,
		}
		if err := s.repo.EnquiryMessage.Create(ctx, message); err != nil {
			s.log.Warn("Failed to seed enquiry thread",
				zap.Error(err),
				zap.String("enquiry_id", enquiry.ID.String()),
			)
		}
	}

	s.sendAcknowledgementEmail(enquiry, accommodation)

	s.log.Info("Enquiry created",
		zap.String("enquiry_id", enquiry.ID.String()),
		zap.String("accommodation_id", accommodationID.String()),
	)

	resp := response.EnquiryToResponse(enquiry)
	resp.AccommodationName = accommodation.Name
	return &resp, nil
}

func (s *enquiryService) GetMyEnquiries(ctx context.Context, userID string) ([]response.EnquiryResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	enquiries, err := s.repo.Enquiry.FindByUserID(ctx, userUUID)
	if err != nil {
		return nil, fmt.Errorf("find enquiries: %w", err)
	}
	return response.EnquiriesToResponse(enquiries), nil
}

func (s *enquiryService) GetEnquiry(ctx context.Context, userID string, isAdmin bool, id string) (*response.EnquiryDetailResponse, error) {
	enquiry, err := s.findOwnedEnquiry(ctx, userID, isAdmin, id)
	if err != nil {
		return nil, err
	}

	messages, err := s.repo.EnquiryMessage.FindByEnquiryID(ctx, enquiry.ID)
	if err != nil {
		return nil, fmt.Errorf("find messages for enquiry %s: %w", id, err)
	}

	resp := &response.EnquiryDetailResponse{
		EnquiryResponse: response.EnquiryToResponse(enquiry),
		Messages:        response.EnquiryMessagesToResponse(messages),
	}
	return resp, nil
}

func (s *enquiryService) AddMessage(ctx context.Context, userID string, isAdmin bool, id string, req *request.CreateEnquiryMessageRequest) (*response.EnquiryMessageResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	enquiry, err := s.findOwnedEnquiry(ctx, userID, isAdmin, id)
	if err != nil {
		return nil, err
	}

	if enquiry.Status == entity.EnquiryStatusCancelled {
		return nil, fmt.Errorf("cannot message a cancelled enquiry")
	}

	sender := entity.SenderUser
	if isAdmin {
		sender = entity.SenderAdmin
	}

	message := &entity.AccommodationEnquiryMessage{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		EnquiryID: enquiry.ID,
		Sender:    sender,
		Message:   req.Message,
	}

	if err := s.repo.EnquiryMessage.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("create enquiry message: %w", err)
	}

	resp := response.EnquiryMessageToResponse(message)
	return &resp, nil
}

func (s *enquiryService) MarkMessagesRead(ctx context.Context, userID string, id string) error {
	enquiry, err := s.findOwnedEnquiry(ctx, userID, false, id)
	if err != nil {
		return err
	}

	return s.repo.EnquiryMessage.MarkAdminMessagesRead(ctx, enquiry.ID)
}

func (s *enquiryService) ListEnquiries(ctx context.Context) ([]response.EnquiryResponse, error) {
	enquiries, err := s.repo.Enquiry.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list enquiries: %w", err)
	}
	return response.EnquiriesToResponse(enquiries), nil
}

func (s *enquiryService) UpdateEnquiryStatus(ctx context.Context, id string, req *request.UpdateEnquiryStatusRequest) (*response.EnquiryResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	enquiry, err := s.findEnquiry(ctx, id)
	if err != nil {
		return nil, err
	}

	status := entity.EnquiryStatus(req.Status)
	if err := s.repo.Enquiry.UpdateStatus(ctx, enquiry.ID, status, req.AdminResponse); err != nil {
		return nil, fmt.Errorf("update enquiry status: %w", err)
	}

	enquiry.Status = status
	if req.AdminResponse != nil {
		enquiry.AdminResponse = req.AdminResponse
	}

	s.log.Info("Enquiry status updated",
		zap.String("enquiry_id", enquiry.ID.String()),
		zap.String("status", req.Status),
	)

	resp := response.EnquiryToResponse(enquiry)
	return &resp, nil
}

// findOwnedEnquiry enforces that non-admin callers only see their own
// enquiries. A foreign enquiry reads as not found.
func (s *enquiryService) findOwnedEnquiry(ctx context.Context, userID string, isAdmin bool, id string) (*entity.AccommodationEnquiry, error) {
	enquiry, err := s.findEnquiry(ctx, id)
	if err != nil {
		return nil, err
	}

	if !isAdmin {
		if enquiry.UserID == nil || enquiry.UserID.String() != userID {
			return nil, fmt.Errorf("enquiry %s not found", id)
		}
	}

	return enquiry, nil
}

func (s *enquiryService) findEnquiry(ctx context.Context, id string) (*entity.AccommodationEnquiry, error) {
	enquiryID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid enquiry ID format %s: %w", id, err)
	}

	enquiry, err := s.repo.Enquiry.FindByID(ctx, enquiryID)
	if err != nil {
		return nil, fmt.Errorf("find enquiry: %w", err)
	}
	if enquiry == nil {
		return nil, fmt.Errorf("enquiry %s not found", id)
	}

	return enquiry, nil
}

func (s *enquiryService) sendAcknowledgementEmail(enquiry *entity.AccommodationEnquiry, accommodation *entity.Accommodation) {
	body := fmt.Sprintf(
		"Dear %s,\n\nThank you for your enquiry about %s. Our team will respond shortly.\n",
		enquiry.Name, accommodation.Name,
	)
	if err := s.mail.Send(enquiry.Email, "Enquiry Received: "+accommodation.Name, body); err != nil {
		s.log.Warn("Failed to send enquiry acknowledgement email",
			zap.Error(err),
			zap.String("enquiry_id", enquiry.ID.String()),
		)
	}
}
