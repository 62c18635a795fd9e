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

func testAccommodation() *entity.Accommodation {
	now := time.Now()
	return &entity.Accommodation{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:          "Mara River Lodge",
		Type:          entity.AccommodationTypeLodge,
		Location:      "Masai Mara",
		PricePerNight: 250,
	}
}

func newEnquiryFixture(enquiries ...*entity.AccommodationEnquiry) (*repository.Repository, *fakeEnquiryMessageRepo) {
	messages := &fakeEnquiryMessageRepo{}
	repo := &repository.Repository{
		Enquiry:        newFakeEnquiryRepo(enquiries...),
		EnquiryMessage: messages,
	}
	return repo, messages
}

func TestCreateEnquirySeedsThreadFromMessage(t *testing.T) {
	accommodation := testAccommodation()
	messages := &fakeEnquiryMessageRepo{}
	repo := &repository.Repository{
		Accommodation:  newFakeAccommodationRepo(accommodation),
		Enquiry:        newFakeEnquiryRepo(),
		EnquiryMessage: messages,
	}
	svc := NewEnquiryService(repo, &fakeMailer{}, zap.NewNop())

	msg := "Do you have availability in October?"
	resp, err := svc.CreateEnquiry(context.Background(), "", &request.CreateEnquiryRequest{
		Name:            "Jane Traveller",
		Email:           "jane@example.com",
		AccommodationID: accommodation.ID.String(),
		Message:         &msg,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.EnquiryStatusPending, resp.Status)
	assert.Equal(t, "Mara River Lodge", resp.AccommodationName)
	require.Len(t, messages.messages, 1)
	assert.Equal(t, entity.SenderUser, messages.messages[0].Sender)
	assert.Equal(t, msg, messages.messages[0].Message)
}

func TestCreateEnquiryAnonymousHasNoUser(t *testing.T) {
	accommodation := testAccommodation()
	enquiries := newFakeEnquiryRepo()
	repo := &repository.Repository{
		Accommodation:  newFakeAccommodationRepo(accommodation),
		Enquiry:        enquiries,
		EnquiryMessage: &fakeEnquiryMessageRepo{},
	}
	svc := NewEnquiryService(repo, &fakeMailer{}, zap.NewNop())

	_, err := svc.CreateEnquiry(context.Background(), "", &request.CreateEnquiryRequest{
		Name:            "Jane Traveller",
		Email:           "jane@example.com",
		AccommodationID: accommodation.ID.String(),
	})
	require.NoError(t, err)

	require.Len(t, enquiries.enquiries, 1)
	for _, e := range enquiries.enquiries {
		assert.Nil(t, e.UserID)
	}
}

func TestGetEnquiryHidesForeignThreads(t *testing.T) {
	owner := uuid.New()
	enquiry := &entity.AccommodationEnquiry{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		UserID:     &owner,
		Email:      "jane@example.com",
		Status:     entity.EnquiryStatusPending,
	}
	repo, _ := newEnquiryFixture(enquiry)
	svc := NewEnquiryService(repo, &fakeMailer{}, zap.NewNop())

	_, err := svc.GetEnquiry(context.Background(), uuid.NewString(), false, enquiry.ID.String())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	resp, err := svc.GetEnquiry(context.Background(), owner.String(), false, enquiry.ID.String())
	require.NoError(t, err)
	assert.Equal(t, enquiry.ID.String(), resp.ID)

	// Admins can read any thread.
	_, err = svc.GetEnquiry(context.Background(), uuid.NewString(), true, enquiry.ID.String())
	require.NoError(t, err)
}

func TestAddMessageRejectsCancelledEnquiry(t *testing.T) {
	owner := uuid.New()
	enquiry := &entity.AccommodationEnquiry{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		UserID:     &owner,
		Status:     entity.EnquiryStatusCancelled,
	}
	repo, _ := newEnquiryFixture(enquiry)
	svc := NewEnquiryService(repo, &fakeMailer{}, zap.NewNop())

	_, err := svc.AddMessage(context.Background(), owner.String(), false, enquiry.ID.String(),
		&request.CreateEnquiryMessageRequest{Message: "hello?"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cancelled")
}

func TestAddMessageSetsSenderByRole(t *testing.T) {
	owner := uuid.New()
	enquiry := &entity.AccommodationEnquiry{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		UserID:     &owner,
		Status:     entity.EnquiryStatusInProgress,
	}
	repo, messages := newEnquiryFixture(enquiry)
	svc := NewEnquiryService(repo, &fakeMailer{}, zap.NewNop())

	_, err := svc.AddMessage(context.Background(), owner.String(), false, enquiry.ID.String(),
		&request.CreateEnquiryMessageRequest{Message: "Any update?"})
	require.NoError(t, err)

	_, err = svc.AddMessage(context.Background(), uuid.NewString(), true, enquiry.ID.String(),
		&request.CreateEnquiryMessageRequest{Message: "Yes, we have rooms."})
	require.NoError(t, err)

	require.Len(t, messages.messages, 2)
	assert.Equal(t, entity.SenderUser, messages.messages[0].Sender)
	assert.Equal(t, entity.SenderAdmin, messages.messages[1].Sender)
}

func TestMarkMessagesReadIsOwnerScoped(t *testing.T) {
	owner := uuid.New()
	enquiry := &entity.AccommodationEnquiry{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		UserID:     &owner,
		Status:     entity.EnquiryStatusInProgress,
	}
	repo, messages := newEnquiryFixture(enquiry)
	svc := NewEnquiryService(repo, &fakeMailer{}, zap.NewNop())

	err := svc.MarkMessagesRead(context.Background(), uuid.NewString(), enquiry.ID.String())
	require.Error(t, err)
	assert.Empty(t, messages.markedRead)

	require.NoError(t, svc.MarkMessagesRead(context.Background(), owner.String(), enquiry.ID.String()))
	assert.Equal(t, []uuid.UUID{enquiry.ID}, messages.markedRead)
}
