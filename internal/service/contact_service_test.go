package service

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"devfolio/internal/errors"
	"devfolio/internal/model"
)

// MockContactRepository is a mock implementation of ContactRepository.
type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) Create(ctx context.Context, msg *model.ContactMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockContactRepository) List(ctx context.Context) ([]model.ContactMessage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ContactMessage), args.Error(1)
}

func (m *MockContactRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.ContactMessage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContactMessage), args.Error(1)
}

func (m *MockContactRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContactRepository) CountUnread(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockMailer records sends and can be told to fail every delivery.
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(to, subject, html string) error {
	args := m.Called(to, subject, html)
	return args.Error(0)
}

func TestContactService_Submit(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(*MockContactRepository, *MockMailer)
		wantErr    bool
		wantEmails int
	}{
		{
			name: "persists and sends both emails",
			setupMocks: func(repo *MockContactRepository, mailer *MockMailer) {
				repo.On("Create", mock.Anything, mock.AnythingOfType("*model.ContactMessage")).Return(nil)
				mailer.On("Send", "owner@example.com", mock.Anything, mock.Anything).Return(nil)
				mailer.On("Send", "visitor@example.com", mock.Anything, mock.Anything).Return(nil)
			},
			wantErr:    false,
			wantEmails: 2,
		},
		{
			name: "email transport failure still succeeds",
			setupMocks: func(repo *MockContactRepository, mailer *MockMailer) {
				repo.On("Create", mock.Anything, mock.AnythingOfType("*model.ContactMessage")).Return(nil)
				mailer.On("Send", mock.Anything, mock.Anything, mock.Anything).
					Return(stderrors.New("smtp unreachable"))
			},
			wantErr:    false,
			wantEmails: 2,
		},
		{
			name: "persistence failure sends no email",
			setupMocks: func(repo *MockContactRepository, mailer *MockMailer) {
				repo.On("Create", mock.Anything, mock.AnythingOfType("*model.ContactMessage")).
					Return(gorm.ErrInvalidDB)
			},
			wantErr:    true,
			wantEmails: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockContactRepository)
			mockMailer := new(MockMailer)
			tt.setupMocks(mockRepo, mockMailer)

			service := NewContactService(mockRepo, mockMailer, "owner@example.com")

			msg, err := service.Submit(context.Background(), "Visitor", "visitor@example.com", "Hello", "I would like to talk about a project.")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, msg)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, msg)
				assert.Equal(t, "Visitor", msg.Name)
				assert.Equal(t, "visitor@example.com", msg.Email)
			}

			mockRepo.AssertExpectations(t)
			mockMailer.AssertNumberOfCalls(t, "Send", tt.wantEmails)
		})
	}
}

func TestContactService_Get(t *testing.T) {
	mockRepo := new(MockContactRepository)
	id := uuid.New()
	mockRepo.On("FindByID", mock.Anything, id).Return(&model.ContactMessage{
		ID:    id,
		Name:  "Visitor",
		Email: "visitor@example.com",
	}, nil)

	service := NewContactService(mockRepo, new(MockMailer), "owner@example.com")

	msg, err := service.Get(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, id, msg.ID)
	assert.Equal(t, "Visitor", msg.Name)
	mockRepo.AssertExpectations(t)
}

func TestContactService_Get_NotFound(t *testing.T) {
	mockRepo := new(MockContactRepository)
	id := uuid.New()
	mockRepo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

	service := NewContactService(mockRepo, new(MockMailer), "owner@example.com")

	msg, err := service.Get(context.Background(), id)
	assert.Equal(t, errors.ErrMessageNotFound, err)
	assert.Nil(t, msg)
	mockRepo.AssertExpectations(t)
}

func TestContactService_MarkRead_NotFound(t *testing.T) {
	mockRepo := new(MockContactRepository)
	id := uuid.New()
	mockRepo.On("MarkRead", mock.Anything, id).Return(gorm.ErrRecordNotFound)

	service := NewContactService(mockRepo, new(MockMailer), "owner@example.com")

	err := service.MarkRead(context.Background(), id)
	assert.Equal(t, errors.ErrMessageNotFound, err)
	mockRepo.AssertExpectations(t)
}

func TestContactService_Delete_NotFound(t *testing.T) {
	mockRepo := new(MockContactRepository)
	id := uuid.New()
	mockRepo.On("Delete", mock.Anything, id).Return(gorm.ErrRecordNotFound)

	service := NewContactService(mockRepo, new(MockMailer), "owner@example.com")

	err := service.Delete(context.Background(), id)
	assert.Equal(t, errors.ErrMessageNotFound, err)
	mockRepo.AssertExpectations(t)
}
