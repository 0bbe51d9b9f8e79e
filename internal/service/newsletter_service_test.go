package service

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"devfolio/internal/errors"
	"devfolio/internal/model"
)

// MockSubscriberRepository is a mock implementation of SubscriberRepository.
type MockSubscriberRepository struct {
	mock.Mock
}

func (m *MockSubscriberRepository) Create(ctx context.Context, sub *model.Subscriber) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockSubscriberRepository) FindByEmail(ctx context.Context, email string) (*model.Subscriber, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Subscriber), args.Error(1)
}

func (m *MockSubscriberRepository) SetActive(ctx context.Context, email string, active bool) (int64, error) {
	args := m.Called(ctx, email, active)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSubscriberRepository) Reactivate(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *MockSubscriberRepository) List(ctx context.Context) ([]model.Subscriber, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Subscriber), args.Error(1)
}

func (m *MockSubscriberRepository) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestNewsletterService_Subscribe(t *testing.T) {
	tests := []struct {
		name          string
		setupMocks    func(*MockSubscriberRepository, *MockMailer)
		expectedError error
		wantEmail     bool
	}{
		{
			name: "new address creates subscriber",
			setupMocks: func(repo *MockSubscriberRepository, mailer *MockMailer) {
				repo.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, gorm.ErrRecordNotFound)
				repo.On("Create", mock.Anything, mock.MatchedBy(func(s *model.Subscriber) bool {
					return s.Email == "new@example.com" && s.Active
				})).Return(nil)
				mailer.On("Send", "new@example.com", mock.Anything, mock.Anything).Return(nil)
			},
			wantEmail: true,
		},
		{
			name: "active subscriber is rejected without mutation",
			setupMocks: func(repo *MockSubscriberRepository, mailer *MockMailer) {
				repo.On("FindByEmail", mock.Anything, "new@example.com").Return(&model.Subscriber{
					Email:  "new@example.com",
					Active: true,
				}, nil)
			},
			expectedError: errors.ErrAlreadySubscribed,
		},
		{
			name: "inactive subscriber is reactivated",
			setupMocks: func(repo *MockSubscriberRepository, mailer *MockMailer) {
				repo.On("FindByEmail", mock.Anything, "new@example.com").Return(&model.Subscriber{
					Email:  "new@example.com",
					Active: false,
				}, nil)
				repo.On("Reactivate", mock.Anything, "new@example.com").Return(nil)
				mailer.On("Send", "new@example.com", mock.Anything, mock.Anything).Return(nil)
			},
			wantEmail: true,
		},
		{
			name: "duplicate key from concurrent create maps to already subscribed",
			setupMocks: func(repo *MockSubscriberRepository, mailer *MockMailer) {
				repo.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, gorm.ErrRecordNotFound)
				repo.On("Create", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)
			},
			expectedError: errors.ErrAlreadySubscribed,
		},
		{
			name: "confirmation email failure does not fail the subscription",
			setupMocks: func(repo *MockSubscriberRepository, mailer *MockMailer) {
				repo.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, gorm.ErrRecordNotFound)
				repo.On("Create", mock.Anything, mock.Anything).Return(nil)
				mailer.On("Send", "new@example.com", mock.Anything, mock.Anything).
					Return(stderrors.New("smtp unreachable"))
			},
			wantEmail: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockSubscriberRepository)
			mockMailer := new(MockMailer)
			tt.setupMocks(mockRepo, mockMailer)

			service := NewNewsletterService(mockRepo, mockMailer)

			err := service.Subscribe(context.Background(), "new@example.com")

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
			}

			mockRepo.AssertExpectations(t)
			if tt.wantEmail {
				mockMailer.AssertNumberOfCalls(t, "Send", 1)
			} else {
				mockMailer.AssertNumberOfCalls(t, "Send", 0)
			}
		})
	}
}

func TestNewsletterService_Unsubscribe(t *testing.T) {
	t.Run("existing subscriber is deactivated", func(t *testing.T) {
		mockRepo := new(MockSubscriberRepository)
		mockRepo.On("SetActive", mock.Anything, "gone@example.com", false).Return(int64(1), nil)

		service := NewNewsletterService(mockRepo, new(MockMailer))
		assert.NoError(t, service.Unsubscribe(context.Background(), "gone@example.com"))
		mockRepo.AssertExpectations(t)
	})

	t.Run("unknown email is an idempotent no-op", func(t *testing.T) {
		mockRepo := new(MockSubscriberRepository)
		mockRepo.On("SetActive", mock.Anything, "never@example.com", false).Return(int64(0), nil)

		service := NewNewsletterService(mockRepo, new(MockMailer))
		assert.NoError(t, service.Unsubscribe(context.Background(), "never@example.com"))
		mockRepo.AssertExpectations(t)
	})
}
