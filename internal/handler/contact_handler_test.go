package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"devfolio/internal/model"
)

// MockContactService is a mock implementation of service.ContactService.
type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) Submit(ctx context.Context, name, email, subject, message string) (*model.ContactMessage, error) {
	args := m.Called(ctx, name, email, subject, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContactMessage), args.Error(1)
}

func (m *MockContactService) List(ctx context.Context) ([]model.ContactMessage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ContactMessage), args.Error(1)
}

func (m *MockContactService) Get(ctx context.Context, id uuid.UUID) (*model.ContactMessage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContactMessage), args.Error(1)
}

func (m *MockContactService) MarkRead(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContactService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	return e
}

func TestContactHandler_Submit(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		setupMock    func(*MockContactService)
		expectedCode int
	}{
		{
			name: "valid submission",
			body: `{"name":"Visitor","email":"visitor@example.com","subject":"Hello","message":"I would like to talk about a project."}`,
			setupMock: func(m *MockContactService) {
				m.On("Submit", mock.Anything, "Visitor", "visitor@example.com", "Hello", "I would like to talk about a project.").
					Return(&model.ContactMessage{Name: "Visitor"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "message too short",
			body:         `{"name":"Visitor","email":"visitor@example.com","message":"too short"}`,
			setupMock:    func(m *MockContactService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "name too short",
			body:         `{"name":"V","email":"visitor@example.com","message":"I would like to talk about a project."}`,
			setupMock:    func(m *MockContactService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "malformed email",
			body:         `{"name":"Visitor","email":"not-an-email","message":"I would like to talk about a project."}`,
			setupMock:    func(m *MockContactService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "missing message",
			body:         `{"name":"Visitor","email":"visitor@example.com"}`,
			setupMock:    func(m *MockContactService) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho()
			mockService := new(MockContactService)
			tt.setupMock(mockService)
			h := NewContactHandler(mockService)

			req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := h.Submit(c)

			if tt.expectedCode >= 400 {
				httpErr, ok := err.(*echo.HTTPError)
				assert.True(t, ok)
				assert.Equal(t, tt.expectedCode, httpErr.Code)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedCode, rec.Code)
			}

			// Invalid payloads must never reach the service.
			mockService.AssertExpectations(t)
		})
	}
}

func TestContactHandler_MarkRead_InvalidID(t *testing.T) {
	e := newTestEcho()
	h := NewContactHandler(new(MockContactService))

	req := httptest.NewRequest(http.MethodPatch, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := h.MarkRead(c)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}
