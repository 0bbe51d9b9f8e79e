package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"devfolio/internal/errors"
	"devfolio/internal/model"
)

// MockProjectRepository is a mock implementation of ProjectRepository.
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) Create(ctx context.Context, project *model.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) Update(ctx context.Context, project *model.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectRepository) List(ctx context.Context) ([]model.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockProjectRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// List preserves the repository's display ordering: featured first, then
// manual order, then newest.
func TestProjectService_List_Order(t *testing.T) {
	now := time.Now()
	ordered := []model.Project{
		{Title: "featured-low-order", Featured: true, Order: 1, CreatedAt: now},
		{Title: "featured-high-order", Featured: true, Order: 5, CreatedAt: now},
		{Title: "recent", Featured: false, Order: 10, CreatedAt: now},
		{Title: "older", Featured: false, Order: 10, CreatedAt: now.Add(-time.Hour)},
	}

	mockRepo := new(MockProjectRepository)
	mockRepo.On("List", mock.Anything).Return(ordered, nil)

	service := NewProjectService(mockRepo, nil)

	got, err := service.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, got, 4)
	for i := range ordered {
		assert.Equal(t, ordered[i].Title, got[i].Title)
	}

	mockRepo.AssertExpectations(t)
}

func TestProjectService_Get_NotFound(t *testing.T) {
	mockRepo := new(MockProjectRepository)
	id := uuid.New()
	mockRepo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

	service := NewProjectService(mockRepo, nil)

	project, err := service.Get(context.Background(), id)
	assert.Equal(t, errors.ErrProjectNotFound, err)
	assert.Nil(t, project)
	mockRepo.AssertExpectations(t)
}

// An admin edit carries only the request fields; the stored creation time
// must survive the save so `created_at DESC` ordering stays intact.
func TestProjectService_Update_PreservesCreatedAt(t *testing.T) {
	id := uuid.New()
	createdAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	mockRepo := new(MockProjectRepository)
	mockRepo.On("FindByID", mock.Anything, id).Return(&model.Project{
		ID:        id,
		Title:     "Old title",
		CreatedAt: createdAt,
	}, nil)
	mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(p *model.Project) bool {
		return p.CreatedAt.Equal(createdAt) && p.Title == "New title"
	})).Return(nil)

	service := NewProjectService(mockRepo, nil)

	err := service.Update(context.Background(), &model.Project{ID: id, Title: "New title"})
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestProjectService_Update_NotFound(t *testing.T) {
	mockRepo := new(MockProjectRepository)
	id := uuid.New()
	mockRepo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

	service := NewProjectService(mockRepo, nil)

	err := service.Update(context.Background(), &model.Project{ID: id, Title: "renamed"})
	assert.Equal(t, errors.ErrProjectNotFound, err)
	mockRepo.AssertExpectations(t)
}
