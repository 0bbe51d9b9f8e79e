package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"devfolio/internal/cache"
	"devfolio/internal/errors"
	"devfolio/internal/model"
	"devfolio/internal/repository"
)

const (
	listCacheTTL        = 5 * time.Minute
	projectListCacheKey = "projects:list"
)

// ProjectService handles project reads and admin writes.
type ProjectService interface {
	List(ctx context.Context) ([]model.Project, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Project, error)
	Create(ctx context.Context, project *model.Project) error
	Update(ctx context.Context, project *model.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type projectService struct {
	repo  repository.ProjectRepository
	cache *cache.Client
}

// NewProjectService creates a new project service.
func NewProjectService(repo repository.ProjectRepository, cache *cache.Client) ProjectService {
	return &projectService{
		repo:  repo,
		cache: cache,
	}
}

// List returns projects in display order with short-TTL caching.
func (s *projectService) List(ctx context.Context) ([]model.Project, error) {
	if data, _ := s.cache.Get(ctx, projectListCacheKey); data != nil {
		var cached []model.Project
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	projects, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	if payload, err := json.Marshal(projects); err == nil {
		_ = s.cache.Set(ctx, projectListCacheKey, payload, listCacheTTL)
	}

	return projects, nil
}

func (s *projectService) Get(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}
	return project, nil
}

func (s *projectService) Create(ctx context.Context, project *model.Project) error {
	if err := s.repo.Create(ctx, project); err != nil {
		return fmt.Errorf("create project: %w", err)
	}
	_ = s.cache.Delete(ctx, projectListCacheKey)
	return nil
}

func (s *projectService) Update(ctx context.Context, project *model.Project) error {
	existing, err := s.repo.FindByID(ctx, project.ID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrProjectNotFound
		}
		return fmt.Errorf("find project: %w", err)
	}
	// Request payloads never carry creation time; keep the stored value so
	// Save does not write it back as zero.
	project.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(ctx, project); err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	_ = s.cache.Delete(ctx, projectListCacheKey)
	return nil
}

func (s *projectService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrProjectNotFound
		}
		return fmt.Errorf("delete project: %w", err)
	}
	_ = s.cache.Delete(ctx, projectListCacheKey)
	return nil
}
