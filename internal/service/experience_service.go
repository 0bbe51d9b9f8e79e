package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"devfolio/internal/cache"
	"devfolio/internal/errors"
	"devfolio/internal/model"
	"devfolio/internal/repository"
)

const experienceListCacheKey = "experience:list"

// ExperienceService handles work history reads and admin writes.
type ExperienceService interface {
	List(ctx context.Context) ([]model.Experience, error)
	Create(ctx context.Context, exp *model.Experience) error
	Update(ctx context.Context, exp *model.Experience) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type experienceService struct {
	repo  repository.ExperienceRepository
	cache *cache.Client
}

// NewExperienceService creates a new experience service.
func NewExperienceService(repo repository.ExperienceRepository, cache *cache.Client) ExperienceService {
	return &experienceService{
		repo:  repo,
		cache: cache,
	}
}

func (s *experienceService) List(ctx context.Context) ([]model.Experience, error) {
	if data, _ := s.cache.Get(ctx, experienceListCacheKey); data != nil {
		var cached []model.Experience
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list experience: %w", err)
	}

	if payload, err := json.Marshal(entries); err == nil {
		_ = s.cache.Set(ctx, experienceListCacheKey, payload, listCacheTTL)
	}

	return entries, nil
}

func (s *experienceService) Create(ctx context.Context, exp *model.Experience) error {
	if err := s.repo.Create(ctx, exp); err != nil {
		return fmt.Errorf("create experience: %w", err)
	}
	_ = s.cache.Delete(ctx, experienceListCacheKey)
	return nil
}

func (s *experienceService) Update(ctx context.Context, exp *model.Experience) error {
	existing, err := s.repo.FindByID(ctx, exp.ID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrResourceNotFound
		}
		return fmt.Errorf("find experience: %w", err)
	}
	// Request payloads never carry creation time; keep the stored value so
	// Save does not write it back as zero.
	exp.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(ctx, exp); err != nil {
		return fmt.Errorf("update experience: %w", err)
	}
	_ = s.cache.Delete(ctx, experienceListCacheKey)
	return nil
}

func (s *experienceService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrResourceNotFound
		}
		return fmt.Errorf("delete experience: %w", err)
	}
	_ = s.cache.Delete(ctx, experienceListCacheKey)
	return nil
}
