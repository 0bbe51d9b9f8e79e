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

const skillListCacheKey = "skills:list"

// SkillService handles skill reads and admin writes.
type SkillService interface {
	List(ctx context.Context) ([]model.Skill, error)
	Create(ctx context.Context, skill *model.Skill) error
	Update(ctx context.Context, skill *model.Skill) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type skillService struct {
	repo  repository.SkillRepository
	cache *cache.Client
}

// NewSkillService creates a new skill service.
func NewSkillService(repo repository.SkillRepository, cache *cache.Client) SkillService {
	return &skillService{
		repo:  repo,
		cache: cache,
	}
}

func (s *skillService) List(ctx context.Context) ([]model.Skill, error) {
	if data, _ := s.cache.Get(ctx, skillListCacheKey); data != nil {
		var cached []model.Skill
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	skills, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}

	if payload, err := json.Marshal(skills); err == nil {
		_ = s.cache.Set(ctx, skillListCacheKey, payload, listCacheTTL)
	}

	return skills, nil
}

func (s *skillService) Create(ctx context.Context, skill *model.Skill) error {
	if err := s.repo.Create(ctx, skill); err != nil {
		return fmt.Errorf("create skill: %w", err)
	}
	_ = s.cache.Delete(ctx, skillListCacheKey)
	return nil
}

func (s *skillService) Update(ctx context.Context, skill *model.Skill) error {
	if err := s.repo.Update(ctx, skill); err != nil {
		return fmt.Errorf("update skill: %w", err)
	}
	_ = s.cache.Delete(ctx, skillListCacheKey)
	return nil
}

func (s *skillService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrResourceNotFound
		}
		return fmt.Errorf("delete skill: %w", err)
	}
	_ = s.cache.Delete(ctx, skillListCacheKey)
	return nil
}
