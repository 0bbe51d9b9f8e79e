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

const testimonialListCacheKey = "testimonials:list"

// TestimonialService handles testimonial reads and admin writes.
type TestimonialService interface {
	ListApproved(ctx context.Context) ([]model.Testimonial, error)
	Create(ctx context.Context, t *model.Testimonial) error
	Update(ctx context.Context, t *model.Testimonial) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type testimonialService struct {
	repo  repository.TestimonialRepository
	cache *cache.Client
}

// NewTestimonialService creates a new testimonial service.
func NewTestimonialService(repo repository.TestimonialRepository, cache *cache.Client) TestimonialService {
	return &testimonialService{
		repo:  repo,
		cache: cache,
	}
}

// ListApproved returns approved testimonials only; unapproved rows never
// reach the public endpoint.
func (s *testimonialService) ListApproved(ctx context.Context) ([]model.Testimonial, error) {
	if data, _ := s.cache.Get(ctx, testimonialListCacheKey); data != nil {
		var cached []model.Testimonial
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	testimonials, err := s.repo.ListApproved(ctx)
	if err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}

	if payload, err := json.Marshal(testimonials); err == nil {
		_ = s.cache.Set(ctx, testimonialListCacheKey, payload, listCacheTTL)
	}

	return testimonials, nil
}

func (s *testimonialService) Create(ctx context.Context, t *model.Testimonial) error {
	if err := s.repo.Create(ctx, t); err != nil {
		return fmt.Errorf("create testimonial: %w", err)
	}
	_ = s.cache.Delete(ctx, testimonialListCacheKey)
	return nil
}

func (s *testimonialService) Update(ctx context.Context, t *model.Testimonial) error {
	existing, err := s.repo.FindByID(ctx, t.ID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrResourceNotFound
		}
		return fmt.Errorf("find testimonial: %w", err)
	}
	// Request payloads never carry creation time; keep the stored value so
	// Save does not write it back as zero.
	t.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(ctx, t); err != nil {
		return fmt.Errorf("update testimonial: %w", err)
	}
	_ = s.cache.Delete(ctx, testimonialListCacheKey)
	return nil
}

func (s *testimonialService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrResourceNotFound
		}
		return fmt.Errorf("delete testimonial: %w", err)
	}
	_ = s.cache.Delete(ctx, testimonialListCacheKey)
	return nil
}
