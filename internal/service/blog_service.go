package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"devfolio/internal/cache"
	"devfolio/internal/errors"
	"devfolio/internal/model"
	"devfolio/internal/repository"
)

const blogListCacheKey = "blog:list"

// BlogService handles blog reads and admin writes.
type BlogService interface {
	ListPublished(ctx context.Context) ([]model.BlogPostSummary, error)
	GetBySlug(ctx context.Context, slug string) (*model.BlogPost, error)
	Create(ctx context.Context, post *model.BlogPost) error
	Update(ctx context.Context, post *model.BlogPost) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type blogService struct {
	repo  repository.BlogRepository
	cache *cache.Client
}

// NewBlogService creates a new blog service.
func NewBlogService(repo repository.BlogRepository, cache *cache.Client) BlogService {
	return &blogService{
		repo:  repo,
		cache: cache,
	}
}

func (s *blogService) ListPublished(ctx context.Context) ([]model.BlogPostSummary, error) {
	if data, _ := s.cache.Get(ctx, blogListCacheKey); data != nil {
		var cached []model.BlogPostSummary
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	posts, err := s.repo.ListPublished(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	if payload, err := json.Marshal(posts); err == nil {
		_ = s.cache.Set(ctx, blogListCacheKey, payload, listCacheTTL)
	}

	return posts, nil
}

// GetBySlug returns a published post and bumps its view counter. The
// increment is advisory: a failed bump is logged and the read still
// succeeds. Unpublished posts are indistinguishable from missing ones.
func (s *blogService) GetBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	post, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	if !post.Published {
		return nil, errors.ErrPostNotFound
	}

	if err := s.repo.IncrementViews(ctx, post.ID); err != nil {
		log.Printf("blog: view count increment failed for %s: %v", slug, err)
	} else {
		post.Views++
	}

	return post, nil
}

func (s *blogService) Create(ctx context.Context, post *model.BlogPost) error {
	if err := s.repo.Create(ctx, post); err != nil {
		return fmt.Errorf("create post: %w", err)
	}
	_ = s.cache.Delete(ctx, blogListCacheKey)
	return nil
}

func (s *blogService) Update(ctx context.Context, post *model.BlogPost) error {
	existing, err := s.repo.FindByID(ctx, post.ID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrPostNotFound
		}
		return fmt.Errorf("find post: %w", err)
	}
	// Request payloads never carry these; keep the stored values so Save
	// does not zero the view counter or the creation time.
	post.Views = existing.Views
	post.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(ctx, post); err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	_ = s.cache.Delete(ctx, blogListCacheKey)
	return nil
}

func (s *blogService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrPostNotFound
		}
		return fmt.Errorf("delete post: %w", err)
	}
	_ = s.cache.Delete(ctx, blogListCacheKey)
	return nil
}
