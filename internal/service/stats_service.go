package service

import (
	"context"
	"fmt"

	"devfolio/internal/repository"
)

// DashboardStats are the counters shown on the admin dashboard.
type DashboardStats struct {
	Projects          int64 `json:"projects"`
	PublishedPosts    int64 `json:"published_posts"`
	UnreadMessages    int64 `json:"unread_messages"`
	ActiveSubscribers int64 `json:"active_subscribers"`
}

// StatsService aggregates dashboard counters.
type StatsService interface {
	Dashboard(ctx context.Context) (*DashboardStats, error)
}

type statsService struct {
	projectRepo    repository.ProjectRepository
	blogRepo       repository.BlogRepository
	contactRepo    repository.ContactRepository
	subscriberRepo repository.SubscriberRepository
}

// NewStatsService creates a new stats service.
func NewStatsService(
	projectRepo repository.ProjectRepository,
	blogRepo repository.BlogRepository,
	contactRepo repository.ContactRepository,
	subscriberRepo repository.SubscriberRepository,
) StatsService {
	return &statsService{
		projectRepo:    projectRepo,
		blogRepo:       blogRepo,
		contactRepo:    contactRepo,
		subscriberRepo: subscriberRepo,
	}
}

func (s *statsService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}
	var err error

	if stats.Projects, err = s.projectRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("count projects: %w", err)
	}
	if stats.PublishedPosts, err = s.blogRepo.CountPublished(ctx); err != nil {
		return nil, fmt.Errorf("count posts: %w", err)
	}
	if stats.UnreadMessages, err = s.contactRepo.CountUnread(ctx); err != nil {
		return nil, fmt.Errorf("count unread messages: %w", err)
	}
	if stats.ActiveSubscribers, err = s.subscriberRepo.CountActive(ctx); err != nil {
		return nil, fmt.Errorf("count subscribers: %w", err)
	}

	return stats, nil
}
