package service

import (
	"context"
	"fmt"
	"log"

	"gorm.io/gorm"

	"devfolio/internal/errors"
	"devfolio/internal/mail"
	"devfolio/internal/model"
	"devfolio/internal/repository"
)

// NewsletterService handles newsletter subscriptions.
type NewsletterService interface {
	Subscribe(ctx context.Context, email string) error
	Unsubscribe(ctx context.Context, email string) error
	List(ctx context.Context) ([]model.Subscriber, error)
}

type newsletterService struct {
	repo   repository.SubscriberRepository
	mailer mail.Sender
}

// NewNewsletterService creates a new newsletter service.
func NewNewsletterService(repo repository.SubscriberRepository, mailer mail.Sender) NewsletterService {
	return &newsletterService{
		repo:   repo,
		mailer: mailer,
	}
}

// Subscribe registers an email address. A new address gets a fresh row, an
// inactive one is reactivated, an active one is rejected. The lookup and
// write are not atomic; the unique index on email is the backstop, and a
// duplicate-key error from a concurrent create maps to ErrAlreadySubscribed.
func (s *newsletterService) Subscribe(ctx context.Context, email string) error {
	existing, err := s.repo.FindByEmail(ctx, email)
	switch {
	case err == gorm.ErrRecordNotFound:
		if err := s.repo.Create(ctx, &model.Subscriber{Email: email, Active: true}); err != nil {
			if err == gorm.ErrDuplicatedKey {
				return errors.ErrAlreadySubscribed
			}
			return fmt.Errorf("create subscriber: %w", err)
		}
	case err != nil:
		return fmt.Errorf("find subscriber: %w", err)
	case existing.Active:
		return errors.ErrAlreadySubscribed
	default:
		if err := s.repo.Reactivate(ctx, email); err != nil {
			return fmt.Errorf("reactivate subscriber: %w", err)
		}
	}

	if err := s.mailer.Send(
		email,
		"Confirm your newsletter subscription",
		"<h2>Welcome to my newsletter!</h2>"+
			"<p>Thanks for subscribing! You'll receive updates on new projects, articles and exclusive content.</p>",
	); err != nil {
		log.Printf("newsletter: confirmation email failed: %v", err)
	}

	return nil
}

// Unsubscribe deactivates an address. Unknown addresses are treated as an
// idempotent no-op rather than an error.
func (s *newsletterService) Unsubscribe(ctx context.Context, email string) error {
	if _, err := s.repo.SetActive(ctx, email, false); err != nil {
		return fmt.Errorf("unsubscribe: %w", err)
	}
	return nil
}

func (s *newsletterService) List(ctx context.Context) ([]model.Subscriber, error) {
	return s.repo.List(ctx)
}
