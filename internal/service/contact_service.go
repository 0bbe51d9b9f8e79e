package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"devfolio/internal/errors"
	"devfolio/internal/mail"
	"devfolio/internal/model"
	"devfolio/internal/repository"
)

// ContactService handles contact form submissions and their admin views.
type ContactService interface {
	Submit(ctx context.Context, name, email, subject, message string) (*model.ContactMessage, error)
	List(ctx context.Context) ([]model.ContactMessage, error)
	Get(ctx context.Context, id uuid.UUID) (*model.ContactMessage, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type contactService struct {
	repo       repository.ContactRepository
	mailer     mail.Sender
	adminEmail string
}

// NewContactService creates a new contact service.
func NewContactService(repo repository.ContactRepository, mailer mail.Sender, adminEmail string) ContactService {
	return &contactService{
		repo:       repo,
		mailer:     mailer,
		adminEmail: adminEmail,
	}
}

// Submit persists the message and then sends two advisory emails: a
// notification to the site owner and a confirmation to the sender.
// Persistence is authoritative; email failures are logged and the
// submission still succeeds.
func (s *contactService) Submit(ctx context.Context, name, email, subject, message string) (*model.ContactMessage, error) {
	msg := &model.ContactMessage{
		Name:    name,
		Email:   email,
		Subject: subject,
		Message: message,
	}

	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("create contact message: %w", err)
	}

	if err := s.mailer.Send(
		s.adminEmail,
		fmt.Sprintf("New Contact Form Submission from %s", name),
		fmt.Sprintf(
			"<h2>New Contact Form Submission</h2>"+
				"<p><strong>Name:</strong> %s</p>"+
				"<p><strong>Email:</strong> %s</p>"+
				"<p><strong>Subject:</strong> %s</p>"+
				"<p><strong>Message:</strong></p><p>%s</p>",
			name, email, msg.Subject, message),
	); err != nil {
		log.Printf("contact: admin notification failed: %v", err)
	}

	if err := s.mailer.Send(
		email,
		"Thanks for reaching out!",
		fmt.Sprintf(
			"<h2>Thank you for contacting me!</h2>"+
				"<p>Hi %s,</p>"+
				"<p>I've received your message and will get back to you as soon as possible.</p>",
			name),
	); err != nil {
		log.Printf("contact: sender confirmation failed: %v", err)
	}

	return msg, nil
}

func (s *contactService) List(ctx context.Context) ([]model.ContactMessage, error) {
	return s.repo.List(ctx)
}

func (s *contactService) Get(ctx context.Context, id uuid.UUID) (*model.ContactMessage, error) {
	msg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrMessageNotFound
		}
		return nil, fmt.Errorf("find message: %w", err)
	}
	return msg, nil
}

func (s *contactService) MarkRead(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.MarkRead(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrMessageNotFound
		}
		return fmt.Errorf("mark message read: %w", err)
	}
	return nil
}

func (s *contactService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrMessageNotFound
		}
		return fmt.Errorf("delete message: %w", err)
	}
	return nil
}
