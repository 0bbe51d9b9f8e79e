package repository

import (
	"context"

	"gorm.io/gorm"

	"devfolio/internal/model"
)

// SubscriberRepository defines newsletter subscriber persistence operations.
type SubscriberRepository interface {
	Create(ctx context.Context, sub *model.Subscriber) error
	FindByEmail(ctx context.Context, email string) (*model.Subscriber, error)
	// SetActive updates the active flag for an email and reports how many
	// rows matched, so callers can decide what a missing row means.
	SetActive(ctx context.Context, email string, active bool) (int64, error)
	Reactivate(ctx context.Context, email string) error
	List(ctx context.Context) ([]model.Subscriber, error)
	CountActive(ctx context.Context) (int64, error)
}

type subscriberRepository struct {
	db *gorm.DB
}

// NewSubscriberRepository creates a new subscriber repository.
func NewSubscriberRepository(db *gorm.DB) SubscriberRepository {
	return &subscriberRepository{db: db}
}

func (r *subscriberRepository) Create(ctx context.Context, sub *model.Subscriber) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *subscriberRepository) FindByEmail(ctx context.Context, email string) (*model.Subscriber, error) {
	var sub model.Subscriber
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&sub).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *subscriberRepository) SetActive(ctx context.Context, email string, active bool) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Subscriber{}).
		Where("email = ?", email).
		Update("active", active)
	return res.RowsAffected, res.Error
}

// Reactivate flips a previously unsubscribed address back to active and
// resets the confirmed flag so a fresh confirmation email goes out.
func (r *subscriberRepository) Reactivate(ctx context.Context, email string) error {
	return r.db.WithContext(ctx).Model(&model.Subscriber{}).
		Where("email = ?", email).
		Updates(map[string]interface{}{"active": true, "confirmed": false}).Error
}

// List returns all subscribers, newest first.
func (r *subscriberRepository) List(ctx context.Context) ([]model.Subscriber, error) {
	var subs []model.Subscriber
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *subscriberRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Subscriber{}).
		Where("active = ?", true).
		Count(&count).Error
	return count, err
}
