package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"devfolio/internal/model"
)

// ExperienceRepository defines work history persistence operations.
type ExperienceRepository interface {
	Create(ctx context.Context, exp *model.Experience) error
	Update(ctx context.Context, exp *model.Experience) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Experience, error)
	List(ctx context.Context) ([]model.Experience, error)
}

type experienceRepository struct {
	db *gorm.DB
}

// NewExperienceRepository creates a new experience repository.
func NewExperienceRepository(db *gorm.DB) ExperienceRepository {
	return &experienceRepository{db: db}
}

func (r *experienceRepository) Create(ctx context.Context, exp *model.Experience) error {
	return r.db.WithContext(ctx).Create(exp).Error
}

func (r *experienceRepository) Update(ctx context.Context, exp *model.Experience) error {
	return r.db.WithContext(ctx).Save(exp).Error
}

func (r *experienceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Experience{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *experienceRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Experience, error) {
	var exp model.Experience
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&exp).Error; err != nil {
		return nil, err
	}
	return &exp, nil
}

// List returns all entries ordered by manual order, then newest.
func (r *experienceRepository) List(ctx context.Context) ([]model.Experience, error) {
	var entries []model.Experience
	if err := r.db.WithContext(ctx).
		Order("display_order ASC").
		Order("created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
