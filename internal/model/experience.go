package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Experience represents one entry in the work history timeline.
// EndDate is a free-form string so "Present" can be stored for the
// current position.
type Experience struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Title        string    `json:"title" gorm:"size:255;not null"`
	Company      string    `json:"company" gorm:"size:255;not null"`
	Location     string    `json:"location" gorm:"size:255"`
	StartDate    string    `json:"start_date" gorm:"size:50"`
	EndDate      string    `json:"end_date" gorm:"size:50"`
	Description  string    `json:"description" gorm:"type:text"`
	Achievements []string  `json:"achievements" gorm:"serializer:json"`
	Technologies []string  `json:"technologies" gorm:"serializer:json"`
	Order        int       `json:"order" gorm:"column:display_order;default:0"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (e *Experience) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
