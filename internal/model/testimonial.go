package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Testimonial represents a client testimonial. Only approved rows appear in
// the public listing.
type Testimonial struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Role      string    `json:"role" gorm:"size:255"`
	Company   string    `json:"company" gorm:"size:255"`
	Image     string    `json:"image" gorm:"size:512"`
	Rating    int       `json:"rating" gorm:"default:5"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	Approved  bool      `json:"approved" gorm:"default:false;index"`
	Order     int       `json:"order" gorm:"column:display_order;default:0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (t *Testimonial) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
