package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Subscriber represents a newsletter subscription. The unique index on email
// guarantees at most one row per address; unsubscribing flips Active rather
// than deleting the row so a later resubscribe can reactivate it.
type Subscriber struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Active    bool      `json:"active" gorm:"default:true;index"`
	Confirmed bool      `json:"confirmed" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (s *Subscriber) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
