package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultContactSubject is used when a submission omits the subject field.
const DefaultContactSubject = "New Contact Form Submission"

// ContactMessage represents a message submitted via the public contact form.
// The public endpoint only ever creates rows; the read flag and deletion are
// admin operations.
type ContactMessage struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name      string    `json:"name" gorm:"size:100;not null"`
	Email     string    `json:"email" gorm:"size:255;not null;index"`
	Subject   string    `json:"subject" gorm:"size:200;not null"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	Read      bool      `json:"read" gorm:"default:false;index"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate sets UUID and the default subject before creating the record.
func (m *ContactMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.Subject == "" {
		m.Subject = DefaultContactSubject
	}
	return nil
}
