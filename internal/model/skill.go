package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Skill represents a single skill shown in the skills section.
// Level is a 0-100 proficiency percentage.
type Skill struct {
	ID       uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name     string    `json:"name" gorm:"size:100;not null"`
	Category string    `json:"category" gorm:"size:100;index"`
	Level    int       `json:"level" gorm:"default:0"`
	Icon     string    `json:"icon" gorm:"size:100"`
	Color    string    `json:"color" gorm:"size:50"`
	Order    int       `json:"order" gorm:"column:display_order;default:0"`
}

// BeforeCreate sets UUID before creating the record.
func (s *Skill) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
