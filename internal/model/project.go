package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project represents a portfolio project. Display order on the site is
// featured first, then manual order, then newest.
type Project struct {
	ID              uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Title           string    `json:"title" gorm:"size:255;not null"`
	Description     string    `json:"description" gorm:"type:text;not null"`
	LongDescription string    `json:"long_description" gorm:"type:text"`
	Image           string    `json:"image" gorm:"size:512"`
	Images          []string  `json:"images" gorm:"serializer:json"`
	Technologies    []string  `json:"technologies" gorm:"serializer:json"`
	Category        string    `json:"category" gorm:"size:100;index"`
	GithubURL       string    `json:"github_url,omitempty" gorm:"size:512"`
	LiveURL         string    `json:"live_url,omitempty" gorm:"size:512"`
	Featured        bool      `json:"featured" gorm:"default:false;index"`
	Order           int       `json:"order" gorm:"column:display_order;default:0"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
