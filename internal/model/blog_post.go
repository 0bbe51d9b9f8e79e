package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BlogPost represents a blog article. Only published posts are visible on
// the public endpoints; Views is incremented on every single-post read.
type BlogPost struct {
	ID            uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Title         string    `json:"title" gorm:"size:255;not null"`
	Slug          string    `json:"slug" gorm:"uniqueIndex;size:255;not null"`
	Excerpt       string    `json:"excerpt" gorm:"type:text"`
	Content       string    `json:"content" gorm:"type:longtext"`
	FeaturedImage string    `json:"featured_image" gorm:"size:512"`
	Category      string    `json:"category" gorm:"size:100;index"`
	Tags          []string  `json:"tags" gorm:"serializer:json"`
	ReadTime      int       `json:"read_time" gorm:"default:0"`
	Author        string    `json:"author" gorm:"size:255"`
	Published     bool      `json:"published" gorm:"default:false;index"`
	Views         int64     `json:"views" gorm:"default:0"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// BlogPostSummary is the trimmed projection returned by the public list
// endpoint; Content is deliberately excluded.
type BlogPostSummary struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Excerpt       string    `json:"excerpt"`
	FeaturedImage string    `json:"featured_image"`
	Category      string    `json:"category"`
	Tags          []string  `json:"tags" gorm:"serializer:json"`
	ReadTime      int       `json:"read_time"`
	Author        string    `json:"author"`
	CreatedAt     time.Time `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (p *BlogPost) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
