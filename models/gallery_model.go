package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/polyglotlc/backend/utils"
)

type GalleryCategory struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Slug        string    `gorm:"size:120;unique" json:"slug"`
	Description string    `gorm:"type:text" json:"description"`
	Order       int       `gorm:"default:0" json:"order"`
}

func (c *GalleryCategory) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.Slug == "" {
		slug, err := utils.UniqueSlug(tx, "gallery_categories", c.Name)
		if err != nil {
			return err
		}
		c.Slug = slug
	}
	return nil
}

type Gallery struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Title    string    `gorm:"size:200" json:"title"`
	ImageURL string    `gorm:"size:255;not null" json:"image_url"`

	CategoryID *uuid.UUID       `gorm:"type:uuid" json:"category_id"`
	Category   *GalleryCategory `gorm:"foreignkey:CategoryID" json:"category,omitempty"`

	Description string `gorm:"type:text" json:"description"`

	IsFeatured bool `gorm:"default:false" json:"is_featured"`
	Order      int  `gorm:"default:0" json:"order"`

	CreatedAt time.Time `json:"created_at"`
}

// DisplayTitle falls back to the category name when the image is untitled.
func (g *Gallery) DisplayTitle() string {
	if g.Title != "" {
		return g.Title
	}
	if g.Category != nil {
		return g.Category.Name
	}
	return "Gallery image"
}

func (g *Gallery) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}
