package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/polyglotlc/backend/utils"
)

type News struct {
	ID    uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Title string    `gorm:"size:200;not null" json:"title"`
	Slug  string    `gorm:"size:220;unique" json:"slug"`

	MainImageURL *string `gorm:"size:255" json:"main_image_url"`
	ThumbnailURL *string `gorm:"size:255" json:"thumbnail_url"`

	ShortDescription string `gorm:"size:300;not null" json:"short_description"`
	Content          string `gorm:"type:text;not null" json:"content"`

	GalleryImages []*NewsGalleryImage `gorm:"many2many:news_gallery;" json:"gallery_images,omitempty"`

	AuthorID *uuid.UUID `gorm:"type:uuid" json:"author_id"`
	Author   *User      `gorm:"foreignkey:AuthorID" json:"author,omitempty"`

	MetaKeywords string `gorm:"size:255" json:"meta_keywords"`

	IsPublished bool `gorm:"default:false" json:"is_published"`
	IsFeatured  bool `gorm:"default:false" json:"is_featured"`

	ViewsCount int `gorm:"default:0" json:"views_count"`

	PublishDate *time.Time `json:"publish_date"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (n *News) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	if n.Slug == "" {
		slug, err := utils.UniqueSlug(tx, "news", n.Title)
		if err != nil {
			return err
		}
		n.Slug = slug
	}
	return nil
}

type NewsGalleryImage struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ImageURL string    `gorm:"size:255;not null" json:"image_url"`
	Caption  string    `gorm:"size:200" json:"caption"`
	Order    int       `gorm:"default:0" json:"order"`
}

func (g *NewsGalleryImage) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}
