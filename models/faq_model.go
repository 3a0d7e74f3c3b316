package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FAQCategory struct {
	ID    uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name  string    `gorm:"size:100;not null" json:"name"`
	Order int       `gorm:"default:0" json:"order"`

	FAQs []*FAQ `gorm:"foreignkey:CategoryID" json:"faqs,omitempty"`
}

func (c *FAQCategory) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

type FAQ struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`

	CategoryID *uuid.UUID   `gorm:"type:uuid" json:"category_id"`
	Category   *FAQCategory `gorm:"foreignkey:CategoryID" json:"category,omitempty"`

	Question string `gorm:"size:300;not null" json:"question"`
	Answer   string `gorm:"type:text;not null" json:"answer"`

	Order    int  `gorm:"default:0" json:"order"`
	IsActive bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
}

func (f *FAQ) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
