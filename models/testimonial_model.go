package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Testimonial struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	StudentName     string    `gorm:"size:200;not null" json:"student_name"`
	StudentPhotoURL *string   `gorm:"size:255" json:"student_photo_url"`

	CourseID *uuid.UUID `gorm:"type:uuid" json:"course_id"`
	Course   *Course    `gorm:"foreignkey:CourseID" json:"course,omitempty"`

	Rating  int    `gorm:"not null;default:5" json:"rating"`
	Comment string `gorm:"type:text;not null" json:"comment"`

	Achievement string `gorm:"size:200" json:"achievement"`

	IsApproved bool `gorm:"default:false" json:"is_approved"`
	IsFeatured bool `gorm:"default:false" json:"is_featured"`
	Order      int  `gorm:"default:0" json:"order"`

	CreatedAt time.Time `json:"created_at"`
}

func (t *Testimonial) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
