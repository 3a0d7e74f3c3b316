package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Certificate is an issued credential. CertificateNumber carries the one
// externally observable format in the system: PLC-<year>-<4-digit-seq>,
// globally unique, allocated at creation and never reused.
type Certificate struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	StudentName     string    `gorm:"size:200;not null" json:"student_name"`
	StudentPhotoURL *string   `gorm:"size:255" json:"student_photo_url"`

	CourseID *uuid.UUID `gorm:"type:uuid" json:"course_id"`
	Course   *Course    `gorm:"foreignkey:CourseID" json:"course,omitempty"`

	TeacherID *uuid.UUID `gorm:"type:uuid" json:"teacher_id"`
	Teacher   *Teacher   `gorm:"foreignkey:TeacherID" json:"teacher,omitempty"`

	CertificateImageURL string `gorm:"size:255" json:"certificate_image_url"`
	CertificateNumber   string `gorm:"size:50;not null;unique" json:"certificate_number"`

	Score string `gorm:"size:50" json:"score"`

	IssueDate  time.Time `gorm:"not null" json:"issue_date"`
	IsFeatured bool      `gorm:"default:false" json:"is_featured"`
	Order      int       `gorm:"default:0" json:"order"`

	CreatedAt time.Time `json:"created_at"`
}

func (c *Certificate) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
