package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/polyglotlc/backend/utils"
)

type Teacher struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	FirstName string    `gorm:"size:100;not null" json:"first_name"`
	LastName  string    `gorm:"size:100;not null" json:"last_name"`
	Slug      string    `gorm:"size:220;unique" json:"slug"`
	PhotoURL  *string   `gorm:"size:255" json:"photo_url"`

	Phone string  `gorm:"size:20;not null" json:"phone"`
	Email *string `gorm:"size:255" json:"email"`

	Education       string   `gorm:"size:200" json:"education"`
	IeltsScore      *float32 `gorm:"type:numeric(2,1)" json:"ielts_score"`
	ToeflScore      *int     `json:"toefl_score"`
	CefrLevel       *string  `gorm:"size:2" json:"cefr_level"`
	ExperienceYears int      `gorm:"not null;default:0" json:"experience_years"`

	CertificatesFileURL *string `gorm:"size:255" json:"certificates_file_url"`

	Bio     string `gorm:"size:500" json:"bio"`
	FullBio string `gorm:"type:text" json:"full_bio"`
	Skills  string `gorm:"type:text" json:"skills"`

	Specializations []*Subject `gorm:"many2many:teacher_specializations;" json:"specializations,omitempty"`

	Facebook  *string `gorm:"size:255" json:"facebook"`
	Instagram *string `gorm:"size:255" json:"instagram"`
	Telegram  *string `gorm:"size:255" json:"telegram"`
	LinkedIn  *string `gorm:"size:255" json:"linkedin"`

	IsActive   bool `gorm:"default:true" json:"is_active"`
	IsFeatured bool `gorm:"default:false" json:"is_featured"`
	Order      int  `gorm:"default:0" json:"order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t *Teacher) FullName() string {
	return t.FirstName + " " + t.LastName
}

func (t *Teacher) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.Slug == "" {
		slug, err := utils.UniqueSlug(tx, "teachers", t.FirstName+" "+t.LastName)
		if err != nil {
			return err
		}
		t.Slug = slug
	}
	return nil
}
