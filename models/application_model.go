package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/polyglotlc/backend/utils"
)

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationReviewed ApplicationStatus = "reviewed"
	ApplicationAccepted ApplicationStatus = "accepted"
	ApplicationRejected ApplicationStatus = "rejected"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationPending, ApplicationReviewed, ApplicationAccepted, ApplicationRejected:
		return true
	}
	return false
}

// CanTransition allows any valid status from any other; admins overwrite
// triage state freely.
func (s ApplicationStatus) CanTransition(next ApplicationStatus) bool {
	return next.Valid()
}

// TeacherApplication is a lead submitted through the "become a teacher" form.
// ReviewedAt is stamped on every transition into a non-pending status and
// cleared when the application is reset to pending.
type TeacherApplication struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	FirstName string    `gorm:"size:100;not null" json:"first_name"`
	LastName  string    `gorm:"size:100;not null" json:"last_name"`
	Phone     string    `gorm:"size:20;not null" json:"phone"`
	Email     string    `gorm:"size:255;not null" json:"email"`

	Education       string `gorm:"size:200;not null" json:"education"`
	ExperienceYears int    `gorm:"not null" json:"experience_years"`

	SubjectID *uuid.UUID `gorm:"type:uuid" json:"subject_id"`
	Subject   *Subject   `gorm:"foreignkey:SubjectID" json:"subject,omitempty"`

	CertificatesURL *string `gorm:"size:255" json:"certificates_url"`
	CvFileURL       string  `gorm:"size:255;not null" json:"cv_file_url"`
	PhotoURL        *string `gorm:"size:255" json:"photo_url"`

	AboutMe  string `gorm:"type:text;not null" json:"about_me"`
	WhyTeach string `gorm:"type:text;not null" json:"why_teach"`

	Status     ApplicationStatus `gorm:"size:20;not null;default:'pending'" json:"status"`
	AdminNotes string            `gorm:"type:text" json:"admin_notes"`

	CreatedAt  time.Time  `json:"created_at"`
	ReviewedAt *time.Time `json:"reviewed_at"`
}

func (a *TeacherApplication) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Status == "" {
		a.Status = ApplicationPending
	}
	a.Phone = utils.FormatPhoneNumber(a.Phone)
	return nil
}
