package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/polyglotlc/backend/utils"
)

type EnrollmentStatus string

const (
	EnrollmentPending   EnrollmentStatus = "pending"
	EnrollmentContacted EnrollmentStatus = "contacted"
	EnrollmentEnrolled  EnrollmentStatus = "enrolled"
	EnrollmentRejected  EnrollmentStatus = "rejected"
)

func (s EnrollmentStatus) Valid() bool {
	switch s {
	case EnrollmentPending, EnrollmentContacted, EnrollmentEnrolled, EnrollmentRejected:
		return true
	}
	return false
}

// CanTransition reports whether an enrollment may move from s to next.
// Triage is corrected in place by admins, so any valid status is reachable
// from any other.
func (s EnrollmentStatus) CanTransition(next EnrollmentStatus) bool {
	return next.Valid()
}

// CourseEnrollment is a lead created by a public enrollment form submission.
type CourseEnrollment struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	FullName string    `gorm:"size:200;not null" json:"full_name"`
	Phone    string    `gorm:"size:20;not null" json:"phone"`
	Email    *string   `gorm:"size:255" json:"email"`

	CourseID uuid.UUID `gorm:"type:uuid;not null" json:"course_id"`
	Course   Course    `gorm:"foreignkey:CourseID" json:"course"`

	Message string `gorm:"type:text" json:"message"`

	Status     EnrollmentStatus `gorm:"size:20;not null;default:'pending'" json:"status"`
	AdminNotes string           `gorm:"type:text" json:"admin_notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (e *CourseEnrollment) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.Status == "" {
		e.Status = EnrollmentPending
	}
	e.Phone = utils.FormatPhoneNumber(e.Phone)
	return nil
}
