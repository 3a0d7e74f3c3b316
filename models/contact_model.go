package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/polyglotlc/backend/utils"
)

type ContactStatus string

const (
	ContactNew        ContactStatus = "new"
	ContactInProgress ContactStatus = "in_progress"
	ContactCompleted  ContactStatus = "completed"
)

func (s ContactStatus) Valid() bool {
	switch s {
	case ContactNew, ContactInProgress, ContactCompleted:
		return true
	}
	return false
}

// CanTransition allows any valid status from any other.
func (s ContactStatus) CanTransition(next ContactStatus) bool {
	return next.Valid()
}

// Contact is a general inbound message from the contact page. IsRead is
// tracked independently of status, but a completed contact is always read.
type Contact struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	FullName string    `gorm:"size:200;not null" json:"full_name"`
	Phone    string    `gorm:"size:20;not null" json:"phone"`
	Email    *string   `gorm:"size:255" json:"email"`

	Subject string `gorm:"size:200" json:"subject"`
	Message string `gorm:"type:text;not null" json:"message"`

	Status     ContactStatus `gorm:"size:20;not null;default:'new'" json:"status"`
	IsRead     bool          `gorm:"default:false" json:"is_read"`
	AdminNotes string        `gorm:"type:text" json:"admin_notes"`

	CreatedAt time.Time `json:"created_at"`
}

func (c *Contact) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.Status == "" {
		c.Status = ContactNew
	}
	c.Phone = utils.FormatPhoneNumber(c.Phone)
	return nil
}
