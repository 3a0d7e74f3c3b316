package models

import (
	"time"

	"gorm.io/gorm"
)

// SettingsRowID is the fixed primary key of the singleton settings row.
// Every write collapses onto it, so a second instance can never exist.
const SettingsRowID uint = 1

type SiteSettings struct {
	ID uint `gorm:"primary_key" json:"id"`

	SiteName    string  `gorm:"size:200;not null;default:'PolyglotLC'" json:"site_name"`
	SiteTagline string  `gorm:"size:300" json:"site_tagline"`
	LogoURL     *string `gorm:"size:255" json:"logo_url"`
	FaviconURL  *string `gorm:"size:255" json:"favicon_url"`

	PhonePrimary   string `gorm:"size:20" json:"phone_primary"`
	PhoneSecondary string `gorm:"size:20" json:"phone_secondary"`
	Email          string `gorm:"size:255" json:"email"`
	Address        string `gorm:"type:text" json:"address"`

	WorkingHours string `gorm:"size:200;default:'Mon-Sat: 9:00 - 18:00'" json:"working_hours"`

	AboutShort string `gorm:"size:500" json:"about_short"`
	AboutFull  string `gorm:"type:text" json:"about_full"`

	Facebook  string `gorm:"size:255" json:"facebook"`
	Instagram string `gorm:"size:255" json:"instagram"`
	Telegram  string `gorm:"size:255" json:"telegram"`
	YouTube   string `gorm:"size:255" json:"youtube"`
	LinkedIn  string `gorm:"size:255" json:"linkedin"`
	Twitter   string `gorm:"size:255" json:"twitter"`
	TikTok    string `gorm:"size:255" json:"tiktok"`

	GoogleMapsEmbed string `gorm:"type:text" json:"google_maps_embed"`
	GoogleMapsLink  string `gorm:"size:255" json:"google_maps_link"`

	MetaDescription string `gorm:"size:160" json:"meta_description"`
	MetaKeywords    string `gorm:"size:255" json:"meta_keywords"`

	StudentsCount int `gorm:"default:0" json:"students_count"`
	TeachersCount int `gorm:"default:0" json:"teachers_count"`
	CoursesCount  int `gorm:"default:0" json:"courses_count"`
	SuccessRate   int `gorm:"default:95" json:"success_rate"`

	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeSave pins the row to the singleton key no matter what identity the
// caller supplied.
func (s *SiteSettings) BeforeSave(tx *gorm.DB) error {
	s.ID = SettingsRowID
	return nil
}
