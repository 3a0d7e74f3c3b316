package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/polyglotlc/backend/utils"
)

type CourseLevel string

const (
	LevelBeginner          CourseLevel = "beginner"
	LevelElementary        CourseLevel = "elementary"
	LevelPreIntermediate   CourseLevel = "pre_intermediate"
	LevelIntermediate      CourseLevel = "intermediate"
	LevelUpperIntermediate CourseLevel = "upper_intermediate"
	LevelAdvanced          CourseLevel = "advanced"
)

func (l CourseLevel) Valid() bool {
	switch l {
	case LevelBeginner, LevelElementary, LevelPreIntermediate,
		LevelIntermediate, LevelUpperIntermediate, LevelAdvanced:
		return true
	}
	return false
}

type Course struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Title     string    `gorm:"size:200;not null" json:"title"`
	Slug      string    `gorm:"size:220;unique" json:"slug"`
	SubjectID uuid.UUID `gorm:"type:uuid;not null" json:"subject_id"`
	Subject   Subject   `gorm:"foreignkey:SubjectID" json:"subject"`

	MainImageURL *string `gorm:"size:255" json:"main_image_url"`
	ThumbnailURL *string `gorm:"size:255" json:"thumbnail_url"`

	ShortDescription string `gorm:"size:300;not null" json:"short_description"`
	FullDescription  string `gorm:"type:text" json:"full_description"`

	Level          CourseLevel `gorm:"size:20;not null;default:'beginner'" json:"level"`
	DurationMonths int         `gorm:"not null;default:1" json:"duration_months"`
	LessonsPerWeek int         `gorm:"default:3" json:"lessons_per_week"`
	LessonDuration int         `gorm:"default:90" json:"lesson_duration"`

	Price         float64  `gorm:"type:numeric(10,2);not null" json:"price"`
	DiscountPrice *float64 `gorm:"type:numeric(10,2)" json:"discount_price"`

	Teachers []*Teacher `gorm:"many2many:course_teachers;" json:"teachers,omitempty"`

	WhatYouLearn    string `gorm:"type:text" json:"what_you_learn"`
	Requirements    string `gorm:"type:text" json:"requirements"`
	TargetAudience  string `gorm:"type:text" json:"target_audience"`
	Syllabus        string `gorm:"type:text" json:"syllabus"`
	ExpectedResults string `gorm:"type:text" json:"expected_results"`
	CertificateInfo string `gorm:"type:text" json:"certificate_info"`

	IsActive   bool `gorm:"default:true" json:"is_active"`
	IsFeatured bool `gorm:"default:false" json:"is_featured"`
	IsPopular  bool `gorm:"default:false" json:"is_popular"`
	Order      int  `gorm:"default:0" json:"order"`

	// Increment-only counters, never recomputed from children.
	ViewsCount       int `gorm:"default:0" json:"views_count"`
	EnrollmentsCount int `gorm:"default:0" json:"enrollments_count"`

	StartDate *time.Time `json:"start_date"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// HasDiscount reports whether the discounted price undercuts the base price.
func (c *Course) HasDiscount() bool {
	return c.DiscountPrice != nil && *c.DiscountPrice < c.Price
}

func (c *Course) FinalPrice() float64 {
	if c.HasDiscount() {
		return *c.DiscountPrice
	}
	return c.Price
}

func (c *Course) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.Slug == "" {
		slug, err := utils.UniqueSlug(tx, "courses", c.Title)
		if err != nil {
			return err
		}
		c.Slug = slug
	}
	return nil
}
