package services

import (
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/polyglotlc/backend/models"
)

const promotedBioLimit = 500

// BuildTeacherFromApplication maps an accepted application onto a fresh
// teacher profile. Bio keeps the first 500 characters of the applicant's
// self-description; FullBio carries the untruncated text followed by the
// motivation answer.
func BuildTeacherFromApplication(app models.TeacherApplication) models.Teacher {
	return models.Teacher{
		FirstName:       app.FirstName,
		LastName:        app.LastName,
		Phone:           app.Phone,
		Email:           &app.Email,
		Education:       app.Education,
		ExperienceYears: app.ExperienceYears,
		Bio:             truncateRunes(app.AboutMe, promotedBioLimit),
		FullBio:         app.AboutMe + "\n\n" + app.WhyTeach,
		PhotoURL:        app.PhotoURL,
	}
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

// PromoteAcceptedApplications turns the accepted applications among ids into
// teacher records. A teacher is keyed by (first_name, last_name); an existing
// name silently skips creation and the application is left untouched. The
// returned count is the number of teachers actually created, not the number
// of applications processed. Failures on one application do not abort the
// rest.
func PromoteAcceptedApplications(db *gorm.DB, ids []uuid.UUID) (int, error) {
	var apps []models.TeacherApplication
	if err := db.Preload("Subject").
		Where("id IN ? AND status = ?", ids, models.ApplicationAccepted).
		Find(&apps).Error; err != nil {
		return 0, err
	}

	created := 0
	for _, app := range apps {
		var existing models.Teacher
		err := db.Where("first_name = ? AND last_name = ?", app.FirstName, app.LastName).
			First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("🔥 Failed to look up teacher for application %s: %v", app.ID, err)
			continue
		}

		teacher := BuildTeacherFromApplication(app)
		if err := db.Create(&teacher).Error; err != nil {
			log.Printf("🔥 Failed to create teacher from application %s: %v", app.ID, err)
			continue
		}
		created++

		if app.Subject != nil {
			if err := db.Model(&teacher).Association("Specializations").Append(app.Subject); err != nil {
				// The teacher exists either way; the missing specialization is
				// recoverable by hand.
				log.Printf("⚠️ Failed to attach subject to teacher %s: %v", teacher.ID, err)
			}
		}
	}

	return created, nil
}
