package jobs

import (
	"context"
	"log"
	"time"

	"github.com/polyglotlc/backend/database"
	"github.com/polyglotlc/backend/models"
)

const badgeTTL = 10 * time.Minute

// RefreshLeadBadges recounts untriaged leads and caches the numbers for the
// admin dashboard badges. Advisory only: when Redis is down the badge
// endpoint recounts from the database directly.
func RefreshLeadBadges() {
	log.Println("Running job: RefreshLeadBadges...")

	if database.RDB == nil {
		return
	}

	counts := map[string]int64{}

	var pendingEnrollments int64
	if err := database.DB.Model(&models.CourseEnrollment{}).
		Where("status = ?", models.EnrollmentPending).
		Count(&pendingEnrollments).Error; err != nil {
		log.Printf("Error counting pending enrollments: %v", err)
		return
	}
	counts["badges:pending_enrollments"] = pendingEnrollments

	var pendingApplications int64
	if err := database.DB.Model(&models.TeacherApplication{}).
		Where("status = ?", models.ApplicationPending).
		Count(&pendingApplications).Error; err != nil {
		log.Printf("Error counting pending applications: %v", err)
		return
	}
	counts["badges:pending_applications"] = pendingApplications

	var newContacts int64
	if err := database.DB.Model(&models.Contact{}).
		Where("status = ?", models.ContactNew).
		Count(&newContacts).Error; err != nil {
		log.Printf("Error counting new contacts: %v", err)
		return
	}
	counts["badges:new_contacts"] = newContacts

	ctx := context.Background()
	for key, count := range counts {
		if err := database.RDB.Set(ctx, key, count, badgeTTL).Err(); err != nil {
			log.Printf("Error caching badge %s: %v", key, err)
			return
		}
	}

	log.Printf("Lead badges refreshed: %d pending enrollments, %d pending applications, %d new contacts.",
		pendingEnrollments, pendingApplications, newContacts)
}
