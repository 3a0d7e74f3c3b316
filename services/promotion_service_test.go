package services

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/polyglotlc/backend/models"
)

func newAcceptedApplication(t *testing.T, db *gorm.DB, firstName, lastName string) models.TeacherApplication {
	t.Helper()
	app := models.TeacherApplication{
		FirstName:       firstName,
		LastName:        lastName,
		Phone:           "+998 90 123 45 67",
		Email:           strings.ToLower(firstName) + "@example.com",
		Education:       "TESOL",
		ExperienceYears: 4,
		CvFileURL:       "https://files.example.com/cv.pdf",
		AboutMe:         "Experienced language teacher.",
		WhyTeach:        "I enjoy watching students progress.",
		Status:          models.ApplicationAccepted,
	}
	require.NoError(t, db.Create(&app).Error)
	return app
}

func TestBuildTeacherFromApplication(t *testing.T) {
	longBio := strings.Repeat("ў", 600)
	app := models.TeacherApplication{
		FirstName: "Aziza",
		LastName:  "Karimova",
		AboutMe:   longBio,
		WhyTeach:  "Teaching is rewarding.",
	}

	teacher := BuildTeacherFromApplication(app)

	assert.Equal(t, 500, len([]rune(teacher.Bio)))
	assert.Equal(t, longBio+"\n\n"+"Teaching is rewarding.", teacher.FullBio)
	assert.Equal(t, "Aziza", teacher.FirstName)
	assert.Equal(t, "Karimova", teacher.LastName)
}

func TestPromoteAcceptedApplications(t *testing.T) {
	t.Run("creates teachers from accepted applications", func(t *testing.T) {
		db := newTestDB(t)

		subject := models.Subject{Name: "English", Slug: "english"}
		require.NoError(t, db.Create(&subject).Error)

		app := newAcceptedApplication(t, db, "Aziza", "Karimova")
		app.SubjectID = &subject.ID
		require.NoError(t, db.Save(&app).Error)

		created, err := PromoteAcceptedApplications(db, []uuid.UUID{app.ID})
		require.NoError(t, err)
		assert.Equal(t, 1, created)

		var teacher models.Teacher
		require.NoError(t, db.Preload("Specializations").
			Where("first_name = ? AND last_name = ?", "Aziza", "Karimova").
			First(&teacher).Error)
		assert.Equal(t, "aziza-karimova", teacher.Slug)
		require.Len(t, teacher.Specializations, 1)
		assert.Equal(t, "english", teacher.Specializations[0].Slug)
	})

	t.Run("existing teacher with the same name is skipped", func(t *testing.T) {
		db := newTestDB(t)

		require.NoError(t, db.Create(&models.Teacher{
			FirstName: "Aziza",
			LastName:  "Karimova",
			Phone:     "+998 90 000 00 00",
		}).Error)

		app := newAcceptedApplication(t, db, "Aziza", "Karimova")

		created, err := PromoteAcceptedApplications(db, []uuid.UUID{app.ID})
		require.NoError(t, err)
		assert.Equal(t, 0, created)

		var count int64
		db.Model(&models.Teacher{}).Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("non-accepted applications are ignored", func(t *testing.T) {
		db := newTestDB(t)

		app := newAcceptedApplication(t, db, "Bobur", "Tashkentov")
		require.NoError(t, db.Model(&app).Update("status", models.ApplicationPending).Error)

		created, err := PromoteAcceptedApplications(db, []uuid.UUID{app.ID})
		require.NoError(t, err)
		assert.Equal(t, 0, created)
	})

	t.Run("count reflects actual creations across a batch", func(t *testing.T) {
		db := newTestDB(t)

		appA := newAcceptedApplication(t, db, "Aziza", "Karimova")
		appB := newAcceptedApplication(t, db, "Bobur", "Tashkentov")
		appDup := newAcceptedApplication(t, db, "Aziza", "Karimova")

		created, err := PromoteAcceptedApplications(db, []uuid.UUID{appA.ID, appB.ID, appDup.ID})
		require.NoError(t, err)
		assert.Equal(t, 2, created)
	})
}
