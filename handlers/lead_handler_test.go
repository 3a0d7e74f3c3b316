package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/polyglotlc/backend/database"
	"github.com/polyglotlc/backend/models"
)

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Subject{},
		&models.Teacher{},
		&models.Course{},
		&models.CourseEnrollment{},
		&models.TeacherApplication{},
		&models.Contact{},
	))
	database.DB = db

	app := fiber.New()
	app.Post("/courses/:slug/enroll", EnrollInCourse)
	app.Post("/contact", SubmitContact)
	app.Put("/admin/applications/bulk-status", BulkUpdateApplications)
	app.Put("/admin/applications/:id", UpdateApplication)
	app.Put("/admin/contacts/bulk-status", BulkUpdateContacts)
	app.Put("/admin/contacts/:id", UpdateContact)
	app.Put("/admin/courses/:id", UpdateCourse)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, payload interface{}) *http.Response {
	t.Helper()
	return sendJSON(t, app, http.MethodPost, path, payload)
}

func sendJSON(t *testing.T, app *fiber.App, method, path string, payload interface{}) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestEnrollInCourse(t *testing.T) {
	app := setupTestApp(t)

	subject := models.Subject{Name: "English", Slug: "english"}
	require.NoError(t, database.DB.Create(&subject).Error)
	course := models.Course{
		Title:            "General English",
		SubjectID:        subject.ID,
		ShortDescription: "Group classes",
		Price:            500000,
		IsActive:         true,
	}
	require.NoError(t, database.DB.Create(&course).Error)

	t.Run("creates a pending lead and normalizes the phone", func(t *testing.T) {
		resp := postJSON(t, app, "/courses/general-english/enroll", map[string]interface{}{
			"full_name": "Dilnoza Rakhimova",
			"phone":     "90-123-45-67",
			"message":   "Evening group please",
		})
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var lead models.CourseEnrollment
		require.NoError(t, database.DB.Where("full_name = ?", "Dilnoza Rakhimova").First(&lead).Error)
		assert.Equal(t, models.EnrollmentPending, lead.Status)
		assert.Equal(t, "+998 90 123 45 67", lead.Phone)
		assert.Equal(t, course.ID, lead.CourseID)

		var reloaded models.Course
		require.NoError(t, database.DB.First(&reloaded, "id = ?", course.ID).Error)
		assert.Equal(t, 1, reloaded.EnrollmentsCount)
	})

	t.Run("unknown course slug is a 404", func(t *testing.T) {
		resp := postJSON(t, app, "/courses/no-such-course/enroll", map[string]interface{}{
			"full_name": "Dilnoza Rakhimova",
			"phone":     "901234567",
		})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("missing required fields are rejected", func(t *testing.T) {
		resp := postJSON(t, app, "/courses/general-english/enroll", map[string]interface{}{
			"full_name": "X",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestSubmitContact(t *testing.T) {
	app := setupTestApp(t)

	resp := postJSON(t, app, "/contact", map[string]interface{}{
		"full_name": "Jasur Olimov",
		"phone":     "998909876543",
		"message":   "Do you have weekend groups?",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var contact models.Contact
	require.NoError(t, database.DB.Where("full_name = ?", "Jasur Olimov").First(&contact).Error)
	assert.Equal(t, models.ContactNew, contact.Status)
	assert.False(t, contact.IsRead)
	assert.Equal(t, "+998 90 987 65 43", contact.Phone)
}

func TestUpdateApplicationReviewStamp(t *testing.T) {
	app := setupTestApp(t)

	application := models.TeacherApplication{
		FirstName:       "Aziza",
		LastName:        "Karimova",
		Phone:           "901112233",
		Email:           "aziza@example.com",
		Education:       "TESOL",
		ExperienceYears: 4,
		CvFileURL:       "https://files.example.com/cv.pdf",
		AboutMe:         "Experienced teacher.",
		WhyTeach:        "Love the work.",
	}
	require.NoError(t, database.DB.Create(&application).Error)
	require.Nil(t, application.ReviewedAt)

	resp := sendJSON(t, app, http.MethodPut, "/admin/applications/"+application.ID.String(), map[string]interface{}{
		"status": "accepted",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var reloaded models.TeacherApplication
	require.NoError(t, database.DB.First(&reloaded, "id = ?", application.ID).Error)
	assert.Equal(t, models.ApplicationAccepted, reloaded.Status)
	require.NotNil(t, reloaded.ReviewedAt)
	firstStamp := *reloaded.ReviewedAt

	// Another transition re-stamps the review time.
	resp = sendJSON(t, app, http.MethodPut, "/admin/applications/"+application.ID.String(), map[string]interface{}{
		"status": "rejected",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, database.DB.First(&reloaded, "id = ?", application.ID).Error)
	require.NotNil(t, reloaded.ReviewedAt)
	assert.False(t, reloaded.ReviewedAt.Before(firstStamp))

	// Resetting to pending clears it.
	resp = sendJSON(t, app, http.MethodPut, "/admin/applications/"+application.ID.String(), map[string]interface{}{
		"status": "pending",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, database.DB.First(&reloaded, "id = ?", application.ID).Error)
	assert.Nil(t, reloaded.ReviewedAt)

	resp = sendJSON(t, app, http.MethodPut, "/admin/applications/"+application.ID.String(), map[string]interface{}{
		"status": "archived",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestBulkUpdateApplications(t *testing.T) {
	app := setupTestApp(t)

	first := models.TeacherApplication{
		FirstName: "Aziza", LastName: "Karimova", Phone: "901112233",
		Email: "aziza@example.com", Education: "TESOL", ExperienceYears: 4,
		CvFileURL: "https://files.example.com/cv-a.pdf",
		AboutMe:   "Experienced teacher.", WhyTeach: "Love the work.",
	}
	second := models.TeacherApplication{
		FirstName: "Bobur", LastName: "Tashkentov", Phone: "902223344",
		Email: "bobur@example.com", Education: "CELTA", ExperienceYears: 2,
		CvFileURL: "https://files.example.com/cv-b.pdf",
		AboutMe:   "Grammar specialist.", WhyTeach: "Enjoy mentoring.",
	}
	require.NoError(t, database.DB.Create(&first).Error)
	require.NoError(t, database.DB.Create(&second).Error)

	resp := sendJSON(t, app, http.MethodPut, "/admin/applications/bulk-status", map[string]interface{}{
		"ids":    []string{first.ID.String(), second.ID.String()},
		"status": "accepted",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var applications []models.TeacherApplication
	require.NoError(t, database.DB.Find(&applications).Error)
	require.Len(t, applications, 2)
	for _, application := range applications {
		assert.Equal(t, models.ApplicationAccepted, application.Status)
		assert.NotNil(t, application.ReviewedAt)
	}

	// Resetting the batch to pending clears the review stamps.
	resp = sendJSON(t, app, http.MethodPut, "/admin/applications/bulk-status", map[string]interface{}{
		"ids":    []string{first.ID.String(), second.ID.String()},
		"status": "pending",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, database.DB.Find(&applications).Error)
	for _, application := range applications {
		assert.Equal(t, models.ApplicationPending, application.Status)
		assert.Nil(t, application.ReviewedAt)
	}
}

func TestBulkUpdateContacts(t *testing.T) {
	app := setupTestApp(t)

	first := models.Contact{FullName: "Jasur Olimov", Phone: "909876543", Message: "Weekend groups?"}
	second := models.Contact{FullName: "Dilnoza Rakhimova", Phone: "901234567", Message: "Price list please"}
	require.NoError(t, database.DB.Create(&first).Error)
	require.NoError(t, database.DB.Create(&second).Error)

	t.Run("completing a batch marks every contact read", func(t *testing.T) {
		resp := sendJSON(t, app, http.MethodPut, "/admin/contacts/bulk-status", map[string]interface{}{
			"ids":    []string{first.ID.String(), second.ID.String()},
			"status": "completed",
		})
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var contacts []models.Contact
		require.NoError(t, database.DB.Find(&contacts).Error)
		require.Len(t, contacts, 2)
		for _, contact := range contacts {
			assert.Equal(t, models.ContactCompleted, contact.Status)
			assert.True(t, contact.IsRead)
		}
	})

	t.Run("moving back to in_progress leaves the read flag alone", func(t *testing.T) {
		resp := sendJSON(t, app, http.MethodPut, "/admin/contacts/bulk-status", map[string]interface{}{
			"ids":    []string{first.ID.String()},
			"status": "in_progress",
		})
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var reloaded models.Contact
		require.NoError(t, database.DB.First(&reloaded, "id = ?", first.ID).Error)
		assert.Equal(t, models.ContactInProgress, reloaded.Status)
		assert.True(t, reloaded.IsRead)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		resp := sendJSON(t, app, http.MethodPut, "/admin/contacts/bulk-status", map[string]interface{}{
			"ids":    []string{first.ID.String()},
			"status": "spam",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("empty id list is rejected", func(t *testing.T) {
		resp := sendJSON(t, app, http.MethodPut, "/admin/contacts/bulk-status", map[string]interface{}{
			"ids":    []string{},
			"status": "completed",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestUpdateContactCompletedImpliesRead(t *testing.T) {
	app := setupTestApp(t)

	contact := models.Contact{
		FullName: "Jasur Olimov",
		Phone:    "909876543",
		Message:  "Weekend groups?",
	}
	require.NoError(t, database.DB.Create(&contact).Error)
	require.False(t, contact.IsRead)

	resp := sendJSON(t, app, http.MethodPut, "/admin/contacts/"+contact.ID.String(), map[string]interface{}{
		"status": "completed",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var reloaded models.Contact
	require.NoError(t, database.DB.First(&reloaded, "id = ?", contact.ID).Error)
	assert.Equal(t, models.ContactCompleted, reloaded.Status)
	assert.True(t, reloaded.IsRead)
}
