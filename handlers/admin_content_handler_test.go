package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polyglotlc/backend/database"
	"github.com/polyglotlc/backend/models"
)

func TestUpdateCourseLevelHandling(t *testing.T) {
	app := setupTestApp(t)

	subject := models.Subject{Name: "English", Slug: "english"}
	require.NoError(t, database.DB.Create(&subject).Error)
	course := models.Course{
		Title:            "General English",
		SubjectID:        subject.ID,
		ShortDescription: "Group classes",
		Level:            models.LevelIntermediate,
		Price:            500000,
		IsActive:         true,
	}
	require.NoError(t, database.DB.Create(&course).Error)

	t.Run("payload without a level keeps the stored one", func(t *testing.T) {
		resp := sendJSON(t, app, http.MethodPut, "/admin/courses/"+course.ID.String(), map[string]interface{}{
			"title": "General English (Evening)",
		})
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var reloaded models.Course
		require.NoError(t, database.DB.First(&reloaded, "id = ?", course.ID).Error)
		assert.Equal(t, models.LevelIntermediate, reloaded.Level)
		assert.Equal(t, "General English (Evening)", reloaded.Title)
	})

	t.Run("explicit empty level keeps the stored one", func(t *testing.T) {
		resp := sendJSON(t, app, http.MethodPut, "/admin/courses/"+course.ID.String(), map[string]interface{}{
			"level": "",
		})
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var reloaded models.Course
		require.NoError(t, database.DB.First(&reloaded, "id = ?", course.ID).Error)
		assert.Equal(t, models.LevelIntermediate, reloaded.Level)
	})

	t.Run("valid level change applies", func(t *testing.T) {
		resp := sendJSON(t, app, http.MethodPut, "/admin/courses/"+course.ID.String(), map[string]interface{}{
			"level": "advanced",
		})
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var reloaded models.Course
		require.NoError(t, database.DB.First(&reloaded, "id = ?", course.ID).Error)
		assert.Equal(t, models.LevelAdvanced, reloaded.Level)
	})

	t.Run("unknown level is rejected", func(t *testing.T) {
		resp := sendJSON(t, app, http.MethodPut, "/admin/courses/"+course.ID.String(), map[string]interface{}{
			"level": "fluent",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var reloaded models.Course
		require.NoError(t, database.DB.First(&reloaded, "id = ?", course.ID).Error)
		assert.Equal(t, models.LevelAdvanced, reloaded.Level)
	})
}
