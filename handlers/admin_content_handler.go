package handlers

import (
	"math"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/polyglotlc/backend/database"
	"github.com/polyglotlc/backend/models"
)

// Admin CRUD for the catalog entities. Partial updates work by unmarshalling
// the request body onto the loaded record, so absent fields keep their
// stored values.

func ListAllSubjects(c *fiber.Ctx) error {
	var subjects []models.Subject
	if err := database.DB.Order(`"order", name`).Find(&subjects).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(subjects)
}

func CreateSubject(c *fiber.Ctx) error {
	var subject models.Subject
	if err := c.BodyParser(&subject); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if subject.Name == "" || subject.Slug == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name and slug are required"})
	}
	if err := database.DB.Create(&subject).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create subject"})
	}
	return c.Status(fiber.StatusCreated).JSON(subject)
}

func UpdateSubject(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid subject ID"})
	}

	var subject models.Subject
	if err := database.DB.First(&subject, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Subject not found"})
	}
	if err := c.BodyParser(&subject); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	subject.ID = id

	if err := database.DB.Save(&subject).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update subject"})
	}
	return c.JSON(subject)
}

func DeleteSubject(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid subject ID"})
	}

	var courseCount int64
	database.DB.Model(&models.Course{}).Where("subject_id = ?", id).Count(&courseCount)
	if courseCount > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Subject still has courses attached"})
	}

	result := database.DB.Delete(&models.Subject{}, "id = ?", id)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete subject"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Subject not found"})
	}
	return c.JSON(fiber.Map{"message": "Subject deleted"})
}

type specializationIDs struct {
	SpecializationIDs []uuid.UUID `json:"specialization_ids"`
}

func ListAllTeachers(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * leadsPerPage

	query := database.DB.Model(&models.Teacher{})
	if c.Query("active") == "false" {
		query = query.Where("is_active = ?", false)
	}

	var total int64
	query.Count(&total)

	var teachers []models.Teacher
	if err := query.Preload("Specializations").
		Order(`is_featured desc, "order", first_name`).
		Offset(offset).Limit(leadsPerPage).Find(&teachers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(fiber.Map{
		"data": teachers,
		"meta": fiber.Map{
			"total":        total,
			"current_page": page,
			"total_pages":  int(math.Ceil(float64(total) / float64(leadsPerPage))),
		},
	})
}

func CreateTeacher(c *fiber.Ctx) error {
	var teacher models.Teacher
	if err := c.BodyParser(&teacher); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if teacher.FirstName == "" || teacher.LastName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "First and last name are required"})
	}
	teacher.Specializations = nil

	if err := database.DB.Create(&teacher).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create teacher"})
	}

	var ids specializationIDs
	if err := c.BodyParser(&ids); err == nil && len(ids.SpecializationIDs) > 0 {
		var subjects []*models.Subject
		database.DB.Where("id IN ?", ids.SpecializationIDs).Find(&subjects)
		database.DB.Model(&teacher).Association("Specializations").Replace(subjects)
	}

	return c.Status(fiber.StatusCreated).JSON(teacher)
}

func UpdateTeacher(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid teacher ID"})
	}

	var teacher models.Teacher
	if err := database.DB.First(&teacher, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Teacher not found"})
	}
	if err := c.BodyParser(&teacher); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	teacher.ID = id
	teacher.Specializations = nil

	if err := database.DB.Save(&teacher).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update teacher"})
	}

	var ids specializationIDs
	if err := c.BodyParser(&ids); err == nil && ids.SpecializationIDs != nil {
		var subjects []*models.Subject
		database.DB.Where("id IN ?", ids.SpecializationIDs).Find(&subjects)
		database.DB.Model(&teacher).Association("Specializations").Replace(subjects)
	}

	return c.JSON(teacher)
}

func DeleteTeacher(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid teacher ID"})
	}

	var teacher models.Teacher
	if err := database.DB.First(&teacher, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Teacher not found"})
	}

	database.DB.Model(&teacher).Association("Specializations").Clear()
	if err := database.DB.Delete(&teacher).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete teacher"})
	}
	return c.JSON(fiber.Map{"message": "Teacher deleted"})
}

type courseTeacherIDs struct {
	TeacherIDs []uuid.UUID `json:"teacher_ids"`
}

func ListAllCourses(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * leadsPerPage

	query := database.DB.Model(&models.Course{})
	if c.Query("active") == "false" {
		query = query.Where("is_active = ?", false)
	}

	var total int64
	query.Count(&total)

	var courses []models.Course
	if err := query.Preload("Subject").
		Order(`"order", title`).
		Offset(offset).Limit(leadsPerPage).Find(&courses).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(fiber.Map{
		"data": courses,
		"meta": fiber.Map{
			"total":        total,
			"current_page": page,
			"total_pages":  int(math.Ceil(float64(total) / float64(leadsPerPage))),
		},
	})
}

func CreateCourse(c *fiber.Ctx) error {
	var course models.Course
	if err := c.BodyParser(&course); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if course.Title == "" || course.SubjectID == uuid.Nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Title and subject are required"})
	}
	if course.Level != "" && !course.Level.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid course level"})
	}
	course.Teachers = nil

	if err := database.DB.Create(&course).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create course"})
	}

	var ids courseTeacherIDs
	if err := c.BodyParser(&ids); err == nil && len(ids.TeacherIDs) > 0 {
		var teachers []*models.Teacher
		database.DB.Where("id IN ?", ids.TeacherIDs).Find(&teachers)
		database.DB.Model(&course).Association("Teachers").Replace(teachers)
	}

	return c.Status(fiber.StatusCreated).JSON(course)
}

func UpdateCourse(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid course ID"})
	}

	var course models.Course
	if err := database.DB.First(&course, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}

	prevLevel := course.Level
	if err := c.BodyParser(&course); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if course.Level == "" {
		course.Level = prevLevel
	}
	if !course.Level.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid course level"})
	}
	course.ID = id
	course.Teachers = nil

	if err := database.DB.Save(&course).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update course"})
	}

	var ids courseTeacherIDs
	if err := c.BodyParser(&ids); err == nil && ids.TeacherIDs != nil {
		var teachers []*models.Teacher
		database.DB.Where("id IN ?", ids.TeacherIDs).Find(&teachers)
		database.DB.Model(&course).Association("Teachers").Replace(teachers)
	}

	return c.JSON(course)
}

func DeleteCourse(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid course ID"})
	}

	var enrollmentCount int64
	database.DB.Model(&models.CourseEnrollment{}).Where("course_id = ?", id).Count(&enrollmentCount)
	if enrollmentCount > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Course still has enrollment leads attached"})
	}

	var course models.Course
	if err := database.DB.First(&course, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}

	database.DB.Model(&course).Association("Teachers").Clear()
	if err := database.DB.Delete(&course).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete course"})
	}
	return c.JSON(fiber.Map{"message": "Course deleted"})
}
