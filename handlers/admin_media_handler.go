package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/polyglotlc/backend/database"
	"github.com/polyglotlc/backend/models"
)

func ListAllNews(c *fiber.Ctx) error {
	page, offset := leadPagination(c)

	query := database.DB.Model(&models.News{})
	if c.Query("published") == "false" {
		query = query.Where("is_published = ?", false)
	}

	var total int64
	query.Count(&total)

	var news []models.News
	if err := query.Preload("Author").Order("created_at desc").
		Offset(offset).Limit(leadsPerPage).Find(&news).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(fiber.Map{"data": news, "meta": leadMeta(total, page)})
}

func CreateNews(c *fiber.Ctx) error {
	var news models.News
	if err := c.BodyParser(&news); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if news.Title == "" || news.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Title and content are required"})
	}

	if token, ok := c.Locals("user").(*jwt.Token); ok {
		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if idStr, ok := claims["user_id"].(string); ok {
				if id, err := uuid.Parse(idStr); err == nil {
					news.AuthorID = &id
				}
			}
		}
	}
	if news.IsPublished && news.PublishDate == nil {
		now := time.Now()
		news.PublishDate = &now
	}

	if err := database.DB.Create(&news).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create news"})
	}
	return c.Status(fiber.StatusCreated).JSON(news)
}

// UpdateNews edits an article. Publishing for the first time stamps the
// publish date; republishing keeps the original one.
func UpdateNews(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid news ID"})
	}

	var news models.News
	if err := database.DB.First(&news, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "News not found"})
	}
	if err := c.BodyParser(&news); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	news.ID = id

	if news.IsPublished && news.PublishDate == nil {
		now := time.Now()
		news.PublishDate = &now
	}

	if err := database.DB.Save(&news).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update news"})
	}
	return c.JSON(news)
}

func DeleteNews(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid news ID"})
	}

	var news models.News
	if err := database.DB.First(&news, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "News not found"})
	}

	database.DB.Model(&news).Association("GalleryImages").Clear()
	if err := database.DB.Delete(&news).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete news"})
	}
	return c.JSON(fiber.Map{"message": "News deleted"})
}

type NewsGalleryRequest struct {
	Images []struct {
		ImageURL string `json:"image_url" validate:"required,url"`
		Caption  string `json:"caption"`
		Order    int    `json:"order"`
	} `json:"images" validate:"required,min=1,dive"`
}

// AddNewsGalleryImages appends images to an article's gallery.
func AddNewsGalleryImages(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid news ID"})
	}

	var news models.News
	if err := database.DB.First(&news, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "News not found"})
	}

	var req NewsGalleryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	images := make([]*models.NewsGalleryImage, 0, len(req.Images))
	for _, img := range req.Images {
		images = append(images, &models.NewsGalleryImage{
			ImageURL: img.ImageURL,
			Caption:  img.Caption,
			Order:    img.Order,
		})
	}

	if err := database.DB.Model(&news).Association("GalleryImages").Append(images); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to attach gallery images"})
	}

	database.DB.Preload("GalleryImages").First(&news, "id = ?", id)
	return c.JSON(news)
}

func CreateGalleryCategory(c *fiber.Ctx) error {
	var category models.GalleryCategory
	if err := c.BodyParser(&category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if category.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name is required"})
	}
	if err := database.DB.Create(&category).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create category"})
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

func UpdateGalleryCategory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid category ID"})
	}

	var category models.GalleryCategory
	if err := database.DB.First(&category, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Category not found"})
	}
	if err := c.BodyParser(&category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	category.ID = id

	if err := database.DB.Save(&category).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update category"})
	}
	return c.JSON(category)
}

func DeleteGalleryCategory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid category ID"})
	}

	// Images keep existing but lose their category.
	database.DB.Model(&models.Gallery{}).Where("category_id = ?", id).Update("category_id", nil)

	result := database.DB.Delete(&models.GalleryCategory{}, "id = ?", id)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete category"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Category not found"})
	}
	return c.JSON(fiber.Map{"message": "Category deleted"})
}

func CreateGalleryImage(c *fiber.Ctx) error {
	var image models.Gallery
	if err := c.BodyParser(&image); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if image.ImageURL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Image URL is required"})
	}
	if err := database.DB.Create(&image).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create gallery image"})
	}
	return c.Status(fiber.StatusCreated).JSON(image)
}

func UpdateGalleryImage(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid image ID"})
	}

	var image models.Gallery
	if err := database.DB.First(&image, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Gallery image not found"})
	}
	if err := c.BodyParser(&image); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	image.ID = id

	if err := database.DB.Save(&image).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update gallery image"})
	}
	return c.JSON(image)
}

func DeleteGalleryImage(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid image ID"})
	}

	result := database.DB.Delete(&models.Gallery{}, "id = ?", id)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete gallery image"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Gallery image not found"})
	}
	return c.JSON(fiber.Map{"message": "Gallery image deleted"})
}

func ListAllTestimonials(c *fiber.Ctx) error {
	page, offset := leadPagination(c)

	query := database.DB.Model(&models.Testimonial{})
	if c.Query("approved") == "false" {
		query = query.Where("is_approved = ?", false)
	}

	var total int64
	query.Count(&total)

	var testimonials []models.Testimonial
	if err := query.Preload("Course").Order("created_at desc").
		Offset(offset).Limit(leadsPerPage).Find(&testimonials).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(fiber.Map{"data": testimonials, "meta": leadMeta(total, page)})
}

func CreateTestimonial(c *fiber.Ctx) error {
	var testimonial models.Testimonial
	if err := c.BodyParser(&testimonial); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if testimonial.StudentName == "" || testimonial.Comment == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Student name and comment are required"})
	}
	if testimonial.Rating < 1 || testimonial.Rating > 5 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Rating must be between 1 and 5"})
	}
	if err := database.DB.Create(&testimonial).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create testimonial"})
	}
	return c.Status(fiber.StatusCreated).JSON(testimonial)
}

func UpdateTestimonial(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid testimonial ID"})
	}

	var testimonial models.Testimonial
	if err := database.DB.First(&testimonial, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Testimonial not found"})
	}
	if err := c.BodyParser(&testimonial); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	testimonial.ID = id
	if testimonial.Rating < 1 || testimonial.Rating > 5 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Rating must be between 1 and 5"})
	}

	if err := database.DB.Save(&testimonial).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update testimonial"})
	}
	return c.JSON(testimonial)
}

func DeleteTestimonial(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid testimonial ID"})
	}

	result := database.DB.Delete(&models.Testimonial{}, "id = ?", id)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete testimonial"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Testimonial not found"})
	}
	return c.JSON(fiber.Map{"message": "Testimonial deleted"})
}

func CreateFAQCategory(c *fiber.Ctx) error {
	var category models.FAQCategory
	if err := c.BodyParser(&category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if category.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name is required"})
	}
	if err := database.DB.Create(&category).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create FAQ category"})
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

func UpdateFAQCategory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid category ID"})
	}

	var category models.FAQCategory
	if err := database.DB.First(&category, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "FAQ category not found"})
	}
	if err := c.BodyParser(&category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	category.ID = id

	if err := database.DB.Save(&category).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update FAQ category"})
	}
	return c.JSON(category)
}

func DeleteFAQCategory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid category ID"})
	}

	// Questions survive and show up as uncategorized.
	database.DB.Model(&models.FAQ{}).Where("category_id = ?", id).Update("category_id", nil)

	result := database.DB.Delete(&models.FAQCategory{}, "id = ?", id)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete FAQ category"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "FAQ category not found"})
	}
	return c.JSON(fiber.Map{"message": "FAQ category deleted"})
}

func CreateFAQ(c *fiber.Ctx) error {
	var faq models.FAQ
	if err := c.BodyParser(&faq); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if faq.Question == "" || faq.Answer == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Question and answer are required"})
	}
	if err := database.DB.Create(&faq).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create FAQ"})
	}
	return c.Status(fiber.StatusCreated).JSON(faq)
}

func UpdateFAQ(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid FAQ ID"})
	}

	var faq models.FAQ
	if err := database.DB.First(&faq, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "FAQ not found"})
	}
	if err := c.BodyParser(&faq); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	faq.ID = id

	if err := database.DB.Save(&faq).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update FAQ"})
	}
	return c.JSON(faq)
}

func DeleteFAQ(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid FAQ ID"})
	}

	result := database.DB.Delete(&models.FAQ{}, "id = ?", id)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete FAQ"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "FAQ not found"})
	}
	return c.JSON(fiber.Map{"message": "FAQ deleted"})
}
