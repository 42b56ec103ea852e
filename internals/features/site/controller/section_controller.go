package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mycollege_backend/internals/constants"
	"mycollege_backend/internals/features/site/dto"
	"mycollege_backend/internals/features/site/model"
	helper "mycollege_backend/internals/helpers"
	oss "mycollege_backend/internals/helpers/oss"
)

type SectionImageController struct {
	DB      *gorm.DB
	Storage oss.Storage
}

func NewSectionImageController(db *gorm.DB, storage oss.Storage) *SectionImageController {
	return &SectionImageController{DB: db, Storage: storage}
}

// ➕ Create a keyed section image. Keys repeat; readers pick the newest.
func (ctrl *SectionImageController) CreateSectionImage(c *fiber.Ctx) error {
	var body dto.SaveSectionImageRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSite.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	imageURL, err := helper.UploadedImage(c, ctrl.Storage, "section_image", constants.StorageSections)
	if err != nil {
		return helper.UploadError(c, err, "Image upload failed")
	}
	if imageURL == "" {
		return helper.Error(c, fiber.StatusBadRequest, "An image file is required")
	}

	m := model.SectionImageModel{
		SectionImageKey:     body.SectionImageKey,
		SectionImageTitle:   body.SectionImageTitle,
		SectionImageURL:     imageURL,
		SectionImageAltText: body.SectionImageAltText,
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create section image")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Section image created", m)
}

// 📄 List, newest first, optionally filtered by key.
func (ctrl *SectionImageController) GetAllSectionImages(c *fiber.Ctx) error {
	q := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.SectionImageModel{}).
		Order("section_image_created_at DESC")
	if key := c.Query("key"); key != "" {
		q = q.Where("section_image_key = ?", key)
	}

	var rows []model.SectionImageModel
	if err := q.Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve section images")
	}
	return helper.Success(c, "OK", rows)
}

// 🗑️ Delete — removes the stored file with the row.
func (ctrl *SectionImageController) DeleteSectionImage(c *fiber.Ctx) error {
	id := c.Params("id")

	var m model.SectionImageModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&m, "section_image_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Section image not found")
	}

	if m.SectionImageURL != "" {
		if err := ctrl.Storage.Delete(c.UserContext(), m.SectionImageURL); err != nil {
			return fiber.NewError(fiber.StatusBadGateway, "Failed to delete stored image")
		}
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Delete(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete section image")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
