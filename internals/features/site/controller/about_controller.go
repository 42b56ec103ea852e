package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mycollege_backend/internals/constants"
	"mycollege_backend/internals/features/site/dto"
	"mycollege_backend/internals/features/site/model"
	"mycollege_backend/internals/features/site/service"
	helper "mycollege_backend/internals/helpers"
	oss "mycollege_backend/internals/helpers/oss"
)

type AboutController struct {
	DB      *gorm.DB
	Storage oss.Storage
	Service *service.AboutService
}

func NewAboutController(db *gorm.DB, storage oss.Storage) *AboutController {
	return &AboutController{
		DB:      db,
		Storage: storage,
		Service: service.NewAboutService(service.NewGormAboutStore(db), storage),
	}
}

// ➕ Create replaces whatever existed before: the insert purges all prior
// rows in the same transaction and their files afterwards.
func (ctrl *AboutController) CreateAboutImage(c *fiber.Ctx) error {
	var body dto.SaveAboutImageRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSite.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	imageURL, err := helper.UploadedImage(c, ctrl.Storage, "about_image", constants.StorageAbout)
	if err != nil {
		return helper.UploadError(c, err, "Image upload failed")
	}
	if imageURL == "" {
		return helper.Error(c, fiber.StatusBadRequest, "An image file is required")
	}

	m := model.AboutImageModel{
		AboutImageTitle:   body.AboutImageTitle,
		AboutImageURL:     imageURL,
		AboutImageAltText: body.AboutImageAltText,
	}

	if err := ctrl.Service.Replace(c.UserContext(), &m); err != nil {
		return helper.FromServiceError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "About image replaced", m)
}

// 📄 Latest (and only) about image.
func (ctrl *AboutController) GetAboutImage(c *fiber.Ctx) error {
	var m model.AboutImageModel
	err := ctrl.DB.WithContext(c.UserContext()).
		Order("about_image_created_at DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Success(c, "No about image yet", nil)
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load about image")
	}
	return helper.Success(c, "OK", m)
}

// 🗑️ Delete — removes the stored file with the row.
func (ctrl *AboutController) DeleteAboutImage(c *fiber.Ctx) error {
	id := c.Params("id")

	var m model.AboutImageModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&m, "about_image_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "About image not found")
	}

	if m.AboutImageURL != "" {
		if err := ctrl.Storage.Delete(c.UserContext(), m.AboutImageURL); err != nil {
			return fiber.NewError(fiber.StatusBadGateway, "Failed to delete stored image")
		}
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Delete(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete about image")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
