package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mycollege_backend/internals/constants"
	"mycollege_backend/internals/features/site/dto"
	"mycollege_backend/internals/features/site/model"
	"mycollege_backend/internals/features/site/service"
	helper "mycollege_backend/internals/helpers"
	oss "mycollege_backend/internals/helpers/oss"
)

type SliderController struct {
	DB      *gorm.DB
	Storage oss.Storage
}

func NewSliderController(db *gorm.DB, storage oss.Storage) *SliderController {
	return &SliderController{DB: db, Storage: storage}
}

// ➕ Create a slide. At least one of slider_image / slider_video must be
// attached.
func (ctrl *SliderController) CreateSlider(c *fiber.Ctx) error {
	var body dto.SaveSliderRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSite.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	imageURL, err := helper.UploadedImage(c, ctrl.Storage, "slider_image", constants.StorageSliders)
	if err != nil {
		return helper.UploadError(c, err, "Image upload failed")
	}
	videoURL, err := helper.UploadedFile(c, ctrl.Storage, "slider_video", constants.StorageSliderVideos)
	if err != nil {
		return helper.UploadError(c, err, "Video upload failed")
	}

	m := model.SliderModel{
		SliderTitle:    body.SliderTitle,
		SliderImageURL: imageURL,
		SliderVideoURL: videoURL,
		SliderCaption:  body.SliderCaption,
		SliderIsActive: true,
	}
	if body.SliderIsActive != nil {
		m.SliderIsActive = *body.SliderIsActive
	}

	if err := service.ValidateSlider(&m); err != nil {
		return helper.FromServiceError(c, err)
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create slider")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Slider created", m)
}

// ✏️ Update a slide. New files replace stored ones; the stale objects
// are removed best-effort after the row is saved.
func (ctrl *SliderController) UpdateSlider(c *fiber.Ctx) error {
	id := c.Params("id")

	var m model.SliderModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&m, "slider_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Slider not found")
	}

	var body dto.SaveSliderRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSite.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	oldImage, oldVideo := m.SliderImageURL, m.SliderVideoURL

	imageURL, err := helper.UploadedImage(c, ctrl.Storage, "slider_image", constants.StorageSliders)
	if err != nil {
		return helper.UploadError(c, err, "Image upload failed")
	}
	videoURL, err := helper.UploadedFile(c, ctrl.Storage, "slider_video", constants.StorageSliderVideos)
	if err != nil {
		return helper.UploadError(c, err, "Video upload failed")
	}

	m.SliderTitle = body.SliderTitle
	m.SliderCaption = body.SliderCaption
	if imageURL != "" {
		m.SliderImageURL = imageURL
	}
	if videoURL != "" {
		m.SliderVideoURL = videoURL
	}
	if body.SliderIsActive != nil {
		m.SliderIsActive = *body.SliderIsActive
	}

	if err := service.ValidateSlider(&m); err != nil {
		return helper.FromServiceError(c, err)
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update slider")
	}

	if imageURL != "" && oldImage != "" && oldImage != m.SliderImageURL {
		if err := ctrl.Storage.Delete(c.UserContext(), oldImage); err != nil {
			log.Printf("[WARN] failed to delete old slider image %s: %v", oldImage, err)
		}
	}
	if videoURL != "" && oldVideo != "" && oldVideo != m.SliderVideoURL {
		if err := ctrl.Storage.Delete(c.UserContext(), oldVideo); err != nil {
			log.Printf("[WARN] failed to delete old slider video %s: %v", oldVideo, err)
		}
	}

	return helper.Success(c, "Slider updated", m)
}

// 📄 List slides, newest first. ?active=true narrows to active ones.
func (ctrl *SliderController) GetAllSliders(c *fiber.Ctx) error {
	q := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.SliderModel{}).
		Order("slider_created_at DESC")
	if c.Query("active") == "true" {
		q = q.Where("slider_is_active = ?", true)
	}

	var rows []model.SliderModel
	if err := q.Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve sliders")
	}
	return helper.Success(c, "OK", rows)
}

func (ctrl *SliderController) GetSliderByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var m model.SliderModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&m, "slider_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Slider not found")
	}
	return helper.Success(c, "OK", m)
}

// 🗑️ Delete — stored media go first so a storage failure surfaces.
func (ctrl *SliderController) DeleteSlider(c *fiber.Ctx) error {
	id := c.Params("id")

	var m model.SliderModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&m, "slider_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Slider not found")
	}

	for _, url := range []string{m.SliderImageURL, m.SliderVideoURL} {
		if url == "" {
			continue
		}
		if err := ctrl.Storage.Delete(c.UserContext(), url); err != nil {
			return fiber.NewError(fiber.StatusBadGateway, "Failed to delete stored media")
		}
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Delete(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete slider")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
