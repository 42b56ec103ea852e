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

type HighlightController struct {
	DB      *gorm.DB
	Storage oss.Storage
	Service *service.HighlightService
}

func NewHighlightController(db *gorm.DB, storage oss.Storage) *HighlightController {
	return &HighlightController{
		DB:      db,
		Storage: storage,
		Service: service.NewHighlightService(service.NewGormHighlightStore(db)),
	}
}

// ➕ Create a highlight card. The image is mandatory and the active cap
// is enforced by the service.
func (ctrl *HighlightController) CreateHighlight(c *fiber.Ctx) error {
	var body dto.SaveHighlightRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSite.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	imageURL, err := helper.UploadedImage(c, ctrl.Storage, "highlight_image", constants.StorageHighlights)
	if err != nil {
		return helper.UploadError(c, err, "Image upload failed")
	}

	m := model.HighlightCardModel{
		HighlightTitle:    body.HighlightTitle,
		HighlightSubtitle: body.HighlightSubtitle,
		HighlightImageURL: imageURL,
		HighlightLink:     body.HighlightLink,
		HighlightIsActive: true,
	}
	if body.HighlightOrder != nil {
		m.HighlightOrder = *body.HighlightOrder
	}
	if body.HighlightIsActive != nil {
		m.HighlightIsActive = *body.HighlightIsActive
	}

	if err := ctrl.Service.Create(c.UserContext(), &m); err != nil {
		return helper.FromServiceError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Highlight card created", m)
}

// ✏️ Update a card. The active cap excludes the card being edited.
func (ctrl *HighlightController) UpdateHighlight(c *fiber.Ctx) error {
	id := c.Params("id")

	var m model.HighlightCardModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&m, "highlight_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Highlight card not found")
	}

	var body dto.SaveHighlightRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSite.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	oldImage := m.HighlightImageURL

	imageURL, err := helper.UploadedImage(c, ctrl.Storage, "highlight_image", constants.StorageHighlights)
	if err != nil {
		return helper.UploadError(c, err, "Image upload failed")
	}

	m.HighlightTitle = body.HighlightTitle
	m.HighlightSubtitle = body.HighlightSubtitle
	m.HighlightLink = body.HighlightLink
	if imageURL != "" {
		m.HighlightImageURL = imageURL
	}
	if body.HighlightOrder != nil {
		m.HighlightOrder = *body.HighlightOrder
	}
	if body.HighlightIsActive != nil {
		m.HighlightIsActive = *body.HighlightIsActive
	}

	if err := ctrl.Service.Update(c.UserContext(), &m); err != nil {
		return helper.FromServiceError(c, err)
	}

	if imageURL != "" && oldImage != "" && oldImage != m.HighlightImageURL {
		if err := ctrl.Storage.Delete(c.UserContext(), oldImage); err != nil {
			log.Printf("[WARN] failed to delete old highlight image %s: %v", oldImage, err)
		}
	}

	return helper.Success(c, "Highlight card updated", m)
}

// 📄 List cards in marquee order.
func (ctrl *HighlightController) GetAllHighlights(c *fiber.Ctx) error {
	var rows []model.HighlightCardModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Order("highlight_order ASC, highlight_created_at DESC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve highlight cards")
	}
	return helper.Success(c, "OK", rows)
}

func (ctrl *HighlightController) GetHighlightByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var m model.HighlightCardModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&m, "highlight_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Highlight card not found")
	}
	return helper.Success(c, "OK", m)
}

// 🗑️ Delete — storage first, then the row.
func (ctrl *HighlightController) DeleteHighlight(c *fiber.Ctx) error {
	id := c.Params("id")

	var m model.HighlightCardModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&m, "highlight_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Highlight card not found")
	}

	if m.HighlightImageURL != "" {
		if err := ctrl.Storage.Delete(c.UserContext(), m.HighlightImageURL); err != nil {
			return fiber.NewError(fiber.StatusBadGateway, "Failed to delete stored image")
		}
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Delete(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete highlight card")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
