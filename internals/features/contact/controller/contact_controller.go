package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mycollege_backend/internals/features/contact/dto"
	"mycollege_backend/internals/features/contact/model"
	helper "mycollege_backend/internals/helpers"
)

var validateContact = validator.New()

type ContactController struct {
	DB *gorm.DB
}

func NewContactController(db *gorm.DB) *ContactController {
	return &ContactController{DB: db}
}

// 📨 Public submission. Rate limited at the route.
func (ctrl *ContactController) CreateMessage(c *fiber.Ctx) error {
	var body dto.CreateContactRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateContact.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	m := model.ContactMessageModel{
		ContactName:    body.ContactName,
		ContactEmail:   body.ContactEmail,
		ContactPhone:   body.ContactPhone,
		ContactSubject: body.ContactSubject,
		ContactMessage: body.ContactMessage,
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to submit message")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Message received. We will get back to you soon.", m)
}

// 📄 Admin listing, unhandled first option via ?handled=.
func (ctrl *ContactController) GetAllMessages(c *fiber.Ctx) error {
	page := helper.ParsePage(c, helper.AdminOpts)

	base := ctrl.DB.WithContext(c.UserContext()).Model(&model.ContactMessageModel{})
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		like := "%" + s + "%"
		base = base.Where(
			"contact_name ILIKE ? OR contact_email ILIKE ? OR contact_subject ILIKE ?",
			like, like, like,
		)
	}
	switch c.Query("handled") {
	case "true":
		base = base.Where("contact_is_handled = ?", true)
	case "false":
		base = base.Where("contact_is_handled = ?", false)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count messages")
	}

	var rows []model.ContactMessageModel
	if err := base.
		Order("contact_created_at DESC").
		Limit(page.Limit()).Offset(page.Offset()).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve messages")
	}

	return helper.Success(c, "OK", fiber.Map{
		"messages":   rows,
		"pagination": helper.BuildPageMeta(total, page),
	})
}

func (ctrl *ContactController) GetMessageByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var m model.ContactMessageModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&m, "contact_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Message not found")
	}
	return helper.Success(c, "OK", m)
}

// ✅ Toggle one message's handled flag.
func (ctrl *ContactController) ToggleHandled(c *fiber.Ctx) error {
	id := c.Params("id")

	var m model.ContactMessageModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&m, "contact_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Message not found")
	}

	m.ContactIsHandled = !m.ContactIsHandled
	if err := ctrl.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update message")
	}

	return helper.Success(c, "Message updated", m)
}

func (ctrl *ContactController) setHandled(c *fiber.Ctx, handled bool) error {
	var body dto.ContactBulkRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateContact.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.ContactMessageModel{}).
		Where("contact_id IN ?", body.ContactIDs).
		Update("contact_is_handled", handled)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update messages")
	}

	return helper.Success(c, "Messages updated", fiber.Map{"updated": res.RowsAffected})
}

// ✅ Bulk mark handled / unhandled.
func (ctrl *ContactController) MarkHandled(c *fiber.Ctx) error   { return ctrl.setHandled(c, true) }
func (ctrl *ContactController) MarkUnhandled(c *fiber.Ctx) error { return ctrl.setHandled(c, false) }

// 🗑️ Delete a message.
func (ctrl *ContactController) DeleteMessage(c *fiber.Ctx) error {
	id := c.Params("id")

	var m model.ContactMessageModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&m, "contact_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Message not found")
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Delete(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete message")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
