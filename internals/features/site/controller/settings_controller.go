package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mycollege_backend/internals/constants"
	"mycollege_backend/internals/features/site/dto"
	"mycollege_backend/internals/features/site/model"
	"mycollege_backend/internals/features/site/service"
	helper "mycollege_backend/internals/helpers"
	oss "mycollege_backend/internals/helpers/oss"
)

var validateSite = validator.New()

type SettingsController struct {
	DB      *gorm.DB
	Storage oss.Storage
	Service *service.SettingsService
}

func NewSettingsController(db *gorm.DB, storage oss.Storage) *SettingsController {
	return &SettingsController{
		DB:      db,
		Storage: storage,
		Service: service.NewSettingsService(service.NewGormSettingsStore(db)),
	}
}

// ➕ Create — rejected with 409 when a row already exists.
func (ctrl *SettingsController) CreateSettings(c *fiber.Ctx) error {
	var body dto.SaveSettingsRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSite.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	logoURL, err := helper.UploadedImage(c, ctrl.Storage, "settings_logo", constants.StorageSettings)
	if err != nil {
		return helper.UploadError(c, err, "Logo upload failed")
	}

	m := model.DepartmentSettingsModel{
		SettingsSiteName:   body.SettingsSiteName,
		SettingsLogoURL:    logoURL,
		SettingsAboutShort: body.SettingsAboutShort,
		SettingsAddress:    body.SettingsAddress,
		SettingsEmail:      body.SettingsEmail,
		SettingsPhone:      body.SettingsPhone,
		SettingsInstagram:  body.SettingsInstagram,
		SettingsFacebook:   body.SettingsFacebook,
		SettingsLinkedin:   body.SettingsLinkedin,
		SettingsXTwitter:   body.SettingsXTwitter,
	}

	if err := ctrl.Service.Create(c.UserContext(), &m); err != nil {
		if errors.Is(err, service.ErrSettingsExists) {
			return helper.Error(c, fiber.StatusConflict, "Department settings already exist — edit the existing entry instead.")
		}
		return helper.FromServiceError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Settings created", m)
}

// 🔄 Update the singleton row. No :id; there is only ever one.
func (ctrl *SettingsController) UpdateSettings(c *fiber.Ctx) error {
	var body dto.SaveSettingsRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSite.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := ctrl.Service.Current(c.UserContext())
	if err != nil {
		if errors.Is(err, helper.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Settings not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load settings")
	}

	logoURL, err := helper.UploadedImage(c, ctrl.Storage, "settings_logo", constants.StorageSettings)
	if err != nil {
		return helper.UploadError(c, err, "Logo upload failed")
	}
	if logoURL != "" {
		if m.SettingsLogoURL != "" {
			if err := ctrl.Storage.Delete(c.UserContext(), m.SettingsLogoURL); err != nil {
				log.Printf("[SETTINGS] stale logo not deleted: %v", err)
			}
		}
		m.SettingsLogoURL = logoURL
	}

	m.SettingsSiteName = body.SettingsSiteName
	m.SettingsAboutShort = body.SettingsAboutShort
	m.SettingsAddress = body.SettingsAddress
	m.SettingsEmail = body.SettingsEmail
	m.SettingsPhone = body.SettingsPhone
	m.SettingsInstagram = body.SettingsInstagram
	m.SettingsFacebook = body.SettingsFacebook
	m.SettingsLinkedin = body.SettingsLinkedin
	m.SettingsXTwitter = body.SettingsXTwitter

	if err := ctrl.Service.Update(c.UserContext(), m); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update settings")
	}

	return helper.Success(c, "Settings updated", m)
}

// 📄 Current settings (first row or null).
func (ctrl *SettingsController) GetSettings(c *fiber.Ctx) error {
	m, err := ctrl.Service.Current(c.UserContext())
	if err != nil {
		if errors.Is(err, helper.ErrNotFound) {
			return helper.Success(c, "No settings yet", nil)
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load settings")
	}
	return helper.Success(c, "OK", m)
}

// 🗑️ Delete the singleton row — also removes the stored logo.
func (ctrl *SettingsController) DeleteSettings(c *fiber.Ctx) error {
	m, err := ctrl.Service.Current(c.UserContext())
	if err != nil {
		if errors.Is(err, helper.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Settings not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load settings")
	}

	// Owned files go first; a storage failure aborts the delete.
	if m.SettingsLogoURL != "" {
		if err := ctrl.Storage.Delete(c.UserContext(), m.SettingsLogoURL); err != nil {
			return fiber.NewError(fiber.StatusBadGateway, "Failed to delete stored logo")
		}
	}
	if err := ctrl.Service.Delete(c.UserContext(), m); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete settings")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
