package controller

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mycollege_backend/internals/constants"
	"mycollege_backend/internals/features/gallery/dto"
	"mycollege_backend/internals/features/gallery/model"
	"mycollege_backend/internals/features/gallery/service"
	helper "mycollege_backend/internals/helpers"
	oss "mycollege_backend/internals/helpers/oss"
)

var validateGallery = validator.New()

type AlbumController struct {
	DB      *gorm.DB
	Storage oss.Storage
	Service *service.AlbumService
}

func NewAlbumController(db *gorm.DB, storage oss.Storage) *AlbumController {
	return &AlbumController{
		DB:      db,
		Storage: storage,
		Service: service.NewAlbumService(service.NewGormAlbumStore(db)),
	}
}

// ➕ Create an album. The slug is derived from the title when absent.
func (ctrl *AlbumController) CreateAlbum(c *fiber.Ctx) error {
	var body dto.SaveAlbumRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateGallery.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	coverURL, err := helper.UploadedImage(c, ctrl.Storage, "album_cover", constants.StorageGalleryPhotos)
	if err != nil {
		return helper.UploadError(c, err, "Cover upload failed")
	}

	m := model.AlbumModel{
		AlbumTitle:         body.AlbumTitle,
		AlbumSlug:          body.AlbumSlug,
		AlbumCoverImageURL: coverURL,
		AlbumYear:          body.AlbumYear,
		AlbumCategory:      body.AlbumCategory,
		AlbumDescription:   body.AlbumDescription,
	}

	if err := service.AssignAlbumSlug(c.UserContext(), ctrl.DB, &m); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to assign slug")
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create album")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Album created", m)
}

// ✏️ Update an album.
func (ctrl *AlbumController) UpdateAlbum(c *fiber.Ctx) error {
	id := c.Params("id")

	var m model.AlbumModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&m, "album_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Album not found")
	}

	var body dto.SaveAlbumRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateGallery.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	oldCover := m.AlbumCoverImageURL
	coverURL, err := helper.UploadedImage(c, ctrl.Storage, "album_cover", constants.StorageGalleryPhotos)
	if err != nil {
		return helper.UploadError(c, err, "Cover upload failed")
	}

	m.AlbumTitle = body.AlbumTitle
	if body.AlbumSlug != "" {
		m.AlbumSlug = body.AlbumSlug
	}
	m.AlbumYear = body.AlbumYear
	m.AlbumCategory = body.AlbumCategory
	m.AlbumDescription = body.AlbumDescription
	if coverURL != "" {
		m.AlbumCoverImageURL = coverURL
	}

	if err := service.AssignAlbumSlug(c.UserContext(), ctrl.DB, &m); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to assign slug")
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update album")
	}

	if coverURL != "" && oldCover != "" && oldCover != m.AlbumCoverImageURL {
		if err := ctrl.Storage.Delete(c.UserContext(), oldCover); err != nil {
			log.Printf("[WARN] failed to delete old album cover %s: %v", oldCover, err)
		}
	}

	return helper.Success(c, "Album updated", m)
}

// 📄 Admin album listing, newest first.
func (ctrl *AlbumController) GetAllAlbums(c *fiber.Ctx) error {
	page := helper.ParsePage(c, helper.AdminOpts)

	base := ctrl.DB.WithContext(c.UserContext()).Model(&model.AlbumModel{})
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		base = base.Where("album_title ILIKE ?", "%"+s+"%")
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count albums")
	}

	var rows []model.AlbumModel
	if err := base.
		Order("album_created_at DESC").
		Limit(page.Limit()).Offset(page.Offset()).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve albums")
	}

	return helper.Success(c, "OK", fiber.Map{
		"albums":     rows,
		"pagination": helper.BuildPageMeta(total, page),
	})
}

func (ctrl *AlbumController) GetAlbumByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var m model.AlbumModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&m, "album_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Album not found")
	}
	return helper.Success(c, "OK", m)
}

// 🗑️ Delete — cover first, then detach the album's media and drop the
// row in one transaction.
func (ctrl *AlbumController) DeleteAlbum(c *fiber.Ctx) error {
	id := c.Params("id")

	var m model.AlbumModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&m, "album_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Album not found")
	}

	if m.AlbumCoverImageURL != "" {
		if err := ctrl.Storage.Delete(c.UserContext(), m.AlbumCoverImageURL); err != nil {
			return fiber.NewError(fiber.StatusBadGateway, "Failed to delete stored cover")
		}
	}
	if err := ctrl.Service.Delete(c.UserContext(), m.AlbumID); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete album")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// 🌐 Public album detail by slug with its media, paginated.
func (ctrl *AlbumController) GetAlbumBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var m model.AlbumModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&m, "album_slug = ?", slug).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Album not found")
	}

	page := helper.ParsePage(c, helper.GalleryOpts)

	base := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.GalleryMediaModel{}).
		Where("media_album_id = ?", m.AlbumID)
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		base = base.Where("media_caption ILIKE ?", "%"+s+"%")
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count album media")
	}

	var items []model.GalleryMediaModel
	if err := base.
		Order("media_created_at DESC, media_id DESC").
		Limit(page.Limit()).Offset(page.Offset()).
		Find(&items).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve album media")
	}

	return helper.Success(c, "OK", fiber.Map{
		"album":         m,
		"gallery_items": items,
		"pagination":    helper.BuildPageMeta(total, page),
	})
}
