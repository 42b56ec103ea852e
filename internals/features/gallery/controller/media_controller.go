package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mycollege_backend/internals/constants"
	"mycollege_backend/internals/features/gallery/dto"
	"mycollege_backend/internals/features/gallery/model"
	helper "mycollege_backend/internals/helpers"
	oss "mycollege_backend/internals/helpers/oss"
)

type GalleryMediaController struct {
	DB      *gorm.DB
	Storage oss.Storage
}

func NewGalleryMediaController(db *gorm.DB, storage oss.Storage) *GalleryMediaController {
	return &GalleryMediaController{DB: db, Storage: storage}
}

// category here means media_type (photo|video); year is lenient.
func applyGalleryFilters(q *gorm.DB, c *fiber.Ctx) *gorm.DB {
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		q = q.Where("media_caption ILIKE ?", "%"+s+"%")
	}
	if t := strings.TrimSpace(c.Query("category")); t != "" {
		q = q.Where("media_type = ?", t)
	}
	if y := helper.ParseIntParam(c.Query("year")); y != nil {
		q = q.Where("media_year = ?", *y)
	}
	return q
}

// ➕ Create a media item. A photo wants an image file, a video a video
// file; whichever is sent is stored.
func (ctrl *GalleryMediaController) CreateMedia(c *fiber.Ctx) error {
	var body dto.SaveGalleryMediaRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateGallery.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	imageURL, err := helper.UploadedImage(c, ctrl.Storage, "media_image", constants.StorageGalleryPhotos)
	if err != nil {
		return helper.UploadError(c, err, "Image upload failed")
	}
	videoURL, err := helper.UploadedFile(c, ctrl.Storage, "media_video", constants.StorageGalleryVideos)
	if err != nil {
		return helper.UploadError(c, err, "Video upload failed")
	}
	if imageURL == "" && videoURL == "" {
		return helper.Error(c, fiber.StatusBadRequest, "An image or video file is required")
	}

	m := model.GalleryMediaModel{
		MediaAlbumID:  body.MediaAlbumID,
		MediaType:     body.MediaType,
		MediaImageURL: imageURL,
		MediaVideoURL: videoURL,
		MediaCaption:  body.MediaCaption,
		MediaYear:     body.MediaYear,
	}
	if m.MediaType == "" {
		if videoURL != "" {
			m.MediaType = constants.MediaVideo
		} else {
			m.MediaType = constants.MediaPhoto
		}
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create gallery media")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Gallery media created", m)
}

// ✏️ Update a media item.
func (ctrl *GalleryMediaController) UpdateMedia(c *fiber.Ctx) error {
	id := c.Params("id")

	var m model.GalleryMediaModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&m, "media_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Gallery media not found")
	}

	var body dto.SaveGalleryMediaRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateGallery.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	oldImage, oldVideo := m.MediaImageURL, m.MediaVideoURL

	imageURL, err := helper.UploadedImage(c, ctrl.Storage, "media_image", constants.StorageGalleryPhotos)
	if err != nil {
		return helper.UploadError(c, err, "Image upload failed")
	}
	videoURL, err := helper.UploadedFile(c, ctrl.Storage, "media_video", constants.StorageGalleryVideos)
	if err != nil {
		return helper.UploadError(c, err, "Video upload failed")
	}

	m.MediaAlbumID = body.MediaAlbumID
	if body.MediaType != "" {
		m.MediaType = body.MediaType
	}
	m.MediaCaption = body.MediaCaption
	m.MediaYear = body.MediaYear
	if imageURL != "" {
		m.MediaImageURL = imageURL
	}
	if videoURL != "" {
		m.MediaVideoURL = videoURL
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update gallery media")
	}

	if imageURL != "" && oldImage != "" && oldImage != m.MediaImageURL {
		if err := ctrl.Storage.Delete(c.UserContext(), oldImage); err != nil {
			log.Printf("[WARN] failed to delete old gallery image %s: %v", oldImage, err)
		}
	}
	if videoURL != "" && oldVideo != "" && oldVideo != m.MediaVideoURL {
		if err := ctrl.Storage.Delete(c.UserContext(), oldVideo); err != nil {
			log.Printf("[WARN] failed to delete old gallery video %s: %v", oldVideo, err)
		}
	}

	return helper.Success(c, "Gallery media updated", m)
}

// 📄 Admin listing with filters and pagination.
func (ctrl *GalleryMediaController) GetAllMedia(c *fiber.Ctx) error {
	page := helper.ParsePage(c, helper.AdminOpts)

	base := applyGalleryFilters(ctrl.DB.WithContext(c.UserContext()).Model(&model.GalleryMediaModel{}), c)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count gallery media")
	}

	var rows []model.GalleryMediaModel
	if err := base.
		Order("media_created_at DESC, media_id DESC").
		Limit(page.Limit()).Offset(page.Offset()).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve gallery media")
	}

	return helper.Success(c, "OK", fiber.Map{
		"media":      rows,
		"pagination": helper.BuildPageMeta(total, page),
	})
}

func (ctrl *GalleryMediaController) GetMediaByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var m model.GalleryMediaModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&m, "media_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Gallery media not found")
	}
	return helper.Success(c, "OK", m)
}

// 🗑️ Delete — stored media go first so a storage failure surfaces.
func (ctrl *GalleryMediaController) DeleteMedia(c *fiber.Ctx) error {
	id := c.Params("id")

	var m model.GalleryMediaModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&m, "media_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Gallery media not found")
	}

	for _, url := range []string{m.MediaImageURL, m.MediaVideoURL} {
		if url == "" {
			continue
		}
		if err := ctrl.Storage.Delete(c.UserContext(), url); err != nil {
			return fiber.NewError(fiber.StatusBadGateway, "Failed to delete stored media")
		}
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Delete(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete gallery media")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// 🌐 Public gallery page: filtered media (18/page), the album shelf,
// and the distinct years for the filter dropdown.
func (ctrl *GalleryMediaController) GetPublicGallery(c *fiber.Ctx) error {
	page := helper.ParsePage(c, helper.GalleryOpts)

	base := applyGalleryFilters(ctrl.DB.WithContext(c.UserContext()).Model(&model.GalleryMediaModel{}), c)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count gallery media")
	}

	var items []model.GalleryMediaModel
	if err := base.
		Order("media_created_at DESC, media_id DESC").
		Limit(page.Limit()).Offset(page.Offset()).
		Find(&items).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve gallery media")
	}

	var years []int
	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.GalleryMediaModel{}).
		Where("media_year IS NOT NULL").
		Distinct("media_year").
		Order("media_year DESC").
		Pluck("media_year", &years).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve gallery years")
	}

	var albums []model.AlbumModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Order("album_created_at DESC").
		Find(&albums).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve albums")
	}

	return helper.Success(c, "OK", fiber.Map{
		"gallery_items": items,
		"pagination":    helper.BuildPageMeta(total, page),
		"categories":    []string{constants.MediaPhoto, constants.MediaVideo},
		"years":         years,
		"albums":        albums,
	})
}
