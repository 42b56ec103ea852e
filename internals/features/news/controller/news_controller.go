package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mycollege_backend/internals/constants"
	"mycollege_backend/internals/features/news/dto"
	"mycollege_backend/internals/features/news/model"
	"mycollege_backend/internals/features/news/service"
	helper "mycollege_backend/internals/helpers"
	oss "mycollege_backend/internals/helpers/oss"
)

var validateNews = validator.New()

type NewsController struct {
	DB      *gorm.DB
	Storage oss.Storage
}

func NewNewsController(db *gorm.DB, storage oss.Storage) *NewsController {
	return &NewsController{DB: db, Storage: storage}
}

// Date bounds are inclusive on the publish date; malformed values drop
// the filter.
func applyNewsFilters(q *gorm.DB, c *fiber.Ctx) *gorm.DB {
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		like := "%" + s + "%"
		q = q.Where("news_title ILIKE ? OR news_summary ILIKE ? OR news_body ILIKE ?", like, like, like)
	}
	if cat := strings.TrimSpace(c.Query("category")); cat != "" {
		q = q.Where("news_category = ?", cat)
	}
	if d := helper.ParseDateParam(c.Query("from")); d != nil {
		q = q.Where("news_published_at >= ?", *d)
	}
	if d := helper.ParseDateParam(c.Query("to")); d != nil {
		q = q.Where("news_published_at <= ?", helper.EndOfDay(*d))
	}
	return q
}

const newsOrder = "news_published_at DESC, news_id DESC"

// ➕ Create a news item. The slug is derived from the title when absent.
func (ctrl *NewsController) CreateNews(c *fiber.Ctx) error {
	var body dto.SaveNewsRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateNews.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	imageURL, err := helper.UploadedImage(c, ctrl.Storage, "news_image", constants.StorageNews)
	if err != nil {
		return helper.UploadError(c, err, "Image upload failed")
	}

	m := model.NewsModel{
		NewsTitle:    body.NewsTitle,
		NewsSlug:     body.NewsSlug,
		NewsCategory: body.NewsCategory,
		NewsSummary:  body.NewsSummary,
		NewsBody:     body.NewsBody,
		NewsImageURL: imageURL,
	}
	if m.NewsCategory == "" {
		m.NewsCategory = constants.NewsGeneral
	}
	if body.NewsIsFeatured != nil {
		m.NewsIsFeatured = *body.NewsIsFeatured
	}

	if err := service.AssignNewsSlug(c.UserContext(), ctrl.DB, &m); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to assign slug")
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create news item")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "News item created", m)
}

// ✏️ Update a news item.
func (ctrl *NewsController) UpdateNews(c *fiber.Ctx) error {
	id := c.Params("id")

	var m model.NewsModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&m, "news_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "News item not found")
	}

	var body dto.SaveNewsRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateNews.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	oldImage := m.NewsImageURL
	imageURL, err := helper.UploadedImage(c, ctrl.Storage, "news_image", constants.StorageNews)
	if err != nil {
		return helper.UploadError(c, err, "Image upload failed")
	}

	m.NewsTitle = body.NewsTitle
	if body.NewsSlug != "" {
		m.NewsSlug = body.NewsSlug
	}
	if body.NewsCategory != "" {
		m.NewsCategory = body.NewsCategory
	}
	m.NewsSummary = body.NewsSummary
	m.NewsBody = body.NewsBody
	if imageURL != "" {
		m.NewsImageURL = imageURL
	}
	if body.NewsIsFeatured != nil {
		m.NewsIsFeatured = *body.NewsIsFeatured
	}

	if err := service.AssignNewsSlug(c.UserContext(), ctrl.DB, &m); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to assign slug")
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update news item")
	}

	if imageURL != "" && oldImage != "" && oldImage != m.NewsImageURL {
		if err := ctrl.Storage.Delete(c.UserContext(), oldImage); err != nil {
			log.Printf("[WARN] failed to delete old news image %s: %v", oldImage, err)
		}
	}

	return helper.Success(c, "News item updated", m)
}

// 📄 Admin listing with filters and pagination.
func (ctrl *NewsController) GetAllNews(c *fiber.Ctx) error {
	page := helper.ParsePage(c, helper.AdminOpts)

	base := applyNewsFilters(ctrl.DB.WithContext(c.UserContext()).Model(&model.NewsModel{}), c)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count news items")
	}

	var rows []model.NewsModel
	if err := base.
		Order(newsOrder).
		Limit(page.Limit()).Offset(page.Offset()).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve news items")
	}

	return helper.Success(c, "OK", fiber.Map{
		"news":       rows,
		"pagination": helper.BuildPageMeta(total, page),
	})
}

// 🔎 Get one news item by id.
func (ctrl *NewsController) GetNewsByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var m model.NewsModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&m, "news_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "News item not found")
	}
	return helper.Success(c, "OK", m)
}

// 🗑️ Delete — the image goes first so a storage failure surfaces.
func (ctrl *NewsController) DeleteNews(c *fiber.Ctx) error {
	id := c.Params("id")

	var m model.NewsModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&m, "news_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "News item not found")
	}

	if m.NewsImageURL != "" {
		if err := ctrl.Storage.Delete(c.UserContext(), m.NewsImageURL); err != nil {
			return fiber.NewError(fiber.StatusBadGateway, "Failed to delete stored image")
		}
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Delete(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete news item")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// 📌 Bulk feature / unfeature.
func (ctrl *NewsController) setFeatured(c *fiber.Ctx, featured bool) error {
	var body dto.NewsBulkRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateNews.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.NewsModel{}).
		Where("news_id IN ?", body.NewsIDs).
		Update("news_is_featured", featured)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update news items")
	}

	return helper.Success(c, "News items updated", fiber.Map{"updated": res.RowsAffected})
}

func (ctrl *NewsController) FeatureNews(c *fiber.Ctx) error   { return ctrl.setFeatured(c, true) }
func (ctrl *NewsController) UnfeatureNews(c *fiber.Ctx) error { return ctrl.setFeatured(c, false) }

// 🌐 Public news page: featured pick, paginated list (8/page), recent
// notices and the distinct categories in use.
func (ctrl *NewsController) GetPublicNews(c *fiber.Ctx) error {
	page := helper.ParsePage(c, helper.NewsOpts)

	base := applyNewsFilters(ctrl.DB.WithContext(c.UserContext()).Model(&model.NewsModel{}), c)

	var featured *model.NewsModel
	var pick model.NewsModel
	err := applyNewsFilters(ctrl.DB.WithContext(c.UserContext()).Model(&model.NewsModel{}), c).
		Where("news_is_featured = ?", true).
		Order(newsOrder).
		First(&pick).Error
	if err == nil {
		featured = &pick
	} else if errors.Is(err, gorm.ErrRecordNotFound) {
		err = applyNewsFilters(ctrl.DB.WithContext(c.UserContext()).Model(&model.NewsModel{}), c).
			Order(newsOrder).
			First(&pick).Error
		if err == nil {
			featured = &pick
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve news")
		}
	} else {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve news")
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count news")
	}

	var rows []model.NewsModel
	if err := base.
		Order(newsOrder).
		Limit(page.Limit()).Offset(page.Offset()).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve news")
	}

	var notices []model.NewsModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("news_category = ?", constants.NewsNotice).
		Order("news_published_at DESC").
		Limit(6).
		Find(&notices).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve notices")
	}

	var categories []string
	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.NewsModel{}).
		Distinct("news_category").
		Pluck("news_category", &categories).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve categories")
	}

	return helper.Success(c, "OK", fiber.Map{
		"featured_news": featured,
		"news_list":     rows,
		"pagination":    helper.BuildPageMeta(total, page),
		"notices":       notices,
		"categories":    categories,
	})
}

// 🌐 Public news detail by slug, with 6 other recent items.
func (ctrl *NewsController) GetNewsBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var m model.NewsModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&m, "news_slug = ?", slug).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "News item not found")
	}

	var recent []model.NewsModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("news_id <> ?", m.NewsID).
		Order("news_published_at DESC").
		Limit(6).
		Find(&recent).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve recent news")
	}

	return helper.Success(c, "OK", fiber.Map{
		"item":   m,
		"recent": recent,
	})
}
