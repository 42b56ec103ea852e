package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mycollege_backend/internals/constants"
	academicsModel "mycollege_backend/internals/features/academics/model"
	eventsModel "mycollege_backend/internals/features/events/model"
	galleryModel "mycollege_backend/internals/features/gallery/model"
	"mycollege_backend/internals/features/home/service"
	newsModel "mycollege_backend/internals/features/news/model"
	siteModel "mycollege_backend/internals/features/site/model"
	helper "mycollege_backend/internals/helpers"
)

type HomeController struct {
	DB      *gorm.DB
	Context *service.ContextService
}

func NewHomeController(db *gorm.DB) *HomeController {
	return &HomeController{DB: db, Context: service.NewContextService(db)}
}

func firstOrNil[T any](db *gorm.DB, dest *T) (*T, error) {
	err := db.First(dest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return dest, nil
}

// 🏠 Home aggregate: everything the landing page needs in one call.
func (ctrl *HomeController) GetHome(c *fiber.Ctx) error {
	ctx := c.UserContext()
	now := time.Now()
	today := now.Format("2006-01-02")

	var sliders []siteModel.SliderModel
	if err := ctrl.DB.WithContext(ctx).
		Where("slider_is_active = ?", true).
		Order("slider_created_at DESC").
		Limit(8).
		Find(&sliders).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve sliders")
	}

	nextExam, err := firstOrNil(ctrl.DB.WithContext(ctx).
		Where("exam_date >= ?", today).
		Order("exam_date ASC, exam_semester ASC"), &academicsModel.ExamModel{})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve next exam")
	}

	upcomingEvent, err := firstOrNil(ctrl.DB.WithContext(ctx).
		Where("event_start_at >= ?", now).
		Order("event_start_at ASC"), &eventsModel.EventModel{})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve upcoming event")
	}

	latestNews, err := firstOrNil(ctrl.DB.WithContext(ctx).
		Order("news_published_at DESC, news_id DESC"), &newsModel.NewsModel{})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve latest news")
	}

	var newsList []newsModel.NewsModel
	if err := ctrl.DB.WithContext(ctx).
		Order("news_published_at DESC, news_id DESC").
		Limit(6).
		Find(&newsList).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve news")
	}

	var eventsHome []eventsModel.EventModel
	if err := ctrl.DB.WithContext(ctx).
		Where("event_start_at >= ?", now).
		Order("event_start_at ASC").
		Limit(3).
		Find(&eventsHome).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve events")
	}

	var photos []galleryModel.GalleryMediaModel
	if err := ctrl.DB.WithContext(ctx).
		Where("media_type = ?", constants.MediaPhoto).
		Order("media_created_at DESC, media_id DESC").
		Limit(8).
		Find(&photos).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve gallery photos")
	}

	common, err := ctrl.Context.Load(ctx)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load page context")
	}

	return helper.Success(c, "OK", fiber.Map{
		"sliders":        sliders,
		"next_exam":      nextExam,
		"upcoming_event": upcomingEvent,
		"latest_news":    latestNews,
		"news_list":      newsList,
		"events_home":    eventsHome,
		"gallery_photos": photos,
		"common":         common,
	})
}

// ℹ️ About page payload is just the common context.
func (ctrl *HomeController) GetAbout(c *fiber.Ctx) error {
	common, err := ctrl.Context.Load(c.UserContext())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load page context")
	}
	return helper.Success(c, "OK", fiber.Map{"common": common})
}
