package controller

import (
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mycollege_backend/internals/constants"
	"mycollege_backend/internals/features/events/dto"
	"mycollege_backend/internals/features/events/model"
	"mycollege_backend/internals/features/events/service"
	helper "mycollege_backend/internals/helpers"
	oss "mycollege_backend/internals/helpers/oss"
)

var validateEvents = validator.New()

type EventController struct {
	DB      *gorm.DB
	Storage oss.Storage
}

func NewEventController(db *gorm.DB, storage oss.Storage) *EventController {
	return &EventController{DB: db, Storage: storage}
}

// Filters shared by public and admin listings. Date bounds are
// inclusive on the start date; malformed values drop the filter.
func applyEventFilters(q *gorm.DB, c *fiber.Ctx) *gorm.DB {
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		like := "%" + s + "%"
		q = q.Where(
			"event_title ILIKE ? OR event_short_description ILIKE ? OR event_description ILIKE ? OR event_venue ILIKE ?",
			like, like, like, like,
		)
	}
	if t := strings.TrimSpace(c.Query("type")); t != "" {
		q = q.Where("event_category = ?", t)
	}
	if d := helper.ParseDateParam(c.Query("from")); d != nil {
		q = q.Where("event_start_at >= ?", *d)
	}
	if d := helper.ParseDateParam(c.Query("to")); d != nil {
		q = q.Where("event_start_at <= ?", helper.EndOfDay(*d))
	}
	return q
}

func (ctrl *EventController) applyBody(c *fiber.Ctx, m *model.EventModel, body *dto.SaveEventRequest) error {
	start, err := service.ParseEventTime("event_start_at", body.EventStartAt)
	if err != nil {
		return err
	}
	var end *time.Time
	if strings.TrimSpace(body.EventEndAt) != "" {
		t, err := service.ParseEventTime("event_end_at", body.EventEndAt)
		if err != nil {
			return err
		}
		end = &t
	}
	if err := service.ValidateEventTimes(start, end); err != nil {
		return err
	}

	m.EventTitle = body.EventTitle
	if body.EventSlug != "" {
		m.EventSlug = body.EventSlug
	}
	m.EventCategory = body.EventCategory
	if m.EventCategory == "" {
		m.EventCategory = constants.EventOther
	}
	m.EventShortDescription = body.EventShortDescription
	m.EventDescription = body.EventDescription
	m.EventStartAt = start
	m.EventEndAt = end
	m.EventVenue = body.EventVenue
	m.EventExternalVideoURL = body.EventExternalVideoURL
	if body.EventRegistrationOpen != nil {
		m.EventRegistrationOpen = *body.EventRegistrationOpen
	}
	return nil
}

// Upload whichever of the three media fields were sent, replacing the
// stored URLs. Returns the replaced URLs for best-effort cleanup.
func (ctrl *EventController) uploadMedia(c *fiber.Ctx, m *model.EventModel) ([]string, error) {
	var stale []string

	imageURL, err := helper.UploadedImage(c, ctrl.Storage, "event_image", constants.StorageEvents)
	if err != nil {
		return nil, err
	}
	if imageURL != "" {
		if m.EventImageURL != "" {
			stale = append(stale, m.EventImageURL)
		}
		m.EventImageURL = imageURL
	}

	videoURL, err := helper.UploadedFile(c, ctrl.Storage, "event_video", constants.StorageEvents)
	if err != nil {
		return nil, err
	}
	if videoURL != "" {
		if m.EventVideoURL != "" {
			stale = append(stale, m.EventVideoURL)
		}
		m.EventVideoURL = videoURL
	}

	captionsURL, err := helper.UploadedFile(c, ctrl.Storage, "event_captions", constants.StorageEvents)
	if err != nil {
		return nil, err
	}
	if captionsURL != "" {
		if m.EventCaptionsURL != "" {
			stale = append(stale, m.EventCaptionsURL)
		}
		m.EventCaptionsURL = captionsURL
	}

	return stale, nil
}

// ➕ Create an event. The slug is derived from the title when absent.
func (ctrl *EventController) CreateEvent(c *fiber.Ctx) error {
	var body dto.SaveEventRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateEvents.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.EventModel
	if err := ctrl.applyBody(c, &m, &body); err != nil {
		return helper.FromServiceError(c, err)
	}
	if err := service.AssignEventSlug(c.UserContext(), ctrl.DB, &m); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to assign slug")
	}

	if _, err := ctrl.uploadMedia(c, &m); err != nil {
		return helper.UploadError(c, err, "Media upload failed")
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create event")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Event created", m)
}

// ✏️ Update an event. The slug sticks unless explicitly cleared.
func (ctrl *EventController) UpdateEvent(c *fiber.Ctx) error {
	id := c.Params("id")

	var m model.EventModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&m, "event_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Event not found")
	}

	var body dto.SaveEventRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateEvents.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := ctrl.applyBody(c, &m, &body); err != nil {
		return helper.FromServiceError(c, err)
	}
	if err := service.AssignEventSlug(c.UserContext(), ctrl.DB, &m); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to assign slug")
	}

	stale, err := ctrl.uploadMedia(c, &m)
	if err != nil {
		return helper.UploadError(c, err, "Media upload failed")
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update event")
	}

	for _, url := range stale {
		if err := ctrl.Storage.Delete(c.UserContext(), url); err != nil {
			log.Printf("[WARN] failed to delete old event media %s: %v", url, err)
		}
	}

	return helper.Success(c, "Event updated", m)
}

// 📄 Admin listing with filters and pagination, newest start first.
func (ctrl *EventController) GetAllEvents(c *fiber.Ctx) error {
	page := helper.ParsePage(c, helper.AdminOpts)

	base := applyEventFilters(ctrl.DB.WithContext(c.UserContext()).Model(&model.EventModel{}), c)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count events")
	}

	var rows []model.EventModel
	if err := base.
		Order("event_start_at DESC").
		Limit(page.Limit()).Offset(page.Offset()).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve events")
	}

	return helper.Success(c, "OK", fiber.Map{
		"events":     rows,
		"pagination": helper.BuildPageMeta(total, page),
	})
}

// 🔎 Get one event by id.
func (ctrl *EventController) GetEventByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var m model.EventModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&m, "event_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Event not found")
	}
	return helper.Success(c, "OK", m)
}

// 🗑️ Delete — all owned media first, then the row.
func (ctrl *EventController) DeleteEvent(c *fiber.Ctx) error {
	id := c.Params("id")

	var m model.EventModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&m, "event_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Event not found")
	}

	for _, url := range service.OwnedFileURLs(&m) {
		if err := ctrl.Storage.Delete(c.UserContext(), url); err != nil {
			return fiber.NewError(fiber.StatusBadGateway, "Failed to delete stored media")
		}
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Delete(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete event")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// 🌐 Public events page: filtered, split at now into upcoming (soonest
// first) and past (latest first), 18 each.
func (ctrl *EventController) GetPublicEvents(c *fiber.Ctx) error {
	now := time.Now()

	var upcoming []model.EventModel
	if err := applyEventFilters(ctrl.DB.WithContext(c.UserContext()).Model(&model.EventModel{}), c).
		Where("event_start_at >= ?", now).
		Order("event_start_at ASC").
		Limit(18).
		Find(&upcoming).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve events")
	}

	var past []model.EventModel
	if err := applyEventFilters(ctrl.DB.WithContext(c.UserContext()).Model(&model.EventModel{}), c).
		Where("event_start_at < ?", now).
		Order("event_start_at DESC").
		Limit(18).
		Find(&past).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve events")
	}

	return helper.Success(c, "OK", fiber.Map{
		"events_upcoming": upcoming,
		"events_past":     past,
		"categories":      constants.EventCategories,
	})
}

// 🌐 Public event detail by slug, with up to 4 related events from the
// same category.
func (ctrl *EventController) GetEventBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var m model.EventModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&m, "event_slug = ?", slug).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Event not found")
	}

	var related []model.EventModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("event_category = ? AND event_id <> ?", m.EventCategory, m.EventID).
		Order("event_start_at DESC").
		Limit(4).
		Find(&related).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve related events")
	}

	return helper.Success(c, "OK", fiber.Map{
		"event":     m,
		"embed_url": service.EmbedURL(m.EventExternalVideoURL),
		"related":   related,
	})
}
