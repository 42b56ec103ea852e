package route

import (
	eventsController "mycollege_backend/internals/features/events/controller"
	oss "mycollege_backend/internals/helpers/oss"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/*
Public routes: event listing and detail.
Mount: EventsPublicRoutes(app.Group("/api/public"), db, storage)
*/
func EventsPublicRoutes(r fiber.Router, db *gorm.DB, storage oss.Storage) {
	ctl := eventsController.NewEventController(db, storage)
	r.Get("/events", ctl.GetPublicEvents)      // GET /api/public/events?q=&type=&from=&to=
	r.Get("/events/:slug", ctl.GetEventBySlug) // GET /api/public/events/:slug
}
