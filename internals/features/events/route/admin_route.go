package route

import (
	eventsController "mycollege_backend/internals/features/events/controller"
	oss "mycollege_backend/internals/helpers/oss"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/*
Admin routes: full CRUD over events.
Mount: EventsAdminRoutes(app.Group("/api/a"), db, storage)
*/
func EventsAdminRoutes(r fiber.Router, db *gorm.DB, storage oss.Storage) {
	ctl := eventsController.NewEventController(db, storage)
	events := r.Group("/events")
	events.Post("/", ctl.CreateEvent)      // POST   /api/a/events
	events.Get("/", ctl.GetAllEvents)      // GET    /api/a/events?q=&type=&from=&to=
	events.Get("/:id", ctl.GetEventByID)   // GET    /api/a/events/:id
	events.Put("/:id", ctl.UpdateEvent)    // PUT    /api/a/events/:id
	events.Delete("/:id", ctl.DeleteEvent) // DELETE /api/a/events/:id
}
