package route

import (
	contactController "mycollege_backend/internals/features/contact/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/*
Admin routes: contact inbox management.
Mount: ContactAdminRoutes(app.Group("/api/a"), db)
*/
func ContactAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := contactController.NewContactController(db)
	contact := r.Group("/contact-messages")
	contact.Get("/", ctl.GetAllMessages)            // GET    /api/a/contact-messages?q=&handled=
	contact.Post("/handled", ctl.MarkHandled)       // POST   /api/a/contact-messages/handled {contact_ids}
	contact.Post("/unhandled", ctl.MarkUnhandled)   // POST   /api/a/contact-messages/unhandled {contact_ids}
	contact.Get("/:id", ctl.GetMessageByID)         // GET    /api/a/contact-messages/:id
	contact.Patch("/:id/toggle", ctl.ToggleHandled) // PATCH  /api/a/contact-messages/:id/toggle
	contact.Delete("/:id", ctl.DeleteMessage)       // DELETE /api/a/contact-messages/:id
}
