package route

import (
	contactController "mycollege_backend/internals/features/contact/controller"
	"mycollege_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/*
Public route: contact form submission, rate limited harder than the
rest of the API.
Mount: ContactPublicRoutes(app.Group("/api/public"), db)
*/
func ContactPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := contactController.NewContactController(db)
	r.Post("/contact", middlewares.ContactRateLimiter(), ctl.CreateMessage) // POST /api/public/contact
}
