package route

import (
	homeController "mycollege_backend/internals/features/home/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/*
Public routes: the home aggregate and the about page payload.
Mount: HomePublicRoutes(app.Group("/api/public"), db)
*/
func HomePublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := homeController.NewHomeController(db)
	r.Get("/home", ctl.GetHome)   // GET /api/public/home
	r.Get("/about", ctl.GetAbout) // GET /api/public/about
}
