package route

import (
	newsController "mycollege_backend/internals/features/news/controller"
	oss "mycollege_backend/internals/helpers/oss"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/*
Public routes: news listing and detail.
Mount: NewsPublicRoutes(app.Group("/api/public"), db, storage)
*/
func NewsPublicRoutes(r fiber.Router, db *gorm.DB, storage oss.Storage) {
	ctl := newsController.NewNewsController(db, storage)
	r.Get("/news", ctl.GetPublicNews)       // GET /api/public/news?q=&category=&from=&to=&page=
	r.Get("/news/:slug", ctl.GetNewsBySlug) // GET /api/public/news/:slug
}
