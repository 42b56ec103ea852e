package route

import (
	newsController "mycollege_backend/internals/features/news/controller"
	oss "mycollege_backend/internals/helpers/oss"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/*
Admin routes: full CRUD over news plus the bulk feature toggles.
Mount: NewsAdminRoutes(app.Group("/api/a"), db, storage)
*/
func NewsAdminRoutes(r fiber.Router, db *gorm.DB, storage oss.Storage) {
	ctl := newsController.NewNewsController(db, storage)
	news := r.Group("/news")
	news.Post("/", ctl.CreateNews)               // POST   /api/a/news
	news.Get("/", ctl.GetAllNews)                // GET    /api/a/news?q=&category=&from=&to=
	news.Post("/feature", ctl.FeatureNews)       // POST   /api/a/news/feature {news_ids}
	news.Post("/unfeature", ctl.UnfeatureNews)   // POST   /api/a/news/unfeature {news_ids}
	news.Get("/:id", ctl.GetNewsByID)            // GET    /api/a/news/:id
	news.Put("/:id", ctl.UpdateNews)             // PUT    /api/a/news/:id
	news.Delete("/:id", ctl.DeleteNews)          // DELETE /api/a/news/:id
}
