package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	academicsRoute "mycollege_backend/internals/features/academics/route"
	adminRoute "mycollege_backend/internals/features/admin/route"
	contactRoute "mycollege_backend/internals/features/contact/route"
	eventsRoute "mycollege_backend/internals/features/events/route"
	galleryRoute "mycollege_backend/internals/features/gallery/route"
	homeRoute "mycollege_backend/internals/features/home/route"
	newsRoute "mycollege_backend/internals/features/news/route"
	siteRoute "mycollege_backend/internals/features/site/route"
	staffRoute "mycollege_backend/internals/features/staff/route"
	oss "mycollege_backend/internals/helpers/oss"
	"mycollege_backend/internals/middlewares"
)

// SetupRoutes mounts the public surface under /api/public and the
// token-guarded admin surface under /api/a.
func SetupRoutes(app *fiber.App, db *gorm.DB, storage oss.Storage) {
	public := app.Group("/api/public")
	homeRoute.HomePublicRoutes(public, db)
	staffRoute.StaffPublicRoutes(public, db, storage)
	academicsRoute.AcademicsPublicRoutes(public, db, storage)
	eventsRoute.EventsPublicRoutes(public, db, storage)
	newsRoute.NewsPublicRoutes(public, db, storage)
	galleryRoute.GalleryPublicRoutes(public, db, storage)
	contactRoute.ContactPublicRoutes(public, db)

	admin := app.Group("/api/a", middlewares.AdminGuard())
	adminRoute.AdminMetaRoutes(admin)
	siteRoute.SiteAdminRoutes(admin, db, storage)
	staffRoute.StaffAdminRoutes(admin, db, storage)
	academicsRoute.AcademicsAdminRoutes(admin, db, storage)
	eventsRoute.EventsAdminRoutes(admin, db, storage)
	newsRoute.NewsAdminRoutes(admin, db, storage)
	galleryRoute.GalleryAdminRoutes(admin, db, storage)
	contactRoute.ContactAdminRoutes(admin, db)
}
