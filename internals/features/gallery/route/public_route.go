package route

import (
	galleryController "mycollege_backend/internals/features/gallery/controller"
	oss "mycollege_backend/internals/helpers/oss"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/*
Public routes: the gallery wall and album detail.
Mount: GalleryPublicRoutes(app.Group("/api/public"), db, storage)
*/
func GalleryPublicRoutes(r fiber.Router, db *gorm.DB, storage oss.Storage) {
	mediaCtl := galleryController.NewGalleryMediaController(db, storage)
	r.Get("/gallery", mediaCtl.GetPublicGallery) // GET /api/public/gallery?q=&category=&year=&page=

	albumCtl := galleryController.NewAlbumController(db, storage)
	r.Get("/gallery/albums/:slug", albumCtl.GetAlbumBySlug) // GET /api/public/gallery/albums/:slug
}
