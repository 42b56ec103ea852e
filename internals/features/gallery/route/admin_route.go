package route

import (
	galleryController "mycollege_backend/internals/features/gallery/controller"
	oss "mycollege_backend/internals/helpers/oss"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/*
Admin routes: full CRUD over albums and gallery media.
Mount: GalleryAdminRoutes(app.Group("/api/a"), db, storage)
*/
func GalleryAdminRoutes(r fiber.Router, db *gorm.DB, storage oss.Storage) {
	albumCtl := galleryController.NewAlbumController(db, storage)
	albums := r.Group("/albums")
	albums.Post("/", albumCtl.CreateAlbum)      // POST   /api/a/albums
	albums.Get("/", albumCtl.GetAllAlbums)      // GET    /api/a/albums?q=
	albums.Get("/:id", albumCtl.GetAlbumByID)   // GET    /api/a/albums/:id
	albums.Put("/:id", albumCtl.UpdateAlbum)    // PUT    /api/a/albums/:id
	albums.Delete("/:id", albumCtl.DeleteAlbum) // DELETE /api/a/albums/:id (detaches its media)

	mediaCtl := galleryController.NewGalleryMediaController(db, storage)
	media := r.Group("/gallery")
	media.Post("/", mediaCtl.CreateMedia)      // POST   /api/a/gallery
	media.Get("/", mediaCtl.GetAllMedia)       // GET    /api/a/gallery?q=&category=&year=
	media.Get("/:id", mediaCtl.GetMediaByID)   // GET    /api/a/gallery/:id
	media.Put("/:id", mediaCtl.UpdateMedia)    // PUT    /api/a/gallery/:id
	media.Delete("/:id", mediaCtl.DeleteMedia) // DELETE /api/a/gallery/:id
}
