package route

import (
	siteController "mycollege_backend/internals/features/site/controller"
	oss "mycollege_backend/internals/helpers/oss"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/*
Admin routes: full CRUD over department settings, about/section images,
sliders and highlight cards.
Mount: SiteAdminRoutes(app.Group("/api/a"), db, storage)
*/
func SiteAdminRoutes(r fiber.Router, db *gorm.DB, storage oss.Storage) {
	settingsCtl := siteController.NewSettingsController(db, storage)
	settings := r.Group("/settings")
	settings.Post("/", settingsCtl.CreateSettings)     // POST   /api/a/settings (409 if a row exists)
	settings.Get("/", settingsCtl.GetSettings)         // GET    /api/a/settings
	settings.Put("/", settingsCtl.UpdateSettings)      // PUT    /api/a/settings
	settings.Delete("/", settingsCtl.DeleteSettings)   // DELETE /api/a/settings

	aboutCtl := siteController.NewAboutController(db, storage)
	about := r.Group("/about-images")
	about.Post("/", aboutCtl.CreateAboutImage)       // POST   /api/a/about-images (replaces all prior rows)
	about.Get("/", aboutCtl.GetAboutImage)           // GET    /api/a/about-images
	about.Delete("/:id", aboutCtl.DeleteAboutImage)  // DELETE /api/a/about-images/:id

	sectionCtl := siteController.NewSectionImageController(db, storage)
	sections := r.Group("/section-images")
	sections.Post("/", sectionCtl.CreateSectionImage)      // POST   /api/a/section-images
	sections.Get("/", sectionCtl.GetAllSectionImages)      // GET    /api/a/section-images?key=about
	sections.Delete("/:id", sectionCtl.DeleteSectionImage) // DELETE /api/a/section-images/:id

	sliderCtl := siteController.NewSliderController(db, storage)
	sliders := r.Group("/sliders")
	sliders.Post("/", sliderCtl.CreateSlider)       // POST   /api/a/sliders
	sliders.Get("/", sliderCtl.GetAllSliders)       // GET    /api/a/sliders
	sliders.Get("/:id", sliderCtl.GetSliderByID)    // GET    /api/a/sliders/:id
	sliders.Put("/:id", sliderCtl.UpdateSlider)     // PUT    /api/a/sliders/:id
	sliders.Delete("/:id", sliderCtl.DeleteSlider)  // DELETE /api/a/sliders/:id

	highlightCtl := siteController.NewHighlightController(db, storage)
	highlights := r.Group("/highlights")
	highlights.Post("/", highlightCtl.CreateHighlight)      // POST   /api/a/highlights
	highlights.Get("/", highlightCtl.GetAllHighlights)      // GET    /api/a/highlights
	highlights.Get("/:id", highlightCtl.GetHighlightByID)   // GET    /api/a/highlights/:id
	highlights.Put("/:id", highlightCtl.UpdateHighlight)    // PUT    /api/a/highlights/:id
	highlights.Delete("/:id", highlightCtl.DeleteHighlight) // DELETE /api/a/highlights/:id
}
