package route

import (
	adminController "mycollege_backend/internals/features/admin/controller"

	"github.com/gofiber/fiber/v2"
)

/*
Admin meta route.
Mount: AdminMetaRoutes(app.Group("/api/a"))
*/
func AdminMetaRoutes(r fiber.Router) {
	ctl := adminController.NewMetaController()
	r.Get("/meta", ctl.GetMeta) // GET /api/a/meta
}
