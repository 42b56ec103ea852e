package route

import (
	staffController "mycollege_backend/internals/features/staff/controller"
	oss "mycollege_backend/internals/helpers/oss"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/*
Public routes: the staff listing with role tabs.
Mount: StaffPublicRoutes(app.Group("/api/public"), db, storage)
*/
func StaffPublicRoutes(r fiber.Router, db *gorm.DB, storage oss.Storage) {
	ctl := staffController.NewStaffController(db, storage)
	r.Get("/staff", ctl.GetPublicStaff) // GET /api/public/staff?q=&role=
}
