package route

import (
	staffController "mycollege_backend/internals/features/staff/controller"
	oss "mycollege_backend/internals/helpers/oss"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/*
Admin routes: full CRUD over staff profiles plus the set-HOD action.
Mount: StaffAdminRoutes(app.Group("/api/a"), db, storage)
*/
func StaffAdminRoutes(r fiber.Router, db *gorm.DB, storage oss.Storage) {
	ctl := staffController.NewStaffController(db, storage)
	staff := r.Group("/staff")
	staff.Post("/", ctl.CreateStaff)       // POST   /api/a/staff
	staff.Get("/", ctl.GetAllStaff)        // GET    /api/a/staff?q=&role=
	staff.Post("/set-hod", ctl.SetHOD)     // POST   /api/a/staff/set-hod {staff_ids}
	staff.Get("/:id", ctl.GetStaffByID)    // GET    /api/a/staff/:id
	staff.Put("/:id", ctl.UpdateStaff)     // PUT    /api/a/staff/:id
	staff.Delete("/:id", ctl.DeleteStaff)  // DELETE /api/a/staff/:id
}
