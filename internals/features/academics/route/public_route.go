package route

import (
	academicsController "mycollege_backend/internals/features/academics/controller"
	oss "mycollege_backend/internals/helpers/oss"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/*
Public routes: read-only exam and timetable listings.
Mount: AcademicsPublicRoutes(app.Group("/api/public"), db, storage)
*/
func AcademicsPublicRoutes(r fiber.Router, db *gorm.DB, storage oss.Storage) {
	examCtl := academicsController.NewExamController(db, storage)
	r.Get("/exams", examCtl.GetPublicExams) // GET /api/public/exams?q=&semester=&from=

	ttCtl := academicsController.NewTimetableController(db, storage)
	r.Get("/timetables", ttCtl.GetPublicTimetables) // GET /api/public/timetables?q=&semester=&year=
}
