package route

import (
	academicsController "mycollege_backend/internals/features/academics/controller"
	oss "mycollege_backend/internals/helpers/oss"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/*
Admin routes: full CRUD over exams and class timetables.
Mount: AcademicsAdminRoutes(app.Group("/api/a"), db, storage)
*/
func AcademicsAdminRoutes(r fiber.Router, db *gorm.DB, storage oss.Storage) {
	examCtl := academicsController.NewExamController(db, storage)
	exams := r.Group("/exams")
	exams.Post("/", examCtl.CreateExam)       // POST   /api/a/exams
	exams.Get("/", examCtl.GetAllExams)       // GET    /api/a/exams?q=&semester=&from=
	exams.Get("/:id", examCtl.GetExamByID)    // GET    /api/a/exams/:id
	exams.Put("/:id", examCtl.UpdateExam)     // PUT    /api/a/exams/:id
	exams.Delete("/:id", examCtl.DeleteExam)  // DELETE /api/a/exams/:id

	ttCtl := academicsController.NewTimetableController(db, storage)
	timetables := r.Group("/timetables")
	timetables.Post("/", ttCtl.CreateTimetable)      // POST   /api/a/timetables
	timetables.Get("/", ttCtl.GetAllTimetables)      // GET    /api/a/timetables?q=&semester=&year=
	timetables.Get("/:id", ttCtl.GetTimetableByID)   // GET    /api/a/timetables/:id
	timetables.Put("/:id", ttCtl.UpdateTimetable)    // PUT    /api/a/timetables/:id
	timetables.Delete("/:id", ttCtl.DeleteTimetable) // DELETE /api/a/timetables/:id
}
