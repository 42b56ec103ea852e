package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mycollege_backend/internals/constants"
	"mycollege_backend/internals/features/academics/dto"
	"mycollege_backend/internals/features/academics/model"
	helper "mycollege_backend/internals/helpers"
	oss "mycollege_backend/internals/helpers/oss"
)

type TimetableController struct {
	DB      *gorm.DB
	Storage oss.Storage
}

func NewTimetableController(db *gorm.DB, storage oss.Storage) *TimetableController {
	return &TimetableController{DB: db, Storage: storage}
}

func applyTimetableFilters(q *gorm.DB, c *fiber.Ctx) *gorm.DB {
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		q = q.Where("timetable_course ILIKE ?", "%"+s+"%")
	}
	if n := helper.ParseIntParam(c.Query("semester")); n != nil {
		q = q.Where("timetable_semester = ?", *n)
	}
	if y := strings.TrimSpace(c.Query("year")); y != "" {
		q = q.Where("timetable_academic_year ILIKE ?", "%"+y+"%")
	}
	return q
}

// ➕ Create a timetable, with an optional PDF.
func (ctrl *TimetableController) CreateTimetable(c *fiber.Ctx) error {
	var body dto.SaveTimetableRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAcademics.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	pdfURL, err := helper.UploadedFile(c, ctrl.Storage, "timetable_pdf", constants.StorageTimetables)
	if err != nil {
		return helper.UploadError(c, err, "PDF upload failed")
	}

	m := model.ClassTimetableModel{
		TimetableCourse:       body.TimetableCourse,
		TimetableSemester:     body.TimetableSemester,
		TimetableAcademicYear: body.TimetableAcademicYear,
		TimetablePdfURL:       pdfURL,
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create timetable")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Timetable created", m)
}

// ✏️ Update a timetable. A new PDF replaces the stored one.
func (ctrl *TimetableController) UpdateTimetable(c *fiber.Ctx) error {
	id := c.Params("id")

	var m model.ClassTimetableModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&m, "timetable_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Timetable not found")
	}

	var body dto.SaveTimetableRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAcademics.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	oldPdf := m.TimetablePdfURL
	pdfURL, err := helper.UploadedFile(c, ctrl.Storage, "timetable_pdf", constants.StorageTimetables)
	if err != nil {
		return helper.UploadError(c, err, "PDF upload failed")
	}

	m.TimetableCourse = body.TimetableCourse
	m.TimetableSemester = body.TimetableSemester
	m.TimetableAcademicYear = body.TimetableAcademicYear
	if pdfURL != "" {
		m.TimetablePdfURL = pdfURL
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update timetable")
	}

	if pdfURL != "" && oldPdf != "" && oldPdf != m.TimetablePdfURL {
		if err := ctrl.Storage.Delete(c.UserContext(), oldPdf); err != nil {
			log.Printf("[WARN] failed to delete old timetable pdf %s: %v", oldPdf, err)
		}
	}

	return helper.Success(c, "Timetable updated", m)
}

// 📄 Admin listing with filters and pagination.
func (ctrl *TimetableController) GetAllTimetables(c *fiber.Ctx) error {
	page := helper.ParsePage(c, helper.AdminOpts)

	base := applyTimetableFilters(ctrl.DB.WithContext(c.UserContext()).Model(&model.ClassTimetableModel{}), c)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count timetables")
	}

	var rows []model.ClassTimetableModel
	if err := base.
		Order("timetable_created_at DESC, timetable_course ASC, timetable_semester ASC").
		Limit(page.Limit()).Offset(page.Offset()).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve timetables")
	}

	return helper.Success(c, "OK", fiber.Map{
		"timetables": rows,
		"pagination": helper.BuildPageMeta(total, page),
	})
}

// 🗑️ Delete — the PDF goes first so a storage failure surfaces.
func (ctrl *TimetableController) GetTimetableByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var m model.ClassTimetableModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&m, "timetable_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Timetable not found")
	}
	return helper.Success(c, "OK", m)
}

func (ctrl *TimetableController) DeleteTimetable(c *fiber.Ctx) error {
	id := c.Params("id")

	var m model.ClassTimetableModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&m, "timetable_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Timetable not found")
	}

	if m.TimetablePdfURL != "" {
		if err := ctrl.Storage.Delete(c.UserContext(), m.TimetablePdfURL); err != nil {
			return fiber.NewError(fiber.StatusBadGateway, "Failed to delete stored PDF")
		}
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Delete(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete timetable")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// 🌐 Public timetables page: filtered list, newest first, plus the
// distinct academic years for the filter dropdown.
func (ctrl *TimetableController) GetPublicTimetables(c *fiber.Ctx) error {
	var rows []model.ClassTimetableModel
	if err := applyTimetableFilters(ctrl.DB.WithContext(c.UserContext()).Model(&model.ClassTimetableModel{}), c).
		Order("timetable_created_at DESC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve timetables")
	}

	var years []string
	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.ClassTimetableModel{}).
		Distinct("timetable_academic_year").
		Order("timetable_academic_year DESC").
		Pluck("timetable_academic_year", &years).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve academic years")
	}

	semesters := make([]int, 0, constants.SemesterMax)
	for s := constants.SemesterMin; s <= constants.SemesterMax; s++ {
		semesters = append(semesters, s)
	}

	return helper.Success(c, "OK", fiber.Map{
		"timetables": rows,
		"years":      years,
		"semesters":  semesters,
	})
}
