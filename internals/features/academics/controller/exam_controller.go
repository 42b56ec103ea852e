package controller

import (
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"mycollege_backend/internals/constants"
	"mycollege_backend/internals/features/academics/dto"
	"mycollege_backend/internals/features/academics/model"
	"mycollege_backend/internals/features/academics/service"
	helper "mycollege_backend/internals/helpers"
	oss "mycollege_backend/internals/helpers/oss"
)

var validateAcademics = validator.New()

type ExamController struct {
	DB      *gorm.DB
	Storage oss.Storage
}

func NewExamController(db *gorm.DB, storage oss.Storage) *ExamController {
	return &ExamController{DB: db, Storage: storage}
}

// Shared filter set for public and admin listings. Bad semester / date
// values drop the filter instead of erroring.
func applyExamFilters(q *gorm.DB, c *fiber.Ctx) *gorm.DB {
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		like := "%" + s + "%"
		q = q.Where("exam_title ILIKE ? OR exam_course ILIKE ?", like, like)
	}
	if n := helper.ParseIntParam(c.Query("semester")); n != nil {
		q = q.Where("exam_semester = ?", *n)
	}
	if d := helper.ParseDateParam(c.Query("from")); d != nil {
		q = q.Where("exam_date >= ?", d.Format("2006-01-02"))
	}
	return q
}

// ➕ Create an exam, with an optional schedule PDF.
func (ctrl *ExamController) CreateExam(c *fiber.Ctx) error {
	var body dto.SaveExamRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAcademics.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	examDate, err := service.ParseExamDate(body.ExamDate)
	if err != nil {
		return helper.FromServiceError(c, err)
	}

	pdfURL, err := helper.UploadedFile(c, ctrl.Storage, "exam_pdf", constants.StorageExams)
	if err != nil {
		return helper.UploadError(c, err, "PDF upload failed")
	}

	m := model.ExamModel{
		ExamTitle:    body.ExamTitle,
		ExamCourse:   body.ExamCourse,
		ExamSemester: body.ExamSemester,
		ExamDate:     datatypes.Date(examDate),
		ExamPdfURL:   pdfURL,
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create exam")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Exam created", m)
}

// ✏️ Update an exam. A new PDF replaces the stored one.
func (ctrl *ExamController) UpdateExam(c *fiber.Ctx) error {
	id := c.Params("id")

	var m model.ExamModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&m, "exam_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Exam not found")
	}

	var body dto.SaveExamRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAcademics.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	examDate, err := service.ParseExamDate(body.ExamDate)
	if err != nil {
		return helper.FromServiceError(c, err)
	}

	oldPdf := m.ExamPdfURL
	pdfURL, err := helper.UploadedFile(c, ctrl.Storage, "exam_pdf", constants.StorageExams)
	if err != nil {
		return helper.UploadError(c, err, "PDF upload failed")
	}

	m.ExamTitle = body.ExamTitle
	m.ExamCourse = body.ExamCourse
	m.ExamSemester = body.ExamSemester
	m.ExamDate = datatypes.Date(examDate)
	if pdfURL != "" {
		m.ExamPdfURL = pdfURL
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update exam")
	}

	if pdfURL != "" && oldPdf != "" && oldPdf != m.ExamPdfURL {
		if err := ctrl.Storage.Delete(c.UserContext(), oldPdf); err != nil {
			log.Printf("[WARN] failed to delete old exam pdf %s: %v", oldPdf, err)
		}
	}

	return helper.Success(c, "Exam updated", m)
}

// 📄 Admin listing with filters and pagination.
func (ctrl *ExamController) GetAllExams(c *fiber.Ctx) error {
	page := helper.ParsePage(c, helper.AdminOpts)

	base := applyExamFilters(ctrl.DB.WithContext(c.UserContext()).Model(&model.ExamModel{}), c)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count exams")
	}

	var rows []model.ExamModel
	if err := base.
		Order("exam_date ASC, exam_semester ASC").
		Limit(page.Limit()).Offset(page.Offset()).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve exams")
	}

	return helper.Success(c, "OK", fiber.Map{
		"exams":      rows,
		"pagination": helper.BuildPageMeta(total, page),
	})
}

// 🔎 Get one exam by id.
func (ctrl *ExamController) GetExamByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var m model.ExamModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&m, "exam_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Exam not found")
	}
	return helper.Success(c, "OK", m)
}

// 🗑️ Delete — the PDF goes first so a storage failure surfaces.
func (ctrl *ExamController) DeleteExam(c *fiber.Ctx) error {
	id := c.Params("id")

	var m model.ExamModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&m, "exam_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Exam not found")
	}

	if m.ExamPdfURL != "" {
		if err := ctrl.Storage.Delete(c.UserContext(), m.ExamPdfURL); err != nil {
			return fiber.NewError(fiber.StatusBadGateway, "Failed to delete stored PDF")
		}
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Delete(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete exam")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// 🌐 Public exams page: filtered, then split into upcoming (soonest
// first) and past (most recent first), 50 each.
func (ctrl *ExamController) GetPublicExams(c *fiber.Ctx) error {
	today := time.Now().Format("2006-01-02")

	var upcoming []model.ExamModel
	if err := applyExamFilters(ctrl.DB.WithContext(c.UserContext()).Model(&model.ExamModel{}), c).
		Where("exam_date >= ?", today).
		Order("exam_date ASC, exam_semester ASC").
		Limit(50).
		Find(&upcoming).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve exams")
	}

	var past []model.ExamModel
	if err := applyExamFilters(ctrl.DB.WithContext(c.UserContext()).Model(&model.ExamModel{}), c).
		Where("exam_date < ?", today).
		Order("exam_date DESC").
		Limit(50).
		Find(&past).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve exams")
	}

	semesters := make([]int, 0, constants.SemesterMax)
	for s := constants.SemesterMin; s <= constants.SemesterMax; s++ {
		semesters = append(semesters, s)
	}

	return helper.Success(c, "OK", fiber.Map{
		"exams_upcoming": upcoming,
		"exams_past":     past,
		"semesters":      semesters,
	})
}
