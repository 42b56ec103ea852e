package controller

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mycollege_backend/internals/constants"
	"mycollege_backend/internals/features/staff/dto"
	"mycollege_backend/internals/features/staff/model"
	"mycollege_backend/internals/features/staff/service"
	helper "mycollege_backend/internals/helpers"
	oss "mycollege_backend/internals/helpers/oss"
)

var validateStaff = validator.New()

type StaffController struct {
	DB      *gorm.DB
	Storage oss.Storage
	Service *service.StaffService
}

func NewStaffController(db *gorm.DB, storage oss.Storage) *StaffController {
	return &StaffController{
		DB:      db,
		Storage: storage,
		Service: service.NewStaffService(service.NewGormStaffStore(db)),
	}
}

func applyStaffFilters(q *gorm.DB, c *fiber.Ctx) *gorm.DB {
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		like := "%" + s + "%"
		q = q.Where(
			"staff_name ILIKE ? OR staff_email ILIKE ? OR staff_area ILIKE ? OR staff_specialization ILIKE ? OR staff_designation ILIKE ?",
			like, like, like, like, like,
		)
	}
	if role := strings.TrimSpace(c.Query("role")); role != "" {
		q = q.Where("staff_role = ?", role)
	}
	return q
}

func (ctrl *StaffController) applyBody(m *model.StaffProfileModel, body *dto.SaveStaffRequest) {
	m.StaffName = body.StaffName
	if body.StaffRole != "" {
		m.StaffRole = body.StaffRole
	}
	if m.StaffRole == "" {
		m.StaffRole = constants.RoleAssistant
	}
	m.StaffDesignation = body.StaffDesignation
	m.StaffQualifications = body.StaffQualifications
	m.StaffSpecialization = body.StaffSpecialization
	m.StaffArea = body.StaffArea
	m.StaffBio = body.StaffBio
	m.StaffEmail = body.StaffEmail
	m.StaffPhone = body.StaffPhone
	m.StaffProfileURL = body.StaffProfileURL
	if body.StaffIsHOD != nil {
		m.StaffIsHOD = *body.StaffIsHOD
	}
	if body.StaffOrder != nil {
		m.StaffOrder = *body.StaffOrder
	}
}

// ➕ Create a profile. Marking it HOD hands the post over.
func (ctrl *StaffController) CreateStaff(c *fiber.Ctx) error {
	var body dto.SaveStaffRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateStaff.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	photoURL, err := helper.UploadedImage(c, ctrl.Storage, "staff_photo", constants.StorageStaff)
	if err != nil {
		return helper.UploadError(c, err, "Photo upload failed")
	}

	var m model.StaffProfileModel
	ctrl.applyBody(&m, &body)
	m.StaffPhotoURL = photoURL

	if err := ctrl.Service.Create(c.UserContext(), &m); err != nil {
		return helper.FromServiceError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Staff profile created", m)
}

// ✏️ Update a profile.
func (ctrl *StaffController) UpdateStaff(c *fiber.Ctx) error {
	id := c.Params("id")

	var m model.StaffProfileModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&m, "staff_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Staff profile not found")
	}

	var body dto.SaveStaffRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateStaff.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	oldPhoto := m.StaffPhotoURL
	photoURL, err := helper.UploadedImage(c, ctrl.Storage, "staff_photo", constants.StorageStaff)
	if err != nil {
		return helper.UploadError(c, err, "Photo upload failed")
	}

	ctrl.applyBody(&m, &body)
	if photoURL != "" {
		m.StaffPhotoURL = photoURL
	}

	if err := ctrl.Service.Update(c.UserContext(), &m); err != nil {
		return helper.FromServiceError(c, err)
	}

	if photoURL != "" && oldPhoto != "" && oldPhoto != m.StaffPhotoURL {
		if err := ctrl.Storage.Delete(c.UserContext(), oldPhoto); err != nil {
			log.Printf("[WARN] failed to delete old staff photo %s: %v", oldPhoto, err)
		}
	}

	return helper.Success(c, "Staff profile updated", m)
}

// 📄 Admin listing, HOD first, with filters and pagination.
func (ctrl *StaffController) GetAllStaff(c *fiber.Ctx) error {
	page := helper.ParsePage(c, helper.AdminOpts)

	base := applyStaffFilters(ctrl.DB.WithContext(c.UserContext()).Model(&model.StaffProfileModel{}), c)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count staff profiles")
	}

	var rows []model.StaffProfileModel
	if err := base.
		Order("staff_is_hod DESC, staff_order ASC, staff_role ASC, staff_name ASC").
		Limit(page.Limit()).Offset(page.Offset()).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve staff profiles")
	}

	return helper.Success(c, "OK", fiber.Map{
		"staff":      rows,
		"pagination": helper.BuildPageMeta(total, page),
	})
}

// 🔎 Get one profile by id.
func (ctrl *StaffController) GetStaffByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var m model.StaffProfileModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&m, "staff_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Staff profile not found")
	}
	return helper.Success(c, "OK", m)
}

// 🗑️ Delete — the photo goes first so a storage failure surfaces.
func (ctrl *StaffController) DeleteStaff(c *fiber.Ctx) error {
	id := c.Params("id")

	var m model.StaffProfileModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&m, "staff_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Staff profile not found")
	}

	if m.StaffPhotoURL != "" {
		if err := ctrl.Storage.Delete(c.UserContext(), m.StaffPhotoURL); err != nil {
			return fiber.NewError(fiber.StatusBadGateway, "Failed to delete stored photo")
		}
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Delete(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete staff profile")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// 👑 Bulk set-HOD: only the first selected id is promoted.
func (ctrl *StaffController) SetHOD(c *fiber.Ctx) error {
	var body dto.StaffBulkRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateStaff.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := ctrl.Service.SetHOD(c.UserContext(), body.StaffIDs[0])
	if err != nil {
		return helper.FromServiceError(c, err)
	}

	return helper.Success(c, m.StaffName+" is now set as HOD", m)
}

// 🌐 Public staff page: everyone in display order, plus role subsets
// for the tabs.
func (ctrl *StaffController) GetPublicStaff(c *fiber.Ctx) error {
	var rows []model.StaffProfileModel
	if err := applyStaffFilters(ctrl.DB.WithContext(c.UserContext()).Model(&model.StaffProfileModel{}), c).
		Order("staff_order ASC, staff_role ASC, staff_name ASC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve staff profiles")
	}

	var hodList, faculty, support []model.StaffProfileModel
	for _, row := range rows {
		if row.StaffIsHOD || row.StaffRole == constants.RoleHOD {
			hodList = append(hodList, row)
		}
		switch row.StaffRole {
		case constants.RoleHOD, constants.RoleProfessor, constants.RoleAssociate, constants.RoleAssistant:
			faculty = append(faculty, row)
		case constants.RoleInstructor, constants.RoleTech, constants.RoleSupport:
			support = append(support, row)
		}
	}

	return helper.Success(c, "OK", fiber.Map{
		"all_staff": rows,
		"hod_list":  hodList,
		"faculty":   faculty,
		"support":   support,
		"roles":     constants.StaffRoles,
	})
}
