package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"mycollege_backend/internals/constants"
	"mycollege_backend/internals/features/staff/model"
	helper "mycollege_backend/internals/helpers"
)

type StaffStore interface {
	// Create / Save persist the row. With handover set they first
	// demote every other profile (is_hod off, role HOD to Professor)
	// inside the same transaction.
	Create(ctx context.Context, m *model.StaffProfileModel, handover bool) error
	Save(ctx context.Context, m *model.StaffProfileModel, handover bool) error
	FindByID(ctx context.Context, id string) (*model.StaffProfileModel, error)
}

// StaffService keeps the single-HOD invariant: a write that marks a
// profile HOD hands the post over from whoever held it before.
type StaffService struct {
	Store StaffStore
}

func NewStaffService(store StaffStore) *StaffService {
	return &StaffService{Store: store}
}

// needsHandover normalizes the HOD fields (the HOD role implies the
// flag) and reports whether other profiles must be demoted.
func needsHandover(m *model.StaffProfileModel) bool {
	if m.StaffRole == constants.RoleHOD {
		m.StaffIsHOD = true
	}
	return m.StaffIsHOD
}

func (s *StaffService) Create(ctx context.Context, m *model.StaffProfileModel) error {
	return s.Store.Create(ctx, m, needsHandover(m))
}

func (s *StaffService) Update(ctx context.Context, m *model.StaffProfileModel) error {
	return s.Store.Save(ctx, m, needsHandover(m))
}

// SetHOD promotes one profile by id, demoting everyone else. The bulk
// admin action passes only the first selected id here.
func (s *StaffService) SetHOD(ctx context.Context, id string) (*model.StaffProfileModel, error) {
	m, err := s.Store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	m.StaffIsHOD = true
	if err := s.Store.Save(ctx, m, true); err != nil {
		return nil, err
	}
	return m, nil
}

// GORM-backed store.

type gormStaffStore struct{ db *gorm.DB }

func NewGormStaffStore(db *gorm.DB) StaffStore {
	return &gormStaffStore{db: db}
}

func demoteOthers(tx *gorm.DB, excludeID string) error {
	roleQ := tx.Model(&model.StaffProfileModel{}).Where("staff_role = ?", constants.RoleHOD)
	flagQ := tx.Model(&model.StaffProfileModel{}).Where("staff_is_hod = ?", true)
	if excludeID != "" {
		roleQ = roleQ.Where("staff_id <> ?", excludeID)
		flagQ = flagQ.Where("staff_id <> ?", excludeID)
	}
	if err := roleQ.Update("staff_role", constants.RoleDemotedHOD).Error; err != nil {
		return err
	}
	return flagQ.Update("staff_is_hod", false).Error
}

func (s *gormStaffStore) Create(ctx context.Context, m *model.StaffProfileModel, handover bool) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if handover {
			if err := demoteOthers(tx, ""); err != nil {
				return err
			}
		}
		return tx.Create(m).Error
	})
}

func (s *gormStaffStore) Save(ctx context.Context, m *model.StaffProfileModel, handover bool) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if handover {
			if err := demoteOthers(tx, m.StaffID); err != nil {
				return err
			}
		}
		return tx.Save(m).Error
	})
}

func (s *gormStaffStore) FindByID(ctx context.Context, id string) (*model.StaffProfileModel, error) {
	var m model.StaffProfileModel
	err := s.db.WithContext(ctx).First(&m, "staff_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}
