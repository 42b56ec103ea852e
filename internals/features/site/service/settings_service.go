package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"mycollege_backend/internals/features/site/model"
	helper "mycollege_backend/internals/helpers"
)

// ErrSettingsExists rejects a second DepartmentSettings row. The rule is
// enforced here at the admin surface, not by a database constraint.
var ErrSettingsExists = errors.New("department settings already exist")

type SettingsStore interface {
	Exists(ctx context.Context) (bool, error)
	// Current returns the singleton row (oldest wins if the invariant
	// was ever broken), helper.ErrNotFound when none exists.
	Current(ctx context.Context) (*model.DepartmentSettingsModel, error)
	Create(ctx context.Context, m *model.DepartmentSettingsModel) error
	Save(ctx context.Context, m *model.DepartmentSettingsModel) error
	Delete(ctx context.Context, m *model.DepartmentSettingsModel) error
}

type SettingsService struct {
	Store SettingsStore
}

func NewSettingsService(store SettingsStore) *SettingsService {
	return &SettingsService{Store: store}
}

func (s *SettingsService) Create(ctx context.Context, m *model.DepartmentSettingsModel) error {
	exists, err := s.Store.Exists(ctx)
	if err != nil {
		return err
	}
	if exists {
		return ErrSettingsExists
	}
	return s.Store.Create(ctx, m)
}

// Current resolves the singleton. Being a singleton, updates and
// deletes address it without an id.
func (s *SettingsService) Current(ctx context.Context) (*model.DepartmentSettingsModel, error) {
	return s.Store.Current(ctx)
}

func (s *SettingsService) Update(ctx context.Context, m *model.DepartmentSettingsModel) error {
	return s.Store.Save(ctx, m)
}

func (s *SettingsService) Delete(ctx context.Context, m *model.DepartmentSettingsModel) error {
	return s.Store.Delete(ctx, m)
}

// GORM-backed store.

type gormSettingsStore struct{ db *gorm.DB }

func NewGormSettingsStore(db *gorm.DB) SettingsStore {
	return &gormSettingsStore{db: db}
}

func (s *gormSettingsStore) Exists(ctx context.Context) (bool, error) {
	var cnt int64
	err := s.db.WithContext(ctx).Model(&model.DepartmentSettingsModel{}).Count(&cnt).Error
	return cnt > 0, err
}

func (s *gormSettingsStore) Current(ctx context.Context) (*model.DepartmentSettingsModel, error) {
	var m model.DepartmentSettingsModel
	err := s.db.WithContext(ctx).Order("settings_created_at ASC").First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (s *gormSettingsStore) Create(ctx context.Context, m *model.DepartmentSettingsModel) error {
	return s.db.WithContext(ctx).Create(m).Error
}

func (s *gormSettingsStore) Save(ctx context.Context, m *model.DepartmentSettingsModel) error {
	return s.db.WithContext(ctx).Save(m).Error
}

func (s *gormSettingsStore) Delete(ctx context.Context, m *model.DepartmentSettingsModel) error {
	return s.db.WithContext(ctx).Delete(m).Error
}
