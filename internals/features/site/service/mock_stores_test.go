package service

import (
	"context"

	"mycollege_backend/internals/features/site/model"
	helper "mycollege_backend/internals/helpers"
)

type mockSettingsStore struct {
	rows []model.DepartmentSettingsModel
}

func (m *mockSettingsStore) Exists(ctx context.Context) (bool, error) {
	return len(m.rows) > 0, nil
}

func (m *mockSettingsStore) Current(ctx context.Context) (*model.DepartmentSettingsModel, error) {
	if len(m.rows) == 0 {
		return nil, helper.ErrNotFound
	}
	cp := m.rows[0]
	return &cp, nil
}

func (m *mockSettingsStore) Create(ctx context.Context, row *model.DepartmentSettingsModel) error {
	m.rows = append(m.rows, *row)
	return nil
}

func (m *mockSettingsStore) Save(ctx context.Context, row *model.DepartmentSettingsModel) error {
	if len(m.rows) == 0 {
		return helper.ErrNotFound
	}
	m.rows[0] = *row
	return nil
}

func (m *mockSettingsStore) Delete(ctx context.Context, row *model.DepartmentSettingsModel) error {
	if len(m.rows) == 0 {
		return helper.ErrNotFound
	}
	m.rows = m.rows[1:]
	return nil
}

type mockAboutStore struct {
	rows []model.AboutImageModel
}

func (m *mockAboutStore) ReplaceAll(ctx context.Context, row *model.AboutImageModel) ([]string, error) {
	var purged []string
	for _, o := range m.rows {
		purged = append(purged, o.AboutImageURL)
	}
	m.rows = []model.AboutImageModel{*row}
	return purged, nil
}

type mockHighlightStore struct {
	rows map[string]*model.HighlightCardModel
}

func newMockHighlightStore() *mockHighlightStore {
	return &mockHighlightStore{rows: map[string]*model.HighlightCardModel{}}
}

func (m *mockHighlightStore) CountOtherActiveWithImage(ctx context.Context, excludeID string) (int64, error) {
	var n int64
	for id, row := range m.rows {
		if id == excludeID {
			continue
		}
		if row.HighlightIsActive && row.HighlightImageURL != "" {
			n++
		}
	}
	return n, nil
}

func (m *mockHighlightStore) Create(ctx context.Context, row *model.HighlightCardModel) error {
	cp := *row
	m.rows[row.HighlightID] = &cp
	return nil
}

func (m *mockHighlightStore) Save(ctx context.Context, row *model.HighlightCardModel) error {
	cp := *row
	m.rows[row.HighlightID] = &cp
	return nil
}

// mockStorage records deletions so tests can assert file cleanup.
type mockStorage struct {
	deleted []string
}

func (m *mockStorage) UploadBytes(ctx context.Context, category, filename string, data []byte) (string, error) {
	return "https://bucket.example/" + category + "/" + filename, nil
}

func (m *mockStorage) UploadImage(ctx context.Context, category, filename string, data []byte) (string, error) {
	return m.UploadBytes(ctx, category, filename, data)
}

func (m *mockStorage) Delete(ctx context.Context, publicURL string) error {
	m.deleted = append(m.deleted, publicURL)
	return nil
}
