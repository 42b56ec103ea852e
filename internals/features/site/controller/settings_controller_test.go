package controller

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mycollege_backend/internals/features/site/model"
	"mycollege_backend/internals/features/site/service"
	helper "mycollege_backend/internals/helpers"
)

type stubStorage struct{}

func (stubStorage) UploadBytes(ctx context.Context, category, filename string, data []byte) (string, error) {
	return "https://bucket.example.com/" + category + "/" + filename, nil
}

func (stubStorage) UploadImage(ctx context.Context, category, filename string, data []byte) (string, error) {
	return "https://bucket.example.com/" + category + "/" + filename, nil
}

func (stubStorage) Delete(ctx context.Context, publicURL string) error { return nil }

type stubSettingsStore struct {
	rows []model.DepartmentSettingsModel
}

func (s *stubSettingsStore) Exists(ctx context.Context) (bool, error) {
	return len(s.rows) > 0, nil
}

func (s *stubSettingsStore) Current(ctx context.Context) (*model.DepartmentSettingsModel, error) {
	if len(s.rows) == 0 {
		return nil, helper.ErrNotFound
	}
	cp := s.rows[0]
	return &cp, nil
}

func (s *stubSettingsStore) Create(ctx context.Context, m *model.DepartmentSettingsModel) error {
	s.rows = append(s.rows, *m)
	return nil
}

func (s *stubSettingsStore) Save(ctx context.Context, m *model.DepartmentSettingsModel) error {
	if len(s.rows) == 0 {
		return helper.ErrNotFound
	}
	s.rows[0] = *m
	return nil
}

func (s *stubSettingsStore) Delete(ctx context.Context, m *model.DepartmentSettingsModel) error {
	if len(s.rows) == 0 {
		return helper.ErrNotFound
	}
	s.rows = s.rows[1:]
	return nil
}

func newSettingsApp(store service.SettingsStore) *fiber.App {
	app := fiber.New()
	ctl := &SettingsController{
		Storage: stubStorage{},
		Service: service.NewSettingsService(store),
	}
	g := app.Group("/settings")
	g.Post("/", ctl.CreateSettings)
	g.Get("/", ctl.GetSettings)
	g.Put("/", ctl.UpdateSettings)
	g.Delete("/", ctl.DeleteSettings)
	return app
}

// The settings endpoints carry no :id segment; the handlers must still
// resolve the one existing row.
func TestSettingsRoutesAddressTheSingleton(t *testing.T) {
	store := &stubSettingsStore{rows: []model.DepartmentSettingsModel{{
		SettingsID:       "3f1d2a90-9c41-4c89-b0cf-6f5e2a41d7aa",
		SettingsSiteName: "Department of ECE",
	}}}
	app := newSettingsApp(store)

	t.Run("update hits the existing row without an id", func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodPut, "/settings",
			strings.NewReader(`{"settings_site_name": "Department of CSE"}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "Department of CSE", store.rows[0].SettingsSiteName)
	})

	t.Run("delete hits the existing row without an id", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodDelete, "/settings", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
		assert.Empty(t, store.rows)
	})

	t.Run("update with no row left is 404", func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodPut, "/settings",
			strings.NewReader(`{"settings_site_name": "Department of CSE"}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}
