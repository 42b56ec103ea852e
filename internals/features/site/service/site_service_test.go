package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mycollege_backend/internals/features/site/model"
	helper "mycollege_backend/internals/helpers"
)

func TestSettingsService_SecondCreateRejected(t *testing.T) {
	store := &mockSettingsStore{}
	svc := NewSettingsService(store)

	err := svc.Create(context.Background(), &model.DepartmentSettingsModel{SettingsSiteName: "CS Department"})
	require.NoError(t, err)

	err = svc.Create(context.Background(), &model.DepartmentSettingsModel{SettingsSiteName: "Another"})
	assert.ErrorIs(t, err, ErrSettingsExists)
	assert.Len(t, store.rows, 1)
}

func TestAboutService_ReplacePurgesPriorsAndFiles(t *testing.T) {
	store := &mockAboutStore{rows: []model.AboutImageModel{
		{AboutImageID: "a1", AboutImageURL: "https://bucket.example/about/old.webp"},
	}}
	files := &mockStorage{}
	svc := NewAboutService(store, files)

	err := svc.Replace(context.Background(), &model.AboutImageModel{
		AboutImageID:  "a2",
		AboutImageURL: "https://bucket.example/about/new.webp",
	})
	require.NoError(t, err)

	assert.Len(t, store.rows, 1)
	assert.Equal(t, "a2", store.rows[0].AboutImageID)
	assert.Equal(t, []string{"https://bucket.example/about/old.webp"}, files.deleted)
}

func TestAboutService_FirstInsertDeletesNothing(t *testing.T) {
	store := &mockAboutStore{}
	files := &mockStorage{}
	svc := NewAboutService(store, files)

	err := svc.Replace(context.Background(), &model.AboutImageModel{
		AboutImageID:  "a1",
		AboutImageURL: "https://bucket.example/about/first.webp",
	})
	require.NoError(t, err)
	assert.Empty(t, files.deleted)
	assert.Len(t, store.rows, 1)
}

func TestHighlightService_ImageRequired(t *testing.T) {
	svc := NewHighlightService(newMockHighlightStore())

	err := svc.Create(context.Background(), &model.HighlightCardModel{
		HighlightID:       "h1",
		HighlightIsActive: true,
	})
	require.Error(t, err)
	fe, ok := helper.AsFieldError(err)
	require.True(t, ok)
	assert.Equal(t, "highlight_image_url", fe.Field)
}

func TestHighlightService_ImageRequiredEvenWhenInactive(t *testing.T) {
	svc := NewHighlightService(newMockHighlightStore())

	err := svc.Create(context.Background(), &model.HighlightCardModel{
		HighlightID:       "h1",
		HighlightIsActive: false,
	})
	require.Error(t, err)
}

func TestHighlightService_ActiveCap(t *testing.T) {
	store := newMockHighlightStore()
	svc := NewHighlightService(store)
	ctx := context.Background()

	for i, id := range []string{"h1", "h2", "h3"} {
		err := svc.Create(ctx, &model.HighlightCardModel{
			HighlightID:       id,
			HighlightImageURL: "https://bucket.example/highlights/x.webp",
			HighlightIsActive: true,
			HighlightOrder:    i,
		})
		require.NoError(t, err)
	}

	// Fourth active card breaches the cap.
	err := svc.Create(ctx, &model.HighlightCardModel{
		HighlightID:       "h4",
		HighlightImageURL: "https://bucket.example/highlights/y.webp",
		HighlightIsActive: true,
	})
	require.Error(t, err)
	fe, ok := helper.AsFieldError(err)
	require.True(t, ok)
	assert.Contains(t, fe.Message, "already 3 active")
	assert.Contains(t, fe.Message, "Maximum allowed is 3")

	// Inactive card is always fine.
	err = svc.Create(ctx, &model.HighlightCardModel{
		HighlightID:       "h5",
		HighlightImageURL: "https://bucket.example/highlights/z.webp",
		HighlightIsActive: false,
	})
	require.NoError(t, err)

	// Deactivate one, then the fourth goes through.
	h2 := store.rows["h2"]
	h2.HighlightIsActive = false
	require.NoError(t, svc.Update(ctx, h2))

	err = svc.Create(ctx, &model.HighlightCardModel{
		HighlightID:       "h4",
		HighlightImageURL: "https://bucket.example/highlights/y.webp",
		HighlightIsActive: true,
	})
	require.NoError(t, err)
}

func TestHighlightService_EditingActiveCardExcludesItself(t *testing.T) {
	store := newMockHighlightStore()
	svc := NewHighlightService(store)
	ctx := context.Background()

	for _, id := range []string{"h1", "h2", "h3"} {
		require.NoError(t, svc.Create(ctx, &model.HighlightCardModel{
			HighlightID:       id,
			HighlightImageURL: "https://bucket.example/highlights/x.webp",
			HighlightIsActive: true,
		}))
	}

	// Re-saving one of the three active cards must not trip the cap.
	h1 := store.rows["h1"]
	h1.HighlightTitle = "Updated"
	assert.NoError(t, svc.Update(ctx, h1))
}

func TestValidateSlider(t *testing.T) {
	err := ValidateSlider(&model.SliderModel{})
	require.Error(t, err)

	assert.NoError(t, ValidateSlider(&model.SliderModel{SliderImageURL: "https://bucket.example/sliders/a.webp"}))
	assert.NoError(t, ValidateSlider(&model.SliderModel{SliderVideoURL: "https://bucket.example/sliders/videos/a.mp4"}))
}
