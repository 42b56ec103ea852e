package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"mycollege_backend/internals/constants"
	"mycollege_backend/internals/features/site/model"
	helper "mycollege_backend/internals/helpers"
)

type HighlightStore interface {
	// CountOtherActiveWithImage counts active rows that have an image,
	// excluding excludeID (empty on create).
	CountOtherActiveWithImage(ctx context.Context, excludeID string) (int64, error)
	Create(ctx context.Context, m *model.HighlightCardModel) error
	Save(ctx context.Context, m *model.HighlightCardModel) error
}

// HighlightService enforces the marquee rules: a card always needs an
// image, and at most MaxActiveHighlights cards may be active with an
// image at once. The count-then-write is not locked; admin write rates
// make the race acceptable.
type HighlightService struct {
	Store HighlightStore
	Cap   int
}

func NewHighlightService(store HighlightStore) *HighlightService {
	return &HighlightService{Store: store, Cap: constants.MaxActiveHighlights}
}

func (s *HighlightService) validate(ctx context.Context, m *model.HighlightCardModel) error {
	if m.HighlightImageURL == "" {
		return helper.NewFieldError("highlight_image_url", "Please upload an image for highlight cards.")
	}
	if !m.HighlightIsActive {
		return nil
	}
	count, err := s.Store.CountOtherActiveWithImage(ctx, m.HighlightID)
	if err != nil {
		return err
	}
	if count >= int64(s.Cap) {
		return helper.NewFieldError("highlight_is_active", fmt.Sprintf(
			"Cannot mark active: there are already %d active highlight cards. Maximum allowed is %d.",
			count, s.Cap,
		))
	}
	return nil
}

func (s *HighlightService) Create(ctx context.Context, m *model.HighlightCardModel) error {
	if err := s.validate(ctx, m); err != nil {
		return err
	}
	return s.Store.Create(ctx, m)
}

func (s *HighlightService) Update(ctx context.Context, m *model.HighlightCardModel) error {
	if err := s.validate(ctx, m); err != nil {
		return err
	}
	return s.Store.Save(ctx, m)
}

// GORM-backed store.

type gormHighlightStore struct{ db *gorm.DB }

func NewGormHighlightStore(db *gorm.DB) HighlightStore {
	return &gormHighlightStore{db: db}
}

func (s *gormHighlightStore) CountOtherActiveWithImage(ctx context.Context, excludeID string) (int64, error) {
	q := s.db.WithContext(ctx).Model(&model.HighlightCardModel{}).
		Where("highlight_is_active = ?", true).
		Where("highlight_image_url <> ''")
	if excludeID != "" {
		q = q.Where("highlight_id <> ?", excludeID)
	}
	var cnt int64
	err := q.Count(&cnt).Error
	return cnt, err
}

func (s *gormHighlightStore) Create(ctx context.Context, m *model.HighlightCardModel) error {
	return s.db.WithContext(ctx).Create(m).Error
}

func (s *gormHighlightStore) Save(ctx context.Context, m *model.HighlightCardModel) error {
	return s.db.WithContext(ctx).Save(m).Error
}
