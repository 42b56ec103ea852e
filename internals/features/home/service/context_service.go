package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"mycollege_backend/internals/constants"
	siteModel "mycollege_backend/internals/features/site/model"
)

// CommonContext is attached to every public page payload: department
// settings, the about / bottom section images and the highlight
// marquee.
type CommonContext struct {
	DepartmentSettings *siteModel.DepartmentSettingsModel `json:"department_settings"`
	AboutImage         *siteModel.SectionImageModel       `json:"about_image"`
	AboutImageLegacy   *siteModel.AboutImageModel         `json:"about_image_legacy"`
	BottomImage        *siteModel.SectionImageModel       `json:"bottom_image"`
	HighlightCards     []siteModel.HighlightCardModel     `json:"highlight_cards"`
}

// RepeatForScroll repeats items until the slice holds at least min
// entries, so the marquee never runs dry. An empty input stays empty.
func RepeatForScroll(items []siteModel.HighlightCardModel, min int) []siteModel.HighlightCardModel {
	if len(items) == 0 {
		return []siteModel.HighlightCardModel{}
	}
	out := make([]siteModel.HighlightCardModel, 0, min+len(items))
	for len(out) < min {
		out = append(out, items...)
	}
	return out
}

// ContextService assembles the common context. Lookups that find
// nothing leave nil fields rather than failing the page.
type ContextService struct {
	DB *gorm.DB
}

func NewContextService(db *gorm.DB) *ContextService {
	return &ContextService{DB: db}
}

func (s *ContextService) newestSection(ctx context.Context, key string) (*siteModel.SectionImageModel, error) {
	q := s.DB.WithContext(ctx).Order("section_image_created_at DESC")
	if key != "" {
		q = q.Where("section_image_key = ?", key)
	}
	var m siteModel.SectionImageModel
	err := q.First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Load builds the context. About prefers the "about" section image,
// then the newest section image, then the standalone about image.
// Bottom prefers "bottom", then the next newest section image that is
// not the about one.
func (s *ContextService) Load(ctx context.Context) (*CommonContext, error) {
	out := &CommonContext{}

	var settings siteModel.DepartmentSettingsModel
	err := s.DB.WithContext(ctx).First(&settings).Error
	if err == nil {
		out.DepartmentSettings = &settings
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var legacy siteModel.AboutImageModel
	err = s.DB.WithContext(ctx).Order("about_image_created_at DESC").First(&legacy).Error
	if err == nil {
		out.AboutImageLegacy = &legacy
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	about, err := s.newestSection(ctx, constants.SectionKeyAbout)
	if err != nil {
		return nil, err
	}
	if about == nil {
		about, err = s.newestSection(ctx, "")
		if err != nil {
			return nil, err
		}
	}
	out.AboutImage = about

	bottom, err := s.newestSection(ctx, constants.SectionKeyBottom)
	if err != nil {
		return nil, err
	}
	if bottom == nil && about != nil {
		var m siteModel.SectionImageModel
		err = s.DB.WithContext(ctx).
			Where("section_image_id <> ?", about.SectionImageID).
			Order("section_image_created_at DESC").
			First(&m).Error
		if err == nil {
			bottom = &m
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}
	out.BottomImage = bottom

	var cards []siteModel.HighlightCardModel
	if err := s.DB.WithContext(ctx).
		Where("highlight_is_active = ? AND highlight_image_url <> ''", true).
		Order("highlight_order ASC, highlight_created_at DESC").
		Find(&cards).Error; err != nil {
		return nil, err
	}
	out.HighlightCards = RepeatForScroll(cards, 8)

	return out, nil
}
