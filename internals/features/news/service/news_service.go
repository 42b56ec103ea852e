package service

import (
	"context"

	"gorm.io/gorm"

	"mycollege_backend/internals/constants"
	"mycollege_backend/internals/features/news/model"
	helper "mycollege_backend/internals/helpers"
)

// AssignNewsSlug fills NewsSlug when empty: slugified title, made
// unique with numeric suffixes, excluding the row itself on update.
func AssignNewsSlug(ctx context.Context, db *gorm.DB, m *model.NewsModel) error {
	if m.NewsSlug != "" {
		return nil
	}
	base := helper.Slugify(m.NewsTitle, constants.SlugMaxNews)
	slug, err := helper.EnsureUniqueSlug(ctx, base, constants.SlugMaxNews,
		helper.SlugTakenInTable(db, "news", "news_slug", "news_id", m.NewsID))
	if err != nil {
		return err
	}
	m.NewsSlug = slug
	return nil
}
