package service

import (
	"context"

	"gorm.io/gorm"

	"mycollege_backend/internals/constants"
	"mycollege_backend/internals/features/gallery/model"
	helper "mycollege_backend/internals/helpers"
)

// AssignAlbumSlug fills AlbumSlug when empty: slugified title, made
// unique with numeric suffixes, excluding the row itself on update.
func AssignAlbumSlug(ctx context.Context, db *gorm.DB, m *model.AlbumModel) error {
	if m.AlbumSlug != "" {
		return nil
	}
	base := helper.Slugify(m.AlbumTitle, constants.SlugMaxAlbum)
	slug, err := helper.EnsureUniqueSlug(ctx, base, constants.SlugMaxAlbum,
		helper.SlugTakenInTable(db, "albums", "album_slug", "album_id", m.AlbumID))
	if err != nil {
		return err
	}
	m.AlbumSlug = slug
	return nil
}

type AlbumStore interface {
	// InTx runs fn against a transactional view of the store.
	InTx(ctx context.Context, fn func(tx AlbumStore) error) error
	DetachMedia(ctx context.Context, albumID string) error
	DeleteAlbum(ctx context.Context, albumID string) error
}

// AlbumService owns the delete rule: media rows outlive their album,
// so the album's refs are nulled before the row goes, atomically.
type AlbumService struct {
	Store AlbumStore
}

func NewAlbumService(store AlbumStore) *AlbumService {
	return &AlbumService{Store: store}
}

func (s *AlbumService) Delete(ctx context.Context, albumID string) error {
	return s.Store.InTx(ctx, func(tx AlbumStore) error {
		if err := tx.DetachMedia(ctx, albumID); err != nil {
			return err
		}
		return tx.DeleteAlbum(ctx, albumID)
	})
}

// GORM-backed store.

type gormAlbumStore struct{ db *gorm.DB }

func NewGormAlbumStore(db *gorm.DB) AlbumStore {
	return &gormAlbumStore{db: db}
}

func (s *gormAlbumStore) InTx(ctx context.Context, fn func(tx AlbumStore) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormAlbumStore{db: tx})
	})
}

func (s *gormAlbumStore) DetachMedia(ctx context.Context, albumID string) error {
	return s.db.WithContext(ctx).
		Model(&model.GalleryMediaModel{}).
		Where("media_album_id = ?", albumID).
		Update("media_album_id", nil).Error
}

func (s *gormAlbumStore) DeleteAlbum(ctx context.Context, albumID string) error {
	return s.db.WithContext(ctx).
		Delete(&model.AlbumModel{}, "album_id = ?", albumID).Error
}
