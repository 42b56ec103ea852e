package service

import (
	"context"
	"log"

	"gorm.io/gorm"

	"mycollege_backend/internals/features/site/model"
	oss "mycollege_backend/internals/helpers/oss"
)

type AboutStore interface {
	// ReplaceAll deletes every existing row and inserts m in one
	// transaction, returning the image URLs of the purged rows.
	ReplaceAll(ctx context.Context, m *model.AboutImageModel) (purgedURLs []string, err error)
}

// AboutService implements the "last write replaces" behavior of the
// about image: creation is always admitted, priors are purged with it.
type AboutService struct {
	Store AboutStore
	Files oss.Storage
}

func NewAboutService(store AboutStore, files oss.Storage) *AboutService {
	return &AboutService{Store: store, Files: files}
}

// Replace inserts m as the sole about image. Stored files of the purged
// rows are deleted after the transaction commits; a failed file delete
// is logged, never rolled back into the write.
func (s *AboutService) Replace(ctx context.Context, m *model.AboutImageModel) error {
	purged, err := s.Store.ReplaceAll(ctx, m)
	if err != nil {
		return err
	}
	for _, url := range purged {
		if url == "" || url == m.AboutImageURL {
			continue
		}
		if err := s.Files.Delete(ctx, url); err != nil {
			log.Printf("[ABOUT] orphaned file after purge: %s (%v)", url, err)
		}
	}
	return nil
}

// GORM-backed store.

type gormAboutStore struct{ db *gorm.DB }

func NewGormAboutStore(db *gorm.DB) AboutStore {
	return &gormAboutStore{db: db}
}

func (s *gormAboutStore) ReplaceAll(ctx context.Context, m *model.AboutImageModel) ([]string, error) {
	var purged []string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var old []model.AboutImageModel
		if err := tx.Find(&old).Error; err != nil {
			return err
		}
		for _, o := range old {
			purged = append(purged, o.AboutImageURL)
		}
		if len(old) > 0 {
			if err := tx.Where("1 = 1").Delete(&model.AboutImageModel{}).Error; err != nil {
				return err
			}
		}
		return tx.Create(m).Error
	})
	if err != nil {
		return nil, err
	}
	return purged, nil
}
