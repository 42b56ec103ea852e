package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mycollege_backend/internals/features/gallery/model"
)

type mockAlbumStore struct {
	albums map[string]*model.AlbumModel
	media  map[string]*model.GalleryMediaModel
}

func newMockAlbumStore() *mockAlbumStore {
	return &mockAlbumStore{
		albums: map[string]*model.AlbumModel{},
		media:  map[string]*model.GalleryMediaModel{},
	}
}

func (s *mockAlbumStore) InTx(ctx context.Context, fn func(tx AlbumStore) error) error {
	return fn(s)
}

func (s *mockAlbumStore) DetachMedia(_ context.Context, albumID string) error {
	for _, m := range s.media {
		if m.MediaAlbumID != nil && *m.MediaAlbumID == albumID {
			m.MediaAlbumID = nil
		}
	}
	return nil
}

func (s *mockAlbumStore) DeleteAlbum(_ context.Context, albumID string) error {
	delete(s.albums, albumID)
	return nil
}

func TestAlbumDeleteDetachesMedia(t *testing.T) {
	store := newMockAlbumStore()
	svc := NewAlbumService(store)

	albumID := "album-1"
	otherID := "album-2"
	store.albums[albumID] = &model.AlbumModel{AlbumID: albumID, AlbumTitle: "Annual Day 2025"}
	store.albums[otherID] = &model.AlbumModel{AlbumID: otherID, AlbumTitle: "Tech Fest"}
	store.media["m1"] = &model.GalleryMediaModel{MediaID: "m1", MediaAlbumID: &albumID}
	store.media["m2"] = &model.GalleryMediaModel{MediaID: "m2", MediaAlbumID: &albumID}
	store.media["m3"] = &model.GalleryMediaModel{MediaID: "m3", MediaAlbumID: &otherID}

	require.NoError(t, svc.Delete(context.Background(), albumID))

	assert.NotContains(t, store.albums, albumID)
	assert.Nil(t, store.media["m1"].MediaAlbumID)
	assert.Nil(t, store.media["m2"].MediaAlbumID)

	// media of other albums keep their reference
	require.NotNil(t, store.media["m3"].MediaAlbumID)
	assert.Equal(t, otherID, *store.media["m3"].MediaAlbumID)
}
