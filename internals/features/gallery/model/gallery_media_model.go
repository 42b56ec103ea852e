package model

import "time"

// GalleryMediaModel is one photo or video in the gallery, optionally
// attached to an album. The album reference is weak: it survives album
// deletion as NULL.
type GalleryMediaModel struct {
	MediaID        string    `gorm:"column:media_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"media_id"`
	MediaAlbumID   *string   `gorm:"column:media_album_id;type:uuid;index" json:"media_album_id"`
	MediaType      string    `gorm:"column:media_type;type:varchar(10);not null;default:'photo'" json:"media_type"`
	MediaImageURL  string    `gorm:"column:media_image_url;type:text" json:"media_image_url"`
	MediaVideoURL  string    `gorm:"column:media_video_url;type:text" json:"media_video_url"`
	MediaCaption   string    `gorm:"column:media_caption;type:varchar(200)" json:"media_caption"`
	MediaYear      *int      `gorm:"column:media_year" json:"media_year"`
	MediaCreatedAt time.Time `gorm:"column:media_created_at;autoCreateTime" json:"media_created_at"`
}

func (GalleryMediaModel) TableName() string {
	return "gallery_media"
}
