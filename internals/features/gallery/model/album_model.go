package model

import "time"

// AlbumModel groups gallery media. Deleting an album detaches its
// media instead of cascading.
type AlbumModel struct {
	AlbumID            string    `gorm:"column:album_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"album_id"`
	AlbumTitle         string    `gorm:"column:album_title;type:varchar(200);not null" json:"album_title"`
	AlbumSlug          string    `gorm:"column:album_slug;type:varchar(240);not null;uniqueIndex" json:"album_slug"`
	AlbumCoverImageURL string    `gorm:"column:album_cover_image_url;type:text" json:"album_cover_image_url"`
	AlbumYear          *int      `gorm:"column:album_year" json:"album_year"`
	AlbumCategory      string    `gorm:"column:album_category;type:varchar(40)" json:"album_category"`
	AlbumDescription   string    `gorm:"column:album_description;type:text" json:"album_description"`
	AlbumCreatedAt     time.Time `gorm:"column:album_created_at;autoCreateTime" json:"album_created_at"`
}

func (AlbumModel) TableName() string {
	return "albums"
}
