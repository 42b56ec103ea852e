package model

import "time"

// AboutImageModel keeps the single about-section image. An insert purges
// every prior row in the same transaction ("last write replaces").
type AboutImageModel struct {
	AboutImageID        string    `gorm:"column:about_image_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"about_image_id"`
	AboutImageTitle     string    `gorm:"column:about_image_title;type:varchar(150)" json:"about_image_title"`
	AboutImageURL       string    `gorm:"column:about_image_url;type:text;not null" json:"about_image_url"`
	AboutImageAltText   string    `gorm:"column:about_image_alt_text;type:varchar(200)" json:"about_image_alt_text"`
	AboutImageCreatedAt time.Time `gorm:"column:about_image_created_at;autoCreateTime" json:"about_image_created_at"`
}

func (AboutImageModel) TableName() string {
	return "about_images"
}
