package model

import "time"

// SectionImageModel is a keyed section image ("about", "bottom", …).
// Keys are not unique; readers take the newest row per key.
type SectionImageModel struct {
	SectionImageID        string    `gorm:"column:section_image_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"section_image_id"`
	SectionImageKey       string    `gorm:"column:section_image_key;type:varchar(50);not null;index" json:"section_image_key"`
	SectionImageTitle     string    `gorm:"column:section_image_title;type:varchar(150)" json:"section_image_title"`
	SectionImageURL       string    `gorm:"column:section_image_url;type:text;not null" json:"section_image_url"`
	SectionImageAltText   string    `gorm:"column:section_image_alt_text;type:varchar(200)" json:"section_image_alt_text"`
	SectionImageCreatedAt time.Time `gorm:"column:section_image_created_at;autoCreateTime" json:"section_image_created_at"`
}

func (SectionImageModel) TableName() string {
	return "section_images"
}
