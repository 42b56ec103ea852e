package model

import "time"

// SliderModel is a home-page slide. An image or a video is required.
type SliderModel struct {
	SliderID        string    `gorm:"column:slider_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"slider_id"`
	SliderTitle     string    `gorm:"column:slider_title;type:varchar(200)" json:"slider_title"`
	SliderImageURL  string    `gorm:"column:slider_image_url;type:text" json:"slider_image_url"`
	SliderVideoURL  string    `gorm:"column:slider_video_url;type:text" json:"slider_video_url"`
	SliderCaption   string    `gorm:"column:slider_caption;type:text" json:"slider_caption"`
	SliderIsActive  bool      `gorm:"column:slider_is_active;default:true" json:"slider_is_active"`
	SliderCreatedAt time.Time `gorm:"column:slider_created_at;autoCreateTime" json:"slider_created_at"`
}

func (SliderModel) TableName() string {
	return "sliders"
}
