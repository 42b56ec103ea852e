package model

import "time"

// HighlightCardModel is a card in the home-page marquee. An image is
// mandatory, and at most three cards may be active with an image at the
// same time.
type HighlightCardModel struct {
	HighlightID        string    `gorm:"column:highlight_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"highlight_id"`
	HighlightTitle     string    `gorm:"column:highlight_title;type:varchar(150)" json:"highlight_title"`
	HighlightSubtitle  string    `gorm:"column:highlight_subtitle;type:varchar(250)" json:"highlight_subtitle"`
	HighlightImageURL  string    `gorm:"column:highlight_image_url;type:text;not null" json:"highlight_image_url"`
	HighlightLink      string    `gorm:"column:highlight_link;type:text" json:"highlight_link"`
	HighlightOrder     int       `gorm:"column:highlight_order;default:0" json:"highlight_order"`
	HighlightIsActive  bool      `gorm:"column:highlight_is_active;default:true" json:"highlight_is_active"`
	HighlightCreatedAt time.Time `gorm:"column:highlight_created_at;autoCreateTime" json:"highlight_created_at"`
}

func (HighlightCardModel) TableName() string {
	return "highlight_cards"
}
