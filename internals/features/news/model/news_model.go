package model

import "time"

// NewsModel is a published news item. One item can be flagged featured
// for the news page hero; with none flagged the newest takes the slot.
type NewsModel struct {
	NewsID          string    `gorm:"column:news_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"news_id"`
	NewsTitle       string    `gorm:"column:news_title;type:varchar(220);not null" json:"news_title"`
	NewsSlug        string    `gorm:"column:news_slug;type:varchar(240);not null;uniqueIndex" json:"news_slug"`
	NewsCategory    string    `gorm:"column:news_category;type:varchar(20);not null;default:'General'" json:"news_category"`
	NewsSummary     string    `gorm:"column:news_summary;type:text" json:"news_summary"`
	NewsBody        string    `gorm:"column:news_body;type:text" json:"news_body"`
	NewsImageURL    string    `gorm:"column:news_image_url;type:text" json:"news_image_url"`
	NewsPublishedAt time.Time `gorm:"column:news_published_at;autoCreateTime;index" json:"news_published_at"`
	NewsIsFeatured  bool      `gorm:"column:news_is_featured;default:false" json:"news_is_featured"`
}

func (NewsModel) TableName() string {
	return "news"
}
