package dto

type SaveNewsRequest struct {
	NewsTitle      string `json:"news_title" form:"news_title" validate:"required,max=220"`
	NewsSlug       string `json:"news_slug" form:"news_slug" validate:"omitempty,max=240"`
	NewsCategory   string `json:"news_category" form:"news_category" validate:"omitempty,oneof=Announcement Achievement Placement Research Notice General"`
	NewsSummary    string `json:"news_summary" form:"news_summary"`
	NewsBody       string `json:"news_body" form:"news_body"`
	NewsIsFeatured *bool  `json:"news_is_featured" form:"news_is_featured"`
}

// Bulk feature / unfeature action payload.
type NewsBulkRequest struct {
	NewsIDs []string `json:"news_ids" form:"news_ids" validate:"required,min=1,dive,uuid"`
}
