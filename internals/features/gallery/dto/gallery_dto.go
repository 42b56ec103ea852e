package dto

type SaveAlbumRequest struct {
	AlbumTitle       string `json:"album_title" form:"album_title" validate:"required,max=200"`
	AlbumSlug        string `json:"album_slug" form:"album_slug" validate:"omitempty,max=240"`
	AlbumYear        *int   `json:"album_year" form:"album_year" validate:"omitempty,min=2000"`
	AlbumCategory    string `json:"album_category" form:"album_category" validate:"omitempty,oneof=event workshop annual misc"`
	AlbumDescription string `json:"album_description" form:"album_description"`
}

type SaveGalleryMediaRequest struct {
	MediaAlbumID *string `json:"media_album_id" form:"media_album_id" validate:"omitempty,uuid"`
	MediaType    string  `json:"media_type" form:"media_type" validate:"omitempty,oneof=photo video"`
	MediaCaption string  `json:"media_caption" form:"media_caption" validate:"omitempty,max=200"`
	MediaYear    *int    `json:"media_year" form:"media_year" validate:"omitempty,min=2000"`
}
