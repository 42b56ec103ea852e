package dto

// Requests arrive as multipart forms (file fields handled separately by
// the controllers) or JSON.

type SaveSettingsRequest struct {
	SettingsSiteName   string `json:"settings_site_name" form:"settings_site_name"`
	SettingsAboutShort string `json:"settings_about_short" form:"settings_about_short"`
	SettingsAddress    string `json:"settings_address" form:"settings_address"`
	SettingsEmail      string `json:"settings_email" form:"settings_email" validate:"omitempty,email"`
	SettingsPhone      string `json:"settings_phone" form:"settings_phone" validate:"omitempty,max=40"`
	SettingsInstagram  string `json:"settings_instagram" form:"settings_instagram" validate:"omitempty,url"`
	SettingsFacebook   string `json:"settings_facebook" form:"settings_facebook" validate:"omitempty,url"`
	SettingsLinkedin   string `json:"settings_linkedin" form:"settings_linkedin" validate:"omitempty,url"`
	SettingsXTwitter   string `json:"settings_x_twitter" form:"settings_x_twitter" validate:"omitempty,url"`
}

type SaveAboutImageRequest struct {
	AboutImageTitle   string `json:"about_image_title" form:"about_image_title" validate:"omitempty,max=150"`
	AboutImageAltText string `json:"about_image_alt_text" form:"about_image_alt_text" validate:"omitempty,max=200"`
}

type SaveSectionImageRequest struct {
	SectionImageKey     string `json:"section_image_key" form:"section_image_key" validate:"required,max=50"`
	SectionImageTitle   string `json:"section_image_title" form:"section_image_title" validate:"omitempty,max=150"`
	SectionImageAltText string `json:"section_image_alt_text" form:"section_image_alt_text" validate:"omitempty,max=200"`
}

type SaveSliderRequest struct {
	SliderTitle    string `json:"slider_title" form:"slider_title" validate:"omitempty,max=200"`
	SliderCaption  string `json:"slider_caption" form:"slider_caption"`
	SliderIsActive *bool  `json:"slider_is_active" form:"slider_is_active"`
}

type SaveHighlightRequest struct {
	HighlightTitle    string `json:"highlight_title" form:"highlight_title" validate:"omitempty,max=150"`
	HighlightSubtitle string `json:"highlight_subtitle" form:"highlight_subtitle" validate:"omitempty,max=250"`
	HighlightLink     string `json:"highlight_link" form:"highlight_link" validate:"omitempty,url"`
	HighlightOrder    *int   `json:"highlight_order" form:"highlight_order"`
	HighlightIsActive *bool  `json:"highlight_is_active" form:"highlight_is_active"`
}
