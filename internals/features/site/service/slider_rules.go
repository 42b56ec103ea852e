package service

import (
	"mycollege_backend/internals/features/site/model"
	helper "mycollege_backend/internals/helpers"
)

// ValidateSlider requires at least one medium on a slide.
func ValidateSlider(m *model.SliderModel) error {
	if m.SliderImageURL == "" && m.SliderVideoURL == "" {
		return helper.NewFieldError("slider_image_url", "Please provide either an image or a video for the slider.")
	}
	return nil
}
