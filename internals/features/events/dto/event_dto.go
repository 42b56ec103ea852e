package dto

type SaveEventRequest struct {
	EventTitle            string `json:"event_title" form:"event_title" validate:"required,max=200"`
	EventSlug             string `json:"event_slug" form:"event_slug" validate:"omitempty,max=220"`
	EventCategory         string `json:"event_category" form:"event_category" validate:"omitempty,oneof=Workshop Seminar Symposium Competition 'Guest Lecture' Other"`
	EventShortDescription string `json:"event_short_description" form:"event_short_description" validate:"omitempty,max=300"`
	EventDescription      string `json:"event_description" form:"event_description"`
	// YYYY-MM-DDTHH:MM (or RFC3339).
	EventStartAt          string `json:"event_start_at" form:"event_start_at" validate:"required"`
	EventEndAt            string `json:"event_end_at" form:"event_end_at"`
	EventVenue            string `json:"event_venue" form:"event_venue" validate:"omitempty,max=200"`
	EventExternalVideoURL string `json:"event_external_video_url" form:"event_external_video_url" validate:"omitempty,url"`
	EventRegistrationOpen *bool  `json:"event_registration_open" form:"event_registration_open"`
}
