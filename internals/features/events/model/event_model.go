package model

import "time"

// EventModel is a department event. Media is optional in all three
// slots (poster image, self-hosted video, captions); an external video
// URL may point at YouTube or Vimeo.
type EventModel struct {
	EventID               string     `gorm:"column:event_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"event_id"`
	EventTitle            string     `gorm:"column:event_title;type:varchar(200);not null" json:"event_title"`
	EventSlug             string     `gorm:"column:event_slug;type:varchar(220);not null;uniqueIndex" json:"event_slug"`
	EventCategory         string     `gorm:"column:event_category;type:varchar(32);not null;default:'Other'" json:"event_category"`
	EventShortDescription string     `gorm:"column:event_short_description;type:varchar(300)" json:"event_short_description"`
	EventDescription      string     `gorm:"column:event_description;type:text" json:"event_description"`
	EventStartAt          time.Time  `gorm:"column:event_start_at;not null;index" json:"event_start_at"`
	EventEndAt            *time.Time `gorm:"column:event_end_at" json:"event_end_at"`
	EventVenue            string     `gorm:"column:event_venue;type:varchar(200)" json:"event_venue"`
	EventImageURL         string     `gorm:"column:event_image_url;type:text" json:"event_image_url"`
	EventVideoURL         string     `gorm:"column:event_video_url;type:text" json:"event_video_url"`
	EventExternalVideoURL string     `gorm:"column:event_external_video_url;type:text" json:"event_external_video_url"`
	EventCaptionsURL      string     `gorm:"column:event_captions_url;type:text" json:"event_captions_url"`
	EventRegistrationOpen bool       `gorm:"column:event_registration_open;default:false" json:"event_registration_open"`
	EventCreatedAt        time.Time  `gorm:"column:event_created_at;autoCreateTime" json:"event_created_at"`
}

func (EventModel) TableName() string {
	return "events"
}

// IsPast reports whether the event has ended (falls back to the start
// time when no end is set).
func (m *EventModel) IsPast(now time.Time) bool {
	ends := m.EventStartAt
	if m.EventEndAt != nil {
		ends = *m.EventEndAt
	}
	return ends.Before(now)
}
