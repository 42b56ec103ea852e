package service

import (
	"context"
	"regexp"
	"strings"
	"time"

	"gorm.io/gorm"

	"mycollege_backend/internals/constants"
	"mycollege_backend/internals/features/events/model"
	helper "mycollege_backend/internals/helpers"
)

var eventTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseEventTime accepts the datetime formats the admin form sends.
func ParseEventTime(field, raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range eventTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, helper.NewFieldError(field, "Invalid date/time value.")
}

// ValidateEventTimes rejects an end before the start.
func ValidateEventTimes(start time.Time, end *time.Time) error {
	if end != nil && end.Before(start) {
		return helper.NewFieldError("event_end_at", "End time must be after start time.")
	}
	return nil
}

var (
	reYouTube = regexp.MustCompile(`(?:v=|youtu\.be/)([A-Za-z0-9_\-]{6,})`)
	reVimeo   = regexp.MustCompile(`vimeo\.com/(?:video/)?(\d+)`)
)

// EmbedURL normalizes a YouTube or Vimeo link to its embeddable form.
// Unknown providers pass through unchanged.
func EmbedURL(raw string) string {
	url := strings.TrimSpace(raw)
	if url == "" {
		return ""
	}
	if m := reYouTube.FindStringSubmatch(url); m != nil {
		return "https://www.youtube.com/embed/" + m[1]
	}
	if m := reVimeo.FindStringSubmatch(url); m != nil {
		return "https://player.vimeo.com/video/" + m[1]
	}
	return url
}

// OwnedFileURLs lists every stored object an event owns, for cleanup on
// delete.
func OwnedFileURLs(m *model.EventModel) []string {
	var urls []string
	for _, u := range []string{m.EventImageURL, m.EventVideoURL, m.EventCaptionsURL} {
		if u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}

// AssignEventSlug fills EventSlug when empty: slugified title, made
// unique with numeric suffixes, excluding the row itself on update.
func AssignEventSlug(ctx context.Context, db *gorm.DB, m *model.EventModel) error {
	if m.EventSlug != "" {
		return nil
	}
	base := helper.Slugify(m.EventTitle, constants.SlugMaxEvent)
	slug, err := helper.EnsureUniqueSlug(ctx, base, constants.SlugMaxEvent,
		helper.SlugTakenInTable(db, "events", "event_slug", "event_id", m.EventID))
	if err != nil {
		return err
	}
	m.EventSlug = slug
	return nil
}
