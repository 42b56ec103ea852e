package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mycollege_backend/internals/features/events/model"
	helper "mycollege_backend/internals/helpers"
)

func TestParseEventTime(t *testing.T) {
	for _, raw := range []string{
		"2026-09-01T10:30:00Z",
		"2026-09-01T10:30",
		"2026-09-01 10:30",
		"2026-09-01",
	} {
		got, err := ParseEventTime("event_start_at", raw)
		require.NoError(t, err, raw)
		assert.Equal(t, 2026, got.Year())
	}

	_, err := ParseEventTime("event_start_at", "01/09/2026 10:30")
	require.Error(t, err)
	fe, ok := helper.AsFieldError(err)
	require.True(t, ok)
	assert.Equal(t, "event_start_at", fe.Field)
}

func TestValidateEventTimes(t *testing.T) {
	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	t.Run("no end is fine", func(t *testing.T) {
		assert.NoError(t, ValidateEventTimes(start, nil))
	})

	t.Run("end after start is fine", func(t *testing.T) {
		end := start.Add(2 * time.Hour)
		assert.NoError(t, ValidateEventTimes(start, &end))
	})

	t.Run("end before start rejected", func(t *testing.T) {
		end := start.Add(-time.Hour)
		err := ValidateEventTimes(start, &end)
		require.Error(t, err)
		fe, ok := helper.AsFieldError(err)
		require.True(t, ok)
		assert.Equal(t, "event_end_at", fe.Field)
		assert.Equal(t, "End time must be after start time.", fe.Message)
	})
}

func TestEmbedURL(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "https://www.youtube.com/embed/dQw4w9WgXcQ"},
		{"https://youtu.be/dQw4w9WgXcQ", "https://www.youtube.com/embed/dQw4w9WgXcQ"},
		{"https://vimeo.com/76979871", "https://player.vimeo.com/video/76979871"},
		{"https://player.vimeo.com/video/76979871", "https://player.vimeo.com/video/76979871"},
		{"https://example.com/talk.mp4", "https://example.com/talk.mp4"},
		{"", ""},
		{"   ", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, EmbedURL(tc.in), tc.in)
	}
}

func TestOwnedFileURLs(t *testing.T) {
	m := &model.EventModel{
		EventImageURL:    "https://cdn.example.com/events/a.webp",
		EventVideoURL:    "https://cdn.example.com/events/a.mp4",
		EventCaptionsURL: "https://cdn.example.com/events/a.vtt",
	}
	assert.Len(t, OwnedFileURLs(m), 3)

	m.EventVideoURL = ""
	urls := OwnedFileURLs(m)
	assert.Len(t, urls, 2)
	assert.NotContains(t, urls, "")
}
