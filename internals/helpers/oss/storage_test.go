package oss

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectName(t *testing.T) {
	name := ObjectName("events", "Poster IMAGE.JPG")
	parts := strings.SplitN(name, "/", 2)
	require.Len(t, parts, 2)
	assert.Equal(t, "events", parts[0])
	assert.True(t, strings.HasSuffix(parts[1], ".jpg"))
	assert.Len(t, strings.TrimSuffix(parts[1], ".jpg"), 32)

	// nested categories keep their slash
	nested := ObjectName("gallery/photos", "pic.png")
	assert.True(t, strings.HasPrefix(nested, "gallery/photos/"))

	// no extension is fine
	bare := ObjectName("exams", "schedule")
	assert.False(t, strings.Contains(bare[len("exams/"):], "."))

	// names never collide
	assert.NotEqual(t, ObjectName("news", "a.webp"), ObjectName("news", "a.webp"))
}

func TestExtractKeyFromPublicURL(t *testing.T) {
	key, err := ExtractKeyFromPublicURL("https://bucket.oss-ap-south-1.aliyuncs.com/events/abc123.webp")
	require.NoError(t, err)
	assert.Equal(t, "events/abc123.webp", key)

	key, err = ExtractKeyFromPublicURL("https://cdn.example.com/gallery/photos/xyz.webp")
	require.NoError(t, err)
	assert.Equal(t, "gallery/photos/xyz.webp", key)

	_, err = ExtractKeyFromPublicURL("")
	assert.Error(t, err)

	_, err = ExtractKeyFromPublicURL("no-slashes-here")
	assert.Error(t, err)
}

func TestConvertToWebPRejectsNonImages(t *testing.T) {
	_, err := ConvertToWebP([]byte("just some text"), "notes.txt")
	require.ErrorIs(t, err, ErrUnsupportedImage)

	_, err = ConvertToWebP(nil, "empty.png")
	require.ErrorIs(t, err, ErrUnsupportedImage)
}
