package helper

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	oss "mycollege_backend/internals/helpers/oss"
)

func TestUploadError(t *testing.T) {
	app := fiber.New()

	t.Run("oversized file is the client's fault", func(t *testing.T) {
		c := ctxWithQuery(t, app, "/upload")
		_ = UploadError(c, oss.ErrFileTooLarge, "Image upload failed")
		assert.Equal(t, fiber.StatusBadRequest, c.Response().StatusCode())
	})

	t.Run("unreadable image is the client's fault", func(t *testing.T) {
		c := ctxWithQuery(t, app, "/upload")
		err := fmt.Errorf("%w: text/plain / .txt", oss.ErrUnsupportedImage)
		_ = UploadError(c, err, "Image upload failed")
		assert.Equal(t, fiber.StatusBadRequest, c.Response().StatusCode())
	})

	t.Run("storage failure stays a gateway error", func(t *testing.T) {
		c := ctxWithQuery(t, app, "/upload")
		_ = UploadError(c, errors.New("connection reset"), "Image upload failed")
		assert.Equal(t, fiber.StatusBadGateway, c.Response().StatusCode())
	})
}
