package helper

import (
	"github.com/gofiber/fiber/v2"

	oss "mycollege_backend/internals/helpers/oss"
)

// UploadedImage stores a multipart image field if present. Returns ""
// when the field was not sent.
func UploadedImage(c *fiber.Ctx, storage oss.Storage, field, category string) (string, error) {
	fh, err := c.FormFile(field)
	if err != nil || fh == nil {
		return "", nil
	}
	data, err := oss.ReadFormFile(fh)
	if err != nil {
		return "", err
	}
	return storage.UploadImage(c.UserContext(), category, fh.Filename, data)
}

// UploadedFile stores a multipart file field (pdf, video, captions) if
// present. Returns "" when the field was not sent.
func UploadedFile(c *fiber.Ctx, storage oss.Storage, field, category string) (string, error) {
	fh, err := c.FormFile(field)
	if err != nil || fh == nil {
		return "", nil
	}
	data, err := oss.ReadFormFile(fh)
	if err != nil {
		return "", err
	}
	return storage.UploadBytes(c.UserContext(), category, fh.Filename, data)
}
