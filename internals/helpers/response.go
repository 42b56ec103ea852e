package helper

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	oss "mycollege_backend/internals/helpers/oss"
)

// Success response, default 200.
func Success(c *fiber.Ctx, message string, data interface{}) error {
	return SuccessWithCode(c, fiber.StatusOK, message, data)
}

// Success response with custom code (e.g. 201 for created).
func SuccessWithCode(c *fiber.Ctx, code int, message string, data interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

func Error(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "error",
		"message": message,
	})
}

func ErrorWithDetails(c *fiber.Ctx, code int, message string, errors interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "error",
		"message": message,
		"errors":  errors,
	})
}

// FromServiceError maps rules-engine errors onto HTTP responses:
// FieldError → 400 with the message verbatim, ErrNotFound → 404,
// anything else → 500. Error kinds are never rewritten on the way out.
func FromServiceError(c *fiber.Ctx, err error) error {
	if fe, ok := AsFieldError(err); ok {
		if fe.Field != "" {
			return ErrorWithDetails(c, fiber.StatusBadRequest, fe.Message, fiber.Map{fe.Field: fe.Message})
		}
		return Error(c, fiber.StatusBadRequest, fe.Message)
	}
	if errors.Is(err, ErrNotFound) {
		return Error(c, fiber.StatusNotFound, "not found")
	}
	return Error(c, fiber.StatusInternalServerError, err.Error())
}

// UploadError maps a file-upload failure. Client-side mistakes (file
// too large, unreadable image) come back as 400; anything else is a
// storage problem and stays a 502.
func UploadError(c *fiber.Ctx, err error, message string) error {
	switch {
	case errors.Is(err, oss.ErrFileTooLarge):
		return Error(c, fiber.StatusBadRequest, "Uploaded file exceeds the size limit")
	case errors.Is(err, oss.ErrUnsupportedImage):
		return Error(c, fiber.StatusBadRequest, "Uploaded file is not a readable image")
	default:
		return Error(c, fiber.StatusBadGateway, message)
	}
}

// Maps validator.v10 field errors to a field→tag map.
func ValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return Error(c, fiber.StatusBadRequest, "Invalid input")
	}

	errorsMap := make(map[string]string)
	for _, fieldErr := range ve {
		errorsMap[fieldErr.Field()] = fieldErr.Tag()
	}

	return ErrorWithDetails(c, fiber.StatusBadRequest, "Validation failed", errorsMap)
}
