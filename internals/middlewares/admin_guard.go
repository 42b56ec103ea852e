package middlewares

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"

	"mycollege_backend/internals/configs"
)

// AdminGuard is a stand-in for the real auth layer: admin routes require
// the static token from ADMIN_API_TOKEN, via X-Admin-Token or a Bearer
// Authorization header. Swap this handler out when a session layer lands.
func AdminGuard() fiber.Handler {
	return func(c *fiber.Ctx) error {
		want := configs.AdminToken
		if want == "" {
			return fiber.NewError(fiber.StatusServiceUnavailable, "admin API disabled: ADMIN_API_TOKEN not configured")
		}

		got := c.Get("X-Admin-Token")
		if got == "" {
			auth := c.Get(fiber.HeaderAuthorization)
			if strings.HasPrefix(auth, "Bearer ") {
				got = strings.TrimPrefix(auth, "Bearer ")
			}
		}
		if subtle.ConstantTimeCompare([]byte(got), []byte(want)) != 1 {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid admin token")
		}
		return c.Next()
	}
}
