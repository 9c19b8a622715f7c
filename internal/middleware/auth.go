package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
)

// BearerAuth returns an Echo middleware that requires the Authorization
// header to equal "Bearer <secret>" exactly. The comparison is constant-time
// to avoid a timing side channel on the shared secret. An empty secret fails
// closed: every request is rejected.
func BearerAuth(secret string) echo.MiddlewareFunc {
	expected := []byte("Bearer " + secret)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			got := []byte(c.Request().Header.Get("Authorization"))

			if secret == "" ||
				len(got) != len(expected) ||
				subtle.ConstantTimeCompare(got, expected) != 1 {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "Unauthorized",
				})
			}

			return next(c)
		}
	}
}
