package middleware // reusable HTTP middleware for the API

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskboard/taskboard/internal/utils"
)

// SessionCookie is the name of the cookie carrying the session token.
const SessionCookie = "session"

// SessionAuth returns an Echo middleware that verifies the session cookie
// and injects the authenticated user id into the request context under
// "user_id". The provided secret must match the one used when issuing
// tokens. A missing, tampered or expired cookie results in 401; handlers
// behind this middleware can rely on UserID(c) being non-empty.
func SessionAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
			}
			uid, ok := utils.ParseSessionToken(secret, cookie.Value)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired session"})
			}
			c.Set("user_id", uid)
			return next(c)
		}
	}
}

// UserID extracts the authenticated user id stored by SessionAuth. It
// returns "" when the request did not pass through the middleware.
func UserID(c echo.Context) string {
	uid, _ := c.Get("user_id").(string)
	return uid
}
