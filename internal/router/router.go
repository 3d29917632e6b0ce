package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/taskboard/taskboard/internal/config"
	"github.com/taskboard/taskboard/internal/handler"
	"github.com/taskboard/taskboard/internal/middleware"
)

// RegisterRoutes wires every endpoint onto the Echo instance. Signup, login
// and the health check are public; everything else sits behind the session
// cookie middleware.
func RegisterRoutes(e *echo.Echo, cfg config.Config, a *handler.AuthHandler, b *handler.BoardHandler, t *handler.TaskHandler, s *handler.SuggestHandler) {
	e.GET("/healthz", handler.Health)

	// Account endpoints that create or clear a session.
	g := e.Group("/v1/auth")
	g.POST("/signup", a.Signup)
	g.POST("/login", a.Login)
	g.POST("/logout", a.Logout)

	// Everything below requires a valid session cookie.
	auth := e.Group("/v1")
	auth.Use(middleware.SessionAuth(cfg.JWTSecret))

	auth.GET("/me", a.Me)
	auth.PATCH("/profile", a.UpdateProfile)

	auth.GET("/boards", b.List)
	auth.POST("/boards", b.Create)
	auth.PATCH("/boards/:id", b.Rename)
	auth.DELETE("/boards/:id", b.Delete)

	auth.GET("/tasks", t.List)
	auth.POST("/tasks", t.Create)
	auth.PUT("/tasks/:id", t.Update)
	auth.DELETE("/tasks/:id", t.Delete)
	auth.POST("/tasks/:id/toggle", t.Toggle)

	auth.POST("/suggest-tags", s.SuggestTags)
}
