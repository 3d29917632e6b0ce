package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"github.com/taskboard/taskboard/internal/repository"
	"github.com/taskboard/taskboard/internal/store"
)

// respondErr maps repository and store errors onto HTTP responses. The
// mapping is uniform across every endpoint: unknown ids are 404, foreign
// ownership is 403, bad input is 400 with the field-level message, a broken
// store is 503 and anything else is a 500 with the detail kept out of the
// response.
func respondErr(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repository.ErrValidation):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	case errors.Is(err, repository.ErrForbidden):
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	case errors.Is(err, repository.ErrEmailExists):
		return c.JSON(http.StatusConflict, echo.Map{"error": "user with this email already exists"})
	case errors.Is(err, store.ErrUnavailable):
		log.Errorf("store unavailable: %v", err)
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "storage unavailable"})
	default:
		log.Errorf("unexpected error: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}
}
