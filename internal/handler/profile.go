package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/taskboard/taskboard/internal/middleware"
	"github.com/taskboard/taskboard/internal/repository"
)

// avatarMaxBytes caps embedded avatar images at roughly 1MB of decoded
// data.
const avatarMaxBytes = 1_000_000

type profileUpdateReq struct {
	Username *string `json:"username"`
	Avatar   *string `json:"avatar"`
}

// UpdateProfile applies a partial update to the caller's username and
// avatar. Oversized embedded images are rejected with 413 before any
// validation of the remaining fields.
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	var req profileUpdateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Avatar != nil && strings.HasPrefix(*req.Avatar, "data:image/") {
		// base64 inflates by 4/3, so decoded size is about len * 0.75
		if float64(len(*req.Avatar))*0.75 > avatarMaxBytes {
			return c.JSON(http.StatusRequestEntityTooLarge, echo.Map{"error": "avatar too large, upload an image under 1MB"})
		}
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	user, err := h.Users.UpdateProfile(ctx, middleware.UserID(c), repository.ProfilePatch{
		Username: req.Username,
		Avatar:   req.Avatar,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"user": user.Public()})
}
