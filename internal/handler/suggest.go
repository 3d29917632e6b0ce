package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskboard/taskboard/internal/suggest"
)

// SuggestHandler serves AI-assisted tag suggestions.
type SuggestHandler struct {
	Tagger *suggest.Client
}

func NewSuggestHandler(t *suggest.Client) *SuggestHandler {
	return &SuggestHandler{Tagger: t}
}

type suggestReq struct {
	Description string `json:"description"`
}

// SuggestTags returns tag suggestions for a task description. This endpoint
// never fails: when the external capability is unreachable or returns
// garbage the client simply gets an empty list.
func (h *SuggestHandler) SuggestTags(c echo.Context) error {
	var req suggestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	tags := h.Tagger.Suggest(c.Request().Context(), req.Description)
	return c.JSON(http.StatusOK, echo.Map{"tags": tags})
}
