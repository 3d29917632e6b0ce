package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/taskboard/taskboard/internal/events"
	"github.com/taskboard/taskboard/internal/middleware"
	"github.com/taskboard/taskboard/internal/repository"
)

// BoardHandler bundles dependencies for the board endpoints.
type BoardHandler struct {
	Boards *repository.BoardRepo
	Events *events.Publisher
}

func NewBoardHandler(b *repository.BoardRepo, ev *events.Publisher) *BoardHandler {
	return &BoardHandler{Boards: b, Events: ev}
}

type boardReq struct {
	Name string `json:"name"`
}

// List returns the caller's boards.
func (h *BoardHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	boards, err := h.Boards.List(ctx, middleware.UserID(c))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"boards": boards})
}

// Create makes a new board for the caller.
func (h *BoardHandler) Create(c echo.Context) error {
	var req boardReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	uid := middleware.UserID(c)
	board, err := h.Boards.Create(ctx, uid, req.Name)
	if err != nil {
		return respondErr(c, err)
	}
	_ = h.Events.Publish(ctx, events.Event{Kind: events.BoardCreated, EntityID: board.ID, UserID: uid})
	return c.JSON(http.StatusCreated, board)
}

// Rename changes a board's display name.
func (h *BoardHandler) Rename(c echo.Context) error {
	var req boardReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	uid := middleware.UserID(c)
	board, err := h.Boards.Rename(ctx, c.Param("id"), uid, req.Name)
	if err != nil {
		return respondErr(c, err)
	}
	_ = h.Events.Publish(ctx, events.Event{Kind: events.BoardRenamed, EntityID: board.ID, UserID: uid})
	return c.JSON(http.StatusOK, board)
}

// Delete removes a board and all of its tasks.
func (h *BoardHandler) Delete(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	uid := middleware.UserID(c)
	boardID := c.Param("id")
	if err := h.Boards.Delete(ctx, boardID, uid); err != nil {
		return respondErr(c, err)
	}
	_ = h.Events.Publish(ctx, events.Event{Kind: events.BoardDeleted, EntityID: boardID, UserID: uid})
	return c.JSON(http.StatusOK, echo.Map{"message": "board deleted"})
}
