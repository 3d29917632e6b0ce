package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/taskboard/taskboard/internal/events"
	"github.com/taskboard/taskboard/internal/middleware"
	"github.com/taskboard/taskboard/internal/model"
	"github.com/taskboard/taskboard/internal/repository"
)

// TaskHandler bundles dependencies for the task endpoints.
type TaskHandler struct {
	Tasks  *repository.TaskRepo
	Events *events.Publisher
}

func NewTaskHandler(t *repository.TaskRepo, ev *events.Publisher) *TaskHandler {
	return &TaskHandler{Tasks: t, Events: ev}
}

type taskCreateReq struct {
	Title       string   `json:"title"`
	BoardID     string   `json:"boardId"`
	Description string   `json:"description"`
	Status      string   `json:"status"`
	DueDate     *string  `json:"dueDate"`
	Tags        []string `json:"tags"`
}

// taskUpdateReq is a three-state partial payload: a nil pointer means the
// field was absent. DueDate is raw JSON so an explicit null (clear the due
// date) can be told apart from the field not being sent at all.
type taskUpdateReq struct {
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	Status      *string         `json:"status"`
	DueDate     json.RawMessage `json:"dueDate"`
	Tags        *[]string       `json:"tags"`
	BoardID     *string         `json:"boardId"`
}

var jsonNull = []byte("null")

// List returns every task on the caller's boards.
func (h *TaskHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	tasks, err := h.Tasks.ListForUser(ctx, middleware.UserID(c))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"tasks": tasks})
}

// Create adds a task to one of the caller's boards.
func (h *TaskHandler) Create(c echo.Context) error {
	var req taskCreateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.BoardID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "boardId is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	uid := middleware.UserID(c)
	task, err := h.Tasks.Create(ctx, uid, req.BoardID, repository.NewTask{
		Title:       req.Title,
		Description: req.Description,
		Status:      model.TaskStatus(req.Status),
		DueDate:     req.DueDate,
		Tags:        req.Tags,
	})
	if err != nil {
		return respondErr(c, err)
	}
	_ = h.Events.Publish(ctx, events.Event{Kind: events.TaskCreated, EntityID: task.ID, BoardID: task.BoardID, UserID: uid})
	return c.JSON(http.StatusCreated, task)
}

// Update applies a partial update to a task, including moving it to a
// different board.
func (h *TaskHandler) Update(c echo.Context) error {
	var req taskUpdateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	patch := repository.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		Status:      (*model.TaskStatus)(req.Status),
		Tags:        req.Tags,
		BoardID:     req.BoardID,
	}
	if len(req.DueDate) > 0 {
		patch.DueDateSet = true
		if !bytes.Equal(bytes.TrimSpace(req.DueDate), jsonNull) {
			var s string
			if err := json.Unmarshal(req.DueDate, &s); err != nil {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": "dueDate must be a string or null"})
			}
			patch.DueDate = &s
		}
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	uid := middleware.UserID(c)
	task, err := h.Tasks.Update(ctx, c.Param("id"), uid, patch)
	if err != nil {
		return respondErr(c, err)
	}
	_ = h.Events.Publish(ctx, events.Event{Kind: events.TaskUpdated, EntityID: task.ID, BoardID: task.BoardID, UserID: uid})
	return c.JSON(http.StatusOK, task)
}

// Toggle flips a task between completed and not-started.
func (h *TaskHandler) Toggle(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	uid := middleware.UserID(c)
	task, err := h.Tasks.ToggleComplete(ctx, c.Param("id"), uid)
	if err != nil {
		return respondErr(c, err)
	}
	_ = h.Events.Publish(ctx, events.Event{Kind: events.TaskUpdated, EntityID: task.ID, BoardID: task.BoardID, UserID: uid})
	return c.JSON(http.StatusOK, task)
}

// Delete removes a task.
func (h *TaskHandler) Delete(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	uid := middleware.UserID(c)
	taskID := c.Param("id")
	if err := h.Tasks.Delete(ctx, taskID, uid); err != nil {
		return respondErr(c, err)
	}
	_ = h.Events.Publish(ctx, events.Event{Kind: events.TaskDeleted, EntityID: taskID, UserID: uid})
	return c.JSON(http.StatusOK, echo.Map{"message": "task deleted"})
}
