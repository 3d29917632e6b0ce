package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/taskboard/taskboard/internal/model"
	"github.com/taskboard/taskboard/internal/store"
)

// TaskRepo implements task operations over the document store.
type TaskRepo struct {
	Store store.Store
}

func NewTaskRepo(s store.Store) *TaskRepo { return &TaskRepo{Store: s} }

// NewTask carries the fields accepted when creating a task. Optional fields
// default to the zero description, no due date and an empty tag list.
type NewTask struct {
	Title       string
	Description string
	Status      model.TaskStatus
	DueDate     *string
	Tags        []string
}

// TaskPatch is a partial update: only non-nil fields replace the stored
// values. DueDateSet distinguishes "clear the due date" (set, nil value)
// from "leave it alone" (not set).
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *model.TaskStatus
	DueDate     *string
	DueDateSet  bool
	Tags        *[]string
	BoardID     *string
}

func validDueDate(s *string) error {
	if s == nil {
		return nil
	}
	if _, err := time.Parse(time.RFC3339, *s); err != nil {
		return validationErr("dueDate must be an ISO-8601 timestamp")
	}
	return nil
}

// ListForUser returns every task whose parent board belongs to userID.
// Orphaned tasks (board already deleted) are never listed.
func (r *TaskRepo) ListForUser(ctx context.Context, userID string) ([]model.Task, error) {
	db, err := r.Store.Load(ctx)
	if err != nil {
		return nil, err
	}
	owned := make(map[string]bool, len(db.Boards))
	for _, b := range db.Boards {
		if b.UserID == userID {
			owned[b.ID] = true
		}
	}
	tasks := []model.Task{}
	for _, t := range db.Tasks {
		if owned[t.BoardID] {
			tasks = append(tasks, t)
		}
	}
	return tasks, nil
}

// Get returns a single task after the usual ownership check.
func (r *TaskRepo) Get(ctx context.Context, taskID, userID string) (model.Task, error) {
	db, err := r.Store.Load(ctx)
	if err != nil {
		return model.Task{}, err
	}
	t, err := ownedTask(db, taskID, userID)
	if err != nil {
		return model.Task{}, err
	}
	return *t, nil
}

// Create authorizes board ownership, validates the fields and appends the
// task. The ownership check is retried with one fresh load: a remote-object
// backend can serve a stale read just after the board was created.
func (r *TaskRepo) Create(ctx context.Context, userID, boardID string, in NewTask) (model.Task, error) {
	db, err := r.Store.Load(ctx)
	if err != nil {
		return model.Task{}, err
	}
	if _, err = ownedBoard(db, boardID, userID); err != nil {
		db, err2 := r.Store.Load(ctx)
		if err2 != nil {
			return model.Task{}, err2
		}
		if _, err2 = ownedBoard(db, boardID, userID); err2 != nil {
			return model.Task{}, err2
		}
	}
	if in.Title == "" {
		return model.Task{}, validationErr("title is required")
	}
	if !in.Status.Valid() {
		return model.Task{}, validationErr("status must be one of not-started, in-progress, completed")
	}
	if err := validDueDate(in.DueDate); err != nil {
		return model.Task{}, err
	}
	task := model.Task{
		ID:          uuid.NewString(),
		BoardID:     boardID,
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		DueDate:     in.DueDate,
		Tags:        in.Tags,
	}
	if task.Tags == nil {
		task.Tags = []string{}
	}
	err = mutate(ctx, r.Store, func(db *model.Db) error {
		if _, err := ownedBoard(db, boardID, userID); err != nil {
			return err
		}
		db.Tasks = append(db.Tasks, task)
		return nil
	})
	if err != nil {
		return model.Task{}, err
	}
	return task, nil
}

// Update applies a partial update. Ownership is checked through the current
// parent board before the payload is validated; moving the task to another
// board additionally requires owning the destination board.
func (r *TaskRepo) Update(ctx context.Context, taskID, userID string, patch TaskPatch) (model.Task, error) {
	var updated model.Task
	err := mutate(ctx, r.Store, func(db *model.Db) error {
		t, err := ownedTask(db, taskID, userID)
		if err != nil {
			return err
		}
		if patch.Title != nil && *patch.Title == "" {
			return validationErr("title is required")
		}
		if patch.Status != nil && !patch.Status.Valid() {
			return validationErr("status must be one of not-started, in-progress, completed")
		}
		if patch.DueDateSet {
			if err := validDueDate(patch.DueDate); err != nil {
				return err
			}
		}
		if patch.BoardID != nil && *patch.BoardID != t.BoardID {
			if _, err := ownedBoard(db, *patch.BoardID, userID); err != nil {
				return err
			}
			t.BoardID = *patch.BoardID
		}
		if patch.Title != nil {
			t.Title = *patch.Title
		}
		if patch.Description != nil {
			t.Description = *patch.Description
		}
		if patch.Status != nil {
			t.Status = *patch.Status
		}
		if patch.DueDateSet {
			t.DueDate = patch.DueDate
		}
		if patch.Tags != nil {
			t.Tags = *patch.Tags
		}
		updated = *t
		return nil
	})
	if err != nil {
		return model.Task{}, err
	}
	return updated, nil
}

// ToggleComplete flips the task's status: completed reopens as not-started,
// anything else becomes completed.
func (r *TaskRepo) ToggleComplete(ctx context.Context, taskID, userID string) (model.Task, error) {
	var toggled model.Task
	err := mutate(ctx, r.Store, func(db *model.Db) error {
		t, err := ownedTask(db, taskID, userID)
		if err != nil {
			return err
		}
		t.Status = t.Status.Toggled()
		toggled = *t
		return nil
	})
	if err != nil {
		return model.Task{}, err
	}
	return toggled, nil
}

// Delete removes the task after the ownership check.
func (r *TaskRepo) Delete(ctx context.Context, taskID, userID string) error {
	return mutate(ctx, r.Store, func(db *model.Db) error {
		if _, err := ownedTask(db, taskID, userID); err != nil {
			return err
		}
		tasks := db.Tasks[:0]
		for _, t := range db.Tasks {
			if t.ID != taskID {
				tasks = append(tasks, t)
			}
		}
		db.Tasks = tasks
		return nil
	})
}
