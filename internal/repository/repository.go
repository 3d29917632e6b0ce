package repository

import (
	"context"
	"errors"

	"github.com/taskboard/taskboard/internal/model"
	"github.com/taskboard/taskboard/internal/store"
)

// casRetries bounds how many times a mutation is replayed when a concurrent
// save bumped the document version first.
const casRetries = 3

// mutate runs load→fn→save cycles until the save lands or the retries run
// out. fn must be safe to run more than once: it is re-applied against a
// freshly loaded document after every version conflict.
func mutate(ctx context.Context, s store.Store, fn func(db *model.Db) error) error {
	var err error
	for i := 0; i < casRetries; i++ {
		var db *model.Db
		db, err = s.Load(ctx)
		if err != nil {
			return err
		}
		if err = fn(db); err != nil {
			return err
		}
		err = s.Save(ctx, db)
		if err == nil || !errors.Is(err, store.ErrVersionConflict) {
			return err
		}
	}
	return err
}

// ownedBoard resolves a board and checks it belongs to userID. A missing
// board is ErrNotFound, an existing board with another owner is
// ErrForbidden; the same policy applies everywhere a resource is looked up
// on behalf of a user.
func ownedBoard(db *model.Db, boardID, userID string) (*model.Board, error) {
	b := db.FindBoard(boardID)
	if b == nil {
		return nil, ErrNotFound
	}
	if b.UserID != userID {
		return nil, ErrForbidden
	}
	return b, nil
}

// ownedTask resolves a task through its parent board. Ownership is always
// derived from the board, never from any field on the task itself. A task
// whose board has been deleted is treated as not found.
func ownedTask(db *model.Db, taskID, userID string) (*model.Task, error) {
	t := db.FindTask(taskID)
	if t == nil {
		return nil, ErrNotFound
	}
	b := db.FindBoard(t.BoardID)
	if b == nil {
		return nil, ErrNotFound
	}
	if b.UserID != userID {
		return nil, ErrForbidden
	}
	return t, nil
}
