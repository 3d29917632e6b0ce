package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/taskboard/taskboard/internal/model"
)

func strPtr(s string) *string { return &s }

func statusPtr(s model.TaskStatus) *model.TaskStatus { return &s }

func TestCreateTaskDefaults(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()
	alice := r.signup(t, "alice@example.com")
	board, err := r.boards.Create(ctx, alice.ID, "Work")
	require.NoError(t, err)

	task, err := r.tasks.Create(ctx, alice.ID, board.ID, NewTask{Title: "Write report", Status: model.StatusNotStarted})
	require.NoError(t, err)
	require.NotEmpty(t, task.ID)
	require.Equal(t, board.ID, task.BoardID)
	require.Equal(t, "", task.Description)
	require.NotNil(t, task.Tags)
	require.Empty(t, task.Tags)
	require.Nil(t, task.DueDate)
}

func TestCreateTaskValidation(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()
	alice := r.signup(t, "alice@example.com")
	bob := r.signup(t, "bob@example.com")
	board, err := r.boards.Create(ctx, alice.ID, "Work")
	require.NoError(t, err)

	_, err = r.tasks.Create(ctx, alice.ID, board.ID, NewTask{Title: "", Status: model.StatusNotStarted})
	require.ErrorIs(t, err, ErrValidation)

	_, err = r.tasks.Create(ctx, alice.ID, board.ID, NewTask{Title: "t", Status: "archived"})
	require.ErrorIs(t, err, ErrValidation)

	_, err = r.tasks.Create(ctx, alice.ID, board.ID, NewTask{Title: "t", Status: model.StatusNotStarted, DueDate: strPtr("tomorrow")})
	require.ErrorIs(t, err, ErrValidation)

	_, err = r.tasks.Create(ctx, bob.ID, board.ID, NewTask{Title: "t", Status: model.StatusNotStarted})
	require.ErrorIs(t, err, ErrForbidden)

	_, err = r.tasks.Create(ctx, alice.ID, "no-such-board", NewTask{Title: "t", Status: model.StatusNotStarted})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateTaskPartial(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()
	alice := r.signup(t, "alice@example.com")
	board, err := r.boards.Create(ctx, alice.ID, "Work")
	require.NoError(t, err)

	due := time.Now().UTC().Add(48 * time.Hour).Format(time.RFC3339)
	task, err := r.tasks.Create(ctx, alice.ID, board.ID, NewTask{
		Title:       "Draft copy",
		Description: "First pass",
		Status:      model.StatusNotStarted,
		DueDate:     &due,
		Tags:        []string{"writing"},
	})
	require.NoError(t, err)

	// Only status changes; everything else keeps its prior value.
	updated, err := r.tasks.Update(ctx, task.ID, alice.ID, TaskPatch{Status: statusPtr(model.StatusInProgress)})
	require.NoError(t, err)
	require.Equal(t, model.StatusInProgress, updated.Status)
	require.Equal(t, task.Title, updated.Title)
	require.Equal(t, task.Description, updated.Description)
	require.Equal(t, task.Tags, updated.Tags)
	require.NotNil(t, updated.DueDate)
	require.Equal(t, due, *updated.DueDate)

	// A zero-field patch is a no-op.
	same, err := r.tasks.Update(ctx, task.ID, alice.ID, TaskPatch{})
	require.NoError(t, err)
	require.Equal(t, updated, same)

	// An explicit null clears the due date.
	cleared, err := r.tasks.Update(ctx, task.ID, alice.ID, TaskPatch{DueDateSet: true})
	require.NoError(t, err)
	require.Nil(t, cleared.DueDate)
}

func TestUpdateTaskValidation(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()
	alice := r.signup(t, "alice@example.com")
	board, err := r.boards.Create(ctx, alice.ID, "Work")
	require.NoError(t, err)
	task, err := r.tasks.Create(ctx, alice.ID, board.ID, NewTask{Title: "t", Status: model.StatusNotStarted})
	require.NoError(t, err)

	_, err = r.tasks.Update(ctx, task.ID, alice.ID, TaskPatch{Title: strPtr("")})
	require.ErrorIs(t, err, ErrValidation)

	_, err = r.tasks.Update(ctx, task.ID, alice.ID, TaskPatch{Status: statusPtr("archived")})
	require.ErrorIs(t, err, ErrValidation)

	_, err = r.tasks.Update(ctx, "no-such-task", alice.ID, TaskPatch{})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateTaskReparenting(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()
	alice := r.signup(t, "alice@example.com")
	bob := r.signup(t, "bob@example.com")

	src, err := r.boards.Create(ctx, alice.ID, "Source")
	require.NoError(t, err)
	dst, err := r.boards.Create(ctx, alice.ID, "Destination")
	require.NoError(t, err)
	foreign, err := r.boards.Create(ctx, bob.ID, "Foreign")
	require.NoError(t, err)

	task, err := r.tasks.Create(ctx, alice.ID, src.ID, NewTask{Title: "Move me", Status: model.StatusNotStarted})
	require.NoError(t, err)

	moved, err := r.tasks.Update(ctx, task.ID, alice.ID, TaskPatch{BoardID: &dst.ID})
	require.NoError(t, err)
	require.Equal(t, dst.ID, moved.BoardID)

	// Moving onto someone else's board is denied, and nothing changes.
	_, err = r.tasks.Update(ctx, task.ID, alice.ID, TaskPatch{BoardID: &foreign.ID})
	require.ErrorIs(t, err, ErrForbidden)

	_, err = r.tasks.Update(ctx, task.ID, alice.ID, TaskPatch{BoardID: strPtr("no-such-board")})
	require.ErrorIs(t, err, ErrNotFound)

	cur, err := r.tasks.Get(ctx, task.ID, alice.ID)
	require.NoError(t, err)
	require.Equal(t, dst.ID, cur.BoardID)
}

func TestToggleCompleteTwiceRestoresStatus(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()
	alice := r.signup(t, "alice@example.com")
	board, err := r.boards.Create(ctx, alice.ID, "Work")
	require.NoError(t, err)

	for _, start := range []model.TaskStatus{model.StatusNotStarted, model.StatusCompleted} {
		task, err := r.tasks.Create(ctx, alice.ID, board.ID, NewTask{Title: "flip", Status: start})
		require.NoError(t, err)

		once, err := r.tasks.ToggleComplete(ctx, task.ID, alice.ID)
		require.NoError(t, err)
		require.NotEqual(t, start, once.Status)

		twice, err := r.tasks.ToggleComplete(ctx, task.ID, alice.ID)
		require.NoError(t, err)
		require.Equal(t, start, twice.Status)
	}
}

func TestListForUserIgnoresForeignAndOrphanedTasks(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()
	alice := r.signup(t, "alice@example.com")
	bob := r.signup(t, "bob@example.com")

	aBoard, err := r.boards.Create(ctx, alice.ID, "Mine")
	require.NoError(t, err)
	bBoard, err := r.boards.Create(ctx, bob.ID, "Theirs")
	require.NoError(t, err)

	mine, err := r.tasks.Create(ctx, alice.ID, aBoard.ID, NewTask{Title: "mine", Status: model.StatusNotStarted})
	require.NoError(t, err)
	_, err = r.tasks.Create(ctx, bob.ID, bBoard.ID, NewTask{Title: "theirs", Status: model.StatusNotStarted})
	require.NoError(t, err)

	// Plant an orphan: a task whose board does not exist.
	db, err := r.store.Load(ctx)
	require.NoError(t, err)
	db.Tasks = append(db.Tasks, model.Task{ID: "orphan", BoardID: "gone", Title: "orphan", Status: model.StatusNotStarted, Tags: []string{}})
	require.NoError(t, r.store.Save(ctx, db))

	tasks, err := r.tasks.ListForUser(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, mine.ID, tasks[0].ID)

	// The orphan is unreachable directly as well.
	_, err = r.tasks.Get(ctx, "orphan", alice.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestTaskOwnershipThroughBoard(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()
	alice := r.signup(t, "alice@example.com")
	bob := r.signup(t, "bob@example.com")
	board, err := r.boards.Create(ctx, alice.ID, "Mine")
	require.NoError(t, err)
	task, err := r.tasks.Create(ctx, alice.ID, board.ID, NewTask{Title: "secret", Status: model.StatusNotStarted})
	require.NoError(t, err)

	_, err = r.tasks.Get(ctx, task.ID, bob.ID)
	require.ErrorIs(t, err, ErrForbidden)
	_, err = r.tasks.Update(ctx, task.ID, bob.ID, TaskPatch{Title: strPtr("stolen")})
	require.ErrorIs(t, err, ErrForbidden)
	require.ErrorIs(t, r.tasks.Delete(ctx, task.ID, bob.ID), ErrForbidden)
	_, err = r.tasks.ToggleComplete(ctx, task.ID, bob.ID)
	require.ErrorIs(t, err, ErrForbidden)
}

// Scenario from the product flow: create a board, add a task, complete it,
// toggle it back.
func TestBoardTaskLifecycleScenario(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()
	u1 := r.signup(t, "u1@example.com")

	board, err := r.boards.Create(ctx, u1.ID, "Marketing")
	require.NoError(t, err)

	task, err := r.tasks.Create(ctx, u1.ID, board.ID, NewTask{Title: "Draft copy", Status: model.StatusNotStarted})
	require.NoError(t, err)

	_, err = r.tasks.Update(ctx, task.ID, u1.ID, TaskPatch{Status: statusPtr(model.StatusCompleted)})
	require.NoError(t, err)

	_, err = r.tasks.ToggleComplete(ctx, task.ID, u1.ID)
	require.NoError(t, err)

	tasks, err := r.tasks.ListForUser(ctx, u1.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, "Draft copy", tasks[0].Title)
	require.Equal(t, model.StatusNotStarted, tasks[0].Status)
}
