package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskboard/taskboard/internal/model"
	"github.com/taskboard/taskboard/internal/store"
)

type testRepos struct {
	store  store.Store
	users  *UserRepo
	boards *BoardRepo
	tasks  *TaskRepo
}

func newTestRepos(t *testing.T) *testRepos {
	t.Helper()
	s := store.NewFileStore(filepath.Join(t.TempDir(), "data.json"))
	return &testRepos{
		store:  s,
		users:  NewUserRepo(s, bcrypt.MinCost),
		boards: NewBoardRepo(s),
		tasks:  NewTaskRepo(s),
	}
}

// signup registers a throwaway user and returns it.
func (r *testRepos) signup(t *testing.T, email string) model.User {
	t.Helper()
	u, err := r.users.Create(context.Background(), email, "Tester", "secret-pw")
	require.NoError(t, err)
	return u
}
