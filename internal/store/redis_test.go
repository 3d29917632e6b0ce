package store

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/taskboard/taskboard/internal/model"
)

func newRedisStore(t *testing.T) *RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client, "")
}

func TestRedisStoreSeedsOnFirstLoad(t *testing.T) {
	s := newRedisStore(t)
	db, err := s.Load(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 1, db.Version)
	require.Len(t, db.Users, 1)
	require.Len(t, db.Boards, 3)
	require.Len(t, db.Tasks, 8)
}

func TestRedisStoreSaveRoundTrip(t *testing.T) {
	s := newRedisStore(t)
	ctx := context.Background()

	db, err := s.Load(ctx)
	require.NoError(t, err)
	db.Boards = append(db.Boards, model.Board{ID: "b-new", Name: "Roadmap", UserID: "user-1"})
	require.NoError(t, s.Save(ctx, db))
	require.EqualValues(t, 2, db.Version)

	again, err := s.Load(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, again.Version)
	require.NotNil(t, again.FindBoard("b-new"))
}

func TestRedisStoreVersionConflict(t *testing.T) {
	s := newRedisStore(t)
	ctx := context.Background()

	db1, err := s.Load(ctx)
	require.NoError(t, err)
	db2, err := s.Load(ctx)
	require.NoError(t, err)

	db1.Boards = append(db1.Boards, model.Board{ID: "b1", Name: "First", UserID: "user-1"})
	require.NoError(t, s.Save(ctx, db1))

	db2.Boards = append(db2.Boards, model.Board{ID: "b2", Name: "Second", UserID: "user-1"})
	err = s.Save(ctx, db2)
	require.ErrorIs(t, err, ErrVersionConflict)

	cur, err := s.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, cur.FindBoard("b1"))
	require.Nil(t, cur.FindBoard("b2"))
}

func TestRedisStoreCorruptDocument(t *testing.T) {
	mr := miniredis.RunT(t)
	require.NoError(t, mr.Set(defaultRedisKey, "{not json"))
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	s := NewRedisStore(client, "")
	_, err := s.Load(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)

	// The stored value is untouched.
	raw, err := mr.Get(defaultRedisKey)
	require.NoError(t, err)
	require.Equal(t, "{not json", raw)
}
