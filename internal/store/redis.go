package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/taskboard/taskboard/internal/model"
)

const defaultRedisKey = "taskboard:db"

// RedisStore keeps the whole document under a single Redis key. It is the
// remote-object counterpart of FileStore for deployments without a local
// disk. WATCH/MULTI around the save gives the same version check as the
// file variant but enforced by the server, so it holds across processes.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore wraps an existing client. key may be empty to use the
// default.
func NewRedisStore(client *redis.Client, key string) *RedisStore {
	if key == "" {
		key = defaultRedisKey
	}
	return &RedisStore{client: client, key: key}
}

// Load fetches and parses the document, seeding it on first use. SetNX is
// used for the seed write so two racing first loads agree on one document.
func (s *RedisStore) Load(ctx context.Context) (*model.Db, error) {
	raw, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		seed, err := seedDb()
		if err != nil {
			return nil, fmt.Errorf("%w: seed: %v", ErrUnavailable, err)
		}
		data, err := json.Marshal(seed)
		if err != nil {
			return nil, fmt.Errorf("%w: marshal seed: %v", ErrUnavailable, err)
		}
		ok, err := s.client.SetNX(ctx, s.key, data, 0).Result()
		if err != nil {
			return nil, fmt.Errorf("%w: seed write: %v", ErrUnavailable, err)
		}
		if ok {
			return seed, nil
		}
		// Lost the seed race; read whatever the winner wrote.
		raw, err = s.client.Get(ctx, s.key).Bytes()
		if err != nil {
			return nil, fmt.Errorf("%w: read after seed race: %v", ErrUnavailable, err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("%w: read: %v", ErrUnavailable, err)
	}
	var db model.Db
	if err := json.Unmarshal(raw, &db); err != nil {
		return nil, fmt.Errorf("%w: corrupt document: %v", ErrUnavailable, err)
	}
	return &db, nil
}

// Save writes db with its version bumped by one inside a WATCH transaction.
// If another writer touched the key, or its stored version differs from
// db.Version, the save fails with ErrVersionConflict.
func (s *RedisStore) Save(ctx context.Context, db *model.Db) error {
	next := *db
	next.Version = db.Version + 1
	data, err := json.Marshal(&next)
	if err != nil {
		return fmt.Errorf("%w: marshal: %v", ErrUnavailable, err)
	}
	err = s.client.Watch(ctx, func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, s.key).Bytes()
		if err != nil && !errors.Is(err, redis.Nil) {
			return fmt.Errorf("%w: read: %v", ErrUnavailable, err)
		}
		if err == nil {
			var cur model.Db
			if err := json.Unmarshal(raw, &cur); err != nil {
				return fmt.Errorf("%w: corrupt document: %v", ErrUnavailable, err)
			}
			if cur.Version != db.Version {
				return ErrVersionConflict
			}
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, s.key, data, 0)
			return nil
		})
		return err
	}, s.key)
	if errors.Is(err, redis.TxFailedErr) {
		return ErrVersionConflict
	}
	if err != nil {
		return err
	}
	db.Version = next.Version
	return nil
}
