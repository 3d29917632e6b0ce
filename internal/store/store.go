// Package store persists the application's single JSON document. Every
// mutation in the system is a load of the full document, an in-memory
// change, and a conditional save. Saves carry the document version that was
// loaded; a save whose version no longer matches the persisted one fails
// with ErrVersionConflict instead of overwriting a concurrent writer's work.
package store

import (
	"context"
	"errors"

	"github.com/taskboard/taskboard/internal/model"
)

// ErrVersionConflict is returned by Save when the persisted document has
// moved on since the caller's Load. Callers should reload, reapply their
// change and save again.
var ErrVersionConflict = errors.New("document version conflict")

// ErrUnavailable is returned when the backing storage cannot be read or
// written, or holds a document that no longer parses. The last persisted
// copy is left untouched; the store never resets data on its own.
var ErrUnavailable = errors.New("store unavailable")

// Store is the whole-document persistence contract. Load returns the full
// current state, seeding a fresh document on first use. Save writes the
// entire document back, guarded by the version check described above.
type Store interface {
	Load(ctx context.Context) (*model.Db, error)
	Save(ctx context.Context, db *model.Db) error
}
