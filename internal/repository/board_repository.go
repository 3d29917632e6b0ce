package repository

import (
	"context"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/taskboard/taskboard/internal/model"
	"github.com/taskboard/taskboard/internal/store"
)

// BoardRepo implements board operations over the document store.
type BoardRepo struct {
	Store store.Store
}

func NewBoardRepo(s store.Store) *BoardRepo { return &BoardRepo{Store: s} }

func validBoardName(name string) error {
	n := utf8.RuneCountInString(name)
	if n < model.BoardNameMinLen || n > model.BoardNameMaxLen {
		return validationErr("board name must be between %d and %d characters", model.BoardNameMinLen, model.BoardNameMaxLen)
	}
	return nil
}

// List returns the boards owned by userID.
func (r *BoardRepo) List(ctx context.Context, userID string) ([]model.Board, error) {
	db, err := r.Store.Load(ctx)
	if err != nil {
		return nil, err
	}
	boards := []model.Board{}
	for _, b := range db.Boards {
		if b.UserID == userID {
			boards = append(boards, b)
		}
	}
	return boards, nil
}

// Create validates the name, appends a new board and persists it.
func (r *BoardRepo) Create(ctx context.Context, userID, name string) (model.Board, error) {
	if err := validBoardName(name); err != nil {
		return model.Board{}, err
	}
	board := model.Board{ID: uuid.NewString(), Name: name, UserID: userID}
	err := mutate(ctx, r.Store, func(db *model.Db) error {
		db.Boards = append(db.Boards, board)
		return nil
	})
	if err != nil {
		return model.Board{}, err
	}
	return board, nil
}

// Rename authorizes, validates and updates the board name in place.
func (r *BoardRepo) Rename(ctx context.Context, boardID, userID, name string) (model.Board, error) {
	var renamed model.Board
	err := mutate(ctx, r.Store, func(db *model.Db) error {
		b, err := ownedBoard(db, boardID, userID)
		if err != nil {
			return err
		}
		if err := validBoardName(name); err != nil {
			return err
		}
		b.Name = name
		renamed = *b
		return nil
	})
	if err != nil {
		return model.Board{}, err
	}
	return renamed, nil
}

// Delete removes the board and cascades to every task referencing it, all
// within a single save.
func (r *BoardRepo) Delete(ctx context.Context, boardID, userID string) error {
	return mutate(ctx, r.Store, func(db *model.Db) error {
		if _, err := ownedBoard(db, boardID, userID); err != nil {
			return err
		}
		boards := db.Boards[:0]
		for _, b := range db.Boards {
			if b.ID != boardID {
				boards = append(boards, b)
			}
		}
		db.Boards = boards
		tasks := db.Tasks[:0]
		for _, t := range db.Tasks {
			if t.BoardID != boardID {
				tasks = append(tasks, t)
			}
		}
		db.Tasks = tasks
		return nil
	})
}
