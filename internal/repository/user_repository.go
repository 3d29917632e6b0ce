package repository

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/taskboard/taskboard/internal/model"
	"github.com/taskboard/taskboard/internal/store"
	"github.com/taskboard/taskboard/internal/utils"
)

// UserRepo implements account operations over the document store.
type UserRepo struct {
	Store      store.Store
	BcryptCost int
}

func NewUserRepo(s store.Store, bcryptCost int) *UserRepo {
	return &UserRepo{Store: s, BcryptCost: bcryptCost}
}

// DefaultBoardName is the board every new account starts with.
const DefaultBoardName = "My First Board"

// Create registers a new user and their default board in one save. The
// email is normalized to lower case; a duplicate yields ErrEmailExists.
func (r *UserRepo) Create(ctx context.Context, email, username, password string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" || username == "" {
		return model.User{}, validationErr("email, username and password are required")
	}
	hash, err := utils.HashPassword(password, r.BcryptCost)
	if err != nil {
		return model.User{}, err
	}
	user := model.User{
		ID:           uuid.NewString(),
		Email:        email,
		Username:     username,
		Avatar:       "https://i.pravatar.cc/150?u=" + uuid.NewString(),
		PasswordHash: hash,
	}
	board := model.Board{ID: uuid.NewString(), Name: DefaultBoardName, UserID: user.ID}
	err = mutate(ctx, r.Store, func(db *model.Db) error {
		for _, u := range db.Users {
			if strings.EqualFold(u.Email, email) {
				return ErrEmailExists
			}
		}
		db.Users = append(db.Users, user)
		db.Boards = append(db.Boards, board)
		return nil
	})
	if err != nil {
		return model.User{}, err
	}
	return user, nil
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	db, err := r.Store.Load(ctx)
	if err != nil {
		return model.User{}, err
	}
	for _, u := range db.Users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return model.User{}, ErrNotFound
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id string) (model.User, error) {
	db, err := r.Store.Load(ctx)
	if err != nil {
		return model.User{}, err
	}
	if u := db.FindUser(id); u != nil {
		return *u, nil
	}
	return model.User{}, ErrNotFound
}

// ProfilePatch is a partial profile update; nil fields are left unchanged.
type ProfilePatch struct {
	Username *string
	Avatar   *string
}

// UpdateProfile applies a partial update to the user's display fields.
func (r *UserRepo) UpdateProfile(ctx context.Context, userID string, patch ProfilePatch) (model.User, error) {
	if patch.Username != nil {
		n := utf8.RuneCountInString(*patch.Username)
		if n < 2 || n > 30 {
			return model.User{}, validationErr("username must be between 2 and 30 characters")
		}
	}
	if patch.Avatar != nil {
		a := *patch.Avatar
		if !strings.HasPrefix(a, "http://") && !strings.HasPrefix(a, "https://") && !strings.HasPrefix(a, "data:image/") {
			return model.User{}, validationErr("avatar must be a URL or an embedded image")
		}
	}
	var updated model.User
	err := mutate(ctx, r.Store, func(db *model.Db) error {
		u := db.FindUser(userID)
		if u == nil {
			return ErrNotFound
		}
		if patch.Username != nil {
			u.Username = *patch.Username
		}
		if patch.Avatar != nil {
			u.Avatar = *patch.Avatar
		}
		updated = *u
		return nil
	})
	if err != nil {
		return model.User{}, err
	}
	return updated, nil
}
