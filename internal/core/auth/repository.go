package auth

import (
	"context"
	"errors"

	"github.com/PatriceWisniewsky/MotionCut/internal/store"
)

const table = "users"

type Repository struct {
	db store.Executor
}

func NewRepository(db store.Executor) *Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateUser(ctx context.Context, user *User) (*User, error) {
	row, err := store.ExecuteSingle(ctx, r.db, store.From(table).Insert(store.Row{
		"email":         user.Email,
		"password_hash": user.PasswordHash,
		"display_name":  user.DisplayName,
	}))
	if err != nil {
		return nil, err
	}
	return fromRow(row), nil
}

// GetUserByEmail returns (nil, nil) when no user exists; absence is a
// normal outcome here, not an error.
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	row, err := store.ExecuteSingle(ctx, r.db, store.From(table).Eq("email", email))
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return fromRow(row), nil
}

func (r *Repository) GetUserByID(ctx context.Context, id string) (*User, error) {
	row, err := store.ExecuteSingle(ctx, r.db, store.From(table).Eq("id", id))
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return fromRow(row), nil
}

func fromRow(row store.Row) *User {
	return &User{
		ID:           row.ID(),
		Email:        row.String("email"),
		PasswordHash: row.String("password_hash"),
		DisplayName:  row.String("display_name"),
		CreatedAt:    row.String("created_at"),
	}
}
