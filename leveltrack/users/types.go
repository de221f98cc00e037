package users

import (
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// handles user database operations
type Repository struct {
	db *pgxpool.Pool
}

// represents an account in the system. PasswordHash is empty for
// accounts created through Google login.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Image        string    `json:"image,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// contains data for creating a user. PasswordHash and Image may be
// empty depending on how the account is created.
type CreateParams struct {
	Email        string
	Name         string
	PasswordHash string
	Image        string
}

var (
	// the email unique constraint was violated on create
	ErrEmailTaken = errors.New("email already taken")

	// no user exists for the given lookup
	ErrNotFound = errors.New("user not found")
)
