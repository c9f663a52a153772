package domain

import (
	"context"
	"time"
)

// User roles
const (
	RoleApplicant = "APPLICANT"
	RoleRecruiter = "RECRUITER"
)

type User struct {
	ID        int64     `json:"userId"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // bcrypt hash, never serialized
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}

// RefreshTokenRepository stores one hashed refresh token per user.
// Upsert replaces any previous token (rotation), Delete revokes it (logout).
type RefreshTokenRepository interface {
	Upsert(ctx context.Context, userID int64, tokenHash string) error
	GetHash(ctx context.Context, userID int64) (string, error)
	Delete(ctx context.Context, userID int64) error
}

// TokenPair is the result of a successful login or refresh.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type AuthUsecase interface {
	Register(ctx context.Context, email, password, name string) (*User, error)
	Login(ctx context.Context, email, password string) (*TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	Logout(ctx context.Context, userID int64) error
	GetCurrentUser(ctx context.Context, id int64) (*User, error)
}
