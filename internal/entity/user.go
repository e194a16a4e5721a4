package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// User is a personal trainer account. Every other entity belongs to exactly
// one user and is invisible outside that ownership.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	APIToken  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

type UserRepositoryInterface interface {
	FindByToken(ctx context.Context, token string) (*User, error)
}

func NewUser(name, email string) (*User, error) {
	u := &User{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		APIToken:  uuid.New().String(),
		CreatedAt: time.Now(),
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	return u, nil
}

func (u *User) Validate() error {
	if u.Name == "" {
		return errors.New("name is required")
	}
	if u.Email == "" {
		return errors.New("email is required")
	}
	return nil
}
