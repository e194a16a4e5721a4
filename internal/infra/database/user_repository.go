package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jcarter-pt/traincrm/internal/entity"
)

type UserRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindByToken(ctx context.Context, token string) (*entity.User, error) {
	query := `
		SELECT id, name, email, api_token, created_at
		FROM users
		WHERE api_token = $1
	`

	var u entity.User
	err := r.DB.QueryRowContext(ctx, query, token).Scan(
		&u.ID, &u.Name, &u.Email, &u.APIToken, &u.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrUnauthorized
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
