package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jcarter-pt/traincrm/internal/entity"
)

type TemplateRepository struct {
	DB *sql.DB
}

func NewTemplateRepository(db *sql.DB) *TemplateRepository {
	return &TemplateRepository{DB: db}
}

func (r *TemplateRepository) Create(ctx context.Context, t *entity.MessageTemplate) error {
	query := `
		INSERT INTO message_templates (id, user_id, name, channel, body, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.DB.ExecContext(ctx, query,
		t.ID, t.UserID, t.Name, t.Channel, t.Body, t.CreatedAt, t.UpdatedAt,
	)
	return err
}

func (r *TemplateRepository) FindByID(ctx context.Context, userID, id string) (*entity.MessageTemplate, error) {
	query := `
		SELECT id, user_id, name, channel, body, created_at, updated_at
		FROM message_templates
		WHERE id = $1 AND user_id = $2
	`

	var t entity.MessageTemplate
	err := r.DB.QueryRowContext(ctx, query, id, userID).Scan(
		&t.ID, &t.UserID, &t.Name, &t.Channel, &t.Body, &t.CreatedAt, &t.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TemplateRepository) List(ctx context.Context, userID string) ([]*entity.MessageTemplate, error) {
	query := `
		SELECT id, user_id, name, channel, body, created_at, updated_at
		FROM message_templates
		WHERE user_id = $1
		ORDER BY name ASC
	`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []*entity.MessageTemplate
	for rows.Next() {
		var t entity.MessageTemplate
		err := rows.Scan(&t.ID, &t.UserID, &t.Name, &t.Channel, &t.Body, &t.CreatedAt, &t.UpdatedAt)
		if err != nil {
			return nil, err
		}
		templates = append(templates, &t)
	}
	return templates, rows.Err()
}

func (r *TemplateRepository) Update(ctx context.Context, t *entity.MessageTemplate) error {
	query := `
		UPDATE message_templates
		SET name = $1, channel = $2, body = $3, updated_at = NOW()
		WHERE id = $4 AND user_id = $5
	`
	return execOwned(ctx, r.DB, query, t.Name, t.Channel, t.Body, t.ID, t.UserID)
}

func (r *TemplateRepository) Delete(ctx context.Context, userID, id string) error {
	return execOwned(ctx, r.DB, `DELETE FROM message_templates WHERE id = $1 AND user_id = $2`, id, userID)
}
