package database

import (
	"context"
	"database/sql"

	"github.com/jcarter-pt/traincrm/internal/entity"
)

type ContactPointRepository struct {
	DB *sql.DB
}

func NewContactPointRepository(db *sql.DB) *ContactPointRepository {
	return &ContactPointRepository{DB: db}
}

func (r *ContactPointRepository) Create(ctx context.Context, cp *entity.ContactPoint) error {
	query := `
		INSERT INTO contact_points (id, user_id, lead_id, method, outcome, notes, occurred_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.DB.ExecContext(ctx, query,
		cp.ID, cp.UserID, cp.LeadID, cp.Method,
		nullString(cp.Outcome), nullString(cp.Notes),
		cp.OccurredAt, cp.CreatedAt,
	)
	return err
}

func (r *ContactPointRepository) ListByLead(ctx context.Context, userID, leadID string) ([]*entity.ContactPoint, error) {
	query := `
		SELECT id, user_id, lead_id, method, COALESCE(outcome, ''), COALESCE(notes, ''), occurred_at, created_at
		FROM contact_points
		WHERE user_id = $1 AND lead_id = $2
		ORDER BY occurred_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query, userID, leadID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var points []*entity.ContactPoint
	for rows.Next() {
		var cp entity.ContactPoint
		err := rows.Scan(
			&cp.ID, &cp.UserID, &cp.LeadID, &cp.Method,
			&cp.Outcome, &cp.Notes, &cp.OccurredAt, &cp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		points = append(points, &cp)
	}
	return points, rows.Err()
}

func (r *ContactPointRepository) Delete(ctx context.Context, userID, id string) error {
	return execOwned(ctx, r.DB, `DELETE FROM contact_points WHERE id = $1 AND user_id = $2`, id, userID)
}
