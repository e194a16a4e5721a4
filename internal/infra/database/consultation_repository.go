package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jcarter-pt/traincrm/internal/entity"
)

type ConsultationRepository struct {
	DB *sql.DB
}

func NewConsultationRepository(db *sql.DB) *ConsultationRepository {
	return &ConsultationRepository{DB: db}
}

const consultationColumns = `
	id, user_id, lead_id, scheduled_at, duration_minutes,
	COALESCE(location, ''), COALESCE(notes, ''), status, created_at, updated_at
`

func scanConsultation(row interface{ Scan(...any) error }) (*entity.Consultation, error) {
	var c entity.Consultation
	err := row.Scan(
		&c.ID, &c.UserID, &c.LeadID, &c.ScheduledAt, &c.DurationMinutes,
		&c.Location, &c.Notes, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ConsultationRepository) Create(ctx context.Context, c *entity.Consultation) error {
	query := `
		INSERT INTO consultations (id, user_id, lead_id, scheduled_at, duration_minutes, location, notes, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.DB.ExecContext(ctx, query,
		c.ID, c.UserID, c.LeadID, c.ScheduledAt, c.DurationMinutes,
		nullString(c.Location), nullString(c.Notes), c.Status, c.CreatedAt, c.UpdatedAt,
	)
	return err
}

func (r *ConsultationRepository) FindByID(ctx context.Context, userID, id string) (*entity.Consultation, error) {
	query := `SELECT ` + consultationColumns + ` FROM consultations WHERE id = $1 AND user_id = $2`

	c, err := scanConsultation(r.DB.QueryRowContext(ctx, query, id, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *ConsultationRepository) List(ctx context.Context, userID string) ([]*entity.Consultation, error) {
	query := `SELECT ` + consultationColumns + ` FROM consultations WHERE user_id = $1 ORDER BY scheduled_at ASC`
	return r.queryConsultations(ctx, query, userID)
}

func (r *ConsultationRepository) ListByLead(ctx context.Context, userID, leadID string) ([]*entity.Consultation, error) {
	query := `SELECT ` + consultationColumns + ` FROM consultations WHERE user_id = $1 AND lead_id = $2 ORDER BY scheduled_at ASC`
	return r.queryConsultations(ctx, query, userID, leadID)
}

func (r *ConsultationRepository) UpdateStatus(ctx context.Context, userID, id, status string) error {
	query := `
		UPDATE consultations
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND user_id = $3
	`
	return execOwned(ctx, r.DB, query, status, id, userID)
}

func (r *ConsultationRepository) Delete(ctx context.Context, userID, id string) error {
	return execOwned(ctx, r.DB, `DELETE FROM consultations WHERE id = $1 AND user_id = $2`, id, userID)
}

func (r *ConsultationRepository) CountUpcoming(ctx context.Context, userID string, now time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM consultations
		WHERE user_id = $1 AND status = $2 AND scheduled_at >= $3
	`
	var n int
	err := r.DB.QueryRowContext(ctx, query, userID, entity.ConsultationStatusScheduled, now).Scan(&n)
	return n, err
}

func (r *ConsultationRepository) queryConsultations(ctx context.Context, query string, args ...any) ([]*entity.Consultation, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var consultations []*entity.Consultation
	for rows.Next() {
		c, err := scanConsultation(rows)
		if err != nil {
			return nil, err
		}
		consultations = append(consultations, c)
	}
	return consultations, rows.Err()
}
