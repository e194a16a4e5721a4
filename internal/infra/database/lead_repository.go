package database

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/jcarter-pt/traincrm/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

const leadColumns = `
	id, user_id,
	COALESCE(first_name, ''), COALESCE(last_name, ''),
	COALESCE(email, ''), COALESCE(phone_number, ''),
	COALESCE(age, ''), COALESCE(birthday, ''),
	COALESCE(date_of_birth, ''), COALESCE(year_of_birth, ''),
	COALESCE(gender, ''), COALESCE(goals, ''),
	COALESCE(lead_type, ''), COALESCE(join_date, ''),
	status, COALESCE(notes, ''), status_changed_at, created_at, updated_at
`

func scanLead(row interface{ Scan(...any) error }) (*entity.Lead, error) {
	var l entity.Lead
	err := row.Scan(
		&l.ID, &l.UserID,
		&l.FirstName, &l.LastName,
		&l.Email, &l.PhoneNumber,
		&l.Age, &l.Birthday,
		&l.DateOfBirth, &l.YearOfBirth,
		&l.Gender, &l.Goals,
		&l.LeadType, &l.JoinDate,
		&l.Status, &l.Notes, &l.StatusChangedAt, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

const insertLeadQuery = `
	INSERT INTO leads (
		id, user_id, first_name, last_name, email, phone_number,
		age, birthday, date_of_birth, year_of_birth, gender, goals,
		lead_type, join_date, status, notes, status_changed_at, created_at, updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
`

func insertLeadArgs(l *entity.Lead) []any {
	return []any{
		l.ID, l.UserID,
		nullString(l.FirstName), nullString(l.LastName),
		nullString(l.Email), nullString(l.PhoneNumber),
		nullString(l.Age), nullString(l.Birthday),
		nullString(l.DateOfBirth), nullString(l.YearOfBirth),
		nullString(l.Gender), nullString(l.Goals),
		nullString(l.LeadType), nullString(l.JoinDate),
		l.Status, nullString(l.Notes), l.StatusChangedAt, l.CreatedAt, l.UpdatedAt,
	}
}

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	_, err := r.DB.ExecContext(ctx, insertLeadQuery, insertLeadArgs(lead)...)
	if err != nil {
		log.Printf("❌ failed to insert lead: %v", err)
	}
	return err
}

// ImportBatch persists a batch of leads and one "Initial call" task per lead
// inside a single transaction. All or nothing: a failure on any row rolls
// back the whole import.
func (r *LeadRepository) ImportBatch(ctx context.Context, userID string, leads []*entity.Lead) (int, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	const insertTaskQuery = `
		INSERT INTO tasks (id, user_id, lead_id, title, type, due_date, completed, reminder_sent, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE, FALSE, $7, $8)
	`

	for _, lead := range leads {
		if _, err := tx.ExecContext(ctx, insertLeadQuery, insertLeadArgs(lead)...); err != nil {
			return 0, err
		}

		task := entity.NewInitialCallTask(userID, lead.ID)
		_, err := tx.ExecContext(ctx, insertTaskQuery,
			task.ID, task.UserID, task.LeadID, task.Title, task.Type,
			task.DueDate, task.CreatedAt, task.UpdatedAt,
		)
		if err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return len(leads), nil
}

func (r *LeadRepository) FindByID(ctx context.Context, userID, id string) (*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = $1 AND user_id = $2`

	lead, err := scanLead(r.DB.QueryRowContext(ctx, query, id, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return lead, nil
}

func (r *LeadRepository) List(ctx context.Context, userID, status string) ([]*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE user_id = $1`
	args := []any{userID}
	if status != "" {
		query += ` AND status = $2`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []*entity.Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}

func (r *LeadRepository) UpdateStatus(ctx context.Context, userID, id, status string) error {
	query := `
		UPDATE leads
		SET status = $1, status_changed_at = NOW(), updated_at = NOW()
		WHERE id = $2 AND user_id = $3
	`
	return execOwned(ctx, r.DB, query, status, id, userID)
}

func (r *LeadRepository) UpdateNotes(ctx context.Context, userID, id, notes string) error {
	query := `
		UPDATE leads
		SET notes = $1, updated_at = NOW()
		WHERE id = $2 AND user_id = $3
	`
	return execOwned(ctx, r.DB, query, nullString(notes), id, userID)
}

// Delete removes the lead; tasks, contact points and consultations follow
// via ON DELETE CASCADE.
func (r *LeadRepository) Delete(ctx context.Context, userID, id string) error {
	return execOwned(ctx, r.DB, `DELETE FROM leads WHERE id = $1 AND user_id = $2`, id, userID)
}

func (r *LeadRepository) CountByStatus(ctx context.Context, userID string) (map[string]int, error) {
	query := `SELECT status, COUNT(*) FROM leads WHERE user_id = $1 GROUP BY status`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[status] = n
	}
	return counts, rows.Err()
}
