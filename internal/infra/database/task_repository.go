package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jcarter-pt/traincrm/internal/entity"
)

type TaskRepository struct {
	DB *sql.DB
}

func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{DB: db}
}

const taskColumns = `
	id, user_id, lead_id, title, type, due_date,
	completed, completed_at, reminder_sent, created_at, updated_at
`

func scanTask(row interface{ Scan(...any) error }) (*entity.Task, error) {
	var t entity.Task
	err := row.Scan(
		&t.ID, &t.UserID, &t.LeadID, &t.Title, &t.Type, &t.DueDate,
		&t.Completed, &t.CompletedAt, &t.ReminderSent, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TaskRepository) Create(ctx context.Context, task *entity.Task) error {
	query := `
		INSERT INTO tasks (id, user_id, lead_id, title, type, due_date, completed, reminder_sent, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE, FALSE, $7, $8)
	`
	_, err := r.DB.ExecContext(ctx, query,
		task.ID, task.UserID, task.LeadID, task.Title, task.Type,
		task.DueDate, task.CreatedAt, task.UpdatedAt,
	)
	return err
}

func (r *TaskRepository) FindByID(ctx context.Context, userID, id string) (*entity.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1 AND user_id = $2`

	task, err := scanTask(r.DB.QueryRowContext(ctx, query, id, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return task, nil
}

func (r *TaskRepository) List(ctx context.Context, userID string, includeCompleted bool) ([]*entity.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = $1`
	if !includeCompleted {
		query += ` AND completed = FALSE`
	}
	query += ` ORDER BY due_date ASC`

	return r.queryTasks(ctx, query, userID)
}

func (r *TaskRepository) ListByLead(ctx context.Context, userID, leadID string) ([]*entity.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = $1 AND lead_id = $2 ORDER BY due_date ASC`
	return r.queryTasks(ctx, query, userID, leadID)
}

func (r *TaskRepository) Update(ctx context.Context, task *entity.Task) error {
	query := `
		UPDATE tasks
		SET title = $1, type = $2, due_date = $3, updated_at = NOW()
		WHERE id = $4 AND user_id = $5
	`
	return execOwned(ctx, r.DB, query, task.Title, task.Type, task.DueDate, task.ID, task.UserID)
}

func (r *TaskRepository) Complete(ctx context.Context, userID, id string) error {
	query := `
		UPDATE tasks
		SET completed = TRUE, completed_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND user_id = $2 AND completed = FALSE
	`
	return execOwned(ctx, r.DB, query, id, userID)
}

func (r *TaskRepository) Delete(ctx context.Context, userID, id string) error {
	return execOwned(ctx, r.DB, `DELETE FROM tasks WHERE id = $1 AND user_id = $2`, id, userID)
}

func (r *TaskRepository) CountDueToday(ctx context.Context, userID string, now time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM tasks
		WHERE user_id = $1 AND completed = FALSE AND due_date::date = $2::date
	`
	var n int
	err := r.DB.QueryRowContext(ctx, query, userID, now).Scan(&n)
	return n, err
}

func (r *TaskRepository) queryTasks(ctx context.Context, query string, args ...any) ([]*entity.Task, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []*entity.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

func execOwned(ctx context.Context, db *sql.DB, query string, args ...any) error {
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrNotFound
	}
	return nil
}
