package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	TaskTypeCall  = "CALL"
	TaskTypeText  = "TEXT"
	TaskTypeOther = "OTHER"
)

// Task is a follow-up reminder attached to a lead. One is auto-created for
// every imported lead ("Initial call", due the same day).
type Task struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id"`
	LeadID       string     `json:"lead_id"`
	Title        string     `json:"title"`
	Type         string     `json:"type"` // CALL, TEXT, OTHER
	DueDate      time.Time  `json:"due_date"`
	Completed    bool       `json:"completed"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	ReminderSent bool       `json:"reminder_sent"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type TaskRepositoryInterface interface {
	Create(ctx context.Context, task *Task) error
	FindByID(ctx context.Context, userID, id string) (*Task, error)
	List(ctx context.Context, userID string, includeCompleted bool) ([]*Task, error)
	ListByLead(ctx context.Context, userID, leadID string) ([]*Task, error)
	Update(ctx context.Context, task *Task) error
	Complete(ctx context.Context, userID, id string) error
	Delete(ctx context.Context, userID, id string) error
	CountDueToday(ctx context.Context, userID string, now time.Time) (int, error)
}

func NewTask(userID, leadID, title, taskType string, dueDate time.Time) (*Task, error) {
	now := time.Now()
	t := &Task{
		ID:        uuid.New().String(),
		UserID:    userID,
		LeadID:    leadID,
		Title:     title,
		Type:      taskType,
		DueDate:   dueDate,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// NewInitialCallTask is the follow-up auto-created when a lead is imported.
func NewInitialCallTask(userID, leadID string) *Task {
	t, _ := NewTask(userID, leadID, "Initial call", TaskTypeCall, time.Now())
	return t
}

func (t *Task) Validate() error {
	if t.Title == "" {
		return errors.New("title is required")
	}
	if t.LeadID == "" {
		return errors.New("lead_id is required")
	}
	if !IsValidTaskType(t.Type) {
		return errors.New("type must be CALL, TEXT or OTHER")
	}
	if t.DueDate.IsZero() {
		return errors.New("due_date is required")
	}
	return nil
}

func IsValidTaskType(s string) bool {
	switch s {
	case TaskTypeCall, TaskTypeText, TaskTypeOther:
		return true
	}
	return false
}
