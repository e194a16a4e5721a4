package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	ConsultationStatusScheduled = "SCHEDULED"
	ConsultationStatusCompleted = "COMPLETED"
	ConsultationStatusCancelled = "CANCELLED"
	ConsultationStatusNoShow    = "NO_SHOW"
)

// Consultation is a booked session with a lead.
type Consultation struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	LeadID          string    `json:"lead_id"`
	ScheduledAt     time.Time `json:"scheduled_at"`
	DurationMinutes int       `json:"duration_minutes"`
	Location        string    `json:"location,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	Status          string    `json:"status"` // SCHEDULED, COMPLETED, CANCELLED, NO_SHOW
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type ConsultationRepositoryInterface interface {
	Create(ctx context.Context, c *Consultation) error
	FindByID(ctx context.Context, userID, id string) (*Consultation, error)
	List(ctx context.Context, userID string) ([]*Consultation, error)
	ListByLead(ctx context.Context, userID, leadID string) ([]*Consultation, error)
	UpdateStatus(ctx context.Context, userID, id, status string) error
	Delete(ctx context.Context, userID, id string) error
	CountUpcoming(ctx context.Context, userID string, now time.Time) (int, error)
}

func NewConsultation(userID, leadID string, scheduledAt time.Time, durationMinutes int, location string) (*Consultation, error) {
	now := time.Now()
	c := &Consultation{
		ID:              uuid.New().String(),
		UserID:          userID,
		LeadID:          leadID,
		ScheduledAt:     scheduledAt,
		DurationMinutes: durationMinutes,
		Location:        location,
		Status:          ConsultationStatusScheduled,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Consultation) Validate() error {
	if c.LeadID == "" {
		return errors.New("lead_id is required")
	}
	if c.ScheduledAt.IsZero() {
		return errors.New("scheduled_at is required")
	}
	if c.DurationMinutes <= 0 {
		return errors.New("duration_minutes must be positive")
	}
	return nil
}

func IsValidConsultationStatus(s string) bool {
	switch s {
	case ConsultationStatusScheduled, ConsultationStatusCompleted,
		ConsultationStatusCancelled, ConsultationStatusNoShow:
		return true
	}
	return false
}
