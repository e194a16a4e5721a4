package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	ContactMethodCall = "CALL"
	ContactMethodText = "TEXT"
)

const (
	ContactOutcomeAnswered  = "ANSWERED"
	ContactOutcomeNoAnswer  = "NO_ANSWER"
	ContactOutcomeVoicemail = "VOICEMAIL"
	ContactOutcomeReplied   = "REPLIED"
	ContactOutcomeNoReply   = "NO_REPLY"
)

// ContactPoint logs one contact attempt (call or text) against a lead.
type ContactPoint struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	LeadID     string    `json:"lead_id"`
	Method     string    `json:"method"` // CALL, TEXT
	Outcome    string    `json:"outcome"`
	Notes      string    `json:"notes,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
	CreatedAt  time.Time `json:"created_at"`
}

type ContactPointRepositoryInterface interface {
	Create(ctx context.Context, cp *ContactPoint) error
	ListByLead(ctx context.Context, userID, leadID string) ([]*ContactPoint, error)
	Delete(ctx context.Context, userID, id string) error
}

func NewContactPoint(userID, leadID, method, outcome, notes string, occurredAt time.Time) (*ContactPoint, error) {
	cp := &ContactPoint{
		ID:         uuid.New().String(),
		UserID:     userID,
		LeadID:     leadID,
		Method:     method,
		Outcome:    outcome,
		Notes:      notes,
		OccurredAt: occurredAt,
		CreatedAt:  time.Now(),
	}
	if cp.OccurredAt.IsZero() {
		cp.OccurredAt = cp.CreatedAt
	}
	if err := cp.Validate(); err != nil {
		return nil, err
	}
	return cp, nil
}

func (cp *ContactPoint) Validate() error {
	if cp.LeadID == "" {
		return errors.New("lead_id is required")
	}
	if cp.Method != ContactMethodCall && cp.Method != ContactMethodText {
		return errors.New("method must be CALL or TEXT")
	}
	return nil
}
