package entity

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	LeadStatusProspect      = "PROSPECT"
	LeadStatusConverted     = "CONVERTED"
	LeadStatusNotInterested = "NOT_INTERESTED"
)

// Lead is a prospective client in the trainer's pipeline. All profile fields
// are optional strings: they arrive from pasted spreadsheet data and are kept
// exactly as the import normalizers produced them.
type Lead struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`

	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Age         string `json:"age,omitempty"`
	Birthday    string `json:"birthday,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
	YearOfBirth string `json:"yearOfBirth,omitempty"`
	Gender      string `json:"gender,omitempty"`
	Goals       string `json:"goals,omitempty"`
	LeadType    string `json:"leadType,omitempty"`
	JoinDate    string `json:"joinDate,omitempty"`

	Status          string    `json:"status"` // PROSPECT, CONVERTED, NOT_INTERESTED
	Notes           string    `json:"notes,omitempty"`
	StatusChangedAt time.Time `json:"status_changed_at"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// Derived at read time, never stored.
	DisplayName   string `json:"displayName"`
	StatusAgeDays int    `json:"statusAgeDays"`
}

type LeadRepositoryInterface interface {
	ImportBatch(ctx context.Context, userID string, leads []*Lead) (int, error)
	Create(ctx context.Context, lead *Lead) error
	FindByID(ctx context.Context, userID, id string) (*Lead, error)
	List(ctx context.Context, userID, status string) ([]*Lead, error)
	UpdateStatus(ctx context.Context, userID, id, status string) error
	UpdateNotes(ctx context.Context, userID, id, notes string) error
	Delete(ctx context.Context, userID, id string) error
	CountByStatus(ctx context.Context, userID string) (map[string]int, error)
}

func NewLead(userID string) *Lead {
	now := time.Now()
	return &Lead{
		ID:              uuid.New().String(),
		UserID:          userID,
		Status:          LeadStatusProspect,
		StatusChangedAt: now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// HasContact reports whether the lead carries at least one of the four
// identifying fields. Leads failing this are dropped on import.
func (l *Lead) HasContact() bool {
	return strings.TrimSpace(l.FirstName) != "" ||
		strings.TrimSpace(l.LastName) != "" ||
		strings.TrimSpace(l.Email) != "" ||
		strings.TrimSpace(l.PhoneNumber) != ""
}

func (l *Lead) HasName() bool {
	return strings.TrimSpace(l.FirstName) != "" || strings.TrimSpace(l.LastName) != ""
}

func IsValidLeadStatus(s string) bool {
	switch s {
	case LeadStatusProspect, LeadStatusConverted, LeadStatusNotInterested:
		return true
	}
	return false
}

// ComputeDisplayName resolves the name shown in lists: full name first, then
// email, then phone, then a placeholder.
func (l *Lead) ComputeDisplayName() string {
	name := strings.TrimSpace(strings.TrimSpace(l.FirstName) + " " + strings.TrimSpace(l.LastName))
	if name != "" {
		return name
	}
	if l.Email != "" {
		return l.Email
	}
	if l.PhoneNumber != "" {
		return l.PhoneNumber
	}
	return "Unnamed lead"
}

// ComputeStatusAgeDays is the whole number of days since the status last
// changed, relative to now.
func (l *Lead) ComputeStatusAgeDays(now time.Time) int {
	days := int(now.Sub(l.StatusChangedAt).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// Decorate fills the derived display fields before a lead is serialized.
func (l *Lead) Decorate(now time.Time) *Lead {
	l.DisplayName = l.ComputeDisplayName()
	l.StatusAgeDays = l.ComputeStatusAgeDays(now)
	return l
}
