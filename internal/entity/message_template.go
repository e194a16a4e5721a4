package entity

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	TemplateChannelSMS   = "SMS"
	TemplateChannelEmail = "EMAIL"
)

// MessageTemplate is a reusable outreach message with lead placeholders.
// Supported placeholders: {{firstName}}, {{lastName}}, {{displayName}}.
type MessageTemplate struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Channel   string    `json:"channel"` // SMS, EMAIL
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type TemplateRepositoryInterface interface {
	Create(ctx context.Context, t *MessageTemplate) error
	FindByID(ctx context.Context, userID, id string) (*MessageTemplate, error)
	List(ctx context.Context, userID string) ([]*MessageTemplate, error)
	Update(ctx context.Context, t *MessageTemplate) error
	Delete(ctx context.Context, userID, id string) error
}

func NewMessageTemplate(userID, name, channel, body string) (*MessageTemplate, error) {
	now := time.Now()
	t := &MessageTemplate{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      name,
		Channel:   channel,
		Body:      body,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *MessageTemplate) Validate() error {
	if t.Name == "" {
		return errors.New("name is required")
	}
	if t.Body == "" {
		return errors.New("body is required")
	}
	if t.Channel != TemplateChannelSMS && t.Channel != TemplateChannelEmail {
		return errors.New("channel must be SMS or EMAIL")
	}
	return nil
}

// Render substitutes lead placeholders into the template body. Unknown
// placeholders are left untouched.
func (t *MessageTemplate) Render(lead *Lead) string {
	r := strings.NewReplacer(
		"{{firstName}}", lead.FirstName,
		"{{lastName}}", lead.LastName,
		"{{displayName}}", lead.ComputeDisplayName(),
	)
	return r.Replace(t.Body)
}
