package usecase

import (
	"context"
	"time"

	"github.com/jcarter-pt/traincrm/internal/infra/queue"
)

type QueueProducerInterface interface {
	PublishReminder(ctx context.Context, payload queue.ReminderPayload) error
}

type EmailService interface {
	SendTaskReminder(to, trainerName, leadName, taskTitle string, due time.Time) error
	SendConsultationConfirmation(to, leadName string, when time.Time, location string) error
}

// StatsCacheInterface fronts the dashboard numbers. Misses and cache outages
// both fall through to the database.
type StatsCacheInterface interface {
	Get(ctx context.Context, userID string) (*DashboardStats, bool)
	Set(ctx context.Context, userID string, stats *DashboardStats)
	Invalidate(ctx context.Context, userID string)
}
