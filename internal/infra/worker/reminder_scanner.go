package worker

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/jcarter-pt/traincrm/internal/infra/http/middleware"
	"github.com/jcarter-pt/traincrm/internal/infra/queue"
)

type ReminderProducer interface {
	PublishReminder(ctx context.Context, payload queue.ReminderPayload) error
}

// ReminderScanner periodically finds open tasks due today that have not been
// reminded yet, flags them, and publishes one reminder each.
type ReminderScanner struct {
	db           *sql.DB
	producer     ReminderProducer
	tickInterval time.Duration
}

func NewReminderScanner(db *sql.DB, producer ReminderProducer) *ReminderScanner {
	return &ReminderScanner{
		db:           db,
		producer:     producer,
		tickInterval: 15 * time.Minute,
	}
}

func (w *ReminderScanner) Start(ctx context.Context) {
	log.Println("🕒 Reminder scanner started (15min interval)")

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.scanDueTasks(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Println("⚠️ Reminder scanner stopped")
			return
		case <-ticker.C:
			w.scanDueTasks(ctx)
		}
	}
}

func (w *ReminderScanner) scanDueTasks(ctx context.Context) {
	// Flag-and-return in one statement so a crash between scan and publish
	// can at worst lose a reminder, never duplicate one.
	query := `
		UPDATE tasks
		SET reminder_sent = TRUE, updated_at = NOW()
		FROM leads, users
		WHERE tasks.lead_id = leads.id
		  AND tasks.user_id = users.id
		  AND tasks.completed = FALSE
		  AND tasks.reminder_sent = FALSE
		  AND tasks.due_date::date <= CURRENT_DATE
		RETURNING tasks.id, tasks.title, tasks.type, tasks.due_date,
		          leads.id, COALESCE(NULLIF(TRIM(leads.first_name || ' ' || leads.last_name), ''), leads.email, leads.phone_number, 'Unnamed lead'),
		          COALESCE(leads.phone_number, ''),
		          users.name, users.email
	`

	rows, err := w.db.QueryContext(ctx, query)
	if err != nil {
		log.Printf("❌ reminder scan failed: %v", err)
		return
	}
	defer rows.Close()

	published := 0
	for rows.Next() {
		var p queue.ReminderPayload
		if err := rows.Scan(
			&p.TaskID, &p.TaskTitle, &p.TaskType, &p.DueDate,
			&p.LeadID, &p.LeadName, &p.LeadPhone,
			&p.TrainerName, &p.TrainerEmail,
		); err != nil {
			log.Printf("⚠️ failed to scan due task: %v", err)
			continue
		}

		if err := w.producer.PublishReminder(ctx, p); err != nil {
			log.Printf("❌ failed to publish reminder for task %s: %v", p.TaskID, err)
			continue
		}
		middleware.RecordReminderPublished()
		published++
	}

	if published > 0 {
		log.Printf("✅ %d reminder(s) published", published)
	}
}
