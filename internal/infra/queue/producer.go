package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ReminderPayload carries everything the consumer needs to notify the
// trainer about a due follow-up, so it never has to hit the database.
type ReminderPayload struct {
	TaskID       string    `json:"task_id"`
	TaskTitle    string    `json:"task_title"`
	TaskType     string    `json:"task_type"`
	DueDate      time.Time `json:"due_date"`
	LeadID       string    `json:"lead_id"`
	LeadName     string    `json:"lead_name"`
	LeadPhone    string    `json:"lead_phone,omitempty"`
	TrainerName  string    `json:"trainer_name"`
	TrainerEmail string    `json:"trainer_email"`
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{Conn: conn, Ch: ch}
}

func (p *RabbitMQProducer) PublishReminder(ctx context.Context, payload ReminderPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish reminder: %w", err)
	}
	return nil
}
