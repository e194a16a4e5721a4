package queue

import (
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ReminderNotifier is the outbound side of the reminder pipeline.
type ReminderNotifier interface {
	SendTaskReminder(to, trainerName, leadName, taskTitle string, due time.Time) error
}

// Worker consumes the reminder queue and emails the trainer. It is fully
// decoupled from the database: the payload is self-contained.
type Worker struct {
	Channel  *amqp.Channel
	Notifier ReminderNotifier
}

func NewWorker(ch *amqp.Channel, notifier ReminderNotifier) *Worker {
	return &Worker{Channel: ch, Notifier: notifier}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		log.Fatalf("❌ failed to register RabbitMQ consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload ReminderPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] malformed reminder message: %s", err)
				// Poison message. Reject without requeue so the DLQ keeps it.
				d.Nack(false, false)
				continue
			}

			log.Printf("📥 [WORKER] reminder for task %q (lead %s)", payload.TaskTitle, payload.LeadName)

			if err := w.Notifier.SendTaskReminder(
				payload.TrainerEmail,
				payload.TrainerName,
				payload.LeadName,
				payload.TaskTitle,
				payload.DueDate,
			); err != nil {
				log.Printf("❌ [WORKER] reminder email failed: %s", err)
				d.Nack(false, false)
			} else {
				log.Printf("✅ [WORKER] reminder sent to %s", payload.TrainerEmail)
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Reminder worker waiting on queue '%s'", queueName)
	<-forever
}
