package mail

import "time"

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type TaskReminderData struct {
	TrainerName string
	LeadName    string
	TaskTitle   string
	DueDate     time.Time
}

type ConsultationConfirmationData struct {
	LeadName    string
	ScheduledAt time.Time
	Location    string
}
