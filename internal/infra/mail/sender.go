package mail

import (
	"bytes"
	"fmt"
	"path/filepath"
	"text/template"
	"time"

	"gopkg.in/gomail.v2"
)

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

// SendTaskReminder mails the trainer that a follow-up is due today.
func (s *EmailSender) SendTaskReminder(to, trainerName, leadName, taskTitle string, due time.Time) error {
	body, err := renderTemplate("task_reminder.html", TaskReminderData{
		TrainerName: trainerName,
		LeadName:    leadName,
		TaskTitle:   taskTitle,
		DueDate:     due,
	})
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("Follow-up due: %s (%s)", taskTitle, leadName)
	return s.send(to, subject, body)
}

// SendConsultationConfirmation mails a lead their booked session details.
func (s *EmailSender) SendConsultationConfirmation(to, leadName string, when time.Time, location string) error {
	body, err := renderTemplate("consultation_confirmation.html", ConsultationConfirmationData{
		LeadName:    leadName,
		ScheduledAt: when,
		Location:    location,
	})
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("Your consultation on %s is booked", when.Format("Mon 2 Jan"))
	return s.send(to, subject, body)
}

func renderTemplate(name string, data interface{}) (string, error) {
	tmplPath := filepath.Join("templates", name)
	t, err := template.ParseFiles(tmplPath)
	if err != nil {
		return "", fmt.Errorf("failed to read email template %s: %w", name, err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return "", fmt.Errorf("failed to render email template %s: %w", name, err)
	}
	return body.String(), nil
}

func (s *EmailSender) send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email via SMTP: %w", err)
	}
	return nil
}
