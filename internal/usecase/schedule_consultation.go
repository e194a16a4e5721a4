package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/jcarter-pt/traincrm/internal/entity"
)

type ScheduleConsultationInput struct {
	LeadID          string    `json:"lead_id"`
	ScheduledAt     time.Time `json:"scheduled_at"`
	DurationMinutes int       `json:"duration_minutes"`
	Location        string    `json:"location"`
	Notes           string    `json:"notes"`
}

type ScheduleConsultationUseCase struct {
	LeadRepo         entity.LeadRepositoryInterface
	ConsultationRepo entity.ConsultationRepositoryInterface
	EmailService     EmailService
	Stats            StatsCacheInterface
}

func NewScheduleConsultationUseCase(
	leadRepo entity.LeadRepositoryInterface,
	consultationRepo entity.ConsultationRepositoryInterface,
	emailService EmailService,
	stats StatsCacheInterface,
) *ScheduleConsultationUseCase {
	return &ScheduleConsultationUseCase{
		LeadRepo:         leadRepo,
		ConsultationRepo: consultationRepo,
		EmailService:     emailService,
		Stats:            stats,
	}
}

// Execute books a consultation against an owned lead and, when the lead has
// an email address, sends a confirmation. The email is best effort: a
// booked session beats a perfect outbox.
func (uc *ScheduleConsultationUseCase) Execute(ctx context.Context, userID string, input ScheduleConsultationInput) (*entity.Consultation, error) {
	lead, err := uc.LeadRepo.FindByID(ctx, userID, input.LeadID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, &DomainError{Code: "LEAD_NOT_FOUND", Message: entity.ErrNotFound.Error()}
		}
		return nil, &TechnicalError{Code: "CONSULTATION_FAILED", Message: "Failed to schedule consultation"}
	}

	consultation, err := entity.NewConsultation(userID, lead.ID, input.ScheduledAt, input.DurationMinutes, input.Location)
	if err != nil {
		return nil, &DomainError{Code: "INVALID_CONSULTATION", Message: err.Error()}
	}
	consultation.Notes = input.Notes

	if err := uc.ConsultationRepo.Create(ctx, consultation); err != nil {
		log.Printf("❌ failed to create consultation for lead %s: %v", lead.ID, err)
		return nil, &TechnicalError{Code: "CONSULTATION_FAILED", Message: "Failed to schedule consultation"}
	}

	if uc.EmailService != nil && lead.Email != "" {
		if err := uc.EmailService.SendConsultationConfirmation(lead.Email, lead.ComputeDisplayName(), consultation.ScheduledAt, consultation.Location); err != nil {
			log.Printf("⚠️ consultation confirmation email failed for %s: %v", lead.Email, err)
		}
	}

	if uc.Stats != nil {
		uc.Stats.Invalidate(ctx, userID)
	}
	return consultation, nil
}
