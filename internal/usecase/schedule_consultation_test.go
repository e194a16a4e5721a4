package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jcarter-pt/traincrm/internal/entity"
	"github.com/jcarter-pt/traincrm/internal/usecase"
)

func TestScheduleConsultationSuccess(t *testing.T) {
	ctx := context.Background()

	mockLeadRepo := new(MockLeadRepository)
	mockConsultationRepo := new(MockConsultationRepository)
	mockEmail := new(MockEmailService)
	mockStats := new(MockStatsCache)

	lead := &entity.Lead{ID: "lead-1", UserID: "user-1", FirstName: "Sarah", LastName: "Mitchell", Email: "sarah@example.com"}
	mockLeadRepo.On("FindByID", ctx, "user-1", "lead-1").Return(lead, nil)
	mockConsultationRepo.On("Create", ctx, mock.Anything).Return(nil)
	mockEmail.On("SendConsultationConfirmation", "sarah@example.com", "Sarah Mitchell", mock.Anything, "Studio 3").Return(nil)
	mockStats.On("Invalidate", ctx, "user-1").Return()

	uc := usecase.NewScheduleConsultationUseCase(mockLeadRepo, mockConsultationRepo, mockEmail, mockStats)

	input := usecase.ScheduleConsultationInput{
		LeadID:          "lead-1",
		ScheduledAt:     time.Now().Add(48 * time.Hour),
		DurationMinutes: 45,
		Location:        "Studio 3",
		Notes:           "Initial consult",
	}

	consultation, err := uc.Execute(ctx, "user-1", input)

	assert.NoError(t, err)
	assert.NotNil(t, consultation)
	assert.Equal(t, entity.ConsultationStatusScheduled, consultation.Status)
	assert.Equal(t, "Initial consult", consultation.Notes)
	mockEmail.AssertCalled(t, "SendConsultationConfirmation", "sarah@example.com", "Sarah Mitchell", mock.Anything, "Studio 3")
	mockStats.AssertCalled(t, "Invalidate", ctx, "user-1")
}

func TestScheduleConsultationLeadNotOwned(t *testing.T) {
	ctx := context.Background()

	mockLeadRepo := new(MockLeadRepository)
	mockConsultationRepo := new(MockConsultationRepository)

	// Another trainer's lead and a missing lead look identical.
	mockLeadRepo.On("FindByID", ctx, "user-1", "lead-9").Return(nil, entity.ErrNotFound)

	uc := usecase.NewScheduleConsultationUseCase(mockLeadRepo, mockConsultationRepo, nil, nil)

	consultation, err := uc.Execute(ctx, "user-1", usecase.ScheduleConsultationInput{
		LeadID:          "lead-9",
		ScheduledAt:     time.Now(),
		DurationMinutes: 30,
	})

	assert.Error(t, err)
	assert.Nil(t, consultation)
	assert.True(t, usecase.IsDomainError(err))
	mockConsultationRepo.AssertNotCalled(t, "Create")
}

func TestScheduleConsultationInvalidInput(t *testing.T) {
	ctx := context.Background()

	mockLeadRepo := new(MockLeadRepository)
	mockConsultationRepo := new(MockConsultationRepository)

	lead := &entity.Lead{ID: "lead-1", UserID: "user-1"}
	mockLeadRepo.On("FindByID", ctx, "user-1", "lead-1").Return(lead, nil)

	uc := usecase.NewScheduleConsultationUseCase(mockLeadRepo, mockConsultationRepo, nil, nil)

	consultation, err := uc.Execute(ctx, "user-1", usecase.ScheduleConsultationInput{
		LeadID:          "lead-1",
		ScheduledAt:     time.Now(),
		DurationMinutes: 0, // must be positive
	})

	assert.Error(t, err)
	assert.Nil(t, consultation)
	assert.True(t, usecase.IsDomainError(err))
	mockConsultationRepo.AssertNotCalled(t, "Create")
}

func TestScheduleConsultationEmailFailureIsNotFatal(t *testing.T) {
	ctx := context.Background()

	mockLeadRepo := new(MockLeadRepository)
	mockConsultationRepo := new(MockConsultationRepository)
	mockEmail := new(MockEmailService)

	lead := &entity.Lead{ID: "lead-1", UserID: "user-1", Email: "sarah@example.com"}
	mockLeadRepo.On("FindByID", ctx, "user-1", "lead-1").Return(lead, nil)
	mockConsultationRepo.On("Create", ctx, mock.Anything).Return(nil)
	mockEmail.On("SendConsultationConfirmation", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("smtp down"))

	uc := usecase.NewScheduleConsultationUseCase(mockLeadRepo, mockConsultationRepo, mockEmail, nil)

	consultation, err := uc.Execute(ctx, "user-1", usecase.ScheduleConsultationInput{
		LeadID:          "lead-1",
		ScheduledAt:     time.Now().Add(time.Hour),
		DurationMinutes: 30,
	})

	assert.NoError(t, err)
	assert.NotNil(t, consultation)
}
