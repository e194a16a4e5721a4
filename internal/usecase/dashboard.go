package usecase

import (
	"context"
	"time"

	"github.com/jcarter-pt/traincrm/internal/entity"
)

type DashboardStats struct {
	Prospects             int `json:"prospects"`
	Converted             int `json:"converted"`
	NotInterested         int `json:"notInterested"`
	TasksDueToday         int `json:"tasksDueToday"`
	UpcomingConsultations int `json:"upcomingConsultations"`
}

type DashboardUseCase struct {
	LeadRepo         entity.LeadRepositoryInterface
	TaskRepo         entity.TaskRepositoryInterface
	ConsultationRepo entity.ConsultationRepositoryInterface
	Stats            StatsCacheInterface
}

func NewDashboardUseCase(
	leadRepo entity.LeadRepositoryInterface,
	taskRepo entity.TaskRepositoryInterface,
	consultationRepo entity.ConsultationRepositoryInterface,
	stats StatsCacheInterface,
) *DashboardUseCase {
	return &DashboardUseCase{
		LeadRepo:         leadRepo,
		TaskRepo:         taskRepo,
		ConsultationRepo: consultationRepo,
		Stats:            stats,
	}
}

func (uc *DashboardUseCase) Execute(ctx context.Context, userID string) (*DashboardStats, error) {
	if uc.Stats != nil {
		if cached, ok := uc.Stats.Get(ctx, userID); ok {
			return cached, nil
		}
	}

	byStatus, err := uc.LeadRepo.CountByStatus(ctx, userID)
	if err != nil {
		return nil, &TechnicalError{Code: "DASHBOARD_FAILED", Message: "Failed to load dashboard stats"}
	}

	now := time.Now()
	dueToday, err := uc.TaskRepo.CountDueToday(ctx, userID, now)
	if err != nil {
		return nil, &TechnicalError{Code: "DASHBOARD_FAILED", Message: "Failed to load dashboard stats"}
	}
	upcoming, err := uc.ConsultationRepo.CountUpcoming(ctx, userID, now)
	if err != nil {
		return nil, &TechnicalError{Code: "DASHBOARD_FAILED", Message: "Failed to load dashboard stats"}
	}

	stats := &DashboardStats{
		Prospects:             byStatus[entity.LeadStatusProspect],
		Converted:             byStatus[entity.LeadStatusConverted],
		NotInterested:         byStatus[entity.LeadStatusNotInterested],
		TasksDueToday:         dueToday,
		UpcomingConsultations: upcoming,
	}

	if uc.Stats != nil {
		uc.Stats.Set(ctx, userID, stats)
	}
	return stats, nil
}
