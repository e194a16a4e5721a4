package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jcarter-pt/traincrm/internal/entity"
	"github.com/jcarter-pt/traincrm/internal/importer"
	"github.com/jcarter-pt/traincrm/internal/usecase"
)

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) ImportBatch(ctx context.Context, userID string, leads []*entity.Lead) (int, error) {
	args := m.Called(ctx, userID, leads)
	return args.Int(0), args.Error(1)
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) FindByID(ctx context.Context, userID, id string) (*entity.Lead, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) List(ctx context.Context, userID, status string) ([]*entity.Lead, error) {
	args := m.Called(ctx, userID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) UpdateStatus(ctx context.Context, userID, id, status string) error {
	args := m.Called(ctx, userID, id, status)
	return args.Error(0)
}

func (m *MockLeadRepository) UpdateNotes(ctx context.Context, userID, id, notes string) error {
	args := m.Called(ctx, userID, id, notes)
	return args.Error(0)
}

func (m *MockLeadRepository) Delete(ctx context.Context, userID, id string) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockLeadRepository) CountByStatus(ctx context.Context, userID string) (map[string]int, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

// MockTaskRepository
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) Create(ctx context.Context, task *entity.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) FindByID(ctx context.Context, userID, id string) (*entity.Task, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Task), args.Error(1)
}

func (m *MockTaskRepository) List(ctx context.Context, userID string, includeCompleted bool) ([]*entity.Task, error) {
	args := m.Called(ctx, userID, includeCompleted)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Task), args.Error(1)
}

func (m *MockTaskRepository) ListByLead(ctx context.Context, userID, leadID string) ([]*entity.Task, error) {
	args := m.Called(ctx, userID, leadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Task), args.Error(1)
}

func (m *MockTaskRepository) Update(ctx context.Context, task *entity.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) Complete(ctx context.Context, userID, id string) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockTaskRepository) Delete(ctx context.Context, userID, id string) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockTaskRepository) CountDueToday(ctx context.Context, userID string, now time.Time) (int, error) {
	args := m.Called(ctx, userID, now)
	return args.Int(0), args.Error(1)
}

// MockConsultationRepository
type MockConsultationRepository struct {
	mock.Mock
}

func (m *MockConsultationRepository) Create(ctx context.Context, c *entity.Consultation) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockConsultationRepository) FindByID(ctx context.Context, userID, id string) (*entity.Consultation, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Consultation), args.Error(1)
}

func (m *MockConsultationRepository) List(ctx context.Context, userID string) ([]*entity.Consultation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Consultation), args.Error(1)
}

func (m *MockConsultationRepository) ListByLead(ctx context.Context, userID, leadID string) ([]*entity.Consultation, error) {
	args := m.Called(ctx, userID, leadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Consultation), args.Error(1)
}

func (m *MockConsultationRepository) UpdateStatus(ctx context.Context, userID, id, status string) error {
	args := m.Called(ctx, userID, id, status)
	return args.Error(0)
}

func (m *MockConsultationRepository) Delete(ctx context.Context, userID, id string) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockConsultationRepository) CountUpcoming(ctx context.Context, userID string, now time.Time) (int, error) {
	args := m.Called(ctx, userID, now)
	return args.Int(0), args.Error(1)
}

// MockStatsCache
type MockStatsCache struct {
	mock.Mock
}

func (m *MockStatsCache) Get(ctx context.Context, userID string) (*usecase.DashboardStats, bool) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*usecase.DashboardStats), args.Bool(1)
}

func (m *MockStatsCache) Set(ctx context.Context, userID string, stats *usecase.DashboardStats) {
	m.Called(ctx, userID, stats)
}

func (m *MockStatsCache) Invalidate(ctx context.Context, userID string) {
	m.Called(ctx, userID)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendTaskReminder(to, trainerName, leadName, taskTitle string, due time.Time) error {
	args := m.Called(to, trainerName, leadName, taskTitle, due)
	return args.Error(0)
}

func (m *MockEmailService) SendConsultationConfirmation(to, leadName string, when time.Time, location string) error {
	args := m.Called(to, leadName, when, location)
	return args.Error(0)
}

func TestImportLeadsSuccess(t *testing.T) {
	ctx := context.Background()

	mockLeadRepo := new(MockLeadRepository)
	mockStats := new(MockStatsCache)

	mockLeadRepo.On("ImportBatch", ctx, "user-1", mock.Anything).Return(2, nil)
	mockStats.On("Invalidate", ctx, "user-1").Return()

	uc := usecase.NewImportLeadsUseCase(mockLeadRepo, mockStats)

	input := usecase.ImportLeadsInput{Leads: []importer.DraftLead{
		{FirstName: "Sarah", LastName: "Mitchell", PhoneNumber: "412345678"},
		{Email: "tom@example.com"},
		{}, // fully empty row, skipped server-side
	}}

	output, err := uc.Execute(ctx, "user-1", input)

	assert.NoError(t, err)
	assert.NotNil(t, output)
	assert.Equal(t, 2, output.Imported)
	assert.Equal(t, 1, output.Skipped)

	mockLeadRepo.AssertCalled(t, "ImportBatch", ctx, "user-1", mock.Anything)
	mockStats.AssertCalled(t, "Invalidate", ctx, "user-1")
}

func TestImportLeadsRecleansDrafts(t *testing.T) {
	ctx := context.Background()

	mockLeadRepo := new(MockLeadRepository)

	var captured []*entity.Lead
	mockLeadRepo.On("ImportBatch", ctx, "user-1", mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(2).([]*entity.Lead)
		}).
		Return(1, nil)

	uc := usecase.NewImportLeadsUseCase(mockLeadRepo, nil)

	// Client sent an untrimmed name and a raw 9-digit mobile; the server
	// normalizes again rather than trusting the browser.
	input := usecase.ImportLeadsInput{Leads: []importer.DraftLead{
		{FirstName: "  Sarah ", PhoneNumber: "412345678", YearOfBirth: "1990"},
	}}

	output, err := uc.Execute(ctx, "user-1", input)

	assert.NoError(t, err)
	assert.Equal(t, 1, output.Imported)
	assert.Len(t, captured, 1)
	assert.Equal(t, "Sarah", captured[0].FirstName)
	assert.Equal(t, "0412345678", captured[0].PhoneNumber)
	assert.Equal(t, importer.YearOfBirthToAge("1990"), captured[0].Age)
	assert.Equal(t, "user-1", captured[0].UserID)
	assert.Equal(t, entity.LeadStatusProspect, captured[0].Status)
}

func TestImportLeadsNoValidLeads(t *testing.T) {
	ctx := context.Background()

	mockLeadRepo := new(MockLeadRepository)
	mockStats := new(MockStatsCache)

	uc := usecase.NewImportLeadsUseCase(mockLeadRepo, mockStats)

	input := usecase.ImportLeadsInput{Leads: []importer.DraftLead{
		{Age: "34", Goals: "weight loss"}, // no name, email or phone
		{},
	}}

	output, err := uc.Execute(ctx, "user-1", input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, usecase.IsDomainError(err))
	assert.Equal(t, "No valid leads found to import", err.Error())

	mockLeadRepo.AssertNotCalled(t, "ImportBatch")
	mockStats.AssertNotCalled(t, "Invalidate")
}

func TestImportLeadsRepositoryFailure(t *testing.T) {
	ctx := context.Background()

	mockLeadRepo := new(MockLeadRepository)
	mockStats := new(MockStatsCache)

	mockLeadRepo.On("ImportBatch", ctx, "user-1", mock.Anything).
		Return(0, errors.New("database error"))

	uc := usecase.NewImportLeadsUseCase(mockLeadRepo, mockStats)

	input := usecase.ImportLeadsInput{Leads: []importer.DraftLead{
		{FirstName: "Sarah"},
	}}

	output, err := uc.Execute(ctx, "user-1", input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, usecase.IsTechnicalError(err))

	// Cache must not be invalidated when nothing was written.
	mockStats.AssertNotCalled(t, "Invalidate")
}
