package usecase

import (
	"context"
	"log"

	"github.com/jcarter-pt/traincrm/internal/entity"
	"github.com/jcarter-pt/traincrm/internal/importer"
)

type ImportLeadsInput struct {
	Leads []importer.DraftLead `json:"leads"`
}

type ImportLeadsOutput struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

type ImportLeadsUseCase struct {
	LeadRepo entity.LeadRepositoryInterface
	Stats    StatsCacheInterface
}

func NewImportLeadsUseCase(leadRepo entity.LeadRepositoryInterface, stats StatsCacheInterface) *ImportLeadsUseCase {
	return &ImportLeadsUseCase{LeadRepo: leadRepo, Stats: stats}
}

// Execute re-cleans every submitted draft, discards the fully-empty ones,
// and persists the rest in a single transaction together with one "Initial
// call" follow-up task per lead. Client-side validation is advisory only;
// this is where the real gate lives.
func (uc *ImportLeadsUseCase) Execute(ctx context.Context, userID string, input ImportLeadsInput) (*ImportLeadsOutput, error) {
	var leads []*entity.Lead
	skipped := 0
	for _, draft := range input.Leads {
		draft = draft.Clean()
		if !draft.IsValid() {
			skipped++
			continue
		}
		leads = append(leads, draftToLead(userID, draft))
	}

	if len(leads) == 0 {
		return nil, &DomainError{Code: "NO_VALID_LEADS", Message: "No valid leads found to import"}
	}

	imported, err := uc.LeadRepo.ImportBatch(ctx, userID, leads)
	if err != nil {
		log.Printf("❌ lead import failed for user %s: %v", userID, err)
		return nil, &TechnicalError{Code: "IMPORT_FAILED", Message: "Failed to import leads"}
	}

	if uc.Stats != nil {
		uc.Stats.Invalidate(ctx, userID)
	}

	return &ImportLeadsOutput{Imported: imported, Skipped: skipped}, nil
}

func draftToLead(userID string, d importer.DraftLead) *entity.Lead {
	lead := entity.NewLead(userID)
	lead.FirstName = d.FirstName
	lead.LastName = d.LastName
	lead.Email = d.Email
	lead.PhoneNumber = d.PhoneNumber
	lead.Age = d.Age
	lead.Birthday = d.Birthday
	lead.DateOfBirth = d.DateOfBirth
	lead.YearOfBirth = d.YearOfBirth
	lead.Gender = d.Gender
	lead.Goals = d.Goals
	lead.LeadType = d.LeadType
	lead.JoinDate = d.JoinDate
	return lead
}
