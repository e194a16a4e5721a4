package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/jcarter-pt/traincrm/internal/infra/http/middleware"
	"github.com/jcarter-pt/traincrm/internal/usecase"
)

type LeadImporter interface {
	Execute(ctx context.Context, userID string, input usecase.ImportLeadsInput) (*usecase.ImportLeadsOutput, error)
}

type ImportHandler struct {
	Importer LeadImporter
}

func NewImportHandler(importer LeadImporter) *ImportHandler {
	return &ImportHandler{Importer: importer}
}

// HandleUpload is the import wizard's final step: it receives the full draft
// lead array and persists whatever survives server-side re-validation.
func (h *ImportHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	var input usecase.ImportLeadsInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	output, err := h.Importer.Execute(r.Context(), user.ID, input)
	if err != nil {
		respondUseCaseError(w, err)
		return
	}

	middleware.RecordLeadsImported(output.Imported, output.Skipped)
	respondData(w, http.StatusCreated, output)
}
