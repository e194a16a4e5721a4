package importer

// Summary are the counts shown before the trainer confirms an import. It is
// advisory UI state: the upload endpoint re-filters regardless.
type Summary struct {
	Total       int `json:"total"`
	Valid       int `json:"valid"`
	WithName    int `json:"withName"`
	WithContact int `json:"withContact"`
}

func Summarize(leads []DraftLead) Summary {
	s := Summary{Total: len(leads)}
	for i := range leads {
		if leads[i].IsValid() {
			s.Valid++
		}
		if leads[i].HasName() {
			s.WithName++
		}
		if leads[i].HasContactInfo() {
			s.WithContact++
		}
	}
	return s
}

// CanProceed gates the confirm step: at least one draft must be importable.
func (s Summary) CanProceed() bool {
	return s.Valid > 0
}
