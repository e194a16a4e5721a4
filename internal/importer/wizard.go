package importer

// Step is one of the three linear wizard stages. Steps are never entered out
// of order; going back discards derived state.
type Step int

const (
	StepPaste Step = iota
	StepPreview
	StepConfirm
)

// State is an immutable snapshot of the import wizard. Every transition
// returns a new value; nothing here is shared or mutated in place.
type State struct {
	Step      Step
	RawText   string
	Rows      [][]string
	Mapping   Mapping
	Decisions []Decision
	Leads     []DraftLead
	Summary   Summary
}

func NewState() State {
	return State{Step: StepPaste}
}

// WithRawText replaces the pasted text, reparses the grid, and runs auto-map
// once. Auto-map is initialization behaviour: it only fires when no mapping
// exists yet, so a trainer's manual adjustments survive later edits.
func (s State) WithRawText(text string) State {
	s.RawText = text
	s.Rows = ParseRaw(text)
	if s.Mapping == nil {
		s.Mapping, s.Decisions = AutoMap(s.Rows)
	}
	return s.rebuild()
}

// WithMapping applies a trainer-adjusted mapping and recomputes the derived
// leads synchronously.
func (s State) WithMapping(m Mapping) State {
	s.Mapping = m
	return s.rebuild()
}

func (s State) rebuild() State {
	s.Leads = BuildLeads(s.Rows, s.Mapping)
	s.Summary = Summarize(s.Leads)
	return s
}

// CanProceed reports whether the current step's gate is open.
func (s State) CanProceed() bool {
	switch s.Step {
	case StepPaste:
		return len(s.Rows) > 0
	case StepPreview:
		return s.Summary.CanProceed()
	case StepConfirm:
		return s.Summary.CanProceed()
	}
	return false
}

// Next advances one step if the gate is open.
func (s State) Next() (State, bool) {
	if !s.CanProceed() || s.Step >= StepConfirm {
		return s, false
	}
	s.Step++
	return s, true
}

// Back returns to the previous step. Derived state is kept; a full restart
// is NewState.
func (s State) Back() State {
	if s.Step > StepPaste {
		s.Step--
	}
	return s
}
