package types

import "time"

// Step is the workflow state tag.
type Step string

const (
	StepInput      Step = "input"
	StepConfirming Step = "confirming"
	StepGenerating Step = "generating"
	StepViewing    Step = "viewing"
	StepError      Step = "error"
)

// WorkflowSnapshot is a copy of a session's state, safe to hand to views.
type WorkflowSnapshot struct {
	SessionID string         `json:"session_id"`
	Step      Step           `json:"step"`
	InputText string         `json:"input_text,omitempty"`
	Extracted *ExtractedData `json:"extracted,omitempty"`
	Proposal  *ProposalData  `json:"proposal,omitempty"`
	Error     string         `json:"error,omitempty"`
}

// ActiveView names the page to show. A state whose data is missing shows
// nothing ("").
func (s WorkflowSnapshot) ActiveView() string {
	switch s.Step {
	case StepInput, StepGenerating, StepError:
		return string(s.Step)
	case StepConfirming:
		if s.Extracted != nil {
			return string(s.Step)
		}
	case StepViewing:
		if s.Proposal != nil {
			return string(s.Step)
		}
	}
	return ""
}

// HandOffRecord carries a serialized ProposalData from the proposal view to
// the contract view.
type HandOffRecord struct {
	ID        string    `json:"id"`
	Version   int       `json:"version"`
	Payload   string    `json:"payload"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// --- requests ---

type ExtractRequest struct {
	Text string `json:"text" form:"text" binding:"required"`
}

type SummarizeRequest struct {
	Diagnosis string `json:"diagnosis" binding:"required"`
}

type HandOffResponse struct {
	HandOffID   string    `json:"handoff_id"`
	ContractURL string    `json:"contract_url"`
	ExpiresAt   time.Time `json:"expires_at"`
}
