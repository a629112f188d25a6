package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"mapca-proposal/logic/invoke"
	"mapca-proposal/logic/proposal"
	"mapca-proposal/logs"
	"mapca-proposal/types"
	"mapca-proposal/vars"
)

var (
	ErrEmptyInput        = errors.New("o texto do diagnóstico está vazio")
	ErrBusy              = errors.New("uma geração já está em andamento")
	ErrInvalidTransition = errors.New("ação não permitida neste passo")
)

// Extractor is the extraction profile as the workflow sees it.
type Extractor interface {
	Extract(ctx context.Context, content string) (*types.ExtractedData, error)
}

// Analyzer is the analysis profile as the workflow sees it.
type Analyzer interface {
	Analyze(ctx context.Context, in types.AnalysisInput) (*types.AnalysisResult, error)
}

// Workflow is one user's walk through input → confirming → viewing.
// Model calls run outside the lock with the session parked in generating;
// every transition attempted meanwhile fails with ErrBusy.
type Workflow struct {
	mu sync.Mutex

	id        string
	step      types.Step
	prev      types.Step
	inputText string
	extracted *types.ExtractedData
	proposal  *types.ProposalData
	errMsg    string

	extractor Extractor
	analyzer  Analyzer
	now       func() time.Time
}

func NewWorkflow(id string, ex Extractor, an Analyzer) *Workflow {
	return &Workflow{
		id:        id,
		step:      types.StepInput,
		extractor: ex,
		analyzer:  an,
		now:       time.Now,
	}
}

// SubmitText runs the extraction on text and moves to confirming, or to error.
func (w *Workflow) SubmitText(ctx context.Context, text string) (types.WorkflowSnapshot, error) {
	w.mu.Lock()
	if err := w.allow(types.StepInput); err != nil {
		w.mu.Unlock()
		return w.Snapshot(), err
	}
	if strings.TrimSpace(text) == "" {
		w.mu.Unlock()
		return w.Snapshot(), ErrEmptyInput
	}
	w.begin()
	w.inputText = text
	w.errMsg = ""
	w.mu.Unlock()

	data, err := w.extractor.Extract(ctx, text)
	if err == nil && data == nil {
		err = invoke.ErrNoResult
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		logs.L().Warnf(">>> [Workflow] %s extração falhou: %v", w.id, err)
		w.fail(vars.ExtractionFailedPrefix + err.Error())
		return w.snapshot(), nil
	}
	w.extracted = data
	w.step = types.StepConfirming
	logs.L().Infof(">>> [Workflow] %s dados extraídos: %s", w.id, data.CompanyName)
	return w.snapshot(), nil
}

// Confirm runs the analysis on the (possibly edited) data and moves to
// viewing, or to error keeping data for a retry.
func (w *Workflow) Confirm(ctx context.Context, data types.ExtractedData) (types.WorkflowSnapshot, error) {
	w.mu.Lock()
	if err := w.allow(types.StepConfirming); err != nil {
		w.mu.Unlock()
		return w.Snapshot(), err
	}
	w.begin()
	data.ConsultantName = vars.ConsultantName
	data.ConsultantEmail = vars.ConsultantEmail
	w.extracted = &data
	w.errMsg = ""
	w.mu.Unlock()

	res, err := w.analyzer.Analyze(ctx, types.AnalysisInput{
		CompanyName: data.CompanyName,
		CNPJ:        data.CNPJ,
		Diagnostics: data.DiagnosticSummary,
	})
	if err == nil && res == nil {
		err = invoke.ErrNoResult
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		logs.L().Warnf(">>> [Workflow] %s análise falhou: %v", w.id, err)
		w.fail(vars.AnalysisFailedPrefix + err.Error())
		return w.snapshot(), nil
	}
	p := proposal.Assemble(data, *res, w.now())
	w.proposal = &p
	w.extracted = nil
	w.step = types.StepViewing
	logs.L().Infof(">>> [Workflow] %s proposta gerada, total %.2f", w.id, p.Investimento.ValorTotalNumerico)
	return w.snapshot(), nil
}

// Back returns from confirming or error to the input step, keeping the text.
func (w *Workflow) Back() (types.WorkflowSnapshot, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	switch w.step {
	case types.StepGenerating:
		return w.snapshot(), ErrBusy
	case types.StepConfirming, types.StepError:
	default:
		return w.snapshot(), ErrInvalidTransition
	}
	w.step = types.StepInput
	w.prev = ""
	w.extracted = nil
	w.errMsg = ""
	return w.snapshot(), nil
}

// Retry leaves the error step for the step that failed, with its data.
// Nothing is re-invoked.
func (w *Workflow) Retry() (types.WorkflowSnapshot, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	switch w.step {
	case types.StepGenerating:
		return w.snapshot(), ErrBusy
	case types.StepError:
	default:
		return w.snapshot(), ErrInvalidTransition
	}
	w.step = w.prev
	if w.step == types.StepConfirming && w.extracted == nil {
		w.step = types.StepInput
	}
	w.prev = ""
	w.errMsg = ""
	return w.snapshot(), nil
}

// Reset clears everything and starts over.
func (w *Workflow) Reset() (types.WorkflowSnapshot, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step == types.StepGenerating {
		return w.snapshot(), ErrBusy
	}
	w.step = types.StepInput
	w.prev = ""
	w.inputText = ""
	w.extracted = nil
	w.proposal = nil
	w.errMsg = ""
	return w.snapshot(), nil
}

func (w *Workflow) Snapshot() types.WorkflowSnapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshot()
}

// allow reports whether a model call may start from want. Callers hold mu.
func (w *Workflow) allow(want types.Step) error {
	if w.step == types.StepGenerating {
		return ErrBusy
	}
	if w.step != want {
		return ErrInvalidTransition
	}
	return nil
}

func (w *Workflow) begin() {
	w.prev = w.step
	w.step = types.StepGenerating
}

func (w *Workflow) fail(msg string) {
	w.step = types.StepError
	w.errMsg = msg
}

func (w *Workflow) snapshot() types.WorkflowSnapshot {
	s := types.WorkflowSnapshot{
		SessionID: w.id,
		Step:      w.step,
		InputText: w.inputText,
		Error:     w.errMsg,
	}
	if w.extracted != nil {
		d := *w.extracted
		s.Extracted = &d
	}
	if w.proposal != nil {
		p := *w.proposal
		s.Proposal = &p
	}
	return s
}
