package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"mapca-proposal/logic/contract"
	"mapca-proposal/logic/handoff"
	"mapca-proposal/logs"
	"mapca-proposal/types"
)

var ErrSessionNotFound = errors.New("sessão não encontrada")

// Summarizer condenses a raw diagnosis.
type Summarizer interface {
	Summarize(ctx context.Context, diagnosis string) (*types.SummaryResult, error)
}

// HandOffStore keeps published proposals until the contract page reads them.
// Get returns handoff.ErrNotFound for unknown ids.
type HandOffStore interface {
	Put(ctx context.Context, rec *types.HandOffRecord) error
	Get(ctx context.Context, id string) (*types.HandOffRecord, error)
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}

type ProposalService struct {
	sessions   *lru.Cache[string, *Workflow]
	extractor  Extractor
	analyzer   Analyzer
	summarizer Summarizer
	store      HandOffStore
	ttl        time.Duration
	now        func() time.Time
}

// NewProposalService wires the model profiles and the hand-off store.
func NewProposalService(ex Extractor, an Analyzer, sum Summarizer, store HandOffStore, cacheSize int, ttl time.Duration) (*ProposalService, error) {
	if cacheSize <= 0 {
		return nil, fmt.Errorf("session cache size must be positive, got %d", cacheSize)
	}
	sessions, err := lru.New[string, *Workflow](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("new session cache: %w", err)
	}
	return &ProposalService{
		sessions:   sessions,
		extractor:  ex,
		analyzer:   an,
		summarizer: sum,
		store:      store,
		ttl:        ttl,
		now:        time.Now,
	}, nil
}

// NewSession starts a workflow in the input step.
func (s *ProposalService) NewSession() *Workflow {
	id := uuid.NewString()
	w := NewWorkflow(id, s.extractor, s.analyzer)
	w.now = s.now
	s.sessions.Add(id, w)
	return w
}

func (s *ProposalService) Session(id string) (*Workflow, error) {
	w, ok := s.sessions.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return w, nil
}

// SessionOrNew returns the session for id, starting a new one when id is
// unknown or was evicted.
func (s *ProposalService) SessionOrNew(id string) *Workflow {
	if id != "" {
		if w, ok := s.sessions.Get(id); ok {
			return w
		}
	}
	return s.NewSession()
}

// PublishHandOff stores the session's proposal for the contract page.
func (s *ProposalService) PublishHandOff(ctx context.Context, sessionID string) (*types.HandOffRecord, error) {
	w, err := s.Session(sessionID)
	if err != nil {
		return nil, err
	}
	snap := w.Snapshot()
	if snap.Step == types.StepGenerating {
		return nil, ErrBusy
	}
	if snap.Step != types.StepViewing || snap.Proposal == nil {
		return nil, ErrInvalidTransition
	}

	rec, err := handoff.Encode(*snap.Proposal, uuid.NewString(), s.now(), s.ttl)
	if err != nil {
		return nil, err
	}
	if err := s.store.Put(ctx, rec); err != nil {
		return nil, fmt.Errorf("store hand-off: %w", err)
	}
	logs.L().Infof(">>> [HandOff] sessão %s publicou %s", sessionID, rec.ID)
	return rec, nil
}

// ContractHTML renders the contract behind a hand-off id. Anything wrong
// with the record yields the fallback document.
func (s *ProposalService) ContractHTML(ctx context.Context, handOffID string) string {
	rec, err := s.store.Get(ctx, handOffID)
	if err != nil {
		logs.L().Warnf(">>> [Contract] hand-off %s indisponível: %v", handOffID, err)
		return contract.Fallback
	}
	now := s.now()
	p, err := handoff.Decode(rec, now)
	if err != nil {
		logs.L().Warnf(">>> [Contract] hand-off %s inválido: %v", handOffID, err)
		return contract.Fallback
	}
	return contract.Render(*p, now)
}

func (s *ProposalService) Summarize(ctx context.Context, diagnosis string) (*types.SummaryResult, error) {
	return s.summarizer.Summarize(ctx, diagnosis)
}

// PurgeHandOffs drops expired hand-off records.
func (s *ProposalService) PurgeHandOffs(ctx context.Context) (int64, error) {
	return s.store.PurgeExpired(ctx, s.now())
}
