// Package handoff serializes a finished proposal into a versioned record so
// the contract page can be rendered from a separate request.
package handoff

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"mapca-proposal/logic/shape"
	"mapca-proposal/types"
	"mapca-proposal/vars"
)

var (
	ErrNotFound = errors.New("hand-off não encontrado")
	ErrExpired  = errors.New("hand-off expirado")
	ErrVersion  = errors.New("versão de hand-off não suportada")
)

// Encode builds the record for p. A zero ttl means the record never expires.
func Encode(p types.ProposalData, id string, now time.Time, ttl time.Duration) (*types.HandOffRecord, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal proposal: %w", err)
	}
	rec := &types.HandOffRecord{
		ID:        id,
		Version:   vars.HandOffVersion,
		Payload:   string(payload),
		CreatedAt: now,
	}
	if ttl > 0 {
		rec.ExpiresAt = now.Add(ttl)
	}
	return rec, nil
}

// Decode validates rec and returns the proposal it carries.
func Decode(rec *types.HandOffRecord, now time.Time) (*types.ProposalData, error) {
	if rec == nil {
		return nil, ErrNotFound
	}
	if rec.Version != vars.HandOffVersion {
		return nil, fmt.Errorf("%w: %d", ErrVersion, rec.Version)
	}
	if !rec.ExpiresAt.IsZero() && !now.Before(rec.ExpiresAt) {
		return nil, ErrExpired
	}
	p, err := shape.Decode[types.ProposalData]([]byte(rec.Payload))
	if err != nil {
		return nil, fmt.Errorf("hand-off %s: %w", rec.ID, err)
	}
	return p, nil
}
