package postgres

import (
	"time"

	"mapca-proposal/types"
)

// HandOff is a row of proposal_handoffs.
type HandOff struct {
	ID        string     `gorm:"column:id;primaryKey;type:uuid"`
	Version   int        `gorm:"column:version;type:smallint;not null"`
	Payload   string     `gorm:"column:payload;type:jsonb;not null"`
	ExpiresAt *time.Time `gorm:"column:expires_at;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (HandOff) TableName() string {
	return "proposal_handoffs"
}

func fromRecord(rec *types.HandOffRecord) *HandOff {
	h := &HandOff{
		ID:        rec.ID,
		Version:   rec.Version,
		Payload:   rec.Payload,
		CreatedAt: rec.CreatedAt,
	}
	if !rec.ExpiresAt.IsZero() {
		t := rec.ExpiresAt
		h.ExpiresAt = &t
	}
	return h
}

func (h *HandOff) toRecord() *types.HandOffRecord {
	rec := &types.HandOffRecord{
		ID:        h.ID,
		Version:   h.Version,
		Payload:   h.Payload,
		CreatedAt: h.CreatedAt,
	}
	if h.ExpiresAt != nil {
		rec.ExpiresAt = *h.ExpiresAt
	}
	return rec
}
