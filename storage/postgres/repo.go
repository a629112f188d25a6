package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"mapca-proposal/logic/handoff"
	"mapca-proposal/types"
)

// HandOffRepo wraps every query on proposal_handoffs.
type HandOffRepo struct {
	db *gorm.DB
}

func NewHandOffRepo(db *gorm.DB) *HandOffRepo {
	return &HandOffRepo{db: db}
}

// Put inserts rec, replacing any row with the same id.
func (r *HandOffRepo) Put(ctx context.Context, rec *types.HandOffRecord) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(fromRecord(rec)).Error
}

func (r *HandOffRepo) Get(ctx context.Context, id string) (*types.HandOffRecord, error) {
	var h HandOff
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&h).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, handoff.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return h.toRecord(), nil
}

// PurgeExpired deletes every record whose expiry is not after now.
func (r *HandOffRepo) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at IS NOT NULL AND expires_at <= ?", now).
		Delete(&HandOff{})
	return result.RowsAffected, result.Error
}
