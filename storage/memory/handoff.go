package memory

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"mapca-proposal/logic/handoff"
	"mapca-proposal/types"
)

// HandOffStore keeps hand-off records in process memory. Records also expire
// on their own after ttl, independent of PurgeExpired.
type HandOffStore struct {
	cache *expirable.LRU[string, types.HandOffRecord]
}

func NewHandOffStore(size int, ttl time.Duration) *HandOffStore {
	return &HandOffStore{cache: expirable.NewLRU[string, types.HandOffRecord](size, nil, ttl)}
}

func (s *HandOffStore) Put(_ context.Context, rec *types.HandOffRecord) error {
	s.cache.Add(rec.ID, *rec)
	return nil
}

func (s *HandOffStore) Get(_ context.Context, id string) (*types.HandOffRecord, error) {
	rec, ok := s.cache.Get(id)
	if !ok {
		return nil, handoff.ErrNotFound
	}
	return &rec, nil
}

func (s *HandOffStore) PurgeExpired(_ context.Context, now time.Time) (int64, error) {
	var n int64
	for _, rec := range s.cache.Values() {
		if !rec.ExpiresAt.IsZero() && !now.Before(rec.ExpiresAt) {
			if s.cache.Remove(rec.ID) {
				n++
			}
		}
	}
	return n, nil
}
