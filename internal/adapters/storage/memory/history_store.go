package memory

import (
	"sync"

	"github.com/aryamb/studycoach-agent/internal/domain"
)

// HistoryStore is a simple in-memory implementation of domain.HistoryStore.
// It is NOT persistent and is only suitable for development / tests.
type HistoryStore struct {
	mu      sync.RWMutex
	records []domain.HistoryRecord
}

func NewHistoryStore() *HistoryStore {
	return &HistoryStore{}
}

func (s *HistoryStore) LoadAll() ([]domain.HistoryRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.HistoryRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *HistoryStore) Append(record domain.HistoryRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, record)
	return nil
}

func (s *HistoryStore) ClearAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = nil
	return nil
}
