package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/aryamb/studycoach-agent/internal/domain"
)

const historyFileName = "study_motivation_history.json"

// Store keeps the full history as one pretty-printed JSON array on disk,
// rewritten on every append. Fine for a single local user with a handful of
// records; it makes no attempt to scale beyond that.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates the data directory if needed and returns the store.
func NewStore(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	return &Store{path: filepath.Join(dataDir, historyFileName)}, nil
}

// Path returns the location of the backing file.
func (s *Store) Path() string {
	return s.path
}

// LoadAll reads the whole history. A missing or undecodable file reads as
// empty, never as an error.
func (s *Store) LoadAll() ([]domain.HistoryRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadLocked(), nil
}

func (s *Store) loadLocked() []domain.HistoryRecord {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return []domain.HistoryRecord{}
	}

	var records []domain.HistoryRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return []domain.HistoryRecord{}
	}
	if records == nil {
		records = []domain.HistoryRecord{}
	}
	return records
}

// Append adds one record at the end and rewrites the file.
func (s *Store) Append(record domain.HistoryRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := append(s.loadLocked(), record)
	return s.writeLocked(records)
}

// ClearAll replaces the history with an empty array.
func (s *Store) ClearAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.writeLocked([]domain.HistoryRecord{})
}

// writeLocked marshals the records and swaps them in with a temp file +
// rename, so a crash mid-write never leaves a half-written history behind.
func (s *Store) writeLocked(records []domain.HistoryRecord) error {
	content, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".history-tmp-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(content); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("atomic rename: %w", err)
	}

	return nil
}
