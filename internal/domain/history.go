package domain

import "time"

// HistoryRecord is one saved plan. The json field names match the history
// file written by earlier versions of the app, so old files keep reading.
type HistoryRecord struct {
	ID            RecordID   `json:"id,omitempty"`
	Timestamp     time.Time  `json:"timestamp"`
	Subject       string     `json:"subject"`
	Difficulty    Difficulty `json:"difficulty"`
	Reason        string     `json:"reason"`
	Mood          Mood       `json:"mood"`
	TimeAvailable int        `json:"time_available"`
	Analysis      string     `json:"analysis"`
	TodayTasks    []string   `json:"today_tasks"`
}

// HistoryStore defines the persistence of saved plans.
// The sequence is append-only: records are never edited in place, and the
// only destructive operation replaces the whole sequence with empty.
type HistoryStore interface {
	LoadAll() ([]HistoryRecord, error)
	Append(record HistoryRecord) error
	ClearAll() error
}
