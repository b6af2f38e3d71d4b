package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/google/uuid"

	"github.com/aryamb/studycoach-agent/internal/domain"
)

type Store struct {
	client *firestore.Client
}

// NewStore creates a Firestore-backed history store.
// Uses the project passed (STUDYCOACH_GCP_PROJECT).
func NewStore(ctx context.Context, projectID string) (*Store, error) {
	if projectID == "" {
		return nil, fmt.Errorf("projectID is required for Firestore store")
	}

	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("creating firestore client: %w", err)
	}

	return &Store{client: client}, nil
}

// ─────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────

func (s *Store) historyCol() *firestore.CollectionRef {
	return s.client.Collection("study_history")
}

func (s *Store) recordDoc(id domain.RecordID) *firestore.DocumentRef {
	return s.historyCol().Doc(string(id))
}

// ─────────────────────────────────────────
// Firestore Types
// ─────────────────────────────────────────

type historyDoc struct {
	Timestamp     time.Time `firestore:"timestamp"`
	Subject       string    `firestore:"subject"`
	Difficulty    string    `firestore:"difficulty"`
	Reason        string    `firestore:"reason"`
	Mood          string    `firestore:"mood"`
	TimeAvailable int       `firestore:"time_available"`
	Analysis      string    `firestore:"analysis"`
	TodayTasks    []string  `firestore:"today_tasks"`
	CreatedAt     time.Time `firestore:"created_at"`
}

// ─────────────────────────────────────────
// HistoryStore implementation
// ─────────────────────────────────────────

func (s *Store) LoadAll() ([]domain.HistoryRecord, error) {
	ctx := context.Background()

	iter := s.historyCol().OrderBy("created_at", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var records []domain.HistoryRecord
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return []domain.HistoryRecord{}, nil
			}
			return nil, fmt.Errorf("firestore LoadAll: %w", err)
		}

		var doc historyDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("firestore LoadAll decode: %w", err)
		}

		records = append(records, domain.HistoryRecord{
			ID:            domain.RecordID(snap.Ref.ID),
			Timestamp:     doc.Timestamp,
			Subject:       doc.Subject,
			Difficulty:    domain.Difficulty(doc.Difficulty),
			Reason:        doc.Reason,
			Mood:          domain.Mood(doc.Mood),
			TimeAvailable: doc.TimeAvailable,
			Analysis:      doc.Analysis,
			TodayTasks:    doc.TodayTasks,
		})
	}

	if records == nil {
		records = []domain.HistoryRecord{}
	}
	return records, nil
}

func (s *Store) Append(record domain.HistoryRecord) error {
	ctx := context.Background()

	id := record.ID
	if id == "" {
		id = domain.RecordID(uuid.NewString())
	}

	doc := historyDoc{
		Timestamp:     record.Timestamp,
		Subject:       record.Subject,
		Difficulty:    string(record.Difficulty),
		Reason:        record.Reason,
		Mood:          string(record.Mood),
		TimeAvailable: record.TimeAvailable,
		Analysis:      record.Analysis,
		TodayTasks:    record.TodayTasks,
		CreatedAt:     time.Now(),
	}

	if _, err := s.recordDoc(id).Create(ctx, doc); err != nil {
		return fmt.Errorf("firestore Append: %w", err)
	}
	return nil
}

func (s *Store) ClearAll() error {
	ctx := context.Background()

	iter := s.historyCol().Documents(ctx)
	defer iter.Stop()

	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return fmt.Errorf("firestore ClearAll: %w", err)
		}
		if _, err := snap.Ref.Delete(ctx); err != nil {
			return fmt.Errorf("firestore ClearAll delete: %w", err)
		}
	}

	return nil
}
