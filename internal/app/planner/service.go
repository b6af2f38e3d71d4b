package planner

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aryamb/studycoach-agent/internal/domain"
	"github.com/aryamb/studycoach-agent/internal/observability"
)

// Service orchestrates one submission: generate the plan, ask the LLM for an
// optional note, and save to history when the user asked for it.
//
// The LLM and the store are both best-effort collaborators: any failure in
// either is logged and absorbed here, never returned to callers.
type Service struct {
	llm   domain.LLMClient
	store domain.HistoryStore
	now   func() time.Time
}

// NewService builds the service. llm may be nil (enrichment disabled).
func NewService(llm domain.LLMClient, store domain.HistoryStore) *Service {
	return &Service{
		llm:   llm,
		store: store,
		now:   time.Now,
	}
}

type GeneratePlanInput struct {
	Submission domain.SubmissionInput
	Save       bool
}

type GeneratePlanOutput struct {
	Plan domain.PlanResult

	// Enriched is the optional LLM coach note; empty when no LLM is
	// configured or the call failed.
	Enriched string

	Saved  bool
	Record *domain.HistoryRecord
}

func (s *Service) GeneratePlan(ctx context.Context, in GeneratePlanInput) *GeneratePlanOutput {
	log := observability.LoggerFromContext(ctx).With(
		"subject", in.Submission.NormalizedSubject(),
		"difficulty", in.Submission.Difficulty,
		"mood", in.Submission.Mood,
		"time_available_min", in.Submission.TimeAvailableMin,
	)
	log.Info("generating plan", "save", in.Save)

	plan := BuildPlan(in.Submission)

	out := &GeneratePlanOutput{
		Plan:     plan,
		Enriched: s.enrich(ctx, in.Submission),
	}

	if in.Save {
		record := domain.HistoryRecord{
			ID:            domain.RecordID(uuid.NewString()),
			Timestamp:     s.now(),
			Subject:       in.Submission.NormalizedSubject(),
			Difficulty:    in.Submission.Difficulty,
			Reason:        in.Submission.Reason,
			Mood:          in.Submission.Mood,
			TimeAvailable: in.Submission.TimeAvailableMin,
			Analysis:      plan.Analysis,
			TodayTasks:    plan.TodayTasks,
		}

		if err := s.store.Append(record); err != nil {
			// Best-effort persistence: the plan is still delivered.
			log.Error("failed to append history record", "error", err)
		} else {
			out.Saved = true
			out.Record = &record
		}
	}

	log.Info("plan generated", "saved", out.Saved, "enriched", out.Enriched != "")

	return out
}

// enrich asks the LLM for a coach note. Absent (empty string) when no client
// is configured or the call fails for any reason.
func (s *Service) enrich(ctx context.Context, in domain.SubmissionInput) string {
	if s.llm == nil {
		return ""
	}

	note, err := s.llm.GenerateCoachNote(ctx, in)
	if err != nil {
		observability.LoggerFromContext(ctx).Warn("enrichment unavailable", "error", err)
		return ""
	}
	return note
}

// History returns every saved record, oldest first. A failing store reads as
// empty.
func (s *Service) History(ctx context.Context) []domain.HistoryRecord {
	records, err := s.store.LoadAll()
	if err != nil {
		observability.LoggerFromContext(ctx).Error("failed to load history", "error", err)
		return []domain.HistoryRecord{}
	}
	if records == nil {
		records = []domain.HistoryRecord{}
	}
	return records
}

// ClearHistory drops every saved record. Failures are logged, not returned.
func (s *Service) ClearHistory(ctx context.Context) {
	if err := s.store.ClearAll(); err != nil {
		observability.LoggerFromContext(ctx).Error("failed to clear history", "error", err)
		return
	}
	observability.LoggerFromContext(ctx).Info("history cleared")
}

var csvHeader = []string{
	"timestamp", "subject", "difficulty", "reason", "mood",
	"time_available", "analysis", "today_tasks",
}

// ExportCSV renders the full history as CSV, header row included.
func (s *Service) ExportCSV(ctx context.Context) []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	_ = w.Write(csvHeader)
	for _, r := range s.History(ctx) {
		_ = w.Write([]string{
			r.Timestamp.Format(time.RFC3339),
			r.Subject,
			string(r.Difficulty),
			r.Reason,
			string(r.Mood),
			strconv.Itoa(r.TimeAvailable),
			r.Analysis,
			strings.Join(r.TodayTasks, " | "),
		})
	}
	w.Flush()

	return buf.Bytes()
}
