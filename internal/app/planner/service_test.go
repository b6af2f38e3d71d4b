package planner_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aryamb/studycoach-agent/internal/adapters/llm"
	"github.com/aryamb/studycoach-agent/internal/adapters/storage/memory"
	"github.com/aryamb/studycoach-agent/internal/app/planner"
	"github.com/aryamb/studycoach-agent/internal/domain"
)

func timeFixed() time.Time {
	return time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
}

type failingLLM struct{}

func (failingLLM) GenerateCoachNote(ctx context.Context, in domain.SubmissionInput) (string, error) {
	return "", errors.New("provider unreachable")
}

type failingStore struct{}

func (failingStore) LoadAll() ([]domain.HistoryRecord, error) { return nil, errors.New("disk gone") }
func (failingStore) Append(domain.HistoryRecord) error        { return errors.New("disk gone") }
func (failingStore) ClearAll() error                          { return errors.New("disk gone") }

func TestGeneratePlanAndSave(t *testing.T) {
	ctx := context.Background()
	store := memory.NewHistoryStore()
	svc := planner.NewService(llm.NewMockLLM(), store)

	out := svc.GeneratePlan(ctx, planner.GeneratePlanInput{
		Submission: submission("Linear Algebra", "Hard", "too many formulas", "Tired", 45),
		Save:       true,
	})

	if !out.Saved {
		t.Fatal("expected plan to be saved")
	}
	if out.Record == nil || out.Record.ID == "" {
		t.Fatal("expected a saved record with an id")
	}
	if out.Enriched == "" {
		t.Error("mock LLM should produce an enriched note")
	}

	records := svc.History(ctx)
	if len(records) != 1 {
		t.Fatalf("history: got %d records, want 1", len(records))
	}

	last := records[len(records)-1]
	if last.Subject != "Linear Algebra" || last.Difficulty != domain.DifficultyHard {
		t.Errorf("unexpected record contents: %+v", last)
	}
	if len(last.TodayTasks) != len(out.Plan.TodayTasks) {
		t.Errorf("record tasks: got %d, want %d", len(last.TodayTasks), len(out.Plan.TodayTasks))
	}
}

func TestGeneratePlanWithoutSave(t *testing.T) {
	ctx := context.Background()
	store := memory.NewHistoryStore()
	svc := planner.NewService(nil, store)

	out := svc.GeneratePlan(ctx, planner.GeneratePlanInput{
		Submission: submission("Math", "Easy", "", "Focused", 60),
		Save:       false,
	})

	if out.Saved || out.Record != nil {
		t.Error("expected nothing saved")
	}
	if got := svc.History(ctx); len(got) != 0 {
		t.Errorf("history should be empty, got %d records", len(got))
	}
}

func TestEnrichmentAbsentWithoutClient(t *testing.T) {
	svc := planner.NewService(nil, memory.NewHistoryStore())

	out := svc.GeneratePlan(context.Background(), planner.GeneratePlanInput{
		Submission: submission("Math", "Hard", "", "Focused", 60),
	})

	if out.Enriched != "" {
		t.Errorf("expected absent enrichment, got %q", out.Enriched)
	}
}

func TestEnrichmentAbsentOnFailure(t *testing.T) {
	svc := planner.NewService(failingLLM{}, memory.NewHistoryStore())

	out := svc.GeneratePlan(context.Background(), planner.GeneratePlanInput{
		Submission: submission("Math", "Hard", "", "Focused", 60),
	})

	if out.Enriched != "" {
		t.Errorf("LLM failure must read as absent, got %q", out.Enriched)
	}
}

func TestStoreFailuresAreSwallowed(t *testing.T) {
	ctx := context.Background()
	svc := planner.NewService(nil, failingStore{})

	out := svc.GeneratePlan(ctx, planner.GeneratePlanInput{
		Submission: submission("Math", "Hard", "", "Focused", 60),
		Save:       true,
	})

	if out.Saved {
		t.Error("a failing append must not report saved")
	}
	if len(out.Plan.TodayTasks) == 0 {
		t.Error("the plan itself must survive a failing store")
	}

	if got := svc.History(ctx); len(got) != 0 {
		t.Errorf("failing load must read as empty, got %d", len(got))
	}

	// Must not panic or surface an error.
	svc.ClearHistory(ctx)
}

func TestClearHistory(t *testing.T) {
	ctx := context.Background()
	store := memory.NewHistoryStore()
	svc := planner.NewService(nil, store)

	svc.GeneratePlan(ctx, planner.GeneratePlanInput{
		Submission: submission("Math", "Hard", "", "Focused", 60),
		Save:       true,
	})
	svc.ClearHistory(ctx)

	if got := svc.History(ctx); len(got) != 0 {
		t.Errorf("expected empty history after clear, got %d", len(got))
	}
}

func TestExportCSV(t *testing.T) {
	ctx := context.Background()
	store := memory.NewHistoryStore()
	svc := planner.NewService(nil, store)

	empty := string(svc.ExportCSV(ctx))
	if !strings.HasPrefix(empty, "timestamp,subject,difficulty") {
		t.Errorf("expected header row, got %q", empty)
	}
	if strings.Count(empty, "\n") != 1 {
		t.Errorf("empty history should export header only, got %q", empty)
	}

	svc.GeneratePlan(ctx, planner.GeneratePlanInput{
		Submission: submission("Organic Chemistry", "Very Hard", "too many formulas", "Stressed", 120),
		Save:       true,
	})

	got := string(svc.ExportCSV(ctx))
	if !strings.Contains(got, "Organic Chemistry") {
		t.Errorf("expected record row in %q", got)
	}
	if !strings.Contains(got, " | ") {
		t.Errorf("expected tasks joined with ' | ' in %q", got)
	}
}
