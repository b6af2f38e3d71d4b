package httpadapter_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpadapter "github.com/aryamb/studycoach-agent/internal/adapters/http"
	"github.com/aryamb/studycoach-agent/internal/adapters/llm"
	"github.com/aryamb/studycoach-agent/internal/adapters/storage/memory"
	"github.com/aryamb/studycoach-agent/internal/app/planner"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	svc := planner.NewService(llm.NewMockLLM(), memory.NewHistoryStore())
	return httpadapter.NewServer(svc)
}

func postPlan(t *testing.T, srv http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/plans", bytes.NewReader([]byte(body)))
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()

	srv.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestIndexPage(t *testing.T) {
	srv := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	srv.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("expected html content type, got %q", ct)
	}
	if !strings.Contains(w.Body.String(), "Study Motivation") {
		t.Error("expected the form page body")
	}
}

func TestGeneratePlan(t *testing.T) {
	srv := newTestServer(t)

	w := postPlan(t, srv, `{
		"subject": "Linear Algebra",
		"difficulty": "Very Hard",
		"reason": "too many formulas",
		"mood": "Tired",
		"time_available_min": 45,
		"save": false
	}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Analysis   string   `json:"analysis"`
		TodayTasks []string `json:"today_tasks"`
		WeeklyPlan []struct {
			Day string `json:"day"`
		} `json:"weekly_plan"`
		Enriched string `json:"enriched"`
		Saved    bool   `json:"saved"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}

	if resp.Analysis == "" {
		t.Error("expected a non-empty analysis")
	}
	if len(resp.TodayTasks) != 3 {
		t.Errorf("45 min: got %d tasks, want 3", len(resp.TodayTasks))
	}
	if len(resp.WeeklyPlan) != 7 {
		t.Errorf("got %d weekly entries, want 7", len(resp.WeeklyPlan))
	}
	if resp.WeeklyPlan[0].Day != "Mon" {
		t.Errorf("weekly plan starts at %q, want Mon", resp.WeeklyPlan[0].Day)
	}
	if resp.Enriched == "" {
		t.Error("mock LLM should enrich the plan")
	}
	if resp.Saved {
		t.Error("save=false must not mark the plan saved")
	}
}

func TestGeneratePlanClampsMinutes(t *testing.T) {
	srv := newTestServer(t)

	// 5 minutes is below the slider floor; clamped to 10 → micro bucket.
	w := postPlan(t, srv, `{"subject":"Math","difficulty":"Hard","mood":"Focused","time_available_min":5,"save":false}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		TodayTasks []string `json:"today_tasks"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if len(resp.TodayTasks) != 2 {
		t.Errorf("clamped micro bucket: got %d tasks, want 2", len(resp.TodayTasks))
	}
}

func TestGeneratePlanBadBody(t *testing.T) {
	srv := newTestServer(t)

	w := postPlan(t, srv, `{not json`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestHistoryFlow(t *testing.T) {
	srv := newTestServer(t)

	// Start empty.
	req := httptest.NewRequest(http.MethodGet, "/history", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if strings.TrimSpace(w.Body.String()) != "[]" {
		t.Errorf("expected empty array, got %q", w.Body.String())
	}

	// Save one plan.
	if w := postPlan(t, srv, `{"subject":"Chemistry","difficulty":"Medium","mood":"Focused","time_available_min":60,"save":true}`); w.Code != http.StatusOK {
		t.Fatalf("save failed: %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/history", nil)
	w = httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	var items []struct {
		Subject       string `json:"subject"`
		TimeAvailable int    `json:"time_available"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if len(items) != 1 || items[0].Subject != "Chemistry" || items[0].TimeAvailable != 60 {
		t.Errorf("unexpected history: %+v", items)
	}

	// Export.
	req = httptest.NewRequest(http.MethodGet, "/history/export", nil)
	w = httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("export: expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("export content type: %q", ct)
	}
	if !strings.Contains(w.Body.String(), "Chemistry") {
		t.Errorf("export missing record: %q", w.Body.String())
	}

	// Clear.
	req = httptest.NewRequest(http.MethodDelete, "/history", nil)
	w = httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("clear: expected 204, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/history", nil)
	w = httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	if strings.TrimSpace(w.Body.String()) != "[]" {
		t.Errorf("expected empty history after clear, got %q", w.Body.String())
	}
}

func TestRequestIDHeader(t *testing.T) {
	srv := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()

	srv.ServeHTTP(w, req)

	if w.Header().Get("X-Request-ID") == "" {
		t.Error("expected an X-Request-ID header")
	}
}
