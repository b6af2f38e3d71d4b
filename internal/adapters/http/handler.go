package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/aryamb/studycoach-agent/internal/app/planner"
	"github.com/aryamb/studycoach-agent/internal/domain"
	"github.com/aryamb/studycoach-agent/web"
)

const (
	minMinutes = 10
	maxMinutes = 300
)

type Server struct {
	svc *planner.Service
	now func() time.Time
}

func NewServer(svc *planner.Service) http.Handler {
	s := &Server{svc: svc, now: time.Now}
	mux := http.NewServeMux()

	// / → the single-page form UI (GET)
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/healthz", s.handleHealthz)

	// /plans → generate a plan, optionally saving it (POST)
	mux.HandleFunc("/plans", s.handlePlans)

	// /history         → GET: full history, DELETE: clear
	// /history/export  → GET: CSV download
	mux.HandleFunc("/history", s.handleHistory)
	mux.HandleFunc("/history/export", s.handleHistoryExport)

	return chainMiddlewares(mux, withCORS, withLogging, withRequestID)
}

// ─────────────────────────────────────────────
// DTOs (request/response)
// ─────────────────────────────────────────────

type generatePlanRequest struct {
	Subject          string `json:"subject"`
	Difficulty       string `json:"difficulty"`
	Reason           string `json:"reason,omitempty"`
	Mood             string `json:"mood"`
	TimeAvailableMin int    `json:"time_available_min"`
	Save             bool   `json:"save"`
}

type generatePlanResponse struct {
	Analysis            string               `json:"analysis"`
	MotivationalMessage string               `json:"motivational_message"`
	TodayTasks          []string             `json:"today_tasks"`
	WeeklyPlan          []domain.WeeklyFocus `json:"weekly_plan"`
	Enriched            string               `json:"enriched,omitempty"`
	Saved               bool                 `json:"saved"`
	Record              *historyItemResponse `json:"record,omitempty"`
}

type historyItemResponse struct {
	ID            string    `json:"id,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
	Subject       string    `json:"subject"`
	Difficulty    string    `json:"difficulty"`
	Reason        string    `json:"reason"`
	Mood          string    `json:"mood"`
	TimeAvailable int       `json:"time_available"`
	Analysis      string    `json:"analysis"`
	TodayTasks    []string  `json:"today_tasks"`
}

// ─────────────────────────────────────────────
// Concrete handlers
// ─────────────────────────────────────────────

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := web.RenderIndex(w, web.IndexData{Quote: planner.DailyQuote(s.now())}); err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handlePlans(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var req generatePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	out := s.svc.GeneratePlan(r.Context(), planner.GeneratePlanInput{
		Submission: domain.SubmissionInput{
			Subject:          req.Subject,
			Difficulty:       domain.ParseDifficulty(req.Difficulty),
			Reason:           req.Reason,
			Mood:             domain.ParseMood(req.Mood),
			TimeAvailableMin: clampMinutes(req.TimeAvailableMin),
		},
		Save: req.Save,
	})

	resp := generatePlanResponse{
		Analysis:            out.Plan.Analysis,
		MotivationalMessage: out.Plan.MotivationalMessage,
		TodayTasks:          out.Plan.TodayTasks,
		WeeklyPlan:          out.Plan.WeeklyPlan,
		Enriched:            out.Enriched,
		Saved:               out.Saved,
	}
	if out.Record != nil {
		item := toHistoryItem(*out.Record)
		resp.Record = &item
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		records := s.svc.History(r.Context())
		items := make([]historyItemResponse, 0, len(records))
		for _, rec := range records {
			items = append(items, toHistoryItem(rec))
		}
		writeJSON(w, http.StatusOK, items)

	case http.MethodDelete:
		s.svc.ClearHistory(r.Context())
		w.WriteHeader(http.StatusNoContent)

	default:
		methodNotAllowed(w)
	}
}

func (s *Server) handleHistoryExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	csvBytes := s.svc.ExportCSV(r.Context())

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="study_motivation_history.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(csvBytes)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func toHistoryItem(rec domain.HistoryRecord) historyItemResponse {
	return historyItemResponse{
		ID:            string(rec.ID),
		Timestamp:     rec.Timestamp,
		Subject:       rec.Subject,
		Difficulty:    string(rec.Difficulty),
		Reason:        rec.Reason,
		Mood:          string(rec.Mood),
		TimeAvailable: rec.TimeAvailable,
		Analysis:      rec.Analysis,
		TodayTasks:    rec.TodayTasks,
	}
}

// clampMinutes enforces the slider bounds server-side, since the JSON API is
// reachable without the form.
func clampMinutes(minutes int) int {
	if minutes < minMinutes {
		return minMinutes
	}
	if minutes > maxMinutes {
		return maxMinutes
	}
	return minutes
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{
		"error": msg,
	})
}

func methodNotAllowed(w http.ResponseWriter) {
	writeJSON(w, http.StatusMethodNotAllowed, map[string]string{
		"error": "method not allowed",
	})
}
