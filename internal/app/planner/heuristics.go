package planner

import (
	"fmt"
	"strings"

	"github.com/aryamb/studycoach-agent/internal/domain"
)

// Analysis fragments. Each rule below appends at most one of these; the
// final analysis is the space-joined concatenation of every rule that fired.
const (
	analysisChallenging = "The topic is challenging — it likely needs smaller steps and more practice."
	analysisManageable  = "Content is manageable but may need better structure or focused sessions."
	analysisEasy        = "Material seems easy — the issue may be motivation or routine."
	analysisLowMood     = "Current energy/mood suggests short sessions and self-care first (rest, hydration)."
	analysisFormulas    = "Formulas often need active practice and spaced repetition."
	analysisConcepts    = "Try visual examples and small analogies to ground abstract concepts."
	analysisPractice    = "Practice-based learning will help — start with guided examples."
	analysisShortTime   = "You have limited time — micro-tasks (10–20 min) are best."
	analysisLongTime    = "You have long time blocks — structure them into deep-work sessions."
)

// Analyze explains why the user might be struggling. Pure and deterministic:
// the same input always yields the same text, and the difficulty rule always
// fires, so the result is never empty.
func Analyze(in domain.SubmissionInput) string {
	var parts []string

	switch in.Difficulty {
	case domain.DifficultyVeryHard, domain.DifficultyHard:
		parts = append(parts, analysisChallenging)
	case domain.DifficultyMedium:
		parts = append(parts, analysisManageable)
	case domain.DifficultyEasy:
		parts = append(parts, analysisEasy)
	default:
		parts = append(parts, analysisEasy)
	}

	if in.Mood.IsLow() {
		parts = append(parts, analysisLowMood)
	}

	reason := strings.ToLower(strings.TrimSpace(in.Reason))
	if reason != "" {
		if strings.Contains(reason, "formul") || strings.Contains(reason, "formula") {
			parts = append(parts, analysisFormulas)
		}
		if strings.Contains(reason, "concept") || strings.Contains(reason, "abstract") {
			parts = append(parts, analysisConcepts)
		}
		if strings.Contains(reason, "practice") || strings.Contains(reason, "problems") {
			parts = append(parts, analysisPractice)
		}
	}

	if in.TimeAvailableMin < 30 {
		parts = append(parts, analysisShortTime)
	} else if in.TimeAvailableMin > 180 {
		parts = append(parts, analysisLongTime)
	}

	return strings.Join(parts, " ")
}

// weeklyPlan is the fixed Monday-to-Sunday skeleton, identical for every
// submission.
var weeklyPlan = []domain.WeeklyFocus{
	{Day: "Mon", Focus: "Core concept + 1 guided problem"},
	{Day: "Tue", Focus: "Flashcards & active recall"},
	{Day: "Wed", Focus: "Problem solving + explain out loud"},
	{Day: "Thu", Focus: "Timed practice + error review"},
	{Day: "Fri", Focus: "Mock/test-style practice"},
	{Day: "Sat", Focus: "Revise weak spots"},
	{Day: "Sun", Focus: "Rest + light overview"},
}

// BuildPlan turns a submission into the full plan: motivational message,
// today's tasks by time bucket, the weekly skeleton and the analysis.
func BuildPlan(in domain.SubmissionInput) domain.PlanResult {
	subj := in.NormalizedSubject()

	var msgParts []string

	switch in.Difficulty {
	case domain.DifficultyVeryHard, domain.DifficultyHard:
		msgParts = append(msgParts, "Break goals into tiny steps — each small win builds momentum.")
	default:
		msgParts = append(msgParts, "Use focused blocks and active recall to keep progress steady.")
	}

	if in.Mood.IsLow() {
		msgParts = append(msgParts, "Start with a 5-minute energizer (stretch/breath) then work in short bursts.")
	} else {
		msgParts = append(msgParts, "Start strong with a short warm-up recap to prime your brain.")
	}

	bucket := domain.BucketForMinutes(in.TimeAvailableMin)

	switch bucket {
	case domain.BucketMicro:
		msgParts = append(msgParts, "Micro-sessions: strict timers (15–20 min) work best right now.")
	case domain.BucketFocus:
		msgParts = append(msgParts, "Use 25/5 or 50/10 Pomodoro blocks depending on preference.")
	default:
		msgParts = append(msgParts, "Combine deep sessions with short breaks and a clear end-of-day review.")
	}

	return domain.PlanResult{
		Analysis:            Analyze(in),
		MotivationalMessage: strings.Join(msgParts, " "),
		TodayTasks:          todayTasks(bucket, subj),
		WeeklyPlan:          weeklyPlan,
	}
}

func todayTasks(bucket domain.TimeBucket, subject string) []string {
	switch bucket {
	case domain.BucketMicro:
		return []string{
			fmt.Sprintf("Warm-up (5–10 min): quick recap of one key idea from %s.", subject),
			"Micro-practice (10–15 min): solve one short problem or make 3 flashcards.",
		}
	case domain.BucketFocus:
		return []string{
			fmt.Sprintf("Warm-up (10 min): recap notes for %s.", subject),
			"Focused session (30–40 min): deep work on one sub-topic with practice.",
			"Consolidation (10–15 min): write 5 recall questions and answers.",
		}
	default:
		return []string{
			fmt.Sprintf("Warm-up & review (15 min): revisit yesterday's weak points in %s.", subject),
			"Deep work (2 x 45–50 min): practice problems or concept mapping, with short break.",
			"Reflection (15 min): note mistakes and plan next day's focus.",
		}
	}
}
