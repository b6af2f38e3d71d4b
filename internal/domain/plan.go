package domain

import "strings"

// SubmissionInput is one form submission, already parsed into domain types.
type SubmissionInput struct {
	Subject          string
	Difficulty       Difficulty
	Reason           string
	Mood             Mood
	TimeAvailableMin int
}

// NormalizedSubject returns the subject with a placeholder for blank input.
func (in SubmissionInput) NormalizedSubject() string {
	subj := strings.TrimSpace(in.Subject)
	if subj == "" {
		return "your topic"
	}
	return subj
}

// WeeklyFocus is one day of the weekly skeleton plan.
type WeeklyFocus struct {
	Day   string `json:"day"`
	Focus string `json:"focus"`
}

// PlanResult is everything the Plan Generator derives from one submission.
type PlanResult struct {
	Analysis            string        `json:"analysis"`
	MotivationalMessage string        `json:"motivational_message"`
	TodayTasks          []string      `json:"today_tasks"`
	WeeklyPlan          []WeeklyFocus `json:"weekly_plan"`
}
