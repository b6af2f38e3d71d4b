package llm

import (
	"fmt"
	"strings"

	"github.com/aryamb/studycoach-agent/internal/domain"
)

const coachSystemPrompt = `
You are an encouraging study coach.

Your role:
- You help students who describe what they find hard about a topic.
- You write warm, practical guidance — never generic filler.

Style guidelines:
- Write a 2-3 sentence motivational paragraph first.
- Then list exactly 3 practical tasks for today, as short bullet points.
- Adapt the tasks to the subject, mood and time the student has available.
- Keep it realistic: suggest small steps the student can actually finish.
`

// Prompt represents the system prompt + the content to send as "user".
type Prompt struct {
	System string
	User   string
}

// BuildCoachPrompt renders the submission as the user content for the coach.
func BuildCoachPrompt(in domain.SubmissionInput) Prompt {
	var user strings.Builder

	user.WriteString("Student context:\n")
	fmt.Fprintf(&user, "Subject: %s\n", in.NormalizedSubject())
	fmt.Fprintf(&user, "Difficulty: %s\n", in.Difficulty)
	if strings.TrimSpace(in.Reason) != "" {
		fmt.Fprintf(&user, "What feels hard: %s\n", in.Reason)
	}
	fmt.Fprintf(&user, "Mood: %s\n", in.Mood)
	fmt.Fprintf(&user, "Time available (min): %d\n", in.TimeAvailableMin)

	return Prompt{
		System: coachSystemPrompt,
		User:   user.String(),
	}
}
