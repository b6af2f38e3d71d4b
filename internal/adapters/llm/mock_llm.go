package llm

import (
	"context"
	"fmt"

	"github.com/aryamb/studycoach-agent/internal/domain"
)

type MockLLM struct{}

func NewMockLLM() *MockLLM {
	return &MockLLM{}
}

// GenerateCoachNote returns a canned note so local mode works offline.
func (m *MockLLM) GenerateCoachNote(ctx context.Context, in domain.SubmissionInput) (string, error) {
	return fmt.Sprintf(
		"You've got this! %s is a solid goal for today — start with the warm-up, keep the timer honest, and close with a two-line note on what clicked.",
		in.NormalizedSubject(),
	), nil
}
