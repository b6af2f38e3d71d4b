package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/aryamb/studycoach-agent/internal/domain"
)

// GeminiOptions selects the backend. APIKey wins when set; otherwise
// Project+Location pick Vertex AI.
type GeminiOptions struct {
	APIKey   string
	Project  string
	Location string
	Model    string
}

type GeminiClient struct {
	client    *genai.Client
	modelName string
}

// NewGeminiClient creates an LLMClient backed by Gemini, either through the
// plain API key or through Vertex AI.
func NewGeminiClient(ctx context.Context, opts GeminiOptions) (*GeminiClient, error) {
	modelName := opts.Model
	if modelName == "" {
		modelName = "gemini-2.5-flash"
	}

	var cc *genai.ClientConfig
	switch {
	case opts.APIKey != "":
		cc = &genai.ClientConfig{
			APIKey:  opts.APIKey,
			Backend: genai.BackendGeminiAPI,
		}
	case opts.Project != "" && opts.Location != "":
		cc = &genai.ClientConfig{
			Project:  opts.Project,
			Location: opts.Location,
			Backend:  genai.BackendVertexAI,
		}
	default:
		return nil, fmt.Errorf("either an API key or project+location must be set")
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}

	return &GeminiClient{
		client:    client,
		modelName: modelName,
	}, nil
}

// GenerateCoachNote implements domain.LLMClient using Gemini.
func (g *GeminiClient) GenerateCoachNote(
	ctx context.Context,
	in domain.SubmissionInput,
) (string, error) {
	prompt := BuildCoachPrompt(in)

	contents := []*genai.Content{
		genai.NewContentFromText(prompt.User, genai.RoleUser),
	}

	temp := float32(0.7)
	topP := float32(0.9)

	outputTokens := int32(1024)

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(prompt.System, genai.RoleUser),
		Temperature:       &temp,
		TopP:              &topP,
		MaxOutputTokens:   outputTokens,
	}

	res, err := g.client.Models.GenerateContent(ctx, g.modelName, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	text := res.Text()
	if text == "" {
		return "", fmt.Errorf("gemini returned empty text")
	}

	return text, nil
}
