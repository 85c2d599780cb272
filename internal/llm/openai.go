package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// Client defines the two collaborator calls the consultation flow needs.
// Services depend on this interface so tests can substitute a fake.
type Client interface {
	// SummarizeIntake turns a free-text symptom description into a short
	// professional summary for the matched doctor.
	SummarizeIntake(ctx context.Context, concern string) (string, error)
	// DraftPrescription returns a JSON document with a medicine list and
	// instructions, drafted from the patient concern and clinician notes.
	// The caller is responsible for validating the document.
	DraftPrescription(ctx context.Context, concern, notes string) (string, error)
}

// OpenAIClient calls the OpenAI chat completion API for both collaborators.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient constructs an OpenAI-backed client. An empty model falls
// back to a small default; the API key is taken as-is and calls will fail at
// request time if it is invalid.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &OpenAIClient{client: openai.NewClient(apiKey), model: model}
}

// SummarizeIntake implements Client.
func (c *OpenAIClient) SummarizeIntake(ctx context.Context, concern string) (string, error) {
	return c.complete(ctx, intakeSystemPrompt,
		fmt.Sprintf("Analyze the following symptoms and provide a brief summary for a doctor: %q", concern))
}

// DraftPrescription implements Client.
func (c *OpenAIClient) DraftPrescription(ctx context.Context, concern, notes string) (string, error) {
	return c.complete(ctx, prescriptionSystemPrompt,
		fmt.Sprintf("Patient concern: %s\nDoctor notes: %s", concern, notes))
}

func (c *OpenAIClient) complete(ctx context.Context, system, user string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
