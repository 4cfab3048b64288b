package services

import (
	"context"
	"log"
	"strings"

	"alfredoptarigan/interview-coach/internal/models"
)

const (
	minCompletionLength = 10
	completionTemp      = float32(0.7)

	FallbackTooShort = "The LLM response was too short or empty. Please try again with more detailed input."
	FallbackAPIError = "An error occurred while generating content. Please check your API key and try again."
)

// Completion always carries displayable text. Outcome and Err say whether
// Text came from the model or is one of the canned fallbacks.
type Completion struct {
	Text    string
	Outcome models.Outcome
	Err     error
}

type CompletionClient interface {
	Complete(ctx context.Context, prompt string) Completion
}

type completionClient struct {
	generator TextGenerator
}

func NewCompletionClient(generator TextGenerator) CompletionClient {
	return &completionClient{generator: generator}
}

// Complete implements CompletionClient. It never retries.
func (c *completionClient) Complete(ctx context.Context, prompt string) Completion {
	log.Printf("🤖 Sending prompt to completion service (~%d tokens)", len(strings.Fields(prompt)))

	text, err := c.generator.GenerateText(ctx, prompt, completionTemp)
	if err != nil {
		log.Printf("❌ Completion service error: %v", err)
		return Completion{Text: FallbackAPIError, Outcome: models.OutcomeAPIError, Err: err}
	}

	text = strings.TrimSpace(text)
	if len(text) < minCompletionLength {
		log.Printf("⚠️  Completion too short or empty: %q", text)
		return Completion{Text: FallbackTooShort, Outcome: models.OutcomeTooShort}
	}

	return Completion{Text: text, Outcome: models.OutcomeOK}
}
