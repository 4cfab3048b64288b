package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"alfredoptarigan/interview-coach/internal/models"
)

func TestComplete_ReturnsTrimmedText(t *testing.T) {
	gen := &fakeGenerator{text: "  A useful reply from the model.  \n"}

	got := NewCompletionClient(gen).Complete(context.Background(), "prompt")

	assert.Equal(t, "A useful reply from the model.", got.Text)
	assert.Equal(t, models.OutcomeOK, got.Outcome)
	assert.NoError(t, got.Err)
	assert.Equal(t, []string{"prompt"}, gen.prompts)
}

func TestComplete_TooShort(t *testing.T) {
	for _, text := range []string{"", "   ", "short"} {
		got := NewCompletionClient(&fakeGenerator{text: text}).Complete(context.Background(), "p")

		assert.Equal(t, FallbackTooShort, got.Text)
		assert.Equal(t, models.OutcomeTooShort, got.Outcome)
	}
}

func TestComplete_APIError(t *testing.T) {
	gen := &fakeGenerator{err: errBoom}

	got := NewCompletionClient(gen).Complete(context.Background(), "p")

	assert.Equal(t, FallbackAPIError, got.Text)
	assert.Equal(t, models.OutcomeAPIError, got.Outcome)
	assert.ErrorIs(t, got.Err, errBoom)
	assert.Len(t, gen.prompts, 1, "no retry")
}
