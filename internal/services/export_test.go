package services

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/interview-coach/internal/models"
)

func testSummary() SummaryData {
	return SummaryData{
		CompanyName:   "Acme Corp",
		PositionTitle: "Backend Engineer",
		CompanyValues: "Ownership",
		TechSkills:    "Go",
		SoftSkills:    "Communication",
		JobDuties:     "Build APIs",
		Question:      "Tell me about yourself",
		Answer:        "I build services.",
		ModelAnswer:   "A model answer.",
		Feedback:      "Good structure.",
		GeneratedAt:   time.Date(2025, time.March, 4, 15, 30, 0, 0, time.UTC),
	}
}

func TestRenderHTML(t *testing.T) {
	storage, _ := newTestStorage(t)
	r := NewSummaryRenderer(storage).(*summaryRenderer)

	data := testSummary()
	data.Scores = &models.AnswerScores{Clarity: 7, Relevance: 8, Confidence: 9}
	data.FollowUpQuestions = []string{"What would you change?"}

	html, err := r.renderHTML(data)
	require.NoError(t, err)
	out := string(html)

	assert.Contains(t, out, "<strong>Company:</strong> Acme Corp")
	assert.Contains(t, out, "Generated on March 04, 2025 at 03:30 PM")
	assert.Contains(t, out, "Potential Follow-up Questions")
	assert.Contains(t, out, "What would you change?")
	assert.Contains(t, out, "★★★★★★★☆☆☆")
	assert.Contains(t, out, "Good structure.")
}

func TestRenderHTML_OptionalSections(t *testing.T) {
	storage, _ := newTestStorage(t)
	r := NewSummaryRenderer(storage).(*summaryRenderer)

	data := testSummary()
	data.CompanyName = ""

	html, err := r.renderHTML(data)
	require.NoError(t, err)
	out := string(html)

	assert.Contains(t, out, "<strong>Company:</strong> Not specified")
	assert.NotContains(t, out, "Potential Follow-up Questions")
	assert.NotContains(t, out, "score-section\"")
}

func TestRenderHTML_EscapesUserText(t *testing.T) {
	storage, _ := newTestStorage(t)
	r := NewSummaryRenderer(storage).(*summaryRenderer)

	data := testSummary()
	data.Answer = `</div><script>alert("x")</script>`

	html, err := r.renderHTML(data)
	require.NoError(t, err)

	assert.NotContains(t, string(html), "<script>")
	assert.Contains(t, string(html), "&lt;script&gt;")
}

func TestRender_WritesExport(t *testing.T) {
	storage, _ := newTestStorage(t)

	path, err := NewSummaryRenderer(storage).Render(testSummary())
	require.NoError(t, err)

	resolved, err := storage.ResolveExport(path)
	require.NoError(t, err)

	content, err := os.ReadFile(resolved)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Interview Preparation Summary")
}
