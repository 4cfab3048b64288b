package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"alfredoptarigan/interview-coach/internal/models"
)

const fullJobInfoReply = `**Company Name:**
Acme Corp

**Position Title:**
  Backend Engineer

**Key Company Values:**
- Ownership
- Customer obsession

**Essential Technical Skills:**
- Go
- PostgreSQL

**Necessary Soft Skills:**
- Communication

**Summary of Key Job Duties:**
- Build APIs
- Review code
`

func TestExtractJobInfo_AllHeaders(t *testing.T) {
	info := NewResponseExtractor().ExtractJobInfo(fullJobInfoReply)

	assert.Equal(t, models.JobInfo{
		CompanyName:   "Acme Corp",
		PositionTitle: "Backend Engineer",
		CompanyValues: "- Ownership\n- Customer obsession",
		TechSkills:    "- Go\n- PostgreSQL",
		SoftSkills:    "- Communication",
		JobDuties:     "- Build APIs\n- Review code",
	}, info)
}

func TestExtractJobInfo_MissingCompanyHeader(t *testing.T) {
	reply := `**Position Title:** Data Analyst
**Key Company Values:** Integrity`

	info := NewResponseExtractor().ExtractJobInfo(reply)

	assert.Equal(t, models.DefaultCompanyName, info.CompanyName)
	assert.Equal(t, "Data Analyst", info.PositionTitle)
	assert.Equal(t, models.DefaultNotFound, info.TechSkills)
}

func TestExtractJobInfo_NoHeaders(t *testing.T) {
	info := NewResponseExtractor().ExtractJobInfo("I could not read the posting.")
	assert.Equal(t, models.DefaultJobInfo(), info)
}

func TestExtractScores(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  models.AnswerScores
	}{
		{
			name:  "in order",
			reply: "Great answer.\nClarity: 8/10\nRelevance: 7/10\nConfidence: 6/10",
			want:  models.AnswerScores{Clarity: 8, Relevance: 7, Confidence: 6},
		},
		{
			name:  "any order",
			reply: "Confidence: 6/10\nClarity: 8/10\nsome text\nRelevance: 7/10",
			want:  models.AnswerScores{Clarity: 8, Relevance: 7, Confidence: 6},
		},
		{
			name:  "no markers",
			reply: "Nice effort, keep practicing.",
			want:  models.AnswerScores{},
		},
		{
			name:  "out of range is clamped",
			reply: "Clarity: 12/10 Relevance: 10/10",
			want:  models.AnswerScores{Clarity: 10, Relevance: 10},
		},
	}

	e := NewResponseExtractor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.ExtractScores(tt.reply))
		})
	}
}

func TestExtractFollowUps(t *testing.T) {
	e := NewResponseExtractor()

	numbered := "Here you go:\n1. What went wrong?\n2. What would you change?\n\n3. Who helped you?\nThanks"
	assert.Equal(t, []string{
		"1. What went wrong?",
		"2. What would you change?",
		"3. Who helped you?",
	}, e.ExtractFollowUps(numbered))

	plain := "\nWhy Go?\n\nWhy now?\nWhy here?\nWhy not?"
	assert.Equal(t, []string{"Why Go?", "Why now?", "Why here?"}, e.ExtractFollowUps(plain))

	assert.NotNil(t, e.ExtractFollowUps("   "))
	assert.Empty(t, e.ExtractFollowUps("   "))
}

func TestClampScore(t *testing.T) {
	assert.Equal(t, 0, ClampScore(-3))
	assert.Equal(t, 4, ClampScore(4))
	assert.Equal(t, 10, ClampScore(11))
}
