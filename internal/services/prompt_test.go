package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The extractor anchors on these exact strings. Changing one means bumping
// PromptContractVersion and updating this list.
func TestJobInfoHeaders_Golden(t *testing.T) {
	assert.Equal(t, "2", PromptContractVersion)
	assert.Equal(t, []string{
		"**Company Name:**",
		"**Position Title:**",
		"**Key Company Values:**",
		"**Essential Technical Skills:**",
		"**Necessary Soft Skills:**",
		"**Summary of Key Job Duties:**",
	}, JobInfoHeaders)
}

func TestBuildJobInfoPrompt_ContainsHeadersInOrder(t *testing.T) {
	prompt := NewPromptBuilder().BuildJobInfoPrompt("Backend engineer at Acme", "Ownership")

	last := -1
	for _, header := range JobInfoHeaders {
		idx := strings.Index(prompt, header)
		require.NotEqual(t, -1, idx, "missing header %s", header)
		assert.Greater(t, idx, last, "header %s out of order", header)
		last = idx
	}

	assert.Contains(t, prompt, "JOB DESCRIPTION: Backend engineer at Acme")
	assert.Contains(t, prompt, "COMPANY VALUES: Ownership")
	assert.Contains(t, prompt, "Company name not specified")
}

func TestBuildEvaluationPrompt_DemandsScoreLines(t *testing.T) {
	prompt := NewPromptBuilder().BuildEvaluationPrompt("my answer", "jd", "values")

	for _, label := range []string{LabelClarity, LabelRelevance, LabelConfidence} {
		assert.Contains(t, prompt, label+": N/10")
	}
	assert.Contains(t, prompt, "USER VOICE ANSWER: my answer")
}

func TestBuild_SelectsTemplate(t *testing.T) {
	pb := NewPromptBuilder()
	fields := PromptFields{
		JobDescription: "jd",
		CompanyInfo:    "info",
		Resume:         "resume",
		Question:       "Why us?",
		Answer:         "Because.",
	}

	draft, err := pb.Build(OpDraftAnswer, fields)
	require.NoError(t, err)
	assert.Equal(t, pb.BuildDraftPrompt("Why us?", "info", "jd", "resume", "Because."), draft)

	followUp, err := pb.Build(OpGenerateFollowUps, fields)
	require.NoError(t, err)
	assert.Contains(t, followUp, "INTERVIEW QUESTION:\nWhy us?")

	_, err = pb.Build(Operation("summarize"), fields)
	assert.Error(t, err)
}

func TestBuild_AcceptsEmptyFields(t *testing.T) {
	pb := NewPromptBuilder()
	for _, op := range []Operation{OpExtractJobInfo, OpEvaluateAnswer, OpDraftAnswer, OpGenerateFollowUps} {
		prompt, err := pb.Build(op, PromptFields{})
		require.NoError(t, err)
		assert.NotEmpty(t, prompt)
	}
}
