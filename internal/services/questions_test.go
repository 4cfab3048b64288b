package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func countOf(list []string, s string) int {
	n := 0
	for _, v := range list {
		if v == s {
			n++
		}
	}
	return n
}

func TestGenerateSampleQuestions_EmptyInputs(t *testing.T) {
	questions := GenerateSampleQuestions("", "", "")

	assert.Len(t, questions, 6)
	for _, category := range Categories {
		assert.NotEmpty(t, questions[category], category)
	}
	assert.Equal(t, baseQuestions(), questions)
}

func TestGenerateSampleQuestions_NoDuplicateCompanyQuestion(t *testing.T) {
	first := GenerateSampleQuestions("jd", "Acme Inc", "")
	second := GenerateSampleQuestions("jd", "Acme Inc", "")

	assert.Equal(t, 1, countOf(first[CategoryCareerGoals], QuestionWhyOurCompany))
	assert.Equal(t, 1, countOf(second[CategoryCareerGoals], QuestionWhyOurCompany))
}

func TestGenerateSampleQuestions_ReturnsFreshCatalog(t *testing.T) {
	first := GenerateSampleQuestions("", "", "resume")
	first[CategoryIntroduction] = append(first[CategoryIntroduction], "extra")

	second := GenerateSampleQuestions("", "", "resume")
	assert.Equal(t, 0, countOf(second[CategoryIntroduction], "extra"))
	assert.Equal(t, 1, countOf(second[CategoryIntroduction], QuestionRelevantExperience))
}

func TestQuestionHints_CoverCatalog(t *testing.T) {
	hints := QuestionHints()
	catalog := FullCatalog()

	for _, category := range Categories {
		for _, question := range catalog[category] {
			assert.NotEmpty(t, hints[question], question)
		}
	}
}

func TestCatalogRecommendations(t *testing.T) {
	recs := CatalogRecommendations(FullCatalog(), QuestionHints(), 3)

	assert.Len(t, recs, 3)
	assert.Equal(t, "Tell me about yourself", recs[0].Question)
	assert.Equal(t, CategoryIntroduction, recs[0].Category)
	assert.NotEmpty(t, recs[0].Hint)
	assert.Equal(t, CategoryStrengths, recs[2].Category)
}

func TestQuestionPointID_Deterministic(t *testing.T) {
	assert.Equal(t, QuestionPointID("Tell me about yourself"), QuestionPointID("Tell me about yourself"))
	assert.NotEqual(t, QuestionPointID("Tell me about yourself"), QuestionPointID("Why do you want this job?"))
}
