package services

import (
	"regexp"
	"strconv"
	"strings"

	"alfredoptarigan/interview-coach/internal/models"
)

const (
	minScore = 0
	maxScore = 10

	maxFollowUps = 3
)

// ResponseExtractor pulls labeled sections out of free-text completions.
// It never fails: every field has a default.
type ResponseExtractor struct {
	jobInfoPatterns []*regexp.Regexp
	scorePatterns   map[string]*regexp.Regexp
}

func NewResponseExtractor() *ResponseExtractor {
	return &ResponseExtractor{
		jobInfoPatterns: buildSpanPatterns(JobInfoHeaders),
		scorePatterns: map[string]*regexp.Regexp{
			LabelClarity:    scorePattern(LabelClarity),
			LabelRelevance:  scorePattern(LabelRelevance),
			LabelConfidence: scorePattern(LabelConfidence),
		},
	}
}

// buildSpanPatterns anchors each header on the one after it; the last header
// runs to the end of the reply.
func buildSpanPatterns(headers []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(headers))
	for i, header := range headers {
		expr := `(?s)` + regexp.QuoteMeta(header) + `(.*)`
		if i+1 < len(headers) {
			expr = `(?s)` + regexp.QuoteMeta(header) + `(.*?)` + regexp.QuoteMeta(headers[i+1])
		}
		patterns[i] = regexp.MustCompile(expr)
	}
	return patterns
}

func scorePattern(label string) *regexp.Regexp {
	return regexp.MustCompile(regexp.QuoteMeta(label) + `: (\d+)/10`)
}

// ExtractJobInfo reads the six job-info sections from reply.
func (e *ResponseExtractor) ExtractJobInfo(reply string) models.JobInfo {
	info := models.DefaultJobInfo()
	fields := []*string{
		&info.CompanyName,
		&info.PositionTitle,
		&info.CompanyValues,
		&info.TechSkills,
		&info.SoftSkills,
		&info.JobDuties,
	}

	for i, pattern := range e.jobInfoPatterns {
		if m := pattern.FindStringSubmatch(reply); m != nil {
			*fields[i] = strings.TrimSpace(m[1])
		}
	}

	return info
}

// ExtractScores reads the three "Label: N/10" scores. Missing labels score 0.
func (e *ResponseExtractor) ExtractScores(reply string) models.AnswerScores {
	return models.AnswerScores{
		Clarity:    e.extractScore(reply, LabelClarity),
		Relevance:  e.extractScore(reply, LabelRelevance),
		Confidence: e.extractScore(reply, LabelConfidence),
	}
}

func (e *ResponseExtractor) extractScore(reply, label string) int {
	m := e.scorePatterns[label].FindStringSubmatch(reply)
	if m == nil {
		return minScore
	}

	score, err := strconv.Atoi(m[1])
	if err != nil {
		return minScore
	}
	return ClampScore(score)
}

// ExtractFollowUps collects the numbered lines "1." to "3.". If the model
// wrote no numbered lines, the first three non-blank lines are used instead.
func (e *ResponseExtractor) ExtractFollowUps(reply string) []string {
	lines := strings.Split(strings.TrimSpace(reply), "\n")

	questions := []string{}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "1.") || strings.HasPrefix(line, "2.") || strings.HasPrefix(line, "3.") {
			questions = append(questions, line)
		}
	}
	if len(questions) > 0 {
		return questions
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		questions = append(questions, line)
		if len(questions) == maxFollowUps {
			break
		}
	}
	return questions
}

func ClampScore(score int) int {
	if score < minScore {
		return minScore
	}
	if score > maxScore {
		return maxScore
	}
	return score
}
