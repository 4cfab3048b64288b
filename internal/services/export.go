package services

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"alfredoptarigan/interview-coach/internal/models"
)

const notSpecified = "Not specified"

// SummaryData is everything known about one practice round.
type SummaryData struct {
	CompanyName       string
	PositionTitle     string
	CompanyValues     string
	TechSkills        string
	SoftSkills        string
	JobDuties         string
	Question          string
	Answer            string
	ModelAnswer       string
	Feedback          string
	FollowUpQuestions []string
	Scores            *models.AnswerScores
	GeneratedAt       time.Time
}

// SummaryRenderer writes an HTML summary of a practice round and returns the
// path of the written file.
type SummaryRenderer interface {
	Render(data SummaryData) (string, error)
}

type summaryRenderer struct {
	storage StorageService
	tmpl    *template.Template
}

func NewSummaryRenderer(storage StorageService) SummaryRenderer {
	tmpl := template.Must(template.New("summary").Funcs(template.FuncMap{
		"stars":     func(score int) string { return starGlyphs(score, "★", "☆") },
		"orDefault": orDefault,
	}).Parse(summaryTemplate))

	return &summaryRenderer{
		storage: storage,
		tmpl:    tmpl,
	}
}

// Render implements SummaryRenderer.
func (r *summaryRenderer) Render(data SummaryData) (string, error) {
	html, err := r.renderHTML(data)
	if err != nil {
		return "", err
	}
	return r.storage.SaveExport(html)
}

func (r *summaryRenderer) renderHTML(data SummaryData) ([]byte, error) {
	if data.GeneratedAt.IsZero() {
		data.GeneratedAt = time.Now()
	}

	var buf bytes.Buffer
	err := r.tmpl.Execute(&buf, struct {
		SummaryData
		Timestamp string
	}{
		SummaryData: data,
		Timestamp:   data.GeneratedAt.Format("January 02, 2006 at 03:04 PM"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render summary: %w", err)
	}

	return buf.Bytes(), nil
}

func orDefault(s string) string {
	if strings.TrimSpace(s) == "" {
		return notSpecified
	}
	return s
}

const summaryTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>Interview Preparation Summary</title>
    <style>
        body { font-family: 'Inter', sans-serif; margin: 0; padding: 0; background-color: #f5f5f0; color: #1E3932; }
        .container { max-width: 850px; margin: 0 auto; padding: 20px; }
        header { background: linear-gradient(to right, #006241, #1E3932); color: white; padding: 30px 0; margin-bottom: 30px; }
        .header-content { text-align: center; padding: 0 20px; }
        h1 { margin: 0; font-size: 28px; font-weight: 700; }
        .company-info { margin-top: 10px; font-size: 16px; }
        .timestamp { margin-top: 5px; font-size: 14px; opacity: 0.8; }
        .section-title { color: #006241; font-size: 22px; margin-top: 40px; margin-bottom: 15px; padding-bottom: 10px; border-bottom: 2px solid #D4E9E2; }
        .info-item { margin-bottom: 12px; line-height: 1.6; }
        .info-section { background-color: white; border-radius: 8px; padding: 20px; margin-bottom: 30px; border: 1px solid #D4E9E2; }
        .question { font-weight: 600; margin-bottom: 10px; color: #006241; }
        .answer { background-color: #f5f5f0; border-left: 4px solid #006241; padding: 15px; margin-bottom: 20px; border-radius: 0 8px 8px 0; white-space: pre-wrap; }
        .feedback { background-color: #f5f5f0; border: 1px solid #D4E9E2; padding: 15px; margin-top: 20px; border-radius: 8px; white-space: pre-wrap; }
        .score-section { display: flex; justify-content: space-between; margin: 20px 0; flex-wrap: wrap; }
        .score-item { flex: 1; min-width: 150px; background: white; padding: 15px; border-radius: 8px; margin-right: 15px; margin-bottom: 15px; border: 1px solid #D4E9E2; }
        .score-item:last-child { margin-right: 0; }
        .score-title { font-weight: 600; margin-bottom: 8px; color: #006241; }
        .stars { color: #006241; font-size: 18px; }
        footer { text-align: center; margin-top: 50px; padding: 20px 0; color: #666; font-size: 14px; border-top: 1px solid #D4E9E2; }
    </style>
</head>
<body>
    <header>
        <div class="header-content">
            <h1>Interview Preparation Summary</h1>
            <div class="company-info">
                <strong>Company:</strong> {{orDefault .CompanyName}} |
                <strong>Position:</strong> {{orDefault .PositionTitle}}
            </div>
            <div class="timestamp">Generated on {{.Timestamp}}</div>
        </div>
    </header>
    <div class="container">
        <div class="info-section">
            <h2 class="section-title">Job Analysis</h2>
            <ul>
                <li class="info-item"><strong>Company Values:</strong> {{.CompanyValues}}</li>
                <li class="info-item"><strong>Tech Skills:</strong> {{.TechSkills}}</li>
                <li class="info-item"><strong>Soft Skills:</strong> {{.SoftSkills}}</li>
                <li class="info-item"><strong>Job Duties:</strong> {{.JobDuties}}</li>
            </ul>
        </div>

        <div class="info-section">
            <h2 class="section-title">Interview Question</h2>
            <div class="question">{{.Question}}</div>

            <h3>Your Answer</h3>
            <div class="answer">{{.Answer}}</div>

            <h3>Model Answer</h3>
            <div class="answer">{{.ModelAnswer}}</div>
        </div>
{{- if .FollowUpQuestions}}

        <div class="info-section">
            <h2 class="section-title">Potential Follow-up Questions</h2>
            <div class="follow-up-questions">
{{- range .FollowUpQuestions}}
                <div class="follow-up-question"><p>{{.}}</p></div>
{{- end}}
            </div>
        </div>
{{- end}}

        <div class="info-section">
            <h2 class="section-title">Performance Analysis</h2>
{{- with .Scores}}
            <div class="score-section">
                <div class="score-item">
                    <div class="score-title">Clarity</div>
                    <div class="stars">{{stars .Clarity}}</div>
                </div>
                <div class="score-item">
                    <div class="score-title">Relevance</div>
                    <div class="stars">{{stars .Relevance}}</div>
                </div>
                <div class="score-item">
                    <div class="score-title">Confidence</div>
                    <div class="stars">{{stars .Confidence}}</div>
                </div>
            </div>
{{- end}}
            <div class="feedback">
                <h3>Detailed Feedback</h3>
                {{.Feedback}}
            </div>
        </div>

        <footer>
            <p>Interview Coach</p>
            <p>Generated on {{.Timestamp}}</p>
        </footer>
    </div>
</body>
</html>
`
