package services

import (
	"context"
	"log"
	"strings"

	"alfredoptarigan/interview-coach/internal/models"
)

const (
	NoAnswerFeedback = "No answer provided to analyze. Please record or type your answer."
	NoQuestionDraft  = "No question provided. Please select a question first."
	MissingFollowUp  = "Please provide both a question and your answer to generate follow-up questions."
)

const draftTips = `Here's a general structure you can follow:

1. Begin with a brief introduction relevant to the question
2. Use the STAR method for behavioral questions:
   - Situation: Describe the context
   - Task: Explain your responsibility
   - Action: Detail the steps you took
   - Result: Share the outcome and what you learned

3. Connect your answer to the specific job requirements
4. Keep your answer concise (about 1-2 minutes when spoken)
5. Practice your delivery to sound natural and confident`

var DefaultFollowUps = []string{
	"Could you elaborate more on your experience in this area?",
	"How would you apply these skills in our company context?",
	"Can you provide a specific example of how you've handled similar situations?",
}

type JobInfoResult struct {
	Info    models.JobInfo
	Outcome models.Outcome
}

type EvaluationResult struct {
	Scores   models.AnswerScores
	Feedback string
	Outcome  models.Outcome
}

type DraftResult struct {
	Answer  string
	Outcome models.Outcome
}

type FollowUpResult struct {
	Questions []string
	Outcome   models.Outcome
}

type InterviewInput struct {
	JobDescription string
	CompanyValues  string
	CompanyInfo    string
	Resume         string
	Question       string
	Answer         string
}

type InterviewReport struct {
	JobInfo     JobInfoResult
	ModelAnswer DraftResult
	Evaluation  EvaluationResult
}

type InterviewService interface {
	ParseJobInfo(ctx context.Context, jobDescription, companyValues string) JobInfoResult
	EvaluateAnswer(ctx context.Context, answer, jobDescription, companyValues string) EvaluationResult
	DraftAnswer(ctx context.Context, question, companyInfo, jobDescription, resume, answer string) DraftResult
	GenerateFollowUps(ctx context.Context, jobDescription, resume, question, answer string) FollowUpResult
	ProcessInterview(ctx context.Context, in InterviewInput) InterviewReport
}

type interviewService struct {
	completion    CompletionClient
	promptBuilder *PromptBuilder
	extractor     *ResponseExtractor
}

func NewInterviewService(completion CompletionClient) InterviewService {
	return &interviewService{
		completion:    completion,
		promptBuilder: NewPromptBuilder(),
		extractor:     NewResponseExtractor(),
	}
}

// complete builds the prompt for op and sends it. An unknown op never reaches
// the model and reads as a failed completion.
func (s *interviewService) complete(ctx context.Context, op Operation, fields PromptFields) Completion {
	prompt, err := s.promptBuilder.Build(op, fields)
	if err != nil {
		log.Printf("❌ %v", err)
		return Completion{Text: FallbackAPIError, Outcome: models.OutcomeFailed, Err: err}
	}
	return s.completion.Complete(ctx, prompt)
}

// ParseJobInfo implements InterviewService.
func (s *interviewService) ParseJobInfo(ctx context.Context, jobDescription, companyValues string) JobInfoResult {
	reply := s.complete(ctx, OpExtractJobInfo, PromptFields{
		JobDescription: jobDescription,
		CompanyValues:  companyValues,
	})

	info := s.extractor.ExtractJobInfo(reply.Text)
	if reply.Outcome.Succeeded() && info == models.DefaultJobInfo() {
		log.Println("⚠️  Job info reply matched none of the expected section headers")
	}

	return JobInfoResult{Info: info, Outcome: reply.Outcome}
}

// EvaluateAnswer implements InterviewService. Feedback is the full reply; on a
// failed completion that is the canned fallback text and the scores stay 0.
func (s *interviewService) EvaluateAnswer(ctx context.Context, answer, jobDescription, companyValues string) EvaluationResult {
	if strings.TrimSpace(answer) == "" {
		return EvaluationResult{
			Feedback: NoAnswerFeedback,
			Outcome:  models.OutcomeInvalidInput,
		}
	}

	reply := s.complete(ctx, OpEvaluateAnswer, PromptFields{
		Answer:         answer,
		JobDescription: jobDescription,
		CompanyValues:  companyValues,
	})

	return EvaluationResult{
		Scores:   s.extractor.ExtractScores(reply.Text),
		Feedback: reply.Text,
		Outcome:  reply.Outcome,
	}
}

// DraftAnswer implements InterviewService.
func (s *interviewService) DraftAnswer(ctx context.Context, question, companyInfo, jobDescription, resume, answer string) DraftResult {
	if strings.TrimSpace(question) == "" {
		return DraftResult{Answer: NoQuestionDraft, Outcome: models.OutcomeInvalidInput}
	}

	reply := s.complete(ctx, OpDraftAnswer, PromptFields{
		Question:       question,
		CompanyInfo:    companyInfo,
		JobDescription: jobDescription,
		Resume:         resume,
		Answer:         answer,
	})

	if !reply.Outcome.Succeeded() {
		return DraftResult{
			Answer:  "I couldn't generate a complete sample answer for \"" + question + "\"\n\n" + draftTips,
			Outcome: reply.Outcome,
		}
	}

	return DraftResult{Answer: reply.Text, Outcome: reply.Outcome}
}

// GenerateFollowUps implements InterviewService.
func (s *interviewService) GenerateFollowUps(ctx context.Context, jobDescription, resume, question, answer string) FollowUpResult {
	if strings.TrimSpace(question) == "" || strings.TrimSpace(answer) == "" {
		return FollowUpResult{
			Questions: []string{MissingFollowUp},
			Outcome:   models.OutcomeInvalidInput,
		}
	}

	reply := s.complete(ctx, OpGenerateFollowUps, PromptFields{
		JobDescription: jobDescription,
		Resume:         resume,
		Question:       question,
		Answer:         answer,
	})

	if !reply.Outcome.Succeeded() {
		return FollowUpResult{
			Questions: append([]string(nil), DefaultFollowUps...),
			Outcome:   reply.Outcome,
		}
	}

	return FollowUpResult{
		Questions: s.extractor.ExtractFollowUps(reply.Text),
		Outcome:   reply.Outcome,
	}
}

// ProcessInterview implements InterviewService.
func (s *interviewService) ProcessInterview(ctx context.Context, in InterviewInput) InterviewReport {
	log.Println("🔄 Processing full interview round")

	return InterviewReport{
		JobInfo:     s.ParseJobInfo(ctx, in.JobDescription, in.CompanyValues),
		ModelAnswer: s.DraftAnswer(ctx, in.Question, in.CompanyInfo, in.JobDescription, in.Resume, in.Answer),
		Evaluation:  s.EvaluateAnswer(ctx, in.Answer, in.JobDescription, in.CompanyValues),
	}
}

// FormatScoreReport renders scores as star bars followed by the feedback.
func FormatScoreReport(scores models.AnswerScores, feedback string) string {
	return "SCORES:\n" +
		LabelClarity + ": " + stars(scores.Clarity) + "\n" +
		LabelRelevance + ": " + stars(scores.Relevance) + "\n" +
		LabelConfidence + ": " + stars(scores.Confidence) + "\n\n" +
		"FEEDBACK:\n" + feedback
}

func stars(score int) string {
	return starGlyphs(score, "⭐", "☆")
}

func starGlyphs(score int, full, empty string) string {
	score = ClampScore(score)
	return strings.Repeat(full, score) + strings.Repeat(empty, maxScore-score)
}
