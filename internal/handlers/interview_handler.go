package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/interview-coach/internal/models"
	"alfredoptarigan/interview-coach/internal/services"
)

type InterviewHandler struct {
	interview services.InterviewService
	sessions  *SessionStore
}

func NewInterviewHandler(interview services.InterviewService, sessions *SessionStore) *InterviewHandler {
	return &InterviewHandler{
		interview: interview,
		sessions:  sessions,
	}
}

// HandleProcess handles POST /api/interview/process
func (h *InterviewHandler) HandleProcess(c *fiber.Ctx) error {
	var req models.ProcessInterviewRequest
	if err := c.BodyParser(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request payload")
	}

	sess, err := h.sessions.Load(c)
	if err != nil {
		return err
	}

	in := services.InterviewInput{
		JobDescription: sess.StringOr(req.JobDesc, keyJobDesc),
		CompanyInfo:    sess.StringOr(req.CompanyInfo, keyCompanyInfo),
		Resume:         sess.StringOr(req.Resume, keyResume),
		CompanyValues:  req.CompanyValues,
		Question:       req.Question,
		Answer:         req.AnswerText,
	}
	if in.CompanyValues == "" {
		in.CompanyValues = in.CompanyInfo
	}

	report := h.interview.ProcessInterview(c.UserContext(), in)

	sess.SetJobInfo(report.JobInfo.Info)
	saveSession(sess)

	evaluation := report.Evaluation
	formatted := evaluation.Feedback
	if evaluation.Outcome != models.OutcomeInvalidInput {
		formatted = services.FormatScoreReport(evaluation.Scores, evaluation.Feedback)
	}

	return c.JSON(models.ProcessInterviewResponse{
		JobInfo: models.AnalyzeInfoResponse{
			JobInfo: report.JobInfo.Info,
			Outcome: report.JobInfo.Outcome,
		},
		ModelAnswer: models.ModelAnswerResponse{
			ModelAnswer: report.ModelAnswer.Answer,
			Outcome:     report.ModelAnswer.Outcome,
		},
		Evaluation: models.AnalyzeAnswerResponse{
			Scores:          evaluation.Scores,
			Feedback:        evaluation.Feedback,
			FormattedOutput: formatted,
			Outcome:         evaluation.Outcome,
		},
	})
}
