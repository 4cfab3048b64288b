package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/interview-coach/internal/models"
	"alfredoptarigan/interview-coach/internal/repositories"
	"alfredoptarigan/interview-coach/internal/services"
)

type AnswerHandler struct {
	interview    services.InterviewService
	practiceRepo repositories.PracticeRepository
	sessions     *SessionStore
}

func NewAnswerHandler(
	interview services.InterviewService,
	practiceRepo repositories.PracticeRepository,
	sessions *SessionStore,
) *AnswerHandler {
	return &AnswerHandler{
		interview:    interview,
		practiceRepo: practiceRepo,
		sessions:     sessions,
	}
}

// HandleAnalyze handles POST /api/answers/analyze
func (h *AnswerHandler) HandleAnalyze(c *fiber.Ctx) error {
	var req models.AnalyzeAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request payload")
	}

	sess, err := h.sessions.Load(c)
	if err != nil {
		return err
	}
	sessionID := sess.ID()
	jobDesc := sess.StringOr(req.JobDesc, keyJobDesc)
	saveSession(sess)

	result := h.interview.EvaluateAnswer(c.UserContext(), req.AnswerText, jobDesc, req.CompanyValues)

	formatted := result.Feedback
	if result.Outcome != models.OutcomeInvalidInput {
		formatted = services.FormatScoreReport(result.Scores, result.Feedback)
		h.recordAttempt(sessionID, req, result)
	}

	return c.JSON(models.AnalyzeAnswerResponse{
		Scores:          result.Scores,
		Feedback:        result.Feedback,
		FormattedOutput: formatted,
		Outcome:         result.Outcome,
	})
}

func (h *AnswerHandler) recordAttempt(sessionID string, req models.AnalyzeAnswerRequest, result services.EvaluationResult) {
	attempt := &models.PracticeAttempt{
		SessionID:  sessionID,
		Question:   req.Question,
		Answer:     req.AnswerText,
		Clarity:    result.Scores.Clarity,
		Relevance:  result.Scores.Relevance,
		Confidence: result.Scores.Confidence,
		Feedback:   result.Feedback,
		Outcome:    result.Outcome,
	}

	if err := h.practiceRepo.Create(attempt); err != nil {
		log.Printf("⚠️  Failed to record practice attempt: %v\n", err)
	}
}

// HandleModelAnswer handles POST /api/answers/model-answer
func (h *AnswerHandler) HandleModelAnswer(c *fiber.Ctx) error {
	var req models.ModelAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request payload")
	}

	sess, err := h.sessions.Load(c)
	if err != nil {
		return err
	}
	companyInfo := sess.StringOr(req.CompanyInfo, keyCompanyInfo)
	jobDesc := sess.StringOr(req.JobDesc, keyJobDesc)
	resume := sess.StringOr(req.Resume, keyResume)

	result := h.interview.DraftAnswer(c.UserContext(), req.Question, companyInfo, jobDesc, resume, req.AnswerText)

	return c.JSON(models.ModelAnswerResponse{
		ModelAnswer: result.Answer,
		Outcome:     result.Outcome,
	})
}

// HandleHistory handles GET /api/history
func (h *AnswerHandler) HandleHistory(c *fiber.Ctx) error {
	sess, err := h.sessions.Load(c)
	if err != nil {
		return err
	}
	sessionID := sess.ID()
	saveSession(sess)

	attempts, err := h.practiceRepo.FindBySession(sessionID, c.QueryInt("limit", 0))
	if err != nil {
		log.Printf("❌ Failed to load practice history: %v\n", err)
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to load practice history")
	}

	return c.JSON(models.HistoryResponse{Attempts: attempts})
}
