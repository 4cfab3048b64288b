package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/interview-coach/internal/models"
	"alfredoptarigan/interview-coach/internal/services"
)

type AnalysisHandler struct {
	interview services.InterviewService
	sessions  *SessionStore
}

func NewAnalysisHandler(interview services.InterviewService, sessions *SessionStore) *AnalysisHandler {
	return &AnalysisHandler{
		interview: interview,
		sessions:  sessions,
	}
}

// HandleAnalyzeInfo handles POST /api/analysis/analyze-info
func (h *AnalysisHandler) HandleAnalyzeInfo(c *fiber.Ctx) error {
	var req models.AnalyzeInfoRequest
	if err := c.BodyParser(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request payload")
	}

	sess, err := h.sessions.Load(c)
	if err != nil {
		return err
	}

	result := h.interview.ParseJobInfo(c.UserContext(), req.JobDesc, req.CompanyInfo)

	sess.SetString(keyJobDesc, req.JobDesc)
	sess.SetString(keyCompanyInfo, req.CompanyInfo)
	sess.SetJobInfo(result.Info)
	saveSession(sess)

	return c.JSON(models.AnalyzeInfoResponse{
		JobInfo: result.Info,
		Outcome: result.Outcome,
	})
}
