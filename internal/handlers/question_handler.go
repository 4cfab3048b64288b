package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/interview-coach/internal/models"
	"alfredoptarigan/interview-coach/internal/services"
)

const defaultRecommendLimit = 5

type QuestionHandler struct {
	interview services.InterviewService
	index     services.QuestionIndex
	sessions  *SessionStore
	validator *validator.Validate
}

// NewQuestionHandler builds the question endpoints. index may be nil, in
// which case recommendations come straight from the catalog.
func NewQuestionHandler(
	interview services.InterviewService,
	index services.QuestionIndex,
	sessions *SessionStore,
) *QuestionHandler {
	return &QuestionHandler{
		interview: interview,
		index:     index,
		sessions:  sessions,
		validator: validator.New(),
	}
}

// HandleGenerate handles POST /api/questions/generate
func (h *QuestionHandler) HandleGenerate(c *fiber.Ctx) error {
	var req models.GenerateQuestionsRequest
	if err := c.BodyParser(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request payload")
	}

	sess, err := h.sessions.Load(c)
	if err != nil {
		return err
	}
	sess.SetString(keyJobDesc, req.JobDesc)
	sess.SetString(keyCompanyInfo, req.CompanyInfo)
	sess.SetString(keyResume, req.Resume)
	saveSession(sess)

	return c.JSON(models.GenerateQuestionsResponse{
		Questions:  services.GenerateSampleQuestions(req.JobDesc, req.CompanyInfo, req.Resume),
		Categories: services.Categories,
		Hints:      services.QuestionHints(),
	})
}

// HandleRecommend handles POST /api/questions/recommend
func (h *QuestionHandler) HandleRecommend(c *fiber.Ctx) error {
	var req models.RecommendQuestionsRequest
	if err := c.BodyParser(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := h.validator.Struct(req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "limit must be between 1 and 20")
	}

	limit := req.Limit
	if limit == 0 {
		limit = defaultRecommendLimit
	}

	if h.index != nil && req.JobDesc != "" {
		recommendations, err := h.index.Recommend(c.UserContext(), req.JobDesc, limit)
		if err == nil && len(recommendations) > 0 {
			return c.JSON(fiber.Map{
				"recommendations": recommendations,
				"source":          "vector",
			})
		}
		if err != nil {
			log.Printf("⚠️  Question index unavailable, using catalog order: %v\n", err)
		}
	}

	catalog := services.FullCatalog()
	return c.JSON(fiber.Map{
		"recommendations": services.CatalogRecommendations(catalog, services.QuestionHints(), limit),
		"source":          "catalog",
	})
}

// HandleFollowUp handles POST /api/questions/follow-up
func (h *QuestionHandler) HandleFollowUp(c *fiber.Ctx) error {
	var req models.FollowUpRequest
	if err := c.BodyParser(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request payload")
	}

	sess, err := h.sessions.Load(c)
	if err != nil {
		return err
	}
	jobDesc := sess.StringOr(req.JobDesc, keyJobDesc)
	resume := sess.StringOr(req.Resume, keyResume)

	result := h.interview.GenerateFollowUps(c.UserContext(), jobDesc, resume, req.Question, req.AnswerText)

	return c.JSON(models.FollowUpResponse{
		FollowUpQuestions: result.Questions,
		Outcome:           result.Outcome,
	})
}
