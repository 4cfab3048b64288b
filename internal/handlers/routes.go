package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Analysis  *AnalysisHandler
	Question  *QuestionHandler
	Answer    *AnswerHandler
	Interview *InterviewHandler
	Speech    *SpeechHandler
	Export    *ExportHandler
	Resume    *ResumeHandler
}

// Register mounts the API under /api plus the short paths older clients call.
func (h *Handlers) Register(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	analysis := api.Group("/analysis")
	analysis.Post("/analyze-info", h.Analysis.HandleAnalyzeInfo)

	questions := api.Group("/questions")
	questions.Post("/generate", h.Question.HandleGenerate)
	questions.Post("/recommend", h.Question.HandleRecommend)
	questions.Post("/follow-up", h.Question.HandleFollowUp)

	answers := api.Group("/answers")
	answers.Post("/analyze", h.Answer.HandleAnalyze)
	answers.Post("/model-answer", h.Answer.HandleModelAnswer)

	api.Post("/interview/process", h.Interview.HandleProcess)

	speech := api.Group("/speech")
	speech.Post("/speech-to-text", h.Speech.HandleSpeechToText)
	speech.Post("/text-to-speech", h.Speech.HandleTextToSpeech)
	speech.Get("/voice-options", h.Speech.HandleVoiceOptions)

	export := api.Group("/export")
	export.Post("/save-html", h.Export.HandleSaveHTML)
	export.Get("/download/:file_id", h.Export.HandleDownload)

	api.Post("/resume/upload", h.Resume.HandleUpload)
	api.Get("/history", h.Answer.HandleHistory)

	// Legacy paths
	app.Post("/analyze-info", h.Analysis.HandleAnalyzeInfo)
	app.Post("/generate-questions", h.Question.HandleGenerate)
	app.Post("/generate-follow-up-questions", h.Question.HandleFollowUp)
	app.Post("/analyze-answer", h.Answer.HandleAnalyze)
	app.Post("/generate-model-answer", h.Answer.HandleModelAnswer)
	app.Post("/speech-to-text", h.Speech.HandleSpeechToText)
	app.Post("/text-to-speech", h.Speech.HandleTextToSpeech)
	app.Post("/save-to-html", h.Export.HandleSaveHTML)
	app.Get("/download-html/:file_id", h.Export.HandleDownload)
}

func Endpoints() []string {
	return []string{
		"GET /api/health",
		"POST /api/analysis/analyze-info",
		"POST /api/questions/generate",
		"POST /api/questions/recommend",
		"POST /api/questions/follow-up",
		"POST /api/answers/analyze",
		"POST /api/answers/model-answer",
		"POST /api/interview/process",
		"POST /api/speech/speech-to-text",
		"POST /api/speech/text-to-speech",
		"GET /api/speech/voice-options",
		"POST /api/export/save-html",
		"GET /api/export/download/:file_id",
		"POST /api/resume/upload",
		"GET /api/history",
	}
}

// ErrorHandler renders errors that escape a handler as JSON.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
