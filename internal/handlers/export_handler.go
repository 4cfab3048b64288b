package handlers

import (
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/interview-coach/internal/models"
	"alfredoptarigan/interview-coach/internal/services"
)

type ExportHandler struct {
	renderer  services.SummaryRenderer
	storage   services.StorageService
	sessions  *SessionStore
	validator *validator.Validate
}

func NewExportHandler(
	renderer services.SummaryRenderer,
	storage services.StorageService,
	sessions *SessionStore,
) *ExportHandler {
	return &ExportHandler{
		renderer:  renderer,
		storage:   storage,
		sessions:  sessions,
		validator: validator.New(),
	}
}

// HandleSaveHTML handles POST /api/export/save-html
func (h *ExportHandler) HandleSaveHTML(c *fiber.Ctx) error {
	var req models.SaveHTMLRequest
	if err := c.BodyParser(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request payload")
	}

	sess, err := h.sessions.Load(c)
	if err != nil {
		return err
	}

	parsed, _ := sess.JobInfo()
	companyName := parsed.CompanyName
	if req.CompanyName != nil {
		companyName = *req.CompanyName
	}
	positionTitle := parsed.PositionTitle
	if req.PositionTitle != nil {
		positionTitle = *req.PositionTitle
	}

	path, err := h.renderer.Render(services.SummaryData{
		CompanyName:       companyName,
		PositionTitle:     positionTitle,
		CompanyValues:     req.CompanyValues,
		TechSkills:        req.TechSkills,
		SoftSkills:        req.SoftSkills,
		JobDuties:         req.JobDuties,
		Question:          req.SelectedQuestion,
		Answer:            req.AnswerText,
		ModelAnswer:       req.ModelAnswer,
		Feedback:          req.Feedback,
		FollowUpQuestions: req.FollowUpQuestions,
		Scores:            req.Scores,
	})
	if err != nil {
		log.Printf("❌ Error saving to HTML: %v\n", err)
		return errorResponse(c, fiber.StatusInternalServerError, "An error occurred while generating the HTML file")
	}

	fileID := uuid.New().String()
	sess.SetExportPath(fileID, path)
	if err := sess.Save(); err != nil {
		h.storage.RemoveFile(path)
		log.Printf("❌ %v\n", err)
		return errorResponse(c, fiber.StatusInternalServerError, "An error occurred while generating the HTML file")
	}

	return c.JSON(models.SaveHTMLResponse{FileID: fileID})
}

// HandleDownload handles GET /api/export/download/:file_id
func (h *ExportHandler) HandleDownload(c *fiber.Ctx) error {
	params := models.DownloadParams{FileID: c.Params("file_id")}
	if err := h.validator.Struct(params); err != nil {
		return errorResponse(c, fiber.StatusNotFound, "File not found")
	}

	sess, err := h.sessions.Load(c)
	if err != nil {
		return err
	}

	path, err := h.storage.ResolveExport(sess.ExportPath(params.FileID))
	if err != nil {
		return errorResponse(c, fiber.StatusNotFound, "File not found")
	}

	downloadName := fmt.Sprintf("interview_summary_%s.html", time.Now().Format("2006-01-02_15-04-05"))
	return c.Download(path, downloadName)
}
