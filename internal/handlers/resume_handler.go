package handlers

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/interview-coach/internal/models"
	"alfredoptarigan/interview-coach/internal/services"
)

type ResumeHandler struct {
	storageService services.StorageService
	pdfParser      services.PDFParserService
	sessions       *SessionStore
	maxFileSize    int64
}

func NewResumeHandler(
	storageService services.StorageService,
	pdfParser services.PDFParserService,
	sessions *SessionStore,
	maxFileSize int64,
) *ResumeHandler {
	return &ResumeHandler{
		storageService: storageService,
		pdfParser:      pdfParser,
		sessions:       sessions,
		maxFileSize:    maxFileSize,
	}
}

// HandleUpload handles POST /api/resume/upload
func (h *ResumeHandler) HandleUpload(c *fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "No valid file uploaded. Please upload 'resume' as a PDF file.")
	}

	if file.Size > h.maxFileSize {
		return errorResponse(c, fiber.StatusBadRequest, fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize))
	}

	filename, filePath, err := h.storageService.SaveFile(file, "resume")
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, fmt.Sprintf("failed to save resume file: %v", err))
	}
	defer func() {
		if err := h.storageService.DeleteFile(filename); err != nil {
			log.Printf("⚠️  %v\n", err)
		}
	}()

	content, err := h.pdfParser.ExtractResume(filePath)
	if err != nil {
		log.Printf("❌ Failed to read resume %s: %v\n", file.Filename, err)
		return errorResponse(c, fiber.StatusBadRequest, "Could not read any text from the uploaded PDF")
	}

	sess, err := h.sessions.Load(c)
	if err != nil {
		return err
	}
	sess.SetString(keyResume, content.Text)
	saveSession(sess)

	return c.JSON(models.ResumeUploadResponse{
		Resume: content.Text,
		Pages:  content.PageCount,
	})
}
