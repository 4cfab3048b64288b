package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/interview-coach/internal/models"
	"alfredoptarigan/interview-coach/internal/services"
)

type SpeechHandler struct {
	transcriber  services.TranscriptionAdapter
	synthesizer  services.SynthesisAdapter
	defaultVoice string
	validator    *validator.Validate
}

func NewSpeechHandler(
	transcriber services.TranscriptionAdapter,
	synthesizer services.SynthesisAdapter,
	defaultVoice string,
) *SpeechHandler {
	return &SpeechHandler{
		transcriber:  transcriber,
		synthesizer:  synthesizer,
		defaultVoice: defaultVoice,
		validator:    validator.New(),
	}
}

// HandleSpeechToText handles POST /api/speech/speech-to-text
func (h *SpeechHandler) HandleSpeechToText(c *fiber.Ctx) error {
	var req models.SpeechToTextRequest
	if err := c.BodyParser(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "No audio data provided")
	}
	if err := h.validator.Struct(req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "No audio data provided")
	}

	result := h.transcriber.Transcribe(c.UserContext(), req.Audio)

	return c.JSON(models.SpeechToTextResponse{
		Text:    result.Text,
		Outcome: result.Outcome,
	})
}

// HandleTextToSpeech handles POST /api/speech/text-to-speech
func (h *SpeechHandler) HandleTextToSpeech(c *fiber.Ctx) error {
	var req models.TextToSpeechRequest
	if err := c.BodyParser(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request payload")
	}

	// Keys that can't name a voice fall back like any other unknown key.
	voice := req.VoiceOption
	if voice == "" || h.validator.Struct(req) != nil {
		voice = h.defaultVoice
	}

	result := h.synthesizer.Synthesize(c.UserContext(), req.Text, voice)

	resp := models.TextToSpeechResponse{
		Voice:   result.Voice,
		Outcome: result.Outcome,
	}
	if result.DataURI != "" {
		resp.Audio = &result.DataURI
	}

	return c.JSON(resp)
}

// HandleVoiceOptions handles GET /api/speech/voice-options
func (h *SpeechHandler) HandleVoiceOptions(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"voices":  services.VoiceNames(),
		"details": services.VoiceOptions(),
		"default": h.defaultVoice,
	})
}
