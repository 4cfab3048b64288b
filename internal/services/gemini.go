package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"google.golang.org/genai"

	"alfredoptarigan/interview-coach/internal/config"
)

const (
	// Gemini TTS returns signed 16-bit little-endian mono PCM at 24kHz.
	ttsSampleRate = 24000

	defaultTTSVoice = "Kore"

	transcriptionInstruction = "Transcribe the speech in this audio recording verbatim. " +
		"Return only the transcript text, without commentary, labels or timestamps."
)

type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string, temperature float32) (string, error)
}

type Embedder interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}

type SpeechRecognizer interface {
	TranscribeAudio(ctx context.Context, audio []byte, mimeType string) (string, error)
}

type SpeechSynthesizer interface {
	// SynthesizeSpeech returns raw PCM samples at ttsSampleRate.
	SynthesizeSpeech(ctx context.Context, text, languageCode string) ([]byte, error)
}

type GeminiService interface {
	TextGenerator
	Embedder
	SpeechRecognizer
	SpeechSynthesizer
}

type geminiService struct {
	client          *genai.Client
	modelName       string
	speechModel     string
	ttsModel        string
	embedModel      string
	maxOutputTokens int32
}

func NewGeminiService(cfg config.GeminiConfig) (GeminiService, error) {
	ctx := context.Background()

	if cfg.APIKey == "" {
		log.Println("⚠️  GEMINI_API_KEY is empty, every completion will fall back to canned text")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:          client,
		modelName:       cfg.Model,
		speechModel:     cfg.SpeechModel,
		ttsModel:        cfg.TTSModel,
		embedModel:      cfg.EmbedModel,
		maxOutputTokens: int32(cfg.MaxOutputTokens),
	}, nil
}

// GenerateEmbedding implements Embedder.
func (g *geminiService) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	// Truncate text if too long (max ~10000 tokens for embedding)
	if len(text) > 40000 {
		text = text[:40000]
	}

	result, err := g.client.Models.EmbedContent(ctx, g.embedModel, genai.Text(text), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}

	if result == nil || len(result.Embeddings) == 0 {
		return nil, fmt.Errorf("empty embedding result")
	}

	return result.Embeddings[0].Values, nil
}

// GenerateText implements TextGenerator.
func (g *geminiService) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	topP := float32(0.7)
	topK := float32(50)

	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		TopP:            &topP,
		TopK:            &topK,
		MaxOutputTokens: g.maxOutputTokens,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if resp == nil {
		return "", fmt.Errorf("no response generated (nil response)")
	}

	return resp.Text(), nil
}

// TranscribeAudio implements SpeechRecognizer.
func (g *geminiService) TranscribeAudio(ctx context.Context, audio []byte, mimeType string) (string, error) {
	if len(audio) == 0 {
		return "", fmt.Errorf("empty audio payload")
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(transcriptionInstruction),
			genai.NewPartFromBytes(audio, mimeType),
		}, genai.RoleUser),
	}

	temperature := float32(0)
	resp, err := g.client.Models.GenerateContent(ctx, g.speechModel, contents, &genai.GenerateContentConfig{
		Temperature: &temperature,
	})
	if err != nil {
		return "", fmt.Errorf("failed to transcribe audio: %w", err)
	}

	if resp == nil {
		return "", fmt.Errorf("no transcription generated (nil response)")
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("could not understand audio")
	}

	return text, nil
}

// SynthesizeSpeech implements SpeechSynthesizer.
func (g *geminiService) SynthesizeSpeech(ctx context.Context, text, languageCode string) ([]byte, error) {
	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			LanguageCode: languageCode,
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{
					VoiceName: defaultTTSVoice,
				},
			},
		},
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.ttsModel, genai.Text(text), config)
	if err != nil {
		return nil, fmt.Errorf("failed to synthesize speech: %w", err)
	}

	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("no audio generated")
	}

	var pcm []byte
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.InlineData != nil {
			pcm = append(pcm, part.InlineData.Data...)
		}
	}

	if len(pcm) == 0 {
		return nil, fmt.Errorf("no audio content in response")
	}

	return pcm, nil
}
