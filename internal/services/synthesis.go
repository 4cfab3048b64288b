package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"alfredoptarigan/interview-coach/internal/models"
)

const (
	DefaultVoiceOption = "US English"

	maxSynthesisChunk = 1500
)

var ErrEmptyText = errors.New("no text to speak")

// Voice pairs a language with the regional domain that picks its accent,
// plus the BCP-47 code the synthesizer expects.
type Voice struct {
	Lang         string `json:"lang"`
	TLD          string `json:"tld"`
	LanguageCode string `json:"language_code"`
}

var voiceOptions = map[string]Voice{
	"US English":         {Lang: "en", TLD: "com", LanguageCode: "en-US"},
	"UK English":         {Lang: "en", TLD: "co.uk", LanguageCode: "en-GB"},
	"Australian English": {Lang: "en", TLD: "com.au", LanguageCode: "en-AU"},
	"Indian English":     {Lang: "en", TLD: "co.in", LanguageCode: "en-IN"},
	"French":             {Lang: "fr", TLD: "fr", LanguageCode: "fr-FR"},
	"German":             {Lang: "de", TLD: "de", LanguageCode: "de-DE"},
	"Spanish":            {Lang: "es", TLD: "es", LanguageCode: "es-ES"},
	"Italian":            {Lang: "it", TLD: "it", LanguageCode: "it-IT"},
	"Japanese":           {Lang: "ja", TLD: "co.jp", LanguageCode: "ja-JP"},
	"Korean":             {Lang: "ko", TLD: "co.kr", LanguageCode: "ko-KR"},
}

// VoiceOptions returns a copy of the voice table.
func VoiceOptions() map[string]Voice {
	options := make(map[string]Voice, len(voiceOptions))
	for k, v := range voiceOptions {
		options[k] = v
	}
	return options
}

// VoiceNames lists the voice keys in a stable order.
func VoiceNames() []string {
	names := make([]string, 0, len(voiceOptions))
	for name := range voiceOptions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupVoice resolves key, falling back to US English for unknown keys.
func LookupVoice(key string) (string, Voice) {
	if v, ok := voiceOptions[key]; ok {
		return key, v
	}
	return DefaultVoiceOption, voiceOptions[DefaultVoiceOption]
}

// Synthesis is the result of a text-to-speech request. DataURI is empty when
// synthesis failed.
type Synthesis struct {
	DataURI string
	Voice   string
	Outcome models.Outcome
	Err     error
}

type SynthesisAdapter interface {
	Synthesize(ctx context.Context, text, voiceKey string) Synthesis
}

type synthesisAdapter struct {
	synthesizer SpeechSynthesizer
	chunker     TextChunker
}

func NewSynthesisAdapter(synthesizer SpeechSynthesizer) SynthesisAdapter {
	return &synthesisAdapter{
		synthesizer: synthesizer,
		chunker:     NewTextChunker(),
	}
}

// Synthesize implements SynthesisAdapter. No retry.
func (s *synthesisAdapter) Synthesize(ctx context.Context, text, voiceKey string) Synthesis {
	name, voice := LookupVoice(voiceKey)
	result := Synthesis{Voice: name}

	dataURI, err := s.synthesize(ctx, text, voice)
	if err != nil {
		log.Printf("❌ TTS error: %v", err)
		result.Err = err
		result.Outcome = models.OutcomeFailed
		if errors.Is(err, ErrEmptyText) {
			result.Outcome = models.OutcomeInvalidInput
		}
		return result
	}

	result.DataURI = dataURI
	result.Outcome = models.OutcomeOK
	return result
}

func (s *synthesisAdapter) synthesize(ctx context.Context, text string, voice Voice) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyText
	}

	var pcm []byte
	for i, chunk := range s.chunker.ChunkText(text, maxSynthesisChunk) {
		audio, err := s.synthesizer.SynthesizeSpeech(ctx, chunk, voice.LanguageCode)
		if err != nil {
			return "", fmt.Errorf("chunk %d: %w", i+1, err)
		}
		// An odd trailing byte would misalign every sample after it.
		if len(audio)%2 == 1 {
			audio = audio[:len(audio)-1]
		}
		pcm = append(pcm, audio...)
	}

	wavData, err := EncodeWAV(pcm, PCMFormat{SampleRate: ttsSampleRate, Channels: 1})
	if err != nil {
		return "", err
	}

	return "data:audio/wav;base64," + base64.StdEncoding.EncodeToString(wavData), nil
}
