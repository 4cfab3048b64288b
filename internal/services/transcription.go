package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"alfredoptarigan/interview-coach/internal/models"
)

const (
	defaultAudioMIME = "audio/webm"

	// Assumed layout of a payload that could not be decoded as a container.
	fallbackSampleRate = 16000
	fallbackChannels   = 1
)

var (
	ErrInvalidDataURI        = errors.New("invalid audio data uri")
	ErrTranscoderUnavailable = errors.New("transcoder binary not available")
)

var audioExtensions = map[string]string{
	"audio/webm":  ".webm",
	"video/webm":  ".webm",
	"audio/ogg":   ".ogg",
	"audio/wav":   ".wav",
	"audio/x-wav": ".wav",
	"audio/mpeg":  ".mp3",
	"audio/mp4":   ".m4a",
	"audio/aac":   ".aac",
	"audio/flac":  ".flac",
}

// DecodeDataURI splits "data:<mime>[;params];base64,<payload>" into its MIME
// type and decoded bytes.
func DecodeDataURI(dataURI string) (string, []byte, error) {
	header, payload, found := strings.Cut(strings.TrimSpace(dataURI), ",")
	if !found || !strings.HasPrefix(header, "data:") {
		return "", nil, ErrInvalidDataURI
	}

	params := strings.Split(strings.TrimPrefix(header, "data:"), ";")
	if params[len(params)-1] != "base64" {
		return "", nil, fmt.Errorf("%w: payload is not base64", ErrInvalidDataURI)
	}

	mimeType := strings.ToLower(strings.TrimSpace(params[0]))
	if mimeType == "" || mimeType == "base64" {
		mimeType = defaultAudioMIME
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		if data, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "=")); err != nil {
			return "", nil, fmt.Errorf("%w: %v", ErrInvalidDataURI, err)
		}
	}
	if len(data) == 0 {
		return "", nil, fmt.Errorf("%w: empty payload", ErrInvalidDataURI)
	}

	return mimeType, data, nil
}

func audioExtension(mimeType string) string {
	if ext, ok := audioExtensions[mimeType]; ok {
		return ext
	}
	return ".webm"
}

// Transcoder normalizes an audio container into a 16 kHz mono WAV file and
// returns the path of the new file.
type Transcoder interface {
	ToWAV(ctx context.Context, srcPath string) (string, error)
}

type ffmpegTranscoder struct {
	binary string
}

func NewFFmpegTranscoder(binary string) Transcoder {
	return &ffmpegTranscoder{binary: binary}
}

// ToWAV implements Transcoder.
func (f *ffmpegTranscoder) ToWAV(ctx context.Context, srcPath string) (string, error) {
	binPath, err := exec.LookPath(f.binary)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTranscoderUnavailable, err)
	}

	dstPath := strings.TrimSuffix(srcPath, filepath.Ext(srcPath)) + ".16k.wav"
	cmd := exec.CommandContext(ctx, binPath,
		"-y", "-loglevel", "error",
		"-i", srcPath,
		"-ar", "16000",
		"-ac", "1",
		dstPath,
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("ffmpeg failed: %w: %s", err, strings.TrimSpace(string(out)))
	}

	return dstPath, nil
}

// Transcription is the result of a speech-to-text request. Text holds the
// transcript on success and a diagnostic message otherwise.
type Transcription struct {
	Text    string
	Outcome models.Outcome
	Err     error
}

type TranscriptionAdapter interface {
	Transcribe(ctx context.Context, dataURI string) Transcription
}

type transcriptionAdapter struct {
	recognizer SpeechRecognizer
	transcoder Transcoder
	storage    StorageService
}

func NewTranscriptionAdapter(recognizer SpeechRecognizer, transcoder Transcoder, storage StorageService) TranscriptionAdapter {
	return &transcriptionAdapter{
		recognizer: recognizer,
		transcoder: transcoder,
		storage:    storage,
	}
}

// Transcribe implements TranscriptionAdapter. The container path is tried
// first; if it fails the payload is resubmitted as raw 16-bit PCM.
func (t *transcriptionAdapter) Transcribe(ctx context.Context, dataURI string) Transcription {
	mimeType, payload, err := DecodeDataURI(dataURI)
	if err != nil {
		log.Printf("❌ Speech recognition rejected input: %v", err)
		return Transcription{
			Text:    fmt.Sprintf("Speech recognition failed: %v", err),
			Outcome: models.OutcomeInvalidInput,
			Err:     err,
		}
	}

	text, firstErr := t.recognizeContainer(ctx, mimeType, payload)
	if firstErr == nil {
		return Transcription{Text: text, Outcome: models.OutcomeOK}
	}
	log.Printf("⚠️  Speech recognition failed, retrying as raw PCM: %v", firstErr)

	text, secondErr := t.recognizeRawPCM(ctx, payload)
	if secondErr == nil {
		return Transcription{Text: text, Outcome: models.OutcomeOK}
	}
	log.Printf("❌ Speech recognition failed twice: %v", secondErr)

	return Transcription{
		Text:    fmt.Sprintf("Speech recognition failed: %v. Second attempt: %v", firstErr, secondErr),
		Outcome: models.OutcomeFailed,
		Err:     errors.Join(firstErr, secondErr),
	}
}

func (t *transcriptionAdapter) recognizeContainer(ctx context.Context, mimeType string, payload []byte) (string, error) {
	srcPath, err := t.storage.CreateTempFile(audioExtension(mimeType), payload)
	if err != nil {
		return "", err
	}
	defer t.storage.RemoveFile(srcPath)

	audio, audioMIME := payload, mimeType

	wavPath, err := t.transcoder.ToWAV(ctx, srcPath)
	switch {
	case errors.Is(err, ErrTranscoderUnavailable):
		log.Printf("⚠️  %v, submitting %s directly", err, mimeType)
	case err != nil:
		return "", err
	default:
		defer t.storage.RemoveFile(wavPath)
		if audio, err = os.ReadFile(wavPath); err != nil {
			return "", fmt.Errorf("failed to read transcoded audio: %w", err)
		}
		audioMIME = "audio/wav"
	}

	return t.recognizer.TranscribeAudio(ctx, audio, audioMIME)
}

func (t *transcriptionAdapter) recognizeRawPCM(ctx context.Context, payload []byte) (string, error) {
	wavData, err := EncodeWAV(payload, PCMFormat{SampleRate: fallbackSampleRate, Channels: fallbackChannels})
	if err != nil {
		return "", err
	}
	return t.recognizer.TranscribeAudio(ctx, wavData, "audio/wav")
}
