package services

import (
	"context"
	"errors"
	"sync"

	"alfredoptarigan/interview-coach/internal/models"
)

type fakeGenerator struct {
	text    string
	err     error
	prompts []string
}

func (f *fakeGenerator) GenerateText(_ context.Context, prompt string, _ float32) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.text, f.err
}

// fakeCompletion returns its replies in order, repeating the last one.
type fakeCompletion struct {
	replies []Completion
	prompts []string
}

func (f *fakeCompletion) Complete(_ context.Context, prompt string) Completion {
	f.prompts = append(f.prompts, prompt)
	i := len(f.prompts) - 1
	if i >= len(f.replies) {
		i = len(f.replies) - 1
	}
	return f.replies[i]
}

func okReply(text string) Completion {
	return Completion{Text: text, Outcome: models.OutcomeOK}
}

type recognizeCall struct {
	audio    []byte
	mimeType string
}

type fakeRecognizer struct {
	results []error
	text    string
	calls   []recognizeCall
}

func (f *fakeRecognizer) TranscribeAudio(_ context.Context, audio []byte, mimeType string) (string, error) {
	f.calls = append(f.calls, recognizeCall{audio: audio, mimeType: mimeType})
	i := len(f.calls) - 1
	if i < len(f.results) && f.results[i] != nil {
		return "", f.results[i]
	}
	return f.text, nil
}

type fakeTranscoder struct {
	err     error
	wavData []byte
	srcSeen []string
	outputs []string
}

func (f *fakeTranscoder) ToWAV(_ context.Context, srcPath string) (string, error) {
	f.srcSeen = append(f.srcSeen, srcPath)
	if f.err != nil {
		return "", f.err
	}
	path, err := NewStorageService("", "").CreateTempFile(".wav", f.wavData)
	f.outputs = append(f.outputs, path)
	return path, err
}

type fakeSynthesizer struct {
	mu        sync.Mutex
	pcm       []byte
	err       error
	texts     []string
	languages []string
}

func (f *fakeSynthesizer) SynthesizeSpeech(_ context.Context, text, languageCode string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.texts = append(f.texts, text)
	f.languages = append(f.languages, languageCode)
	return f.pcm, f.err
}

var errBoom = errors.New("boom")
