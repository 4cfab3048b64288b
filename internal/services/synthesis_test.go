package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/interview-coach/internal/models"
)

func TestLookupVoice(t *testing.T) {
	name, voice := LookupVoice("UK English")
	assert.Equal(t, "UK English", name)
	assert.Equal(t, Voice{Lang: "en", TLD: "co.uk", LanguageCode: "en-GB"}, voice)

	name, voice = LookupVoice("Klingon")
	assert.Equal(t, "US English", name)
	assert.Equal(t, "en", voice.Lang)
	assert.Equal(t, "com", voice.TLD)
}

func TestVoiceOptions(t *testing.T) {
	options := VoiceOptions()
	assert.Len(t, options, 10)
	assert.Len(t, VoiceNames(), 10)

	delete(options, "French")
	assert.Len(t, VoiceOptions(), 10)
}

func TestSynthesize_ReturnsWAVDataURI(t *testing.T) {
	synth := &fakeSynthesizer{pcm: pcm16(1, 2, 3)}

	result := NewSynthesisAdapter(synth).Synthesize(context.Background(), "Hello there.", "Japanese")

	assert.Equal(t, models.OutcomeOK, result.Outcome)
	assert.Equal(t, "Japanese", result.Voice)
	assert.Equal(t, []string{"ja-JP"}, synth.languages)

	require.True(t, strings.HasPrefix(result.DataURI, "data:audio/wav;base64,"))
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(result.DataURI, "data:audio/wav;base64,"))
	require.NoError(t, err)
	assert.Equal(t, "RIFF", string(raw[:4]))
}

func TestSynthesize_UnknownVoiceUsesUSEnglish(t *testing.T) {
	synth := &fakeSynthesizer{pcm: pcm16(1)}

	result := NewSynthesisAdapter(synth).Synthesize(context.Background(), "Hi friend.", "nope")

	assert.Equal(t, "US English", result.Voice)
	assert.Equal(t, []string{"en-US"}, synth.languages)
	assert.NotEmpty(t, result.DataURI)
}

func TestSynthesize_FailureYieldsNoAudio(t *testing.T) {
	synth := &fakeSynthesizer{err: errBoom}

	result := NewSynthesisAdapter(synth).Synthesize(context.Background(), "Hello.", "US English")

	assert.Empty(t, result.DataURI)
	assert.Equal(t, models.OutcomeFailed, result.Outcome)
	assert.ErrorIs(t, result.Err, errBoom)
	assert.Len(t, synth.texts, 1, "no retry")
}

func TestSynthesize_EmptyText(t *testing.T) {
	synth := &fakeSynthesizer{pcm: pcm16(1)}

	result := NewSynthesisAdapter(synth).Synthesize(context.Background(), "   ", "US English")

	assert.Empty(t, result.DataURI)
	assert.Equal(t, models.OutcomeInvalidInput, result.Outcome)
	assert.ErrorIs(t, result.Err, ErrEmptyText)
	assert.Empty(t, synth.texts)
}

func TestSynthesize_LongTextIsChunked(t *testing.T) {
	synth := &fakeSynthesizer{pcm: pcm16(1)}
	text := strings.Repeat("This is one sentence of a long model answer. ", 80)

	result := NewSynthesisAdapter(synth).Synthesize(context.Background(), text, "US English")

	assert.Equal(t, models.OutcomeOK, result.Outcome)
	assert.Greater(t, len(synth.texts), 1)
	for _, chunk := range synth.texts {
		assert.LessOrEqual(t, len(chunk), maxSynthesisChunk)
	}
}

func TestSynthesize_OddChunksStayAligned(t *testing.T) {
	synth := &fakeSynthesizer{pcm: append(pcm16(1000, -1000), 0x7f)}
	text := strings.Repeat("This is one sentence of a long model answer. ", 80)

	result := NewSynthesisAdapter(synth).Synthesize(context.Background(), text, "US English")
	require.Equal(t, models.OutcomeOK, result.Outcome)
	require.Greater(t, len(synth.texts), 1)

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(result.DataURI, "data:audio/wav;base64,"))
	require.NoError(t, err)
	buf, err := wav.NewDecoder(bytes.NewReader(raw)).FullPCMBuffer()
	require.NoError(t, err)

	var expected []int
	for range synth.texts {
		expected = append(expected, 1000, -1000)
	}
	assert.Equal(t, expected, buf.Data)
}
