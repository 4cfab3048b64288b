package services

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const wavFormatPCM = 1

// PCMFormat describes headerless little-endian 16-bit PCM.
type PCMFormat struct {
	SampleRate int
	Channels   int
}

// EncodeWAV wraps raw 16-bit little-endian PCM in a WAV container. A trailing
// odd byte is dropped.
func EncodeWAV(pcm []byte, format PCMFormat) ([]byte, error) {
	if len(pcm) < 2 {
		return nil, fmt.Errorf("pcm payload too short: %d bytes", len(pcm))
	}

	samples := make([]int, len(pcm)/2)
	for i := range samples {
		samples[i] = int(int16(binary.LittleEndian.Uint16(pcm[2*i:])))
	}

	f, err := os.CreateTemp("", "interview-*.wav")
	if err != nil {
		return nil, fmt.Errorf("failed to create wav file: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	enc := wav.NewEncoder(f, format.SampleRate, 16, format.Channels, wavFormatPCM)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: format.Channels, SampleRate: format.SampleRate},
		Data:           samples,
		SourceBitDepth: 16,
	}

	if err := enc.Write(buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to encode wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to finalize wav: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close wav file: %w", err)
	}

	return os.ReadFile(path)
}
