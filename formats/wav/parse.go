// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/go-audio/riff"
)

const (
	riffHeaderSize  = 12 // "RIFF" + size + "WAVE"
	riffSizeOffset  = 4
	chunkHeaderSize = 8 // tag + size

	// offsets from the start of the "fmt " tag
	fmtAudioFormat   = 8
	fmtNumChannels   = 10
	fmtSampleRate    = 12
	fmtBitsPerSample = 22
	fmtMinSize       = 24

	formatPCM = 1
)

type parseConfig struct {
	locator Locator
}

// ParseOption configures Parse.
type ParseOption func(*parseConfig)

// WithLocator sets the chunk location strategy. ChunkWalk is the default.
func WithLocator(l Locator) ParseOption {
	return func(c *parseConfig) {
		c.locator = l
	}
}

// Parse validates a mono 16-bit PCM RIFF/WAVE file held in data and splits
// it into header and payload. The returned Clip aliases data.
//
// A data chunk that declares more bytes than the buffer holds is cut at the
// end of the buffer.
func Parse(data []byte, opts ...ParseOption) (*Clip, error) {
	cfg := parseConfig{locator: ChunkWalk}
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(data) < riffHeaderSize ||
		!bytes.Equal(data[0:4], riff.RiffID[:]) ||
		!bytes.Equal(data[8:12], riff.WavFormatID[:]) {
		return nil, ErrNotRiffWave
	}

	fmtAt := cfg.locator.find(data, riff.FmtID)
	if fmtAt < 0 {
		return nil, ErrMissingFmtChunk
	}

	if fmtAt+fmtMinSize > len(data) {
		return nil, fmt.Errorf("%w: %d bytes at offset %d", ErrMalformedFmtChunk, len(data)-fmtAt, fmtAt)
	}

	fmtChunk := data[fmtAt:]

	if format := binary.LittleEndian.Uint16(fmtChunk[fmtAudioFormat:]); format != formatPCM {
		return nil, fmt.Errorf("%w: format tag %d", ErrUnsupportedFormat, format)
	}

	if channels := binary.LittleEndian.Uint16(fmtChunk[fmtNumChannels:]); channels != 1 {
		return nil, fmt.Errorf("%w: %d channels", ErrUnsupportedChannels, channels)
	}

	sampleRate := binary.LittleEndian.Uint32(fmtChunk[fmtSampleRate:])

	if bits := binary.LittleEndian.Uint16(fmtChunk[fmtBitsPerSample:]); bits != 16 {
		return nil, fmt.Errorf("%w: %d bits", ErrUnsupportedBitDepth, bits)
	}

	if sampleRate == 0 {
		return nil, ErrInvalidSampleRate
	}

	dataAt := cfg.locator.find(data, riff.DataFormatID)
	if dataAt < 0 || dataAt+chunkHeaderSize > len(data) {
		return nil, ErrMissingDataChunk
	}

	start := dataAt + chunkHeaderSize
	size := uint64(binary.LittleEndian.Uint32(data[dataAt+4 : start]))
	end := start + int(min(size, uint64(len(data)-start)))

	return &Clip{
		SampleRate: int(sampleRate),
		Channels:   1,
		BitDepth:   16,
		Header:     data[:start],
		Payload:    data[start:end],
	}, nil
}
