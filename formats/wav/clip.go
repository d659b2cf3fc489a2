// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"time"
)

// Clip is a parsed mono 16-bit PCM WAV file.
//
// Header and Payload alias the buffer handed to Parse and are never written to.
type Clip struct {
	SampleRate int
	Channels   int
	BitDepth   int

	// Header holds every byte preceding the data payload, including the
	// 8-byte "data" tag and size.
	Header []byte
	// Payload is the data chunk payload.
	Payload []byte
}

// SampleCount is the number of whole 16-bit samples in the payload.
func (c *Clip) SampleCount() int { return len(c.Payload) / 2 }

// Duration of the clip at its sample rate.
func (c *Clip) Duration() time.Duration {
	if c.SampleRate <= 0 {
		return 0
	}

	return time.Duration(c.SampleCount()) * time.Second / time.Duration(c.SampleRate)
}

// Samples decodes the payload into signed 16-bit samples.
// A trailing odd byte is not part of any sample and is ignored.
func (c *Clip) Samples() []int16 {
	samples := make([]int16, c.SampleCount())
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(c.Payload[2*i : 2*i+2]))
	}

	return samples
}

// Encode builds a new file from the clip's header and samples.
//
// The header is copied verbatim except for the RIFF size at offset 4 and the
// data chunk size, which are set to match the new file. samples must hold
// exactly SampleCount values.
func (c *Clip) Encode(samples []int16) ([]byte, error) {
	if len(samples) != c.SampleCount() {
		return nil, fmt.Errorf("%w: got %d samples, want %d", ErrLengthMismatch, len(samples), c.SampleCount())
	}

	headerSize := len(c.Header)
	out := make([]byte, headerSize+len(c.Payload))
	copy(out, c.Header)

	payload := out[headerSize:]
	for i, s := range samples {
		binary.LittleEndian.PutUint16(payload[2*i:2*i+2], uint16(s))
	}

	// odd payloads keep their last byte as is
	if len(c.Payload)%2 == 1 {
		payload[len(payload)-1] = c.Payload[len(c.Payload)-1]
	}

	binary.LittleEndian.PutUint32(out[riffSizeOffset:riffSizeOffset+4], uint32(len(out)-chunkHeaderSize))
	binary.LittleEndian.PutUint32(out[headerSize-4:headerSize], uint32(len(payload)))

	return out, nil
}
