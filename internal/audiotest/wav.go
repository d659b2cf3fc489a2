// SPDX-License-Identifier: EPL-2.0

// Package audiotest builds synthetic RIFF/WAVE files for tests.
package audiotest

import (
	"bytes"
	"encoding/binary"
	"math"
)

// Chunk is an extra RIFF chunk. Odd sized data gets a pad byte.
type Chunk struct {
	ID   string
	Data []byte
}

// WAV describes a file to build. NewWAV fills in a valid mono 16-bit PCM
// layout; tests change fields to produce broken or unusual files.
type WAV struct {
	SampleRate    int
	Channels      int
	BitsPerSample int
	AudioFormat   int
	// FmtSize is the declared fmt chunk size. Values above 16 add zeroed
	// extension bytes.
	FmtSize int

	// Leading chunks go between "WAVE" and "fmt ", Middle chunks between
	// "fmt " and "data".
	Leading []Chunk
	Middle  []Chunk

	Samples []int16
	// Trailing bytes are appended to the payload after the samples and
	// counted in the data size.
	Trailing []byte
}

// NewWAV returns a mono 16-bit PCM description.
func NewWAV(sampleRate int, samples []int16) *WAV {
	return &WAV{
		SampleRate:    sampleRate,
		Channels:      1,
		BitsPerSample: 16,
		AudioFormat:   1,
		FmtSize:       16,
		Samples:       samples,
	}
}

// Mono16 is shorthand for NewWAV(sampleRate, samples).Bytes().
func Mono16(sampleRate int, samples []int16) []byte {
	return NewWAV(sampleRate, samples).Bytes()
}

// Bytes serializes the description with correct RIFF and data sizes.
func (w *WAV) Bytes() []byte {
	body := new(bytes.Buffer)
	body.WriteString("WAVE")

	for _, c := range w.Leading {
		writeChunk(body, c)
	}

	blockAlign := w.Channels * w.BitsPerSample / 8
	fmtData := new(bytes.Buffer)
	binary.Write(fmtData, binary.LittleEndian, uint16(w.AudioFormat))
	binary.Write(fmtData, binary.LittleEndian, uint16(w.Channels))
	binary.Write(fmtData, binary.LittleEndian, uint32(w.SampleRate))
	binary.Write(fmtData, binary.LittleEndian, uint32(w.SampleRate*blockAlign))
	binary.Write(fmtData, binary.LittleEndian, uint16(blockAlign))
	binary.Write(fmtData, binary.LittleEndian, uint16(w.BitsPerSample))
	if w.FmtSize > fmtData.Len() {
		fmtData.Write(make([]byte, w.FmtSize-fmtData.Len()))
	}
	writeChunk(body, Chunk{ID: "fmt ", Data: fmtData.Bytes()})

	for _, c := range w.Middle {
		writeChunk(body, c)
	}

	payload := make([]byte, 0, len(w.Samples)*2+len(w.Trailing))
	for _, s := range w.Samples {
		payload = binary.LittleEndian.AppendUint16(payload, uint16(s))
	}
	payload = append(payload, w.Trailing...)

	body.WriteString("data")
	binary.Write(body, binary.LittleEndian, uint32(len(payload)))
	body.Write(payload)

	out := new(bytes.Buffer)
	out.WriteString("RIFF")
	binary.Write(out, binary.LittleEndian, uint32(body.Len()))
	out.Write(body.Bytes())

	return out.Bytes()
}

func writeChunk(buf *bytes.Buffer, c Chunk) {
	buf.WriteString(c.ID)
	binary.Write(buf, binary.LittleEndian, uint32(len(c.Data)))
	buf.Write(c.Data)
	if len(c.Data)%2 == 1 {
		buf.WriteByte(0)
	}
}

// Constant returns n samples of value v.
func Constant(n int, v int16) []int16 {
	samples := make([]int16, n)
	for i := range samples {
		samples[i] = v
	}

	return samples
}

// Sine returns n samples of a sine wave at freq Hz and peak amplitude amp.
func Sine(n, sampleRate int, freq float64, amp int16) []int16 {
	samples := make([]int16, n)
	for i := range samples {
		t := float64(i) / float64(sampleRate)
		samples[i] = int16(float64(amp) * math.Sin(2*math.Pi*freq*t))
	}

	return samples
}
