// SPDX-License-Identifier: EPL-2.0

// Package wav reads and rewrites mono 16-bit PCM RIFF/WAVE files in memory.
//
// The package does not decode the container into an abstract format and
// write a fresh one. It keeps every byte in front of the sample data as it
// was found, so chunks such as LIST or fact survive a round trip untouched,
// and only patches the two size fields that depend on the payload length.
//
// # Parsing
//
// Parse validates the file and splits it into a header and a payload:
//
//	data, _ := os.ReadFile("voice.wav")
//	clip, err := wav.Parse(data)
//	if err != nil {
//	    // errors.Is(err, wav.ErrUnsupportedChannels) etc.
//	}
//
//	samples := clip.Samples() // []int16
//
// Only linear PCM, one channel and 16 bits per sample are accepted.
//
// # Locating chunks
//
// By default the "fmt " and "data" chunks are found by walking the chunk
// list with github.com/go-audio/riff, skipping each chunk by its declared
// size. Files whose chunk list is damaged fall back to a literal search for
// the chunk tag. The search alone can be selected with
//
//	clip, err := wav.Parse(data, wav.WithLocator(wav.PatternSearch))
//
// which matches tools that scan for the tags, including their habit of
// matching a tag that happens to appear inside an earlier chunk.
//
// # Writing
//
// Encode returns a new file carrying the clip's header and the given
// samples:
//
//	out, err := clip.Encode(samples)
//
// The RIFF size at offset 4 is set to the file length minus 8 and the data
// chunk size to the payload length. The input buffer is never modified.
//
// # Errors
//
//   - ErrNotRiffWave: missing "RIFF" or "WAVE" magic
//   - ErrMissingFmtChunk, ErrMalformedFmtChunk: no usable fmt chunk
//   - ErrUnsupportedFormat: format tag other than PCM
//   - ErrUnsupportedChannels: anything but mono
//   - ErrUnsupportedBitDepth: anything but 16-bit
//   - ErrInvalidSampleRate: sample rate of zero
//   - ErrMissingDataChunk: no data chunk
//   - ErrLengthMismatch: Encode called with the wrong number of samples
package wav
