// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotRiffWave         = errors.New("not a RIFF/WAVE file")
	ErrMissingFmtChunk     = errors.New("fmt chunk not found")
	ErrMalformedFmtChunk   = errors.New("fmt chunk too short")
	ErrUnsupportedFormat   = errors.New("only linear PCM supported")
	ErrUnsupportedChannels = errors.New("only mono supported")
	ErrUnsupportedBitDepth = errors.New("only 16-bit samples supported")
	ErrInvalidSampleRate   = errors.New("sample rate must be positive")
	ErrMissingDataChunk    = errors.New("data chunk not found")
	ErrLengthMismatch      = errors.New("sample count does not match clip")
)
