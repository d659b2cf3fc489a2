// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	ErrNegativeLength    = errors.New("sample count must not be negative")
	ErrLengthMismatch    = errors.New("gain count must match sample count")
)
