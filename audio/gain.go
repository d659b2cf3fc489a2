// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"

	"github.com/ik5/audbreath/utils"
)

// ApplyGain scales each sample by the gain at the same index and returns the
// result in a new slice. Samples are normalized by 32767, multiplied, clamped
// to [-1, 1] and floored back to 16 bits.
func ApplyGain(samples []int16, gains []float64) ([]int16, error) {
	if len(samples) != len(gains) {
		return nil, fmt.Errorf("%w: %d gains for %d samples", ErrLengthMismatch, len(gains), len(samples))
	}

	out := make([]int16, len(samples))
	for i, s := range samples {
		out[i] = utils.Float64ToInt16(utils.Int16ToFloat64(s) * gains[i])
	}

	return out, nil
}
