// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// pcm16Scale maps full scale to ±32767 in both directions.
const pcm16Scale = 32767.0

// Int16ToFloat64 normalizes a 16-bit sample. -32768 maps slightly below -1.
func Int16ToFloat64(s int16) float64 {
	return float64(s) / pcm16Scale
}

// Float64ToInt16 clamps x to [-1, 1] and quantizes it by flooring, not
// rounding, so 0.99999 becomes 32766.
func Float64ToInt16(x float64) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int16(math.Floor(x * pcm16Scale))
}
