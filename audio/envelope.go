// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"
)

// BreathEnvelope returns n per-sample gains shaped as a breath: a raised
// cosine rising from 0 to 1 over the first half of the clip and falling back
// to 0 over the second half.
//
// For sample i at t = i/sampleRate and half = n/sampleRate/2:
//
//	t <  half: gain = 0.5 - 0.5*cos(pi * t/half)
//	t >= half: gain = 0.5 + 0.5*cos(pi * (t-half)/half)
//
// The sample sitting exactly on the midpoint belongs to the falling half.
// Both halves reach 1 there, so the curve and its slope are continuous.
func BreathEnvelope(n, sampleRate int) ([]float64, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}

	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeLength, n)
	}

	gains := make([]float64, n)
	if n == 0 {
		return gains, nil
	}

	rate := float64(sampleRate)
	duration := float64(n) / rate
	half := duration / 2

	for i := range gains {
		t := float64(i) / rate

		var g float64
		if t < half {
			g = 0.5 - 0.5*math.Cos(math.Pi*(t/half))
		} else {
			g = 0.5 + 0.5*math.Cos(math.Pi*((t-half)/half))
		}

		gains[i] = min(max(g, 0), 1)
	}

	return gains, nil
}
