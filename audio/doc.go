// SPDX-License-Identifier: EPL-2.0

// Package audio provides the sample-level processing used to make a clip
// "breathe".
//
// # Envelope
//
// BreathEnvelope builds one gain per sample. The curve is a raised cosine
// (half a Hann window on each side): it eases in from silence, peaks at the
// middle of the clip, and eases out to silence at the end.
//
//	gains, err := audio.BreathEnvelope(len(samples), 8000)
//
// The length of the clip is not fixed. A 10 second clip and a 200 ms clip
// both get a full breath.
//
// # Applying gains
//
// ApplyGain multiplies each 16-bit sample by its gain:
//
//	shaped, err := audio.ApplyGain(samples, gains)
//
// Samples are normalized by 32767, scaled, clamped to [-1, 1] and floored
// (not rounded) back to int16.
//
// # Errors
//
//   - ErrInvalidSampleRate: sample rate of zero or less
//   - ErrNegativeLength: negative sample count
//   - ErrLengthMismatch: gains and samples differ in length
package audio
