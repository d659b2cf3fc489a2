// SPDX-License-Identifier: EPL-2.0

package audbreath

import (
	"fmt"

	"github.com/ik5/audbreath/audio"
	"github.com/ik5/audbreath/formats/wav"
)

// Breathe is a high-level convenience function that applies the breath
// envelope to a complete mono 16-bit PCM WAV file held in memory and returns
// the new file.
//
// The pipeline is:
//  1. Parse the container into header and samples
//  2. Build one envelope gain per sample at the file's sample rate
//  3. Scale every sample by its gain
//  4. Re-encode behind the original header with corrected size fields
//
// data is not modified. The returned file has the same length as data
// unless the input declared a data chunk larger than the file.
//
// Example:
//
//	in, _ := os.ReadFile("brown_noise.wav")
//	out, err := audbreath.Breathe(in)
//	if err != nil {
//	    // errors.Is(err, wav.ErrUnsupportedChannels) etc.
//	}
//	os.WriteFile("brown_noise_breath.wav", out, 0o644)
func Breathe(data []byte, opts ...wav.ParseOption) ([]byte, error) {
	clip, err := wav.Parse(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("parsing wav: %w", err)
	}

	gains, err := audio.BreathEnvelope(clip.SampleCount(), clip.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("building envelope: %w", err)
	}

	shaped, err := audio.ApplyGain(clip.Samples(), gains)
	if err != nil {
		return nil, fmt.Errorf("applying envelope: %w", err)
	}

	out, err := clip.Encode(shaped)
	if err != nil {
		return nil, fmt.Errorf("encoding wav: %w", err)
	}

	return out, nil
}
