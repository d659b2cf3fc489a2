// SPDX-License-Identifier: EPL-2.0

// Package audbreath makes short mono WAV clips "breathe": the volume rises
// smoothly from silence to full level over the first half of the clip and
// falls back to silence over the second half.
//
// # Quick Start
//
// The simplest way to process a file is Breathe:
//
//	in, _ := os.ReadFile("sounds/brown_noise.wav")
//	out, err := audbreath.Breathe(in)
//	if err != nil {
//	    // not a mono 16-bit PCM WAV file
//	}
//	os.WriteFile("sounds/brown_noise_breath.wav", out, 0o644)
//
// # Building Blocks
//
// For more control, use the subpackages directly:
//
//	clip, _ := wav.Parse(in)
//	gains, _ := audio.BreathEnvelope(clip.SampleCount(), clip.SampleRate)
//	shaped, _ := audio.ApplyGain(clip.Samples(), gains)
//	out, _ := clip.Encode(shaped)
//
// formats/wav owns the container, audio owns the envelope and the gain
// math.
//
// # Supported Input
//
// RIFF/WAVE, linear PCM, one channel, 16 bits per sample, any sample rate.
// Every chunk in front of the samples is copied to the output unchanged;
// only the RIFF and data size fields are rewritten.
//
// # Command Line
//
// cmd/breathwav processes a list of files and writes each result next to
// its source as <name>_breath<ext>. cmd/gen-noise writes noise clips to try
// it on.
package audbreath
