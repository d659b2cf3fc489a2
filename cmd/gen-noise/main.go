// SPDX-License-Identifier: EPL-2.0

// Command gen-noise writes mono 16-bit PCM noise clips for breathwav to
// work on.
//
//	gen-noise -kind brown -output sounds/brown_noise.wav -length 10
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/audbreath/utils"
)

func main() {
	err := run(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	flagSet := flag.NewFlagSet("gen-noise", flag.ContinueOnError)

	output := flagSet.String("output", "noise.wav", "filename to write to")
	kind := flagSet.String("kind", "white", "white, pink, brown or constant")
	rate := flagSet.Int("rate", 8000, "sample rate in hertz")
	length := flagSet.Float64("length", 10, "length in seconds of output file")
	amplitude := flagSet.Float64("amplitude", 0.5, "peak level, 0 to 1 of full scale")
	seed := flagSet.Uint64("seed", 1, "random seed")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	if *rate <= 0 || *length < 0 {
		return fmt.Errorf("invalid rate %d or length %f", *rate, *length)
	}

	gen, err := newGenerator(*kind, *seed)
	if err != nil {
		return err
	}

	numSamples := int(float64(*rate) * *length)
	log.Printf("generating %d samples of %s noise at %d hz", numSamples, *kind, *rate)

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: *rate},
		SourceBitDepth: 16,
		Data:           make([]int, numSamples),
	}

	for i := range buf.Data {
		buf.Data[i] = int(utils.Float64ToInt16(gen() * *amplitude))
	}

	file, err := os.Create(*output)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", *output, err)
	}
	defer file.Close()

	enc := wav.NewEncoder(file, *rate, 16, 1, 1)

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("error writing %s: %w", *output, err)
	}

	return enc.Close()
}

// newGenerator returns a source of values in [-1, 1].
func newGenerator(kind string, seed uint64) (func() float64, error) {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	white := func() float64 { return rng.Float64()*2 - 1 }

	switch kind {
	case "white":
		return white, nil

	case "pink":
		// Paul Kellet's economy filter, about 3 dB per octave
		var b0, b1, b2 float64
		return func() float64 {
			w := white()
			b0 = 0.99765*b0 + w*0.0990460
			b1 = 0.96300*b1 + w*0.2965164
			b2 = 0.57000*b2 + w*1.0526913
			return clamp((b0 + b1 + b2 + w*0.1848) / 3.5)
		}, nil

	case "brown":
		// leaky integrator keeps the random walk from drifting off
		var last float64
		return func() float64 {
			last = clamp((last + 0.02*white()) / 1.02)
			return clamp(last * 3.5)
		}, nil

	case "constant":
		return func() float64 { return 1 }, nil

	default:
		return nil, fmt.Errorf("unknown noise kind %q", kind)
	}
}

func clamp(x float64) float64 {
	return min(max(x, -1), 1)
}
