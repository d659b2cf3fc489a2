// SPDX-License-Identifier: EPL-2.0

// Command breathwav applies the breath envelope to mono 16-bit WAV files.
//
//	breathwav [-suffix _breath] [-fail-fast] [-locate walk|search] [-v] [file.wav ...]
//
// Without file arguments it processes sounds/brown_noise.wav,
// sounds/pink_noise.wav and sounds/white_noise.wav.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ik5/audbreath/formats/wav"
	"github.com/ik5/audbreath/internal/batch"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "breathwav:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	cfg := batch.DefaultConfig()

	flagSet := flag.NewFlagSet("breathwav", flag.ContinueOnError)
	flagSet.SetOutput(stdout)

	flagSet.StringVar(&cfg.Suffix, "suffix", cfg.Suffix, "text inserted before the extension of each output file")
	flagSet.BoolVar(&cfg.FailFast, "fail-fast", false, "stop at the first file that cannot be processed")
	locate := flagSet.String("locate", cfg.Locator.String(), "chunk lookup: walk (chunk list) or search (tag scan)")
	verbose := flagSet.Bool("v", false, "debug logging")

	if err := flagSet.Parse(args); err != nil {
		return err
	}

	locator, err := wav.ParseLocator(*locate)
	if err != nil {
		return err
	}
	cfg.Locator = locator

	if flagSet.NArg() > 0 {
		cfg.Paths = flagSet.Args()
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(stdout, &slog.HandlerOptions{Level: level}))

	_, err = batch.New(cfg, logger).Run()

	return err
}
