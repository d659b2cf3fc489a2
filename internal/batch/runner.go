// SPDX-License-Identifier: EPL-2.0

package batch

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ik5/audbreath"
	"github.com/ik5/audbreath/formats/wav"
)

// Report summarizes a run.
type Report struct {
	// Written holds the output path of every processed file.
	Written []string
	// Skipped holds inputs that did not exist.
	Skipped []string
	// Failed holds inputs that could not be processed.
	Failed []string
}

// Runner processes the files of a Config one after another.
type Runner struct {
	cfg Config
	log *slog.Logger
}

// New returns a Runner. A nil logger means slog.Default().
func New(cfg Config, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}

	return &Runner{cfg: cfg, log: logger}
}

// Run processes every configured path in order. Missing files are skipped
// with a warning. Any other failure is logged and, unless FailFast is set,
// the run moves on to the next file. The returned error joins every
// failure, each prefixed with its input path.
func (r *Runner) Run() (Report, error) {
	var report Report

	if r.cfg.Suffix == "" {
		return report, ErrEmptySuffix
	}

	r.log.Info("breathing started", "files", len(r.cfg.Paths), "locator", r.cfg.Locator.String())

	var errs []error

	for _, path := range r.cfg.Paths {
		out, err := r.processFile(path)

		switch {
		case errors.Is(err, ErrFileNotFound):
			r.log.Warn("skipping missing file", "path", path)
			report.Skipped = append(report.Skipped, path)

		case err != nil:
			r.log.Error("processing failed", "path", path, "error", err)
			report.Failed = append(report.Failed, path)
			errs = append(errs, fmt.Errorf("%s: %w", path, err))

			if r.cfg.FailFast {
				r.log.Info("breathing aborted", "remaining", len(r.cfg.Paths)-len(report.Written)-len(report.Skipped)-len(report.Failed))
				return report, errors.Join(errs...)
			}

		default:
			r.log.Info("wrote", "path", out)
			report.Written = append(report.Written, out)
		}
	}

	r.log.Info("breathing complete",
		"written", len(report.Written),
		"skipped", len(report.Skipped),
		"failed", len(report.Failed))

	return report, errors.Join(errs...)
}

func (r *Runner) processFile(path string) (string, error) {
	in, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}

	out, err := audbreath.Breathe(in, wav.WithLocator(r.cfg.Locator))
	if err != nil {
		return "", err
	}

	r.log.Debug("shaped", "path", path, "bytes", len(out))

	outPath := OutputPath(path, r.cfg.Suffix)
	if err := writeFileAtomic(outPath, out, 0o644); err != nil {
		return "", fmt.Errorf("writing output: %w", err)
	}

	return outPath, nil
}

// writeFileAtomic writes data to a temporary file beside path and renames it
// into place, so path never holds a partial file.
func writeFileAtomic(path string, data []byte, perm fs.FileMode) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("%w", err)
	}

	if err = tmp.Chmod(perm); err != nil {
		return fmt.Errorf("%w", err)
	}

	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("%w", err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
