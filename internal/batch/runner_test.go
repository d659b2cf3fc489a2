// SPDX-License-Identifier: EPL-2.0

package batch

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/audbreath/formats/wav"
	"github.com/ik5/audbreath/internal/audiotest"
)

func newTestLogger() (*slog.Logger, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

func writeClip(t *testing.T, dir, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	return path
}

func TestRun_ProcessesAndSkipsMissing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	first := writeClip(t, dir, "a.wav", audiotest.Mono16(8000, audiotest.Constant(8000, 32767)))
	missing := filepath.Join(dir, "missing.wav")
	last := writeClip(t, dir, "c.wav", audiotest.Mono16(16000, audiotest.Sine(1600, 16000, 440, 9000)))

	logger, logs := newTestLogger()
	cfg := Config{Paths: []string{first, missing, last}, Suffix: DefaultSuffix}

	report, err := New(cfg, logger).Run()
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "a_breath.wav"),
		filepath.Join(dir, "c_breath.wav"),
	}, report.Written)
	assert.Equal(t, []string{missing}, report.Skipped)
	assert.Empty(t, report.Failed)

	for _, out := range report.Written {
		data, err := os.ReadFile(out)
		require.NoError(t, err)

		clip, err := wav.Parse(data)
		require.NoError(t, err)

		samples := clip.Samples()
		assert.Equal(t, int16(0), samples[0], "first sample of %s", out)
	}

	text := logs.String()
	assert.Contains(t, text, "breathing started")
	assert.Contains(t, text, "skipping missing file")
	assert.Contains(t, text, missing)
	assert.Contains(t, text, "a_breath.wav")
	assert.Contains(t, text, "breathing complete")
	assert.Less(t, strings.Index(text, "a_breath.wav"), strings.Index(text, "c_breath.wav"))
}

func TestRun_ContinuesPastBadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	stereo := audiotest.NewWAV(8000, []int16{1, 2, 3, 4})
	stereo.Channels = 2

	bad := writeClip(t, dir, "stereo.wav", stereo.Bytes())
	good := writeClip(t, dir, "mono.wav", audiotest.Mono16(8000, audiotest.Constant(100, 1000)))

	logger, logs := newTestLogger()
	report, err := New(Config{Paths: []string{bad, good}, Suffix: "_breath"}, logger).Run()

	require.Error(t, err)
	assert.ErrorIs(t, err, wav.ErrUnsupportedChannels)
	assert.Contains(t, err.Error(), bad)

	assert.Equal(t, []string{bad}, report.Failed)
	assert.Equal(t, []string{filepath.Join(dir, "mono_breath.wav")}, report.Written)
	assert.Contains(t, logs.String(), "processing failed")

	_, statErr := os.Stat(filepath.Join(dir, "stereo_breath.wav"))
	assert.True(t, errors.Is(statErr, os.ErrNotExist), "no output for a rejected file")
}

func TestRun_FailFast(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	bad := writeClip(t, dir, "bad.wav", []byte("definitely not a wav file"))
	good := writeClip(t, dir, "good.wav", audiotest.Mono16(8000, audiotest.Constant(100, 1000)))

	logger, logs := newTestLogger()
	report, err := New(Config{Paths: []string{bad, good}, Suffix: "_breath", FailFast: true}, logger).Run()

	assert.ErrorIs(t, err, wav.ErrNotRiffWave)
	assert.Empty(t, report.Written)
	assert.NotContains(t, logs.String(), "breathing complete")
	assert.Contains(t, logs.String(), "breathing aborted")

	_, statErr := os.Stat(filepath.Join(dir, "good_breath.wav"))
	assert.True(t, errors.Is(statErr, os.ErrNotExist))
}

func TestRun_OverwritesExistingOutput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := writeClip(t, dir, "clip.wav", audiotest.Mono16(8000, audiotest.Constant(80, 20000)))
	stale := writeClip(t, dir, "clip_breath.wav", []byte("stale"))

	logger, _ := newTestLogger()
	_, err := New(Config{Paths: []string{in}, Suffix: "_breath"}, logger).Run()
	require.NoError(t, err)

	data, err := os.ReadFile(stale)
	require.NoError(t, err)

	_, err = wav.Parse(data)
	assert.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "temporary files left behind")
}

func TestRun_PatternSearchLocator(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := writeClip(t, dir, "clip.wav", audiotest.Mono16(8000, audiotest.Constant(80, 20000)))

	logger, logs := newTestLogger()
	report, err := New(Config{Paths: []string{in}, Suffix: "_b", Locator: wav.PatternSearch}, logger).Run()
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(dir, "clip_b.wav")}, report.Written)
	assert.Contains(t, logs.String(), "locator=search")
}

func TestRun_EmptySuffix(t *testing.T) {
	t.Parallel()

	_, err := New(Config{Paths: []string{"x.wav"}}, nil).Run()
	assert.ErrorIs(t, err, ErrEmptySuffix)
}

func TestRun_EmptyList(t *testing.T) {
	t.Parallel()

	logger, logs := newTestLogger()
	report, err := New(Config{Suffix: "_breath"}, logger).Run()

	require.NoError(t, err)
	assert.Empty(t, report.Written)
	assert.Contains(t, logs.String(), "files=0")
}

func TestRun_UnwritableOutput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := writeClip(t, dir, "clip.wav", audiotest.Mono16(8000, audiotest.Constant(80, 20000)))

	// a directory where the output file should go
	require.NoError(t, os.Mkdir(filepath.Join(dir, "clip_breath.wav"), 0o755))

	logger, _ := newTestLogger()
	report, err := New(Config{Paths: []string{in}, Suffix: "_breath"}, logger).Run()

	assert.Error(t, err)
	assert.Equal(t, []string{in}, report.Failed)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "temporary files left behind")
}

// TestRun_DefaultConfig runs the stock relative paths from a scratch
// working directory where only one of them exists.
func TestRun_DefaultConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sounds"), 0o755))
	writeClip(t, dir, "sounds/pink_noise.wav", audiotest.Mono16(8000, audiotest.Sine(8000, 8000, 100, 3000)))

	t.Chdir(dir)

	logger, _ := newTestLogger()
	report, err := New(DefaultConfig(), logger).Run()
	require.NoError(t, err)

	assert.Equal(t, []string{"sounds/pink_noise_breath.wav"}, report.Written)
	assert.Equal(t, []string{"sounds/brown_noise.wav", "sounds/white_noise.wav"}, report.Skipped)
}
