// SPDX-License-Identifier: EPL-2.0

package batch

import (
	"path/filepath"

	"github.com/ik5/audbreath/formats/wav"
)

// DefaultSuffix is inserted between an input's name and extension.
const DefaultSuffix = "_breath"

// Config lists the files to process, in order.
type Config struct {
	// Paths are read relative to the working directory.
	Paths []string
	// Suffix names outputs, see OutputPath.
	Suffix string
	// FailFast stops the run at the first file that cannot be processed.
	// Otherwise the failure is logged and the next file is processed.
	FailFast bool
	// Locator selects how chunks are found in each file.
	Locator wav.Locator
}

// DefaultConfig returns the stock noise clips under sounds/.
func DefaultConfig() Config {
	return Config{
		Paths: []string{
			"sounds/brown_noise.wav",
			"sounds/pink_noise.wav",
			"sounds/white_noise.wav",
		},
		Suffix:  DefaultSuffix,
		Locator: wav.ChunkWalk,
	}
}

// OutputPath places the result beside its input:
// sounds/brown_noise.wav becomes sounds/brown_noise_breath.wav.
func OutputPath(path, suffix string) string {
	ext := filepath.Ext(path)
	return path[:len(path)-len(ext)] + suffix + ext
}
