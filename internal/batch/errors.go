// SPDX-License-Identifier: EPL-2.0

package batch

import "errors"

var (
	// ErrFileNotFound marks an input that does not exist. It is logged and
	// skipped, never returned from Run.
	ErrFileNotFound = errors.New("input file not found")
	// ErrEmptySuffix would make every output overwrite its input.
	ErrEmptySuffix = errors.New("output suffix must not be empty")
)
