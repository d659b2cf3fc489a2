// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/riff"
)

// Locator selects how Parse finds the "fmt " and "data" chunks.
type Locator int

const (
	// ChunkWalk follows the chunk list by declared sizes, and falls back to
	// PatternSearch when the list is broken before the chunk is reached.
	ChunkWalk Locator = iota
	// PatternSearch takes the first occurrence of the chunk tag after the RIFF
	// header. It can be fooled by a tag appearing inside an earlier chunk.
	PatternSearch
)

func (l Locator) String() string {
	switch l {
	case ChunkWalk:
		return "walk"
	case PatternSearch:
		return "search"
	default:
		return fmt.Sprintf("Locator(%d)", int(l))
	}
}

// ParseLocator maps "walk" and "search" to a Locator.
func ParseLocator(s string) (Locator, error) {
	switch s {
	case "walk":
		return ChunkWalk, nil
	case "search":
		return PatternSearch, nil
	default:
		return ChunkWalk, fmt.Errorf("unknown chunk locator %q", s)
	}
}

// find returns the offset of the chunk tag id in data, or -1.
func (l Locator) find(data []byte, id [4]byte) int {
	if l == ChunkWalk {
		if at := walkChunks(data, id); at >= 0 {
			return at
		}
	}

	return searchChunk(data, id)
}

func walkChunks(data []byte, id [4]byte) int {
	if len(data) <= riffHeaderSize {
		return -1
	}

	r := bytes.NewReader(data[riffHeaderSize:])
	parser := riff.New(r)
	offset := riffHeaderSize

	for offset < len(data) {
		cid, size, err := parser.IDnSize()
		if err != nil {
			return -1
		}

		if cid == id {
			return offset
		}

		// chunks are word aligned, the pad byte is not counted in size
		skip := int64(size) + int64(size&1)
		if _, err := r.Seek(skip, io.SeekCurrent); err != nil {
			return -1
		}

		offset += chunkHeaderSize + int(skip)
	}

	return -1
}

func searchChunk(data []byte, id [4]byte) int {
	if len(data) <= riffHeaderSize {
		return -1
	}

	at := bytes.Index(data[riffHeaderSize:], id[:])
	if at < 0 {
		return -1
	}

	return riffHeaderSize + at
}
