// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds helpers shared by the package tests.
package audiotest

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/riff"
)

// Chunk is one RIFF sub-chunk as it appears in the file.
type Chunk struct {
	ID   string
	Data []byte
}

// RIFF is a flat view of a RIFF container.
type RIFF struct {
	Size   uint32
	Format string
	Chunks []Chunk
}

// Chunk returns the first chunk with the given id, or nil.
func (r *RIFF) Chunk(id string) *Chunk {
	for i := range r.Chunks {
		if r.Chunks[i].ID == id {
			return &r.Chunks[i]
		}
	}
	return nil
}

// Uint16 reads a little-endian field at off inside the chunk data.
func (c *Chunk) Uint16(off int) uint16 { return binary.LittleEndian.Uint16(c.Data[off:]) }

// Uint32 reads a little-endian field at off inside the chunk data.
func (c *Chunk) Uint32(off int) uint32 { return binary.LittleEndian.Uint32(c.Data[off:]) }

// ParseRIFF walks every chunk of data. Chunks are taken at their declared
// size with no pad byte, and a chunk running past the end is an error.
func ParseRIFF(data []byte) (*RIFF, error) {
	r := bytes.NewReader(data)
	p := riff.New(r)
	if err := p.ParseHeaders(); err != nil {
		return nil, fmt.Errorf("riff header: %w", err)
	}

	out := &RIFF{Size: p.Size, Format: string(p.Format[:])}
	for r.Len() > 0 {
		if r.Len() < 8 {
			return nil, fmt.Errorf("%d trailing bytes after last chunk", r.Len())
		}

		id, size, err := p.IDnSize()
		if err != nil {
			return nil, fmt.Errorf("chunk header: %w", err)
		}

		body := make([]byte, size)
		if _, err := io.ReadFull(r, body); err != nil {
			if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("chunk %q: declared %d bytes, truncated", id[:], size)
			}
			return nil, err
		}
		out.Chunks = append(out.Chunks, Chunk{ID: string(id[:]), Data: body})
	}

	return out, nil
}
