package glb

import (
	"fmt"

	"github.com/Alia5/glb2ts/internal/stuberr"
)

// Options controls how the JSON chunk is located.
type Options struct {
	// TrustedProducer reads the JSON chunk at the fixed offset 12 instead of
	// walking the chunk list. Only valid for producers that always emit JSON first.
	TrustedProducer bool
}

// Container is a decoded GLB file, reduced to what code generation needs.
type Container struct {
	Header Header
	// JSON is the first JSON chunk. JSON.Data still carries the 0x20 padding.
	JSON Chunk
	// Skipped lists chunks walked over before the JSON chunk was found.
	Skipped []Chunk
	// Warnings holds non-fatal findings, currently only UnsupportedVersion.
	Warnings []error
}

// Decode validates the header and locates the JSON chunk.
func Decode(data []byte, opts Options) (*Container, error) {
	h, err := ReadHeader(data)
	if err != nil {
		return nil, err
	}
	c := &Container{Header: h}
	if err := h.CheckVersion(); err != nil {
		c.Warnings = append(c.Warnings, err)
	}

	bound, err := walkBound(h, len(data))
	if err != nil {
		return nil, err
	}

	if opts.TrustedProducer {
		c.JSON, err = FixedJSONChunk(data[:bound])
	} else {
		c.JSON, c.Skipped, err = FindJSONChunk(data[:bound])
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// walkBound picks the end of the chunk area. The declared total length is a
// sanity bound: it may not exceed the buffer, and it only narrows the walk when
// it is at least a full header.
func walkBound(h Header, available int) (int, error) {
	if uint64(h.Length) > uint64(available) {
		return 0, stuberr.TruncatedHeader(8,
			fmt.Sprintf("header declares %d bytes, %d available", h.Length, available))
	}
	if h.Length >= HeaderSize {
		return int(h.Length), nil
	}
	return available, nil
}

// FindJSONChunk walks chunks from offset 12 and returns the first JSON chunk
// together with any chunks that preceded it.
func FindJSONChunk(data []byte) (Chunk, []Chunk, error) {
	var skipped []Chunk
	offset := uint64(FirstChunkOffset)
	for offset < uint64(len(data)) {
		c, err := ReadChunk(data, int(offset))
		if err != nil {
			return Chunk{}, skipped, err
		}
		if c.Type == ChunkJSON {
			return c, skipped, nil
		}
		skipped = append(skipped, c)
		offset += ChunkHeaderSize + pad4(uint64(c.Length))
	}
	return Chunk{}, skipped, stuberr.JSONChunkNotFound(
		fmt.Sprintf("walked %d chunk(s) to offset %d", len(skipped), len(data)))
}

// FixedJSONChunk reads the chunk at offset 12 and requires it to be JSON.
func FixedJSONChunk(data []byte) (Chunk, error) {
	c, err := ReadChunk(data, FirstChunkOffset)
	if err != nil {
		return Chunk{}, err
	}
	if c.Type != ChunkJSON {
		return Chunk{}, stuberr.JSONChunkNotFound(
			fmt.Sprintf("first chunk has type %q (0x%08x)", c.TypeName(), c.Type))
	}
	return c, nil
}
