package glb

import (
	"encoding/binary"
	"fmt"

	"github.com/Alia5/glb2ts/internal/stuberr"
)

// Wire constants (little-endian throughout)
const (
	Magic            = "glTF"
	SupportedVersion = 2

	HeaderSize      = 12
	ChunkHeaderSize = 8

	// Chunk type tags as read from the wire ("JSON" and "BIN\x00" in ASCII).
	ChunkJSON uint32 = 0x4E4F534A
	ChunkBIN  uint32 = 0x004E4942

	// Offsets of the first chunk when the producer is trusted to place JSON first.
	FirstChunkOffset   = HeaderSize
	FirstPayloadOffset = HeaderSize + ChunkHeaderSize
)

// Header is the fixed 12-byte GLB file header.
type Header struct {
	Magic   [4]byte
	Version uint32
	Length  uint32
}

// ReadHeader validates and decodes the first 12 bytes of data.
// A version other than SupportedVersion is not an error here; see CheckVersion.
func ReadHeader(data []byte) (Header, error) {
	var h Header
	if len(data) < HeaderSize {
		return h, stuberr.TruncatedHeader(int64(len(data)),
			fmt.Sprintf("need %d bytes, have %d", HeaderSize, len(data)))
	}
	copy(h.Magic[:], data[0:4])
	if string(h.Magic[:]) != Magic {
		return h, stuberr.InvalidMagic(fmt.Sprintf("got %q, want %q", h.Magic[:], Magic))
	}
	h.Version = binary.LittleEndian.Uint32(data[4:8])
	h.Length = binary.LittleEndian.Uint32(data[8:12])
	return h, nil
}

// CheckVersion returns an UnsupportedVersion error when the header's version
// differs from SupportedVersion. Callers treat it as a warning.
func (h Header) CheckVersion() error {
	if h.Version == SupportedVersion {
		return nil
	}
	return stuberr.UnsupportedVersion(fmt.Sprintf("version %d, supported %d", h.Version, SupportedVersion))
}

// Bytes re-encodes the header in wire format.
func (h Header) Bytes() []byte {
	var buf [HeaderSize]byte
	copy(buf[0:4], h.Magic[:])
	binary.LittleEndian.PutUint32(buf[4:8], h.Version)
	binary.LittleEndian.PutUint32(buf[8:12], h.Length)
	return buf[:]
}

// Chunk is one length-prefixed chunk. Data aliases the container buffer.
type Chunk struct {
	Length uint32
	Type   uint32
	// Offset of the chunk descriptor (not the payload) within the container.
	Offset uint32
	Data   []byte
}

// PayloadOffset returns the offset of the first payload byte.
func (c Chunk) PayloadOffset() uint32 { return c.Offset + ChunkHeaderSize }

// TypeName returns the chunk type tag as text, e.g. "JSON" or "BIN".
func (c Chunk) TypeName() string {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], c.Type)
	n := 4
	for n > 0 && b[n-1] == 0 {
		n--
	}
	return string(b[:n])
}

// ReadChunk reads the chunk descriptor at offset and returns the payload range
// [offset+8, offset+8+L). It never reads past the end of data.
func ReadChunk(data []byte, offset int) (Chunk, error) {
	if offset < 0 || offset > len(data) || len(data)-offset < ChunkHeaderSize {
		return Chunk{}, stuberr.TruncatedChunk(int64(offset),
			fmt.Sprintf("need %d bytes for chunk header, have %d", ChunkHeaderSize, max(len(data)-offset, 0)))
	}
	length := binary.LittleEndian.Uint32(data[offset : offset+4])
	typ := binary.LittleEndian.Uint32(data[offset+4 : offset+8])
	remaining := uint64(len(data) - offset - ChunkHeaderSize)
	if uint64(length) > remaining {
		return Chunk{}, stuberr.TruncatedChunk(int64(offset),
			fmt.Sprintf("chunk declares %d payload bytes, %d remain", length, remaining))
	}
	start := offset + ChunkHeaderSize
	return Chunk{
		Length: length,
		Type:   typ,
		Offset: uint32(offset),
		Data:   data[start : start+int(length)],
	}, nil
}

// pad4 rounds n up to the next multiple of 4.
func pad4(n uint64) uint64 { return (n + 3) &^ 3 }
