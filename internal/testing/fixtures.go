package testing

import (
	"encoding/binary"
	"encoding/json"

	"github.com/Alia5/glb2ts/glb"
)

// Chunk is a raw chunk to lay out in a fixture container.
type Chunk struct {
	Type uint32
	Data []byte
	// Length overrides the declared length when non-zero.
	Length uint32
}

func JSONChunk(s string) Chunk { return Chunk{Type: glb.ChunkJSON, Data: []byte(s)} }
func BINChunk(b []byte) Chunk  { return Chunk{Type: glb.ChunkBIN, Data: b} }

// BuildGLB lays out a container with the given version and chunks. JSON
// payloads are padded with spaces, all others with zeros, to 4-byte alignment.
func BuildGLB(version uint32, chunks ...Chunk) []byte {
	body := make([]byte, 0, 64)
	for _, c := range chunks {
		length := c.Length
		if length == 0 {
			length = uint32(len(c.Data))
		}
		var hdr [glb.ChunkHeaderSize]byte
		binary.LittleEndian.PutUint32(hdr[0:4], length)
		binary.LittleEndian.PutUint32(hdr[4:8], c.Type)
		body = append(body, hdr[:]...)
		body = append(body, c.Data...)
		pad := byte(0)
		if c.Type == glb.ChunkJSON {
			pad = ' '
		}
		for len(body)%4 != 0 {
			body = append(body, pad)
		}
	}
	h := glb.Header{Version: version, Length: uint32(glb.HeaderSize + len(body))}
	copy(h.Magic[:], glb.Magic)
	return append(h.Bytes(), body...)
}

// AnimationsJSON returns a minimal glTF JSON document with one animation per name.
func AnimationsJSON(names ...string) string {
	type anim struct {
		Name     string `json:"name"`
		Channels []any  `json:"channels"`
		Samplers []any  `json:"samplers"`
	}
	doc := struct {
		Asset      map[string]string `json:"asset"`
		Animations []anim            `json:"animations"`
	}{
		Asset:      map[string]string{"version": "2.0"},
		Animations: []anim{},
	}
	for _, n := range names {
		doc.Animations = append(doc.Animations, anim{Name: n, Channels: []any{}, Samplers: []any{}})
	}
	b, err := json.Marshal(doc)
	if err != nil {
		panic(err)
	}
	return string(b)
}

// AnimatedGLB is BuildGLB with a single JSON chunk listing the given animations.
func AnimatedGLB(version uint32, names ...string) []byte {
	return BuildGLB(version, JSONChunk(AnimationsJSON(names...)))
}
