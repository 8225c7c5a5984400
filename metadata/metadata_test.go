package metadata_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/Alia5/glb2ts/internal/stuberr"
	"github.com/Alia5/glb2ts/metadata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeErrors(t *testing.T) {
	type testCase struct {
		name       string
		payload    []byte
		wantKind   stuberr.Kind
		wantOffset int64
	}

	cases := []testCase{
		{
			name:       "invalid utf8 continuation",
			payload:    []byte("{\"animations\":\"\xc3\x28\"}"),
			wantKind:   stuberr.KindInvalidUTF8,
			wantOffset: 15,
		},
		{
			name:       "lone high byte at start",
			payload:    []byte{0xff, '{', '}'},
			wantKind:   stuberr.KindInvalidUTF8,
			wantOffset: 0,
		},
		{
			name:       "truncated mid object",
			payload:    []byte(`{"animations":[{"na`),
			wantKind:   stuberr.KindMalformedJSON,
			wantOffset: -2,
		},
		{
			name:       "truncated after open brace",
			payload:    []byte(`{"animations":[{`),
			wantKind:   stuberr.KindMalformedJSON,
			wantOffset: -2,
		},
		{
			name:       "empty",
			payload:    []byte(""),
			wantKind:   stuberr.KindMalformedJSON,
			wantOffset: -2,
		},
		{
			name:       "only padding",
			payload:    []byte("    "),
			wantKind:   stuberr.KindMalformedJSON,
			wantOffset: -2,
		},
		{
			name:       "missing colon",
			payload:    []byte(`{"a" 1}`),
			wantKind:   stuberr.KindMalformedJSON,
			wantOffset: -2,
		},
		{
			name:       "trailing comma",
			payload:    []byte(`{"a":1,}`),
			wantKind:   stuberr.KindMalformedJSON,
			wantOffset: -2,
		},
		{
			name:       "arrays nested past the depth limit",
			payload:    []byte(strings.Repeat("[", 3_000_000) + strings.Repeat("]", 3_000_000)),
			wantKind:   stuberr.KindMalformedJSON,
			wantOffset: metadata.MaxDepth + 1,
		},
		{
			name:       "objects nested past the depth limit",
			payload:    []byte(strings.Repeat(`{"a":`, metadata.MaxDepth+1) + "1" + strings.Repeat("}", metadata.MaxDepth+1)),
			wantKind:   stuberr.KindMalformedJSON,
			wantOffset: -2,
		},
		{
			name:       "two top-level values",
			payload:    []byte(`{} {}`),
			wantKind:   stuberr.KindMalformedJSON,
			wantOffset: -2,
		},
		{
			name:       "zero padding",
			payload:    []byte("{}\x00\x00"),
			wantKind:   stuberr.KindMalformedJSON,
			wantOffset: -2,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := metadata.Decode(tc.payload)
			require.Error(t, err)
			assert.Equal(t, tc.wantKind, stuberr.KindOf(err), err.Error())

			var se *stuberr.Error
			require.ErrorAs(t, err, &se)
			if tc.wantOffset != -2 {
				assert.Equal(t, tc.wantOffset, se.Offset)
			} else {
				assert.GreaterOrEqual(t, se.Offset, int64(0))
			}
		})
	}
}

func TestDecodeDocument(t *testing.T) {
	payload := []byte(`{"asset":{"version":"2.0"},"animations":[{"name":"walk","channels":[{"sampler":0}],"samplers":[]},{"name":"run"}],"scale":1.50,"flag":true,"nothing":null}   `)

	doc, err := metadata.Decode(payload)
	require.NoError(t, err)
	assert.Equal(t, metadata.Object, doc.Kind())
	assert.Equal(t, 5, doc.Len())

	anims, err := doc.Field("animations")
	require.NoError(t, err)
	list, err := anims.AsArray("animations")
	require.NoError(t, err)
	require.Len(t, list, 2)

	name, err := list[0].Field("name")
	require.NoError(t, err)
	s, err := name.AsString("name")
	require.NoError(t, err)
	assert.Equal(t, "walk", s)

	channels, ok := list[0].Lookup("channels")
	require.True(t, ok)
	raw, err := json.Marshal(channels)
	require.NoError(t, err)
	assert.Equal(t, `[{"sampler":0}]`, string(raw))

	scale, err := doc.Field("scale")
	require.NoError(t, err)
	n, err := scale.AsNumber("scale")
	require.NoError(t, err)
	assert.Equal(t, "1.50", n.String())

	flag, _ := doc.Field("flag")
	b, err := flag.AsBool("flag")
	require.NoError(t, err)
	assert.True(t, b)

	nothing, err := doc.Field("nothing")
	require.NoError(t, err)
	assert.Equal(t, metadata.Null, nothing.Kind())
}

func TestAccessorErrors(t *testing.T) {
	doc, err := metadata.Decode([]byte(`{"animations":{"name":"x"},"n":1}`))
	require.NoError(t, err)

	_, err = doc.Field("missing")
	assert.ErrorIs(t, err, stuberr.ErrMissingField)

	anims, err := doc.Field("animations")
	require.NoError(t, err)
	_, err = anims.AsArray("animations")
	assert.ErrorIs(t, err, stuberr.ErrInvalidFieldType)
	var se *stuberr.Error
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "animations", se.Field)
	assert.Equal(t, "array", se.Expected)

	n, _ := doc.Field("n")
	_, err = n.Field("anything")
	assert.ErrorIs(t, err, stuberr.ErrInvalidFieldType)
	_, err = n.AsString("n")
	assert.ErrorIs(t, err, stuberr.ErrInvalidFieldType)
	_, err = n.AsObject("n")
	assert.ErrorIs(t, err, stuberr.ErrInvalidFieldType)
	_, err = n.AsBool("n")
	assert.ErrorIs(t, err, stuberr.ErrInvalidFieldType)
	_, ok := n.Lookup("x")
	assert.False(t, ok)
}

func TestDuplicateKeysResolveToLast(t *testing.T) {
	doc, err := metadata.Decode([]byte(`{"k":"first","k":"second"}`))
	require.NoError(t, err)
	v, err := doc.Field("k")
	require.NoError(t, err)
	s, _ := v.AsString("k")
	assert.Equal(t, "second", s)
}

func TestMarshalPreservesOrder(t *testing.T) {
	src := `{"z":1,"a":[true,false,null,"s\"q"],"m":{"y":2,"b":3}}`
	doc, err := metadata.Decode([]byte(src))
	require.NoError(t, err)
	out, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Equal(t, src, string(out))
}

func TestDecodeAcceptsMaxDepth(t *testing.T) {
	v, err := metadata.Decode([]byte(strings.Repeat("[", metadata.MaxDepth) + strings.Repeat("]", metadata.MaxDepth)))
	require.NoError(t, err)
	assert.Equal(t, metadata.Array, v.Kind())
}

func TestValueLogValue(t *testing.T) {
	doc, err := metadata.Decode([]byte(`{"channels":[{"sampler":0}],"name":"walk"}`))
	require.NoError(t, err)
	assert.Equal(t, `{"channels":[{"sampler":0}],"name":"walk"}`, doc.LogValue().String())
	assert.Equal(t, "null", metadata.NullValue().LogValue().String())
}
