package scanner

import (
	"testing"

	"github.com/Alia5/glb2ts/internal/stuberr"
	"github.com/Alia5/glb2ts/metadata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, s string) metadata.Value {
	t.Helper()
	v, err := metadata.Decode([]byte(s))
	require.NoError(t, err)
	return v
}

func TestScanAnimations(t *testing.T) {
	doc := decode(t, `{"animations":[{"name":"walk","channels":[1],"samplers":[2]},{"name":"run"},{"name":"idle"}]}`)

	anims, err := ScanAnimations(doc)
	require.NoError(t, err)
	assert.Equal(t, []string{"walk", "run", "idle"}, AnimationNames(anims))
	assert.Equal(t, 2, anims[2].Index)
	assert.Equal(t, metadata.Array, anims[0].Channels.Kind())
	assert.Equal(t, 1, anims[0].Samplers.Len())
	assert.Equal(t, metadata.Null, anims[1].Channels.Kind())
}

func TestScanAnimationsEmpty(t *testing.T) {
	anims, err := ScanAnimations(decode(t, `{"animations":[]}`))
	require.NoError(t, err)
	assert.Empty(t, anims)
}

func TestScanAnimationsErrors(t *testing.T) {
	type testCase struct {
		name      string
		doc       string
		wantErr   error
		wantField string
	}

	cases := []testCase{
		{name: "no animations", doc: `{"asset":{"version":"2.0"}}`, wantErr: stuberr.ErrMissingField, wantField: "animations"},
		{name: "animations is object", doc: `{"animations":{"name":"walk"}}`, wantErr: stuberr.ErrInvalidFieldType, wantField: "animations"},
		{name: "animations is null", doc: `{"animations":null}`, wantErr: stuberr.ErrInvalidFieldType, wantField: "animations"},
		{name: "document is array", doc: `[{"name":"walk"}]`, wantErr: stuberr.ErrInvalidFieldType, wantField: "animations"},
		{name: "entry without name", doc: `{"animations":[{"name":"walk"},{"channels":[]}]}`, wantErr: stuberr.ErrMissingField, wantField: "name"},
		{name: "numeric name", doc: `{"animations":[{"name":7}]}`, wantErr: stuberr.ErrMissingField, wantField: "name"},
		{name: "entry is string", doc: `{"animations":["walk"]}`, wantErr: stuberr.ErrInvalidFieldType, wantField: "animations[0]"},
		{name: "duplicate name", doc: `{"animations":[{"name":"walk"},{"name":"run"},{"name":"walk"}]}`, wantErr: stuberr.ErrDuplicateName, wantField: "walk"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ScanAnimations(decode(t, tc.doc))
			require.ErrorIs(t, err, tc.wantErr)
			var se *stuberr.Error
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tc.wantField, se.Field)
		})
	}
}
