package stuberr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorString(t *testing.T) {
	type testCase struct {
		name string
		err  *Error
		want string
	}

	cases := []testCase{
		{name: "offset and detail", err: TruncatedHeader(0, "need 12 bytes, have 5"), want: "TruncatedHeader at offset 0: need 12 bytes, have 5"},
		{name: "version", err: UnsupportedVersion("version 3"), want: "UnsupportedVersion at offset 4: version 3"},
		{name: "no offset", err: JSONChunkNotFound("no chunk of type JSON"), want: "JsonChunkNotFound: no chunk of type JSON"},
		{name: "field", err: MissingField("animations", ""), want: `MissingField("animations")`},
		{name: "field and expected", err: InvalidFieldType("animations", "array", "got object"), want: `InvalidFieldType("animations", expected=array): got object`},
		{name: "utf8", err: InvalidUTF8(15), want: "InvalidUtf8 at offset 15: malformed UTF-8 sequence"},
		{name: "duplicate", err: DuplicateName("walk", "animations[0] and animations[2]"), want: `DuplicateName("walk"): animations[0] and animations[2]`},
		{name: "sentinel", err: ErrEmptySchema, want: "EmptySchema"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.err.Error())
		})
	}
}

func TestErrorIsMatchesKind(t *testing.T) {
	err := fmt.Errorf("hero.glb: %w", MalformedJSON(42, "unexpected EOF"))

	assert.ErrorIs(t, err, ErrMalformedJSON)
	assert.NotErrorIs(t, err, ErrMissingField)
	assert.NotErrorIs(t, err, errors.New("MalformedJson"))
	assert.Equal(t, KindMalformedJSON, KindOf(err))
	assert.Equal(t, Kind(""), KindOf(errors.New("plain")))
	assert.Equal(t, Kind(""), KindOf(nil))

	var e *Error
	if assert.ErrorAs(t, err, &e) {
		assert.Equal(t, int64(42), e.Offset)
	}
}

func TestJoinedErrorsKeepKinds(t *testing.T) {
	err := errors.Join(UnsupportedVersion("version 3"), EmptySchema("no animations"))
	assert.ErrorIs(t, err, ErrUnsupportedVersion)
	assert.ErrorIs(t, err, ErrEmptySchema)
}
