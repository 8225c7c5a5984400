package metadata

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/Alia5/glb2ts/internal/stuberr"
)

// MaxDepth is the deepest array/object nesting Decode accepts, matching the
// limit encoding/json applies in Unmarshal.
const MaxDepth = 10000

// Decode validates payload as UTF-8 and parses it as a single JSON value.
// Trailing whitespace, including the GLB space padding, is accepted.
func Decode(payload []byte) (Value, error) {
	if off := invalidUTF8Offset(payload); off >= 0 {
		return Value{}, stuberr.InvalidUTF8(int64(off))
	}

	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Value{}, stuberr.MalformedJSON(dec.InputOffset(), "empty document")
		}
		return Value{}, malformed(dec, err)
	}
	v, err := parseValue(dec, tok, 0)
	if err != nil {
		return Value{}, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return Value{}, malformed(dec, err)
		}
		return Value{}, stuberr.MalformedJSON(dec.InputOffset(), "unexpected data after top-level value")
	}
	return v, nil
}

// parseValue converts tok into a Value. depth counts the arrays and objects
// enclosing tok.
func parseValue(dec *json.Decoder, tok json.Token, depth int) (Value, error) {
	switch t := tok.(type) {
	case nil:
		return NullValue(), nil
	case bool:
		return BoolValue(t), nil
	case json.Number:
		return NumberValue(t.String()), nil
	case string:
		return StringValue(t), nil
	case json.Delim:
		if (t == '[' || t == '{') && depth >= MaxDepth {
			return Value{}, stuberr.MalformedJSON(dec.InputOffset(), "exceeded max nesting depth")
		}
		switch t {
		case '[':
			return parseArray(dec, depth+1)
		case '{':
			return parseObject(dec, depth+1)
		}
		return Value{}, stuberr.MalformedJSON(dec.InputOffset(), fmt.Sprintf("unexpected delimiter %q", rune(t)))
	}
	return Value{}, stuberr.MalformedJSON(dec.InputOffset(), fmt.Sprintf("unexpected token %T", tok))
}

func parseArray(dec *json.Decoder, depth int) (Value, error) {
	elems := []Value{}
	for {
		tok, err := next(dec)
		if err != nil {
			return Value{}, err
		}
		if d, ok := tok.(json.Delim); ok && d == ']' {
			return ArrayValue(elems...), nil
		}
		e, err := parseValue(dec, tok, depth)
		if err != nil {
			return Value{}, err
		}
		elems = append(elems, e)
	}
}

func parseObject(dec *json.Decoder, depth int) (Value, error) {
	members := []Member{}
	for {
		tok, err := next(dec)
		if err != nil {
			return Value{}, err
		}
		if d, ok := tok.(json.Delim); ok && d == '}' {
			return ObjectValue(members...), nil
		}
		key, ok := tok.(string)
		if !ok {
			return Value{}, stuberr.MalformedJSON(dec.InputOffset(), "object key is not a string")
		}
		tok, err = next(dec)
		if err != nil {
			return Value{}, err
		}
		val, err := parseValue(dec, tok, depth)
		if err != nil {
			return Value{}, err
		}
		members = append(members, Member{Key: key, Value: val})
	}
}

// next reads a token inside a composite value, where EOF is always an error.
func next(dec *json.Decoder) (json.Token, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, malformed(dec, err)
	}
	return tok, nil
}

func malformed(dec *json.Decoder, err error) error {
	var se *json.SyntaxError
	if errors.As(err, &se) {
		return stuberr.MalformedJSON(se.Offset, se.Error())
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return stuberr.MalformedJSON(dec.InputOffset(), "unexpected end of JSON input")
	}
	return stuberr.MalformedJSON(dec.InputOffset(), err.Error())
}

// invalidUTF8Offset returns the offset of the first malformed sequence, or -1.
func invalidUTF8Offset(p []byte) int {
	if utf8.Valid(p) {
		return -1
	}
	for i := 0; i < len(p); {
		r, size := utf8.DecodeRune(p[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}
