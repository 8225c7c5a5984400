// Package metadata decodes the JSON chunk of a GLB container into an untyped
// document whose accessors fail loudly instead of yielding zero values.
package metadata

import (
	"bytes"
	"encoding/json"
	"log/slog"

	"github.com/Alia5/glb2ts/internal/stuberr"
)

// Kind is the JSON type of a Value.
type Kind uint8

const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return "unknown"
	}
}

// Member is one key/value pair of an object, in source order.
type Member struct {
	Key   string
	Value Value
}

// Value is a parsed JSON value. The zero Value is null.
type Value struct {
	kind Kind
	b    bool
	s    string // string contents or number literal
	arr  []Value
	obj  []Member
}

func NullValue() Value            { return Value{} }
func BoolValue(b bool) Value      { return Value{kind: Bool, b: b} }
func NumberValue(n string) Value  { return Value{kind: Number, s: n} }
func StringValue(s string) Value  { return Value{kind: String, s: s} }
func ArrayValue(v ...Value) Value { return Value{kind: Array, arr: v} }
func ObjectValue(m ...Member) Value {
	return Value{kind: Object, obj: m}
}

func (v Value) Kind() Kind { return v.kind }

// Lookup returns the member named key. Duplicate keys resolve to the last one.
func (v Value) Lookup(key string) (Value, bool) {
	if v.kind != Object {
		return Value{}, false
	}
	for i := len(v.obj) - 1; i >= 0; i-- {
		if v.obj[i].Key == key {
			return v.obj[i].Value, true
		}
	}
	return Value{}, false
}

// Field returns the member named key, failing with MissingField when it is
// absent and InvalidFieldType when v is not an object.
func (v Value) Field(key string) (Value, error) {
	if v.kind != Object {
		return Value{}, stuberr.InvalidFieldType(key, Object.String(), "parent is "+v.kind.String())
	}
	f, ok := v.Lookup(key)
	if !ok {
		return Value{}, stuberr.MissingField(key, "")
	}
	return f, nil
}

// AsArray returns the elements of v. name is used in the error.
func (v Value) AsArray(name string) ([]Value, error) {
	if v.kind != Array {
		return nil, stuberr.InvalidFieldType(name, Array.String(), "got "+v.kind.String())
	}
	return v.arr, nil
}

// AsObject returns the members of v. name is used in the error.
func (v Value) AsObject(name string) ([]Member, error) {
	if v.kind != Object {
		return nil, stuberr.InvalidFieldType(name, Object.String(), "got "+v.kind.String())
	}
	return v.obj, nil
}

// AsString returns the contents of v. name is used in the error.
func (v Value) AsString(name string) (string, error) {
	if v.kind != String {
		return "", stuberr.InvalidFieldType(name, String.String(), "got "+v.kind.String())
	}
	return v.s, nil
}

// AsNumber returns the literal text of v. name is used in the error.
func (v Value) AsNumber(name string) (json.Number, error) {
	if v.kind != Number {
		return "", stuberr.InvalidFieldType(name, Number.String(), "got "+v.kind.String())
	}
	return json.Number(v.s), nil
}

// AsBool returns the value of v. name is used in the error.
func (v Value) AsBool(name string) (bool, error) {
	if v.kind != Bool {
		return false, stuberr.InvalidFieldType(name, Bool.String(), "got "+v.kind.String())
	}
	return v.b, nil
}

// Len returns the number of elements or members, 0 for scalars.
func (v Value) Len() int {
	switch v.kind {
	case Array:
		return len(v.arr)
	case Object:
		return len(v.obj)
	}
	return 0
}

// MarshalJSON re-encodes v compactly, preserving member order.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// LogValue logs v as compact JSON.
func (v Value) LogValue() slog.Value {
	b, err := v.MarshalJSON()
	if err != nil {
		return slog.StringValue("!ERROR:" + err.Error())
	}
	return slog.StringValue(string(b))
}

func (v Value) encode(buf *bytes.Buffer) error {
	switch v.kind {
	case Null:
		buf.WriteString("null")
	case Bool:
		if v.b {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case Number:
		buf.WriteString(v.s)
	case String:
		b, err := json.Marshal(v.s)
		if err != nil {
			return err
		}
		buf.Write(b)
	case Array:
		buf.WriteByte('[')
		for i, e := range v.arr {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := e.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case Object:
		buf.WriteByte('{')
		for i, m := range v.obj {
			if i > 0 {
				buf.WriteByte(',')
			}
			k, err := json.Marshal(m.Key)
			if err != nil {
				return err
			}
			buf.Write(k)
			buf.WriteByte(':')
			if err := m.Value.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	return nil
}
