// Package stuberr holds the single error type returned by every stage of the
// GLB to stub pipeline.
package stuberr

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a pipeline failure.
type Kind string

const (
	KindTruncatedHeader    Kind = "TruncatedHeader"
	KindInvalidMagic       Kind = "InvalidMagic"
	KindUnsupportedVersion Kind = "UnsupportedVersion"
	KindTruncatedChunk     Kind = "TruncatedChunk"
	KindJSONChunkNotFound  Kind = "JsonChunkNotFound"
	KindInvalidUTF8        Kind = "InvalidUtf8"
	KindMalformedJSON      Kind = "MalformedJson"
	KindMissingField       Kind = "MissingField"
	KindInvalidFieldType   Kind = "InvalidFieldType"
	KindDuplicateName      Kind = "DuplicateName"
	KindEmptySchema        Kind = "EmptySchema"
)

// Error is a classified pipeline failure.
type Error struct {
	Kind Kind
	// Field names the metadata field for MissingField, InvalidFieldType and DuplicateName.
	Field string
	// Expected is the wanted value kind for InvalidFieldType (e.g. "array").
	Expected string
	// Offset is a byte offset into the container or JSON payload, or -1 when not applicable.
	Offset int64
	// Detail is a human-readable explanation specific to this occurrence.
	Detail string
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Kind))
	switch {
	case e.Field != "" && e.Expected != "":
		fmt.Fprintf(&b, "(%q, expected=%s)", e.Field, e.Expected)
	case e.Field != "":
		fmt.Fprintf(&b, "(%q)", e.Field)
	}
	if e.Offset >= 0 {
		fmt.Fprintf(&b, " at offset %d", e.Offset)
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	return b.String()
}

// Is reports whether target is an *Error of the same kind. Field, offset and
// detail are ignored so the package-level sentinels can be used with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrTruncatedHeader    = &Error{Kind: KindTruncatedHeader, Offset: -1}
	ErrInvalidMagic       = &Error{Kind: KindInvalidMagic, Offset: -1}
	ErrUnsupportedVersion = &Error{Kind: KindUnsupportedVersion, Offset: -1}
	ErrTruncatedChunk     = &Error{Kind: KindTruncatedChunk, Offset: -1}
	ErrJSONChunkNotFound  = &Error{Kind: KindJSONChunkNotFound, Offset: -1}
	ErrInvalidUTF8        = &Error{Kind: KindInvalidUTF8, Offset: -1}
	ErrMalformedJSON      = &Error{Kind: KindMalformedJSON, Offset: -1}
	ErrMissingField       = &Error{Kind: KindMissingField, Offset: -1}
	ErrInvalidFieldType   = &Error{Kind: KindInvalidFieldType, Offset: -1}
	ErrDuplicateName      = &Error{Kind: KindDuplicateName, Offset: -1}
	ErrEmptySchema        = &Error{Kind: KindEmptySchema, Offset: -1}
)

func TruncatedHeader(offset int64, detail string) *Error {
	return &Error{Kind: KindTruncatedHeader, Offset: offset, Detail: detail}
}
func InvalidMagic(detail string) *Error {
	return &Error{Kind: KindInvalidMagic, Offset: 0, Detail: detail}
}
func UnsupportedVersion(detail string) *Error {
	return &Error{Kind: KindUnsupportedVersion, Offset: 4, Detail: detail}
}
func TruncatedChunk(offset int64, detail string) *Error {
	return &Error{Kind: KindTruncatedChunk, Offset: offset, Detail: detail}
}
func JSONChunkNotFound(detail string) *Error {
	return &Error{Kind: KindJSONChunkNotFound, Offset: -1, Detail: detail}
}
func InvalidUTF8(offset int64) *Error {
	return &Error{Kind: KindInvalidUTF8, Offset: offset, Detail: "malformed UTF-8 sequence"}
}
func MalformedJSON(offset int64, detail string) *Error {
	return &Error{Kind: KindMalformedJSON, Offset: offset, Detail: detail}
}
func MissingField(field, detail string) *Error {
	return &Error{Kind: KindMissingField, Field: field, Offset: -1, Detail: detail}
}
func InvalidFieldType(field, expected, detail string) *Error {
	return &Error{Kind: KindInvalidFieldType, Field: field, Expected: expected, Offset: -1, Detail: detail}
}
func DuplicateName(name, detail string) *Error {
	return &Error{Kind: KindDuplicateName, Field: name, Offset: -1, Detail: detail}
}
func EmptySchema(detail string) *Error {
	return &Error{Kind: KindEmptySchema, Offset: -1, Detail: detail}
}

// KindOf extracts the Kind of err, or "" when err is not a pipeline error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
