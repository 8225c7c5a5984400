package common

import (
	"bytes"
	"encoding/json"
	"strings"
	"unicode"
)

// reservedWords are ECMAScript/TypeScript reserved and contextual keywords.
// They are legal property names, but are quoted anyway to keep generated
// declarations unambiguous for every downstream tool.
var reservedWords = map[string]struct{}{
	"await": {}, "break": {}, "case": {}, "catch": {}, "class": {}, "const": {},
	"continue": {}, "debugger": {}, "default": {}, "delete": {}, "do": {}, "else": {},
	"enum": {}, "export": {}, "extends": {}, "false": {}, "finally": {}, "for": {},
	"function": {}, "if": {}, "implements": {}, "import": {}, "in": {}, "instanceof": {},
	"interface": {}, "let": {}, "new": {}, "null": {}, "package": {}, "private": {},
	"protected": {}, "public": {}, "return": {}, "static": {}, "super": {}, "switch": {},
	"this": {}, "throw": {}, "true": {}, "try": {}, "typeof": {}, "var": {}, "void": {},
	"while": {}, "with": {}, "yield": {}, "undefined": {}, "__proto__": {},
}

// IsReserved reports whether name is a reserved word.
func IsReserved(name string) bool {
	_, ok := reservedWords[name]
	return ok
}

// IsIdentifier reports whether name is a syntactically valid ECMAScript
// identifier (without escapes).
func IsIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if i == 0 {
			if !isIDStart(r) {
				return false
			}
			continue
		}
		if !isIDPart(r) {
			return false
		}
	}
	return true
}

func isIDStart(r rune) bool {
	return r == '$' || r == '_' || unicode.IsLetter(r) || unicode.Is(unicode.Nl, r)
}

func isIDPart(r rune) bool {
	if isIDStart(r) || r == '\u200c' || r == '\u200d' {
		return true
	}
	return unicode.In(r, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc)
}

// IsSafeIdentifier reports whether name can be emitted bare as a member name.
func IsSafeIdentifier(name string) bool {
	return IsIdentifier(name) && !IsReserved(name)
}

// QuoteString returns s as a double-quoted JavaScript string literal.
func QuoteString(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Encoding a string cannot fail.
	_ = enc.Encode(s)
	return strings.TrimSuffix(buf.String(), "\n")
}

// PropertyKey returns name as an object/type member key: bare when it is a
// safe identifier, quoted otherwise.
func PropertyKey(name string) string {
	if IsSafeIdentifier(name) {
		return name
	}
	return QuoteString(name)
}

// CommentSafe strips characters that would terminate or break a single-line
// comment.
func CommentSafe(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\r', '\u2028', '\u2029':
			return ' '
		}
		return r
	}, s)
}
