// Package jsontext is a deliberately narrow JSON string codec.
//
// It is not a JSON parser. ExtractText scans for the first literal "text" key
// and reads the string after it; Escape and Unescape handle only the five
// sequences \n, \r, \t, \" and \\.
package jsontext

import (
	"errors"
	"strings"
)

// ErrMalformedInput is returned when the text field is present but its value
// cannot be read: no colon follows the key, or the string never closes.
var ErrMalformedInput = errors.New("malformed json input")

const textKey = `"text"`

var (
	escaper = []struct{ from, to string }{
		{`\`, `\\`},
		{`"`, `\"`},
		{"\n", `\n`},
		{"\r", `\r`},
		{"\t", `\t`},
	}
	unescaper = []struct{ from, to string }{
		{`\n`, "\n"},
		{`\r`, "\r"},
		{`\t`, "\t"},
		{`\"`, `"`},
		{`\\`, `\`},
	}
)

// Escape prepares s for embedding inside a JSON string literal.
// Backslashes are escaped first so later replacements are not doubled.
func Escape(s string) string {
	for _, r := range escaper {
		s = strings.ReplaceAll(s, r.from, r.to)
	}
	return s
}

// Unescape reverses Escape. Replacements are applied one after another;
// backslash sequences other than the five known ones pass through unchanged.
func Unescape(s string) string {
	for _, r := range unescaper {
		s = strings.ReplaceAll(s, r.from, r.to)
	}
	return s
}

// ExtractText returns the unescaped value of the first "text" key in body.
//
// A missing key, or a key with no opening quote after its colon, yields an
// empty string. The key is matched as a literal substring anywhere in the body,
// so nested objects or other values containing "text" also match.
func ExtractText(body string) (string, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return "", nil
	}

	idx := strings.Index(body, textKey)
	if idx < 0 {
		return "", nil
	}

	colon := strings.IndexByte(body[idx:], ':')
	if colon < 0 {
		return "", ErrMalformedInput
	}
	colon += idx

	open := strings.IndexByte(body[colon+1:], '"')
	if open < 0 {
		return "", nil
	}
	start := colon + 1 + open + 1

	end := stringEnd(body, start)
	if end < 0 {
		return "", ErrMalformedInput
	}

	return Unescape(body[start:end]), nil
}

// stringEnd returns the index of the first unescaped quote at or after start, or -1.
func stringEnd(s string, start int) int {
	escaped := false
	for i := start; i < len(s); i++ {
		switch {
		case escaped:
			escaped = false
		case s[i] == '\\':
			escaped = true
		case s[i] == '"':
			return i
		}
	}
	return -1
}
