package handlers

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/gofiber/fiber/v3"

	"sentiment/internal/jsontext"
)

// textFromRequest pulls the input text from the query string on GET or from
// the JSON body on POST. A missing text field yields an empty string.
func textFromRequest(c fiber.Ctx) (string, error) {
	switch c.Method() {
	case fiber.MethodGet:
		query, err := parseQuery(string(c.Request().URI().QueryString()))
		if err != nil {
			return "", err
		}
		return query["text"], nil
	case fiber.MethodPost:
		text, err := jsontext.ExtractText(validUTF8(string(c.Body())))
		if err != nil {
			return "", fmt.Errorf("read text field: %w", err)
		}
		return text, nil
	default:
		return "", ErrMethodNotAllowed
	}
}

// parseQuery decodes a raw query string into a key/value map.
// Pairs without '=' or with an empty key are skipped; a repeated key keeps its last value.
func parseQuery(raw string) (map[string]string, error) {
	values := make(map[string]string)
	if strings.TrimSpace(raw) == "" {
		return values, nil
	}

	for _, pair := range strings.Split(raw, "&") {
		eq := strings.IndexByte(pair, '=')
		if eq <= 0 {
			continue
		}

		key, err := url.QueryUnescape(pair[:eq])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadQuery, err)
		}
		value, err := url.QueryUnescape(pair[eq+1:])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadQuery, err)
		}
		values[validUTF8(key)] = validUTF8(value)
	}
	return values, nil
}

// validUTF8 replaces each byte that is not part of a valid UTF-8 sequence
// with U+FFFD.
func validUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	return string([]rune(s))
}
