package jsonutil

import (
	"encoding/json"
	"errors"
	"strings"
)

var ErrNoObject = errors.New("jsonutil: no JSON object found")

// ExtractObject returns the first well-formed JSON object embedded in text.
// Models sometimes wrap their output in prose or ```json fences; this strips
// fences, scans for a balanced top-level object (string-aware), and verifies
// the candidate actually parses.
func ExtractObject(text string) (json.RawMessage, error) {
	s := stripFences(strings.TrimSpace(text))

	start := strings.IndexByte(s, '{')
	for start >= 0 {
		if end := matchObject(s, start); end > start {
			candidate := s[start : end+1]
			if json.Valid([]byte(candidate)) {
				return json.RawMessage(candidate), nil
			}
		}
		next := strings.IndexByte(s[start+1:], '{')
		if next < 0 {
			break
		}
		start = start + 1 + next
	}
	return nil, ErrNoObject
}

func stripFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	body := s[3:]
	if nl := strings.IndexByte(body, '\n'); nl >= 0 {
		// drop the language tag line ("json", "JSON", ...)
		body = body[nl+1:]
	}
	if i := strings.LastIndex(body, "```"); i >= 0 {
		body = body[:i]
	}
	return strings.TrimSpace(body)
}

// matchObject returns the index of the brace closing the object opened at
// start, or -1 when the object never closes.
func matchObject(s string, start int) int {
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
