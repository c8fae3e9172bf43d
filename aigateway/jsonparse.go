package aigateway

import (
	"encoding/json"
	"errors"
	"strings"
)

// MaxJSONScanBytes caps how much of a response the brace scanners look at.
const MaxJSONScanBytes = 64 << 10

// maxSpanAttempts bounds how many balanced spans are tried before giving up.
const maxSpanAttempts = 16

var errNoJSONObject = errors.New("no JSON object found")

// ParseJSON decodes a model response into T. It tries, in order: the whole
// text (markdown fences removed), the first balanced {...} span that decodes,
// and the span from the first '{' to the last '}'. Only the first
// MaxJSONScanBytes are scanned.
func ParseJSON[T any](raw string) (T, error) {
	var out T
	text := stripFences(raw)
	if err := json.Unmarshal([]byte(text), &out); err == nil {
		return out, nil
	}

	scan := text
	if len(scan) > MaxJSONScanBytes {
		scan = scan[:MaxJSONScanBytes]
	}

	for start, attempts := strings.IndexByte(scan, '{'), 0; start >= 0 && attempts < maxSpanAttempts; attempts++ {
		end := matchBrace(scan, start)
		if end < 0 {
			break
		}
		var candidate T
		if err := json.Unmarshal([]byte(scan[start:end+1]), &candidate); err == nil {
			return candidate, nil
		}
		next := strings.IndexByte(scan[start+1:], '{')
		if next < 0 {
			break
		}
		start += next + 1
	}

	first, last := strings.IndexByte(scan, '{'), strings.LastIndexByte(scan, '}')
	if first >= 0 && last > first {
		var candidate T
		if err := json.Unmarshal([]byte(scan[first:last+1]), &candidate); err == nil {
			return candidate, nil
		}
	}

	return out, &MalformedResponseError{Raw: raw, Err: errNoJSONObject}
}

// matchBrace returns the index of the '}' closing the '{' at start, skipping
// braces inside JSON strings, or -1.
func matchBrace(s string, start int) int {
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

// stripFences removes a surrounding ```json ... ``` block.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
