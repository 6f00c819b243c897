// Package kv decodes the tab-separated key/value "custom form" format that a
// game server sends to clients.
//
// Format:
// - one entry per line, lines separated by '\n'
// - key and value separated by exactly one tab
// - keys are Unicode letters, digits and '_'
// - values may contain the escapes \n and \t; any other backslash is literal
//
// Non-goals:
// - encoding back into the format
// - streaming / partial input
//
// Payloads are treated as untrusted, so size and line limits are always
// enforced.
package kv

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// =========================
// Limits
// =========================

const (
	// DefaultMaximumSize is the default payload limit, in characters.
	DefaultMaximumSize = 0x20000
	// DefaultMaximumLines is the default limit on accepted lines.
	DefaultMaximumLines = 0x4000
)

// =========================
// Public API
// =========================

// Parse parses payload with DefaultMaximumSize and DefaultMaximumLines.
func Parse(payload string) (*OrderedMap, error) {
	return ParseWithLimits(payload, DefaultMaximumSize, DefaultMaximumLines)
}

// ParseWithLimits parses payload into an ordered map.
//
// maximumSize bounds the payload length in characters (inclusive) and is
// checked before any line is looked at. maximumLines bounds the number of
// accepted lines (inclusive). The first violation aborts the parse and is
// returned as a *ParseError.
//
// Lines are split exactly, so a trailing '\n' produces an empty final line,
// which has no tab and is rejected.
func ParseWithLimits(payload string, maximumSize, maximumLines int) (*OrderedMap, error) {
	if utf8.RuneCountInString(payload) > maximumSize {
		return nil, dataTooLong(maximumSize, maximumLines)
	}

	lines := strings.Split(payload, "\n")
	result := NewOrderedMap(min(len(lines), max(maximumLines, 0)))

	count := 0
	for _, line := range lines {
		key, raw, err := splitEntry(line)
		if err != nil {
			return nil, err
		}

		result.Set(key, Unescape(raw))

		count++
		if count > maximumLines {
			return nil, dataTooLong(maximumSize, maximumLines)
		}
	}

	return result, nil
}

// =========================
// Parser Implementation
// =========================

func splitEntry(line string) (string, string, error) {
	sep := strings.IndexByte(line, '\t')
	if sep < 0 {
		return "", "", invalidColumnCount(line)
	}

	key := line[:sep]
	raw := line[sep+1:]

	if key == "" || !IsValidKey(key) {
		return "", "", invalidKey(key)
	}
	if strings.IndexByte(raw, '\t') >= 0 {
		return "", "", invalidColumnCount(line)
	}

	return key, raw, nil
}

// Unescape expands \n and \t in raw. Every other backslash, including one
// at the very end, is copied through unchanged together with the rune that
// follows it.
func Unescape(raw string) string {
	if strings.IndexByte(raw, '\\') < 0 {
		return raw
	}

	var sb strings.Builder
	sb.Grow(len(raw))

	for i := 0; i < len(raw); {
		c := raw[i]
		if c != '\\' || i+1 >= len(raw) {
			sb.WriteByte(c)
			i++
			continue
		}

		switch raw[i+1] {
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		default:
			// both bytes verbatim, so "\\n" stays "\\n"
			sb.WriteByte('\\')
			sb.WriteByte(raw[i+1])
		}
		i += 2
	}

	return sb.String()
}

// IsValidKey reports whether every rune of key is a letter, a digit or '_'.
// It is true for the empty string.
func IsValidKey(key string) bool {
	for _, r := range key {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}
