package kv

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrorKind tags the variant of a ParseError.
type ErrorKind uint8

const (
	KindDataTooLong ErrorKind = iota + 1
	KindInvalidColumnCount
	KindInvalidKey
)

func (k ErrorKind) String() string {
	switch k {
	case KindDataTooLong:
		return "data_too_long"
	case KindInvalidColumnCount:
		return "invalid_column_count"
	case KindInvalidKey:
		return "invalid_key"
	default:
		return fmt.Sprintf("ErrorKind(%d)", uint8(k))
	}
}

// Sentinels for errors.Is. Every *ParseError matches ErrParse and the
// sentinel of its own kind.
var (
	ErrParse              = errors.New("kv: parse error")
	ErrDataTooLong        = errors.New("kv: data too long")
	ErrInvalidColumnCount = errors.New("kv: invalid column count")
	ErrInvalidKey         = errors.New("kv: invalid key")
)

// ParseError reports the first violation found while parsing a payload.
// Only the fields relevant to Kind are set.
type ParseError struct {
	Kind ErrorKind

	// KindDataTooLong
	MaximumSize  int
	MaximumLines int

	// KindInvalidColumnCount
	Line string

	// KindInvalidKey
	Key string
}

func dataTooLong(maximumSize, maximumLines int) *ParseError {
	return &ParseError{Kind: KindDataTooLong, MaximumSize: maximumSize, MaximumLines: maximumLines}
}

func invalidColumnCount(line string) *ParseError {
	return &ParseError{Kind: KindInvalidColumnCount, Line: line}
}

func invalidKey(key string) *ParseError {
	return &ParseError{Kind: KindInvalidKey, Key: key}
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	switch e.Kind {
	case KindDataTooLong:
		return fmt.Sprintf("data exceeded limit (configured as %d characters, %d lines) while parsing custom form format",
			e.MaximumSize, e.MaximumLines)
	case KindInvalidColumnCount:
		return fmt.Sprintf("invalid number of columns in line: %q while parsing custom form format", e.Line)
	case KindInvalidKey:
		return fmt.Sprintf("encountered invalid key: %q while parsing custom form format", e.Key)
	default:
		return "parse error while parsing custom form format"
	}
}

// Is reports whether target is ErrParse or the sentinel for e.Kind.
func (e *ParseError) Is(target error) bool {
	switch target {
	case ErrParse:
		return true
	case ErrDataTooLong:
		return e.Kind == KindDataTooLong
	case ErrInvalidColumnCount:
		return e.Kind == KindInvalidColumnCount
	case ErrInvalidKey:
		return e.Kind == KindInvalidKey
	}
	return false
}

// LogValue implements slog.LogValuer.
func (e *ParseError) LogValue() slog.Value {
	attrs := []slog.Attr{slog.String("kind", e.Kind.String())}
	switch e.Kind {
	case KindDataTooLong:
		attrs = append(attrs,
			slog.Int("maximum_size", e.MaximumSize),
			slog.Int("maximum_lines", e.MaximumLines))
	case KindInvalidColumnCount:
		attrs = append(attrs, slog.String("line", e.Line))
	case KindInvalidKey:
		attrs = append(attrs, slog.String("key", e.Key))
	}
	return slog.GroupValue(attrs...)
}
