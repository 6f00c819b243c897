// Package parse reads custom form payloads from an io.Reader and encodes
// the decoded entries for output.
//
// The reader is never trusted: at most maximumSize*utf8.UTFMax+1 bytes are
// buffered before the payload is handed to kv.ParseWithLimits.
package parse

import (
	"fmt"
	"io"
	"math"
	"unicode/utf8"

	"github.com/UltraVanilla/BlockGameKeyValue/parse/kv"
)

// =========================
// Options
// =========================

type options struct {
	maximumSize  int
	maximumLines int
}

// Option configures Decode.
type Option func(*options)

// WithMaximumSize sets the payload limit in characters.
func WithMaximumSize(n int) Option {
	return func(o *options) { o.maximumSize = n }
}

// WithMaximumLines sets the limit on accepted lines.
func WithMaximumLines(n int) Option {
	return func(o *options) { o.maximumLines = n }
}

// =========================
// Public API
// =========================

// Decode reads a complete payload from r and parses it.
func Decode(r io.Reader, opts ...Option) (*kv.OrderedMap, error) {
	o := options{
		maximumSize:  kv.DefaultMaximumSize,
		maximumLines: kv.DefaultMaximumLines,
	}
	for _, opt := range opts {
		opt(&o)
	}

	payload, tooLong, err := readPayload(r, o.maximumSize)
	if err != nil {
		return nil, err
	}
	if tooLong {
		return nil, &kv.ParseError{
			Kind:         kv.KindDataTooLong,
			MaximumSize:  o.maximumSize,
			MaximumLines: o.maximumLines,
		}
	}

	return kv.ParseWithLimits(string(payload), o.maximumSize, o.maximumLines)
}

// readPayload reports tooLong when r holds more bytes than any payload of
// maximumSize characters could encode to.
func readPayload(r io.Reader, maximumSize int) (payload []byte, tooLong bool, err error) {
	limit := int64(math.MaxInt64)
	if n := int64(max(maximumSize, 0)); n <= (math.MaxInt64-1)/utf8.UTFMax {
		limit = n*utf8.UTFMax + 1
	}

	payload, err = io.ReadAll(io.LimitReader(r, limit))
	if err != nil {
		return nil, false, fmt.Errorf("parse: read payload: %w", err)
	}
	if int64(len(payload)) >= limit {
		return nil, true, nil
	}
	return payload, false, nil
}
