package parse

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/UltraVanilla/BlockGameKeyValue/parse/kv"
)

// Format selects the output encoding used by Encode.
type Format string

var Formats = struct {
	JSON Format
	YAML Format
	Text Format
}{
	JSON: "json",
	YAML: "yaml",
	Text: "text",
}

var ErrUnknownFormat = errors.New("parse: unknown output format")

// ParseFormat maps a format name to a Format, ignoring case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case Formats.JSON, Formats.YAML, Formats.Text:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Encode writes m to w in the given format, keys in insertion order.
func Encode(w io.Writer, m *kv.OrderedMap, format Format) error {
	switch format {
	case Formats.JSON:
		data, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err

	case Formats.YAML:
		if m.Len() == 0 {
			_, err := fmt.Fprintln(w, "{}")
			return err
		}
		data, err := yaml.MarshalWithOptions(m, yaml.Indent(2))
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(w, string(data))
		return err

	case Formats.Text:
		for k, v := range m.All() {
			if _, err := fmt.Fprintf(w, "%s=%q\n", k, v); err != nil {
				return err
			}
		}
		return nil
	}

	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
}
