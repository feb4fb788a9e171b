// Package output writes command results as YAML or JSON.
package output

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Format represents the output format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat validates a --format flag value. Empty means YAML.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatYAML:
		return FormatYAML, nil
	case FormatJSON:
		return FormatJSON, nil
	}
	return "", errors.Errorf("unsupported format: %s (use yaml or json)", s)
}

// Print serializes v to w in format f.
func Print(w io.Writer, f Format, v interface{}) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, "yaml encode")
		}
		return enc.Close()
	default:
		return errors.Errorf("unsupported output format: %s", f)
	}
}
