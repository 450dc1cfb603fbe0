// Package report renders the result of a run for the user.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"

	"github.com/vk/cubecount/internal/bag"
)

// Format is an output format name.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates an output format name. An empty name selects FormatText.
func ParseFormat(name string) (Format, error) {
	switch f := Format(cases.Fold().String(strings.TrimSpace(name))); f {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("invalid output format %q: must be 'text', 'json', or 'yaml'", name)
	}
}

// Write renders res to w in the given format.
func Write(w io.Writer, res bag.Result, format Format) error {
	switch format {
	case FormatText, "":
		_, err := fmt.Fprintf(w, "Hello, world := %d!\n", res.Sum)
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("failed to encode json report: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("failed to encode yaml report: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}
