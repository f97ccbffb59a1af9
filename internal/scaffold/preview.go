package scaffold

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Format selects the preview encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat maps a user-supplied format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown format %q (expected json or yaml)", s)
	}
}

// EncodePlan writes plan to w as a single field-labeled document.
// Empty sequences are written as [] rather than null.
func EncodePlan(w io.Writer, plan *Plan, format Format) error {
	out := *plan
	out.Folders = nonNil(out.Folders)
	out.Files = nonNil(out.Files)
	out.Notes = nonNil(out.Notes)

	switch format {
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(&out); err != nil {
			return fmt.Errorf("encoding plan as JSON: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(&out); err != nil {
			return fmt.Errorf("encoding plan as YAML: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
