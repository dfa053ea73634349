package chart

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format identifies a document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// DetectFormat guesses the encoding from a file extension.
// Defaults to YAML for unknown extensions (scenario fixtures are YAML).
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	default:
		return FormatYAML
	}
}

// Parse decodes a chart document and normalizes every symbol.
// Unknown fields are ignored; missing fields are left zero-valued and fall
// under the analyzers' silent-skip rules.
func Parse(data []byte, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing chart document: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing chart document: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown chart format %q", format)
	}
	doc.Normalize()
	return &doc, nil
}

// Load reads and parses a chart document from disk, detecting the format
// from the file extension.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading chart document: %w", err)
	}
	return Parse(data, DetectFormat(path))
}
