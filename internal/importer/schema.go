// Package importer reads application answers from JSON or YAML files so the
// wizard's validators can run without the TUI.
package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Top-level sections of an answers file.
const (
	SectionPersonal = "personal"
	SectionSubjects = "subjects"
	SectionIncome   = "income"
)

// Document is a decoded answers file. Values are kept untyped until
// ValidateDocument has checked the shape, so unknown keys can be reported
// instead of silently dropped.
//
//	personal:
//	  fullName: Ada Lovelace
//	  age: 20
//	subjects:
//	  - {name: Math, totalMarks: 100, score: 85}
//	income:
//	  fundAmount: 4000
type Document struct {
	Path string
	Raw  map[string]any
}

// LoadDocument reads path, choosing the decoder by extension: .yaml and
// .yml use YAML, anything else JSON.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	raw, err := Decode(data, formatFor(path))
	if err != nil {
		return nil, fmt.Errorf("parsing answers file: %w", err)
	}
	return &Document{Path: path, Raw: raw}, nil
}

// Format names an answers file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func formatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Decode parses data into a generic map. An empty document decodes to an
// empty map.
func Decode(data []byte, format Format) (map[string]any, error) {
	raw := map[string]any{}
	if len(bytes.TrimSpace(data)) == 0 {
		return raw, nil
	}
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	if raw == nil {
		raw = map[string]any{}
	}
	return raw, nil
}
