package definition

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Default category names for YAML documents that do not set them.
const (
	DefaultEntry    = "seed"
	DefaultTerminal = "location"
)

// Load reads a document from path. FormatAuto picks YAML for .yaml and .yml
// files and the almanac format for anything else.
func Load(path string, format Format) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition file %s: %w", path, err)
	}

	if format == FormatAuto {
		format = DetectFormat(path)
	}

	switch format {
	case FormatYAML:
		return Parse(data)
	case FormatAlmanac:
		return ParseAlmanac(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unsupported format %s", format)
	}
}

// DetectFormat guesses the format of a file from its extension.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatAlmanac
	}
}

// LoadFile loads and parses a YAML definition file from the given path.
func LoadFile(path string) (*Document, error) {
	return Load(path, FormatYAML)
}

// Parse parses YAML data into a Document.
func Parse(data []byte) (*Document, error) {
	var doc Document

	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse definition YAML: %w", err)
	}

	// Apply defaults and normalize
	applyDefaults(&doc)

	return &doc, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(doc *Document) {
	if doc.Version == "" {
		doc.Version = "1"
	}

	if doc.Entry == "" {
		doc.Entry = DefaultEntry
	}

	if doc.Terminal == "" {
		doc.Terminal = DefaultTerminal
	}
}

// Marshal serializes a Document to YAML.
func Marshal(doc *Document) ([]byte, error) {
	return yaml.Marshal(doc)
}

// WriteFile writes a Document to the given path as YAML.
func WriteFile(doc *Document, path string) error {
	data, err := Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal definition: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write definition file %s: %w", path, err)
	}

	return nil
}
