package manifest

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// ParseFile reads, validates and decodes the registry document at path.
func ParseFile(path string) (*Document, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse validates raw YAML or JSON bytes and decodes them into a Document.
// Schema violations are reported as a *SchemaError.
func Parse(data []byte) (*Document, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return nil, &SchemaError{Issues: result.Issues}
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding registry document: %w", err)
	}

	if err := CheckVersion(doc.Version); err != nil {
		return nil, err
	}
	return &doc, nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
