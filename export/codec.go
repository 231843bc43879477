package export

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/spikeknit/spikeknit/pattern"
)

// MarshalJSON renders p as an indented JSON document.
func MarshalJSON(p pattern.Pattern) ([]byte, error) {
	data, err := json.MarshalIndent(NewDocument(p), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal pattern document: %w", err)
	}

	return data, nil
}

// MarshalYAML renders p as a YAML document.
func MarshalYAML(p pattern.Pattern) ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(NewDocument(p)); err != nil {
		return nil, fmt.Errorf("marshal pattern document: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("marshal pattern document: %w", err)
	}

	return buf.Bytes(), nil
}

// ParseJSON decodes a JSON document and rebuilds its pattern. Unknown
// fields are rejected.
func ParseJSON(data []byte) (pattern.Pattern, error) {
	var doc Document

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return pattern.Pattern{}, fmt.Errorf("parse pattern document: %w", err)
	}

	return doc.Pattern()
}

// ParseYAML decodes a YAML document and rebuilds its pattern. Unknown
// fields are rejected.
func ParseYAML(data []byte) (pattern.Pattern, error) {
	var doc Document

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return pattern.Pattern{}, fmt.Errorf("parse pattern document: %w", err)
	}

	return doc.Pattern()
}
