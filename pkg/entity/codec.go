package entity

import (
	"github.com/goccy/go-yaml"
)

// ToYAML serializes a workspace document in its canonical text form:
// two-space indent, block sequences flush with their key, single quotes
// around scalars that need quoting (dates, postal codes, SIREN numbers).
// Existing workspaces are written in this exact shape, so the encoder
// options must not change.
func ToYAML(v interface{}) ([]byte, error) {
	return yaml.MarshalWithOptions(v, yaml.UseSingleQuote(true))
}

// FromYAML parses a workspace document.
func FromYAML(data []byte, v interface{}) error {
	return yaml.Unmarshal(data, v)
}
