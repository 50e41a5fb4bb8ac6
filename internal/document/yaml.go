package document

import (
	"bytes"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Marshal renders a document in block style with key order preserved.
func Marshal(v any) ([]byte, error) {
	return yaml.MarshalWithOptions(v, yaml.Indent(2), yaml.UseLiteralStyleIfMultiline(true))
}

// Save writes a document to path, overwriting any existing file.
func Save(path string, v any) error {
	data, err := Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Load parses the YAML file at path into out. An empty or comment-only file
// decodes to the zero value without error.
func Load(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// DecodeOrdered parses a YAML or JSON document into an ordered map so that
// re-serialization keeps the author's key order. A non-mapping document is
// rejected.
func DecodeOrdered(data []byte) (yaml.MapSlice, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(data, &v, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	doc, ok := v.(yaml.MapSlice)
	if !ok {
		return nil, fmt.Errorf("document is %T, expected a mapping", v)
	}
	return doc, nil
}

// LoadOrdered reads and decodes the file at path into an ordered map.
func LoadOrdered(path string) (yaml.MapSlice, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	doc, err := DecodeOrdered(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return doc, nil
}

// Get returns the value for key in an ordered document.
func Get(doc yaml.MapSlice, key string) (any, bool) {
	for _, item := range doc {
		if k, ok := item.Key.(string); ok && k == key {
			return item.Value, true
		}
	}
	return nil, false
}

// GetString returns the string value for key, or "" when absent or not a
// string.
func GetString(doc yaml.MapSlice, key string) string {
	v, ok := Get(doc, key)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// Set replaces the value for key in place, appending the key when absent.
func Set(doc yaml.MapSlice, key string, value any) yaml.MapSlice {
	for i, item := range doc {
		if k, ok := item.Key.(string); ok && k == key {
			doc[i].Value = value
			return doc
		}
	}
	return append(doc, yaml.MapItem{Key: key, Value: value})
}
