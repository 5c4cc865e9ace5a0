package almanac

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses an almanac file. FormatAuto picks the format
// from the file extension.
func LoadFile(path string, format Format) (*Almanac, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read almanac file %s: %w", path, err)
	}

	a, err := Parse(data, format.resolve(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return a, nil
}

// Parse parses data in the given format. FormatAuto is read as text.
func Parse(data []byte, format Format) (*Almanac, error) {
	if format == FormatYAML {
		return ParseYAML(data)
	}

	return ParseText(data)
}

// ParseYAML parses YAML data into an Almanac.
func ParseYAML(data []byte) (*Almanac, error) {
	var a Almanac

	err := yaml.Unmarshal(data, &a)
	if err != nil {
		return nil, fmt.Errorf("failed to parse almanac YAML: %w", err)
	}

	applyDefaults(&a)

	return &a, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(a *Almanac) {
	if a.Version == "" {
		a.Version = "1"
	}
}

// Marshal serializes an Almanac in the given format. FormatAuto writes YAML.
func Marshal(a *Almanac, format Format) ([]byte, error) {
	if format == FormatText {
		return RenderText(a), nil
	}

	return yaml.Marshal(a)
}

// WriteFile writes an Almanac to the given path. FormatAuto picks the format
// from the file extension.
func WriteFile(a *Almanac, path string, format Format) error {
	data, err := Marshal(a, format.resolve(path))
	if err != nil {
		return fmt.Errorf("failed to marshal almanac: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write almanac file %s: %w", path, err)
	}

	return nil
}
