package reseta

import (
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Preset is a shareable starter letterhead: a named template snapshot that a
// clinic can load instead of starting from the stock defaults.
type Preset struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Template    Template `yaml:"template"`
}

// DecodePreset reads a preset from YAML.
func DecodePreset(r io.Reader) (*Preset, error) {
	var preset Preset
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&preset); err != nil {
		return nil, fmt.Errorf("reseta: decode preset: %w", err)
	}
	if preset.Name == "" {
		return nil, fmt.Errorf("reseta: preset name is required")
	}
	return &preset, nil
}

// LoadPreset reads a preset file from an fs.FS.
func LoadPreset(files fs.FS, path string) (*Preset, error) {
	f, err := files.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reseta: open preset %q: %w", path, err)
	}
	defer f.Close()
	return DecodePreset(f)
}

// LoadPresetFile reads a preset from a path on disk.
func LoadPresetFile(path string) (*Preset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reseta: open preset %q: %w", path, err)
	}
	defer f.Close()
	return DecodePreset(f)
}

// EncodePreset writes the preset as YAML.
func EncodePreset(w io.Writer, preset *Preset) error {
	if preset == nil {
		return fmt.Errorf("reseta: preset is nil")
	}
	if preset.Name == "" {
		return fmt.Errorf("reseta: preset name is required")
	}
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(preset); err != nil {
		return fmt.Errorf("reseta: encode preset: %w", err)
	}
	return encoder.Close()
}

// SavePresetFile writes a preset to a path on disk.
func SavePresetFile(path string, preset *Preset) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("reseta: create preset %q: %w", path, err)
	}
	defer f.Close()
	return EncodePreset(f, preset)
}
