package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

type Manifest struct {
	Title  string       `toml:"title"`
	Fields []FieldEntry `toml:"field"`
}

type FieldEntry struct {
	Name     string `toml:"name"`
	Capacity int    `toml:"capacity"`
	Value    string `toml:"value"`
}

func LoadManifest(path string) (Manifest, error) {
	var m Manifest
	if err := loadToml(path, &m); err != nil {
		return Manifest{}, err
	}
	if err := ValidateManifest(m); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

func loadToml(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("manifest load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("manifest parse failed (%s): %w", path, err)
	}
	return nil
}

func ValidateManifest(m Manifest) error {
	if len(m.Fields) == 0 {
		return fmt.Errorf("manifest declares no fields")
	}
	seen := make(map[string]struct{}, len(m.Fields))
	for i, entry := range m.Fields {
		if err := ValidateFieldEntry(entry); err != nil {
			return fmt.Errorf("field[%d] invalid: %w", i, err)
		}
		name := strings.TrimSpace(entry.Name)
		if _, ok := seen[name]; ok {
			return fmt.Errorf("field[%d] invalid: duplicate name %q", i, name)
		}
		seen[name] = struct{}{}
	}
	return nil
}

func ValidateFieldEntry(entry FieldEntry) error {
	if strings.TrimSpace(entry.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if entry.Capacity < 1 {
		return fmt.Errorf("capacity must be positive, got %d", entry.Capacity)
	}
	return nil
}
