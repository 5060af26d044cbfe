package level

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// tableEntry is the YAML form of one requirement level.
type tableEntry struct {
	Level int      `yaml:"level"`
	Flags []string `yaml:"flags"`
}

// tableFile is the YAML schema for an alternate requirement table.
type tableFile struct {
	Levels []tableEntry `yaml:"levels"`
}

// LoadTable loads a requirement table from a YAML file and validates it.
// Empty path returns the built-in Requirements table.
func LoadTable(path string) ([]Requirement, error) {
	if path == "" {
		return Requirements, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read levels file: %w", err)
	}

	var tf tableFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("failed to parse levels file: %w", err)
	}

	table := make([]Requirement, 0, len(tf.Levels))
	for _, e := range tf.Levels {
		table = append(table, Requirement{Level: e.Level, Flags: e.Flags})
	}

	if err := ValidateTable(table); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// TableYAML renders a requirement table in the levels-file schema, suitable
// as a starting point for a custom table.
func TableYAML(table []Requirement) string {
	tf := tableFile{}
	for _, req := range table {
		tf.Levels = append(tf.Levels, tableEntry{Level: req.Level, Flags: req.Flags})
	}
	out, err := yaml.Marshal(&tf)
	if err != nil {
		return ""
	}
	return string(out)
}

// DefaultTableYAML renders the built-in Requirements table.
func DefaultTableYAML() string {
	return TableYAML(Requirements)
}
