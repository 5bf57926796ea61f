package form

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFieldSet reads a YAML document mapping field names to string values and
// overlays it on the built-in sample dataset, so partial files only need to
// name the fields they change.
func LoadFieldSet(path string) (FieldSet, error) {
	if path == "" {
		return nil, errors.New("form: field set path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("form: read field set: %w", err)
	}

	values := map[string]string{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("form: parse field set %q: %w", path, err)
	}

	return SampleFields().Merge(values), nil
}
