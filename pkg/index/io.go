package index

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ReadModuleSpec reads a yaml ModuleSpec file.
func ReadModuleSpec(filename string) (*ModuleSpec, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	var spec ModuleSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	return &spec, nil
}

// ReadUnitSpec reads a yaml UnitSpec file.
func ReadUnitSpec(filename string) (*UnitSpec, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	var spec UnitSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	return &spec, nil
}

// WriteYAMLFile marshals the given spec to a yaml file.
func WriteYAMLFile(filename string, spec interface{}) error {
	data, err := yaml.Marshal(spec)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}
