package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load loads a configuration data set into the config struct.
func Load(configData any) (*Config, error) {
	return getConfigSchema().UnserializeType(configData)
}

// LoadFile reads a YAML configuration file and loads it.
func LoadFile(path string) (*Config, error) {
	fileContents, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %s (%w)", path, err)
	}
	var data any
	if err := yaml.Unmarshal(fileContents, &data); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %s (%w)", path, err)
	}
	if data == nil {
		data = map[string]any{}
	}
	cfg, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration file %s (%w)", path, err)
	}
	return cfg, nil
}

// Default returns the default configuration.
func Default() *Config {
	cfg, err := getConfigSchema().UnserializeType(map[string]any{})
	if err != nil {
		panic(fmt.Errorf("failed to obtain default configuration (%w)", err))
	}
	return cfg
}

// SchemaYAML returns the self-describing schema of the configuration file in the YAML format.
func SchemaYAML() ([]byte, error) {
	data, err := getConfigSchema().SelfSerialize()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize configuration schema (%w)", err)
	}
	return yaml.Marshal(data)
}
