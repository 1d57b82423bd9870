package config

import (
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

func NewYAML(filePath string) YAML {
	return YAML{
		filePath: filePath,
	}
}

type YAML struct {
	filePath string
}

// Read returns the defaults overlaid with the file. A missing or empty file
// yields the defaults.
func (y YAML) Read() (Config, error) {
	cfg := defaultConfig

	file, err := os.Open(y.filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, err
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}

	return cfg, nil
}
