package cmd

import (
	"errors"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

// DatabaseConfig names one loadable target in zonescan.yaml, the zonescan
// analogue of sqlcode.yaml's DatabaseConfig.
type DatabaseConfig struct {
	Driver     string `yaml:"driver"` // "mssql" or "postgres"
	Connection string `yaml:"connection"`
	Table      string `yaml:"table"`
}

// Config is the top-level zonescan.yaml shape: named load targets plus the
// zone defaults to parse with when a job doesn't override them.
type Config struct {
	Databases    map[string]DatabaseConfig `yaml:"databases"`
	Origin       string                    `yaml:"origin"`
	DefaultTTL   uint32                    `yaml:"default_ttl"`
	DefaultClass string                    `yaml:"default_class"`
}

// LoadConfig reads zonescan.yaml from the current directory, the way
// sqlcode.yaml's LoadConfig does for the teacher.
func LoadConfig() (Config, error) {
	var result Config

	configFilename := path.Join(".", "zonescan.yaml")
	if _, err := os.Stat(configFilename); os.IsNotExist(err) {
		return Config{}, errors.New("no zonescan.yaml found in current directory")
	}

	data, err := os.ReadFile(configFilename)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &result); err != nil {
		return Config{}, err
	}
	return result, nil
}
