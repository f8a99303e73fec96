package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Config holds the optional file-based defaults. Every field can be
// overridden by a command-line flag; a missing config file is not an error.
type Config struct {
	Aws struct {
		Profile         string   `yaml:"profile"`
		Regions         []string `yaml:"regions"`
		AccessKeyID     string   `yaml:"access_key_id"`
		SecretAccessKey string   `yaml:"secret_access_key"`
	} `yaml:"aws"`
	Output struct {
		Directory   string `yaml:"directory"`
		Placeholder string `yaml:"placeholder"`
	} `yaml:"output"`
	Graph struct {
		Format string `yaml:"format"`
	} `yaml:"graph"`
}

const (
	DefaultDirectory   = "."
	DefaultGraphFormat = "png"
)

// Load reads the first config file found, or returns defaults when none
// exists.
func Load(fs afero.Fs) (*Config, error) {
	cfg := &Config{}
	cfg.applyDefaults()

	path, found := findConfigFile(fs)
	if !found {
		return cfg, nil
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

// findConfigFile looks for awsrc.yml / awsrc.yaml in the working directory,
// then for .awsrc.yaml in the user's home directory.
func findConfigFile(fs afero.Fs) (string, bool) {
	names := []string{"awsrc.yml", "awsrc.yaml"}

	if dir, err := os.Getwd(); err == nil {
		for _, name := range names {
			possiblePath := filepath.Join(dir, name)
			if _, err := fs.Stat(possiblePath); err == nil {
				return possiblePath, true
			}
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		possiblePath := filepath.Join(home, ".awsrc.yaml")
		if _, err := fs.Stat(possiblePath); err == nil {
			return possiblePath, true
		}
	}

	return "", false
}

func (c *Config) applyDefaults() {
	if c.Output.Directory == "" {
		c.Output.Directory = DefaultDirectory
	}
	if c.Graph.Format == "" {
		c.Graph.Format = DefaultGraphFormat
	}
}

// HasStaticCredentials reports whether both halves of a static key pair are
// present.
func (c *Config) HasStaticCredentials() bool {
	return c.Aws.AccessKeyID != "" && c.Aws.SecretAccessKey != ""
}
