package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config controls where the assistant finds its data tables and where it
// writes its log. Values resolve in order: defaults, config file, then
// ASRI_* environment variables.
type Config struct {
	DataDir string `yaml:"data_dir"`
	LogFile string `yaml:"log_file,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		DataDir: ".",
	}
}

func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "asri"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the config file, returning nil when none exists yet.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads a config file from an explicit path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ApplyEnv overlays ASRI_* environment variables on top of the file values.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("ASRI_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("ASRI_LOG_FILE"); v != "" {
		c.LogFile = v
	}
}

// LogPath returns the configured log file, defaulting to asri.log inside
// the data directory.
func (c *Config) LogPath() string {
	if c.LogFile != "" {
		return c.LogFile
	}
	return filepath.Join(c.DataDir, "asri.log")
}

func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}
