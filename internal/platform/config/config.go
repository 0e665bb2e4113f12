package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultWorkMinutes  = 25
	defaultBreakMinutes = 5
)

type Config struct {
	DataDir      string
	StatePath    string
	DBPath       string
	WorkMinutes  int
	BreakMinutes int
}

// fileConfig is the optional config.yaml in the data directory.
type fileConfig struct {
	WorkMinutes  int    `yaml:"work_minutes"`
	BreakMinutes int    `yaml:"break_minutes"`
	StateFile    string `yaml:"state_file"`
}

// New resolves the data directory and applies config.yaml overrides when
// the file exists. An empty dataDir falls back to ~/.flowcat.
func New(dataDir string) (Config, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home dir: %w", err)
		}
		dataDir = filepath.Join(home, ".flowcat")
	}

	cfg := Config{
		DataDir:      dataDir,
		StatePath:    filepath.Join(dataDir, "flowcat_data.json"),
		DBPath:       filepath.Join(dataDir, "flowcat.db"),
		WorkMinutes:  defaultWorkMinutes,
		BreakMinutes: defaultBreakMinutes,
	}

	raw, err := os.ReadFile(filepath.Join(dataDir, "config.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config.yaml: %w", err)
	}
	overrides := fileConfig{}
	if err := yaml.Unmarshal(raw, &overrides); err != nil {
		return Config{}, fmt.Errorf("decode config.yaml: %w", err)
	}
	if overrides.WorkMinutes > 0 {
		cfg.WorkMinutes = overrides.WorkMinutes
	}
	if overrides.BreakMinutes > 0 {
		cfg.BreakMinutes = overrides.BreakMinutes
	}
	if overrides.StateFile != "" {
		cfg.StatePath = filepath.Join(dataDir, overrides.StateFile)
	}
	return cfg, nil
}

func (c Config) WorkDuration() time.Duration {
	return time.Duration(c.WorkMinutes) * time.Minute
}

func (c Config) BreakDuration() time.Duration {
	return time.Duration(c.BreakMinutes) * time.Minute
}
