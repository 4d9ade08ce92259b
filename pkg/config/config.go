// Package config resolves developer-specific defaults for agentres: the
// target environment and an alternative source repository name. Neither is
// meant to be committed, so they live outside the fetched resources.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

// LocalConfigFile is the project-local developer config filename.
const LocalConfigFile = "agentres.local.toml"

// GlobalConfigFile is the config filename inside the global config dir.
const GlobalConfigFile = "config.toml"

// globalDirName is the per-user config directory under $HOME.
const globalDirName = ".agentres"

// DevConfig holds developer preferences, resolved with Viper precedence:
// CLI flags > agentres.local.toml (project-local) > ~/.agentres/config.toml
// (global).
type DevConfig struct {
	// Environment is the default target environment (claude, opencode, ...).
	Environment string `toml:"environment" mapstructure:"environment"`
	// Repo overrides the default source repository name.
	Repo string `toml:"repo" mapstructure:"repo"`
}

// flagValues carries CLI flag overrides into LoadDevConfig. Empty fields
// are treated as unset.
type flagValues struct {
	Environment string
	Repo        string
}

// LoadDevConfig resolves developer configuration using Viper's merge
// semantics. flagEnv and flagRepo, if non-empty, take highest precedence.
func LoadDevConfig(flagEnv, flagRepo string) (*DevConfig, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("determining home directory: %w", err)
	}
	globalPath := filepath.Join(home, globalDirName, GlobalConfigFile)
	return loadDevConfig(flagValues{Environment: flagEnv, Repo: flagRepo}, globalPath, LocalConfigFile)
}

// loadDevConfig is the internal implementation that accepts explicit paths,
// making it testable without touching the real home directory.
func loadDevConfig(flags flagValues, globalPath, localPath string) (*DevConfig, error) {
	v := viper.New()
	v.SetConfigType("toml")

	// Lowest priority: global config; ignore if missing.
	v.SetConfigFile(globalPath)
	_ = v.ReadInConfig()

	// Higher priority: project-local config.
	if _, err := os.Stat(localPath); err == nil {
		v.SetConfigFile(localPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("reading %s: %w", localPath, err)
		}
	}

	// Highest priority: CLI flags.
	if flags.Environment != "" {
		v.Set("environment", flags.Environment)
	}
	if flags.Repo != "" {
		v.Set("repo", flags.Repo)
	}

	cfg := &DevConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling dev config: %w", err)
	}

	return cfg, nil
}

// GlobalConfigDir returns the path to ~/.agentres, creating it if necessary.
func GlobalConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determining home directory: %w", err)
	}
	dir := filepath.Join(home, globalDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating %s: %w", dir, err)
	}
	return dir, nil
}

// WriteLocalDevConfig persists developer config to agentres.local.toml in
// the given project directory.
func WriteLocalDevConfig(projectDir string, cfg *DevConfig) error {
	return writeConfig(filepath.Join(projectDir, LocalConfigFile), cfg)
}

// WriteGlobalDevConfig persists developer config to ~/.agentres/config.toml.
func WriteGlobalDevConfig(cfg *DevConfig) error {
	dir, err := GlobalConfigDir()
	if err != nil {
		return err
	}
	return writeConfig(filepath.Join(dir, GlobalConfigFile), cfg)
}

func writeConfig(path string, cfg *DevConfig) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling dev config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}
