// Package target maps a coding-agent environment to the local directory a
// resource kind installs into.
package target

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/agentres/agentres/pkg/resource"
)

// DefaultEnv is the environment assumed when none is configured.
const DefaultEnv = "claude"

// envDirs maps each supported environment to its configuration directory.
var envDirs = map[string]string{
	"claude":   ".claude",
	"opencode": ".opencode",
	"codex":    ".codex",
	"amp":      ".amp",
	"clawdbot": ".clawdbot",
}

// Envs returns the supported environment names, sorted.
func Envs() []string {
	names := make([]string, 0, len(envDirs))
	for name := range envDirs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dir resolves the destination directory for a resource kind.
//
// custom, when non-empty, wins outright. Otherwise the directory is
// <base>/<envDir>/<kind subdir>, where base is the home directory for
// global installs and the working directory for project installs.
func Dir(env string, kind resource.Kind, global bool, custom string) (string, error) {
	if custom != "" {
		return custom, nil
	}

	if env == "" {
		env = DefaultEnv
	}
	envDir, ok := envDirs[env]
	if !ok {
		return "", fmt.Errorf("unknown environment %q (expected one of: %s)", env, strings.Join(Envs(), ", "))
	}

	var base string
	var err error
	if global {
		base, err = os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("determining home directory: %w", err)
		}
	} else {
		base, err = os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getting working directory: %w", err)
		}
	}

	return filepath.Join(base, envDir, kind.DestSubdir()), nil
}
