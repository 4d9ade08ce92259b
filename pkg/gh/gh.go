// Package gh wraps the GitHub CLI for repository bootstrap: auth checks,
// identity lookup, and creating + pushing a new repository. All lookups
// degrade gracefully when gh is missing or unauthenticated.
package gh

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Authenticated reports whether the gh CLI is installed and logged in.
func Authenticated() bool {
	cmd := exec.Command("gh", "auth", "status")
	return cmd.Run() == nil
}

// Username returns the authenticated GitHub login, or "" if it cannot be
// determined.
func Username() string {
	cmd := exec.Command("gh", "api", "user", "--jq", ".login")
	out, err := cmd.Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

// RepoExists reports whether the authenticated user already has a
// repository with the given name.
func RepoExists(name string) bool {
	cmd := exec.Command("gh", "repo", "view", name)
	return cmd.Run() == nil
}

// CreateRepo creates a public GitHub repository from the local git repo at
// path and pushes it. Returns the repository URL.
func CreateRepo(path, name string) (string, error) {
	cmd := exec.Command("gh", "repo", "create", name, "--public", "--source", path, "--push")
	if _, err := cmd.Output(); err != nil {
		return "", fmt.Errorf("creating GitHub repository %q: %w", name, execError(err))
	}

	username := Username()
	if username == "" {
		return "", fmt.Errorf("repository created but username lookup failed")
	}
	return fmt.Sprintf("https://github.com/%s/%s", username, name), nil
}

func execError(err error) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
		return fmt.Errorf("%w: %s", err, strings.TrimSpace(string(exitErr.Stderr)))
	}
	return err
}
