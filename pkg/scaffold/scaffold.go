// Package scaffold creates a starter agent-resources repository: the
// .claude directory tree, example resources, README, .gitignore, and an
// initial git commit.
package scaffold

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/agentres/agentres/pkg/resource"
)

const dirPerm = 0o755

// Starter identifies one of the example resources written by Create.
type Starter struct {
	Kind resource.Kind
	Name string
}

// Starters returns the full set of example resources, one per kind.
func Starters() []Starter {
	return []Starter{
		{Kind: resource.Skill, Name: "hello-world"},
		{Kind: resource.Command, Name: "hello"},
		{Kind: resource.Agent, Name: "hello-agent"},
	}
}

// Create builds a complete agent-resources repository at path with the
// selected starter resources. username is substituted into the README's
// install examples. Fails if path already exists.
func Create(path, username string, starters []Starter) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("directory already exists: %s", path)
	}

	claudeDir := filepath.Join(path, ".claude")
	for _, sub := range []string{"skills", "commands", "agents"} {
		if err := os.MkdirAll(filepath.Join(claudeDir, sub), dirPerm); err != nil {
			return fmt.Errorf("creating directory structure: %w", err)
		}
	}

	for _, s := range starters {
		if err := writeStarter(path, s); err != nil {
			return err
		}
	}

	if username == "" {
		username = "<username>"
	}
	readme := strings.ReplaceAll(readmeTemplate, "{username}", username)
	if err := os.WriteFile(filepath.Join(path, "README.md"), []byte(readme), 0o644); err != nil {
		return fmt.Errorf("writing README.md: %w", err)
	}

	if err := os.WriteFile(filepath.Join(path, ".gitignore"), []byte(gitignoreTemplate), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	return nil
}

func writeStarter(root string, s Starter) error {
	claudeDir := filepath.Join(root, ".claude")

	var path, content string
	switch s.Kind {
	case resource.Skill:
		dir := filepath.Join(claudeDir, s.Kind.DestSubdir(), s.Name)
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
		path = filepath.Join(dir, resource.ManifestFileName)
		content = helloSkill
	case resource.Command:
		path = filepath.Join(claudeDir, s.Kind.DestSubdir(), s.Name+s.Kind.Suffix())
		content = helloCommand
	case resource.Agent:
		path = filepath.Join(claudeDir, s.Kind.DestSubdir(), s.Name+s.Kind.Suffix())
		content = helloAgent
	default:
		return fmt.Errorf("unknown starter kind %v", s.Kind)
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing starter %s: %w", s.Name, err)
	}
	return nil
}

// InitGit initializes a git repository at path and creates the initial
// commit.
func InitGit(path string) error {
	for _, args := range [][]string{
		{"init"},
		{"add", "."},
		{"commit", "-m", "Initial commit: agent-resources repo scaffold"},
	} {
		cmd := exec.Command("git", args...)
		cmd.Dir = path
		if _, err := cmd.Output(); err != nil {
			return fmt.Errorf("git %s: %w", strings.Join(args, " "), execError(err))
		}
	}
	return nil
}

// execError surfaces stderr from a failed exec.Command Output call.
func execError(err error) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
		return fmt.Errorf("%w: %s", err, strings.TrimSpace(string(exitErr.Stderr)))
	}
	return err
}
