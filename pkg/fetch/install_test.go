package fetch

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/agentres/agentres/pkg/resource"
)

func TestInstallSkillDirectory(t *testing.T) {
	src := t.TempDir()
	writeTree(t, src, map[string]string{
		"SKILL.md":          "---\nname: tool\n---\n",
		"assets/logo.png":   "binarydata",
		"scripts/helper.sh": "#!/bin/sh\n",
	})
	dest := t.TempDir()

	installed, err := install(src, dest, resource.Skill, "tool", false)
	if err != nil {
		t.Fatalf("install() error: %v", err)
	}
	if installed != filepath.Join(dest, "tool") {
		t.Errorf("installed = %s, want %s", installed, filepath.Join(dest, "tool"))
	}

	// The full subtree survives, including non-manifest assets.
	for _, rel := range []string{"SKILL.md", "assets/logo.png", "scripts/helper.sh"} {
		if _, err := os.Stat(filepath.Join(installed, filepath.FromSlash(rel))); err != nil {
			t.Errorf("missing %s after install: %v", rel, err)
		}
	}
}

func TestInstallSingleFile(t *testing.T) {
	src := t.TempDir()
	writeTree(t, src, map[string]string{"deploy.md": "run the deploy"})
	dest := filepath.Join(t.TempDir(), "commands")

	installed, err := install(filepath.Join(src, "deploy.md"), dest, resource.Command, "deploy", false)
	if err != nil {
		t.Fatalf("install() error: %v", err)
	}
	if installed != filepath.Join(dest, "deploy.md") {
		t.Errorf("installed = %s, want %s", installed, filepath.Join(dest, "deploy.md"))
	}

	data, err := os.ReadFile(installed)
	if err != nil {
		t.Fatalf("reading installed file: %v", err)
	}
	if string(data) != "run the deploy" {
		t.Errorf("content = %q, want original content", data)
	}
}

func TestInstallExistingWithoutOverwrite(t *testing.T) {
	src := t.TempDir()
	writeTree(t, src, map[string]string{"SKILL.md": "---\nname: tool\n---\nnew"})
	dest := t.TempDir()
	writeTree(t, dest, map[string]string{"tool/SKILL.md": "old content"})

	_, err := install(src, dest, resource.Skill, "tool", false)
	var ee *ExistsError
	if !errors.As(err, &ee) {
		t.Fatalf("install() error = %v, want ExistsError", err)
	}
	if ee.Path != filepath.Join(dest, "tool") {
		t.Errorf("ExistsError.Path = %s, want %s", ee.Path, filepath.Join(dest, "tool"))
	}

	// Pre-existing content is untouched.
	data, err := os.ReadFile(filepath.Join(dest, "tool", "SKILL.md"))
	if err != nil {
		t.Fatalf("reading existing file: %v", err)
	}
	if string(data) != "old content" {
		t.Errorf("existing content modified: %q", data)
	}
}

func TestInstallOverwriteReplacesFully(t *testing.T) {
	src := t.TempDir()
	writeTree(t, src, map[string]string{"SKILL.md": "---\nname: tool\n---\nnew"})
	dest := t.TempDir()
	writeTree(t, dest, map[string]string{
		"tool/SKILL.md": "old",
		"tool/stale.md": "should disappear",
	})

	installed, err := install(src, dest, resource.Skill, "tool", true)
	if err != nil {
		t.Fatalf("install() error: %v", err)
	}

	// Replace, not merge: files absent from the new copy are gone.
	if _, err := os.Stat(filepath.Join(installed, "stale.md")); !os.IsNotExist(err) {
		t.Errorf("stale.md still present after overwrite install")
	}

	data, err := os.ReadFile(filepath.Join(installed, "SKILL.md"))
	if err != nil {
		t.Fatalf("reading installed file: %v", err)
	}
	if string(data) != "---\nname: tool\n---\nnew" {
		t.Errorf("content = %q, want new content", data)
	}
}

func TestInstallLeavesNoStagingResidue(t *testing.T) {
	src := t.TempDir()
	writeTree(t, src, map[string]string{"SKILL.md": "---\nname: tool\n---\n"})
	dest := t.TempDir()

	if _, err := install(src, dest, resource.Skill, "tool", false); err != nil {
		t.Fatalf("install() error: %v", err)
	}

	entries, err := os.ReadDir(dest)
	if err != nil {
		t.Fatalf("reading dest: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "tool" {
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name()
		}
		t.Errorf("dest contains %v, want only [tool]", names)
	}
}
