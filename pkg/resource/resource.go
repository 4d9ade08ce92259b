// Package resource defines the closed set of resource kinds the tool can
// fetch (skills, slash commands, sub-agents) together with the per-kind
// layout parameters and the ordered repository conventions used to locate
// each kind inside a source repository.
package resource

import (
	"fmt"
	"regexp"
	"strings"
)

// ManifestFileName is the metadata-bearing file of a skill directory.
// Matched case-insensitively when scanning a repository root.
const ManifestFileName = "SKILL.md"

// Kind is a closed enumeration of fetchable resource kinds.
type Kind int

const (
	Skill Kind = iota
	Command
	Agent
)

// spec carries the per-kind behavioral parameters: whether the resource is
// a directory or a single file, the file suffix for file-shaped kinds, and
// the canonical destination subdirectory.
type spec struct {
	name       string
	isDir      bool
	suffix     string
	destSubdir string
}

var kindSpecs = map[Kind]spec{
	Skill:   {name: "skill", isDir: true, suffix: "", destSubdir: "skills"},
	Command: {name: "command", isDir: false, suffix: ".md", destSubdir: "commands"},
	Agent:   {name: "agent", isDir: false, suffix: ".md", destSubdir: "agents"},
}

// patterns lists the known repository layouts per kind, ranked by
// precedence. The first existing path wins. {name} is substituted with the
// requested resource name.
var patterns = map[Kind][]string{
	Skill: {
		".claude/skills/{name}/",
		"skills/{name}/",
		"skill/{name}/",
		"skills/.curated/{name}/",
		"skills/.experimental/{name}/",
	},
	Command: {
		".claude/commands/{name}.md",
		"commands/{name}.md",
		"command/{name}.md",
	},
	Agent: {
		".claude/agents/{name}.md",
		"agents/{name}.md",
		"agent/{name}.md",
	},
}

// knownFragments are directory names scanned at a repository root when
// resolution fails, used to report what the repository does contain.
var knownFragments = []string{
	".claude/skills",
	"skills",
	"skill",
	".claude/commands",
	"commands",
	"command",
	".claude/agents",
	"agents",
	"agent",
}

func (k Kind) String() string {
	return kindSpecs[k].name
}

// IsDir reports whether resources of this kind are directory-shaped.
func (k Kind) IsDir() bool {
	return kindSpecs[k].isDir
}

// Suffix returns the file suffix for file-shaped kinds ("" for Skill).
func (k Kind) Suffix() string {
	return kindSpecs[k].suffix
}

// DestSubdir returns the canonical destination subdirectory name.
func (k Kind) DestSubdir() string {
	return kindSpecs[k].destSubdir
}

// Patterns returns the ordered convention templates for this kind.
// The returned slice must not be modified.
func (k Kind) Patterns() []string {
	return patterns[k]
}

// InstantiatePatterns substitutes name into every convention template for
// this kind, preserving precedence order. File-shaped templates already
// carry their suffix.
func (k Kind) InstantiatePatterns(name string) []string {
	tmpls := patterns[k]
	out := make([]string, len(tmpls))
	for i, t := range tmpls {
		out[i] = strings.ReplaceAll(t, "{name}", name)
	}
	return out
}

// KnownFragments returns the fixed directory fragments checked during
// failure diagnostics.
func KnownFragments() []string {
	return knownFragments
}

// ParseKind maps a user-facing kind name to its Kind value.
func ParseKind(s string) (Kind, error) {
	for k, sp := range kindSpecs {
		if sp.name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown resource kind %q (expected skill, command, or agent)", s)
}

var validNameRegex = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]{0,62}[a-z0-9])?$`)

// ValidateName checks that a resource name is lowercase alphanumeric with
// hyphens, at most 64 characters, and does not start or end with a hyphen.
func ValidateName(name string) error {
	if !validNameRegex.MatchString(name) {
		return fmt.Errorf("resource name %q must be max 64 characters with only lowercase letters, numbers, and hyphens, and must not start or end with a hyphen", name)
	}
	return nil
}
