package fetch

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/agentres/agentres/pkg/resource"
)

// located is the result of resolving a resource inside an extracted tree:
// the on-disk source path and the effective name, which may have been
// derived from the root manifest rather than requested by the caller.
type located struct {
	src  string
	name string
}

// locate finds a resource inside the extracted repository root.
//
// Named resources are looked up against the ranked convention table for
// the kind; the first existing path wins. When no convention matches, a
// skill may still resolve via the root-level fallback: a repository that
// is itself a single skill, identified by a SKILL.md at its root. The
// fallback is skipped for the canonical default repository to avoid false
// positives against curated multi-resource collections.
func locate(root string, kind resource.Kind, name, host, owner, repo string) (*located, error) {
	if name != "" {
		for _, rel := range kind.InstantiatePatterns(name) {
			candidate := filepath.Join(root, filepath.FromSlash(rel))
			if _, err := os.Stat(candidate); err == nil {
				return &located{src: candidate, name: name}, nil
			}
		}
	}

	var fallbackNote string
	if kind == resource.Skill && repo != DefaultRepo {
		loc, note := locateRootSkill(root, name)
		if loc != nil {
			return loc, nil
		}
		fallbackNote = note
	}

	return nil, newNotFoundError(root, kind, name, host, owner, repo, fallbackNote)
}

// locateRootSkill attempts the root-level single-skill fallback. It returns
// either a match or a note describing why the fallback did not apply.
func locateRootSkill(root, requested string) (*located, string) {
	manifest := findRootManifest(root)
	if manifest == "" {
		return nil, fmt.Sprintf("Root %s not found (case-insensitive) in repo root.", resource.ManifestFileName)
	}

	m, err := resource.ParseManifest(manifest)
	if err != nil {
		return nil, fmt.Sprintf("Root %s front matter is invalid or missing a name.", resource.ManifestFileName)
	}

	// The derived name becomes a destination path component.
	if err := resource.ValidateName(m.Name); err != nil {
		return nil, fmt.Sprintf("Root %s front matter name '%s' is not a valid resource name.", resource.ManifestFileName, m.Name)
	}

	if requested != "" && m.Name != requested {
		return nil, fmt.Sprintf("Root %s front matter name '%s' does not match requested '%s'.", resource.ManifestFileName, m.Name, requested)
	}

	return &located{src: filepath.Dir(manifest), name: m.Name}, ""
}

// findRootManifest scans the top level of the tree for a file literally
// named SKILL.md, case-insensitively. Entries are visited in
// case-insensitive name order for determinism.
func findRootManifest(root string) string {
	entries, err := os.ReadDir(root)
	if err != nil {
		return ""
	}

	sort.Slice(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].Name()) < strings.ToLower(entries[j].Name())
	})

	for _, entry := range entries {
		if !entry.IsDir() && strings.EqualFold(entry.Name(), resource.ManifestFileName) {
			return filepath.Join(root, entry.Name())
		}
	}
	return ""
}

// newNotFoundError assembles the full resolution diagnostics: every
// convention path attempted (with the name, or a placeholder when none was
// given) and the known layout fragments actually present at the tree's top
// level. Deterministic for a given tree snapshot.
func newNotFoundError(root string, kind resource.Kind, name, host, owner, repo, fallbackNote string) *NotFoundError {
	patternName := name
	if patternName == "" {
		patternName = "<" + kind.String() + "-name>"
	}

	var found []string
	for _, fragment := range resource.KnownFragments() {
		if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(fragment))); err == nil {
			found = append(found, fragment)
		}
	}

	return &NotFoundError{
		Kind:         kind,
		Name:         name,
		Host:         host,
		Owner:        owner,
		Repo:         repo,
		Tried:        kind.InstantiatePatterns(patternName),
		Found:        found,
		FallbackNote: fallbackNote,
	}
}
