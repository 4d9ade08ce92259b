package fetch

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

// makeArchive builds a gzip-compressed tarball with the given entries.
// Keys ending in "/" become directories. Entry names are used verbatim, so
// tests can produce hostile paths.
func makeArchive(t *testing.T, entries map[string]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	gzw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gzw)

	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		content := entries[name]
		if strings.HasSuffix(name, "/") {
			if err := tw.WriteHeader(&tar.Header{Name: name, Typeflag: tar.TypeDir, Mode: 0o755}); err != nil {
				t.Fatalf("writing dir header %s: %v", name, err)
			}
			continue
		}
		hdr := &tar.Header{Name: name, Typeflag: tar.TypeReg, Mode: 0o644, Size: int64(len(content))}
		if err := tw.WriteHeader(hdr); err != nil {
			t.Fatalf("writing header %s: %v", name, err)
		}
		if _, err := tw.Write([]byte(content)); err != nil {
			t.Fatalf("writing content %s: %v", name, err)
		}
	}

	if err := tw.Close(); err != nil {
		t.Fatalf("closing tar writer: %v", err)
	}
	if err := gzw.Close(); err != nil {
		t.Fatalf("closing gzip writer: %v", err)
	}
	return buf.Bytes()
}

// repoArchive builds an archive shaped like a GitHub default-branch
// tarball: every entry nested under <repo>-main/.
func repoArchive(t *testing.T, repo string, files map[string]string) []byte {
	t.Helper()
	entries := map[string]string{repo + "-main/": ""}
	for rel, content := range files {
		entries[repo+"-main/"+rel] = content
	}
	return makeArchive(t, entries)
}

func TestExtract(t *testing.T) {
	ws, err := newWorkspace()
	if err != nil {
		t.Fatalf("newWorkspace() error: %v", err)
	}
	defer ws.Close()

	archive := repoArchive(t, "agent-resources", map[string]string{
		".claude/skills/tool/SKILL.md": "---\nname: tool\n---\n",
		"README.md":                    "readme",
	})

	root, err := extract(ws, archive, "agent-resources")
	if err != nil {
		t.Fatalf("extract() error: %v", err)
	}
	if filepath.Base(root) != "agent-resources-main" {
		t.Errorf("root = %s, want agent-resources-main directory", root)
	}

	data, err := os.ReadFile(filepath.Join(root, ".claude", "skills", "tool", "SKILL.md"))
	if err != nil {
		t.Fatalf("reading extracted file: %v", err)
	}
	if !strings.Contains(string(data), "name: tool") {
		t.Errorf("extracted content = %q", data)
	}
}

func TestExtractUnexpectedLayout(t *testing.T) {
	ws, err := newWorkspace()
	if err != nil {
		t.Fatalf("newWorkspace() error: %v", err)
	}
	defer ws.Close()

	// Root directory does not follow the <repo>-main naming.
	archive := makeArchive(t, map[string]string{
		"something-else/README.md": "readme",
	})

	_, err = extract(ws, archive, "agent-resources")
	var le *LayoutError
	if !errors.As(err, &le) {
		t.Fatalf("extract() error = %v, want LayoutError", err)
	}
	if le.Expected != "agent-resources-main" {
		t.Errorf("Expected = %q, want agent-resources-main", le.Expected)
	}
}

func TestExtractRejectsTraversal(t *testing.T) {
	ws, err := newWorkspace()
	if err != nil {
		t.Fatalf("newWorkspace() error: %v", err)
	}
	defer ws.Close()

	archive := makeArchive(t, map[string]string{
		"repo-main/../../escape.txt": "outside",
	})

	if _, err := extract(ws, archive, "repo"); err == nil {
		t.Fatal("extract() expected traversal error, got nil")
	}

	if _, err := os.Stat(filepath.Join(ws.root, "escape.txt")); err == nil {
		t.Error("traversal entry was written outside the extraction root")
	}
}

func TestExtractSkipsSymlinks(t *testing.T) {
	ws, err := newWorkspace()
	if err != nil {
		t.Fatalf("newWorkspace() error: %v", err)
	}
	defer ws.Close()

	var buf bytes.Buffer
	gzw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gzw)
	headers := []*tar.Header{
		{Name: "repo-main/", Typeflag: tar.TypeDir, Mode: 0o755},
		{Name: "repo-main/link", Typeflag: tar.TypeSymlink, Linkname: "/etc/passwd", Mode: 0o777},
	}
	for _, hdr := range headers {
		if err := tw.WriteHeader(hdr); err != nil {
			t.Fatalf("writing header: %v", err)
		}
	}
	tw.Close()
	gzw.Close()

	root, err := extract(ws, buf.Bytes(), "repo")
	if err != nil {
		t.Fatalf("extract() error: %v", err)
	}
	if _, err := os.Lstat(filepath.Join(root, "link")); !os.IsNotExist(err) {
		t.Error("symlink entry should have been skipped")
	}
}

func TestExtractBadGzip(t *testing.T) {
	ws, err := newWorkspace()
	if err != nil {
		t.Fatalf("newWorkspace() error: %v", err)
	}
	defer ws.Close()

	if _, err := extract(ws, []byte("not a gzip stream"), "repo"); err == nil {
		t.Fatal("extract() expected error for corrupt archive, got nil")
	}
}
