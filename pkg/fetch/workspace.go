package fetch

import (
	"fmt"
	"os"
	"path/filepath"
)

const dirPerm = 0o755

// workspace is a temporary directory scoped to a single fetch operation.
// Everything written under it (the downloaded archive, the extracted tree)
// is removed by Close on every exit path.
type workspace struct {
	root string
}

func newWorkspace() (*workspace, error) {
	root, err := os.MkdirTemp("", "agentres-*")
	if err != nil {
		return nil, fmt.Errorf("creating temporary workspace: %w", err)
	}
	return &workspace{root: root}, nil
}

// Path returns the absolute path for the given segments joined under the
// workspace root. Does not create or verify the path.
func (w *workspace) Path(segments ...string) string {
	return filepath.Join(append([]string{w.root}, segments...)...)
}

// EnsureDir creates the directory at segments, including parents.
func (w *workspace) EnsureDir(segments ...string) error {
	return os.MkdirAll(w.Path(segments...), dirPerm)
}

// Exists reports whether the path at the given segments exists.
func (w *workspace) Exists(segments ...string) bool {
	_, err := os.Stat(w.Path(segments...))
	return err == nil
}

func (w *workspace) Close() {
	os.RemoveAll(w.root)
}
