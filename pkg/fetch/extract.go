package fetch

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const filePerm = 0o644

// extract writes the archive bytes into the workspace, unpacks them, and
// returns the path of the extracted repository root. The tarball is
// expected to contain a single <repo>-main top-level directory; its
// absence is a LayoutError.
func extract(w *workspace, archive []byte, repo string) (string, error) {
	if err := os.WriteFile(w.Path("repo.tar.gz"), archive, filePerm); err != nil {
		return "", fmt.Errorf("writing archive: %w", err)
	}

	if err := w.EnsureDir("extracted"); err != nil {
		return "", fmt.Errorf("creating extraction directory: %w", err)
	}

	f, err := os.Open(w.Path("repo.tar.gz"))
	if err != nil {
		return "", fmt.Errorf("opening archive: %w", err)
	}
	defer f.Close()

	if err := untar(f, w.Path("extracted")); err != nil {
		return "", fmt.Errorf("extracting archive: %w", err)
	}

	rootName := repo + "-" + DefaultBranch
	if !w.Exists("extracted", rootName) {
		return "", &LayoutError{Expected: rootName}
	}
	return w.Path("extracted", rootName), nil
}

// untar unpacks a gzip-compressed tar stream into dest. Entries that would
// escape dest (path traversal) are rejected; entry types other than
// regular files and directories are skipped.
func untar(r io.Reader, dest string) error {
	gzr, err := gzip.NewReader(r)
	if err != nil {
		return fmt.Errorf("reading gzip stream: %w", err)
	}
	defer gzr.Close()

	tr := tar.NewReader(gzr)
	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		target, err := sanitizePath(dest, header.Name)
		if err != nil {
			return err
		}

		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, dirPerm); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), dirPerm); err != nil {
				return err
			}
			out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, os.FileMode(header.Mode)&0o777)
			if err != nil {
				return err
			}
			if _, err := io.Copy(out, tr); err != nil {
				out.Close()
				return err
			}
			if err := out.Close(); err != nil {
				return err
			}
		default:
			// Symlinks, devices, etc. are never part of a resource.
		}
	}
	return nil
}

// sanitizePath joins name under dest and verifies the result stays inside
// dest.
func sanitizePath(dest, name string) (string, error) {
	target := filepath.Join(dest, filepath.FromSlash(name))
	if target != dest && !strings.HasPrefix(target, dest+string(os.PathSeparator)) {
		return "", fmt.Errorf("archive entry %q escapes extraction directory", name)
	}
	return target, nil
}
