package fetch

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/agentres/agentres/pkg/resource"
)

// destPath computes the final installed path for a resource:
// dest/<name> for directory-shaped kinds, dest/<name><suffix> otherwise.
func destPath(dest string, kind resource.Kind, name string) string {
	if kind.IsDir() {
		return filepath.Join(dest, name)
	}
	return filepath.Join(dest, name+kind.Suffix())
}

// install copies the resolved resource into dest, replacing any existing
// copy when overwrite is set. The copy goes to a staging path next to the
// target first and is renamed into place, so a failure mid-copy leaves the
// existing installation untouched.
func install(src, dest string, kind resource.Kind, name string, overwrite bool) (string, error) {
	target := destPath(dest, kind, name)

	if _, err := os.Lstat(target); err == nil {
		if !overwrite {
			return "", &ExistsError{Kind: kind, Name: name, Path: target}
		}
	}

	if err := os.MkdirAll(dest, dirPerm); err != nil {
		return "", fmt.Errorf("creating destination directory %s: %w", dest, err)
	}

	// Stage within the destination directory so the final rename stays on
	// one filesystem.
	stagingDir, err := os.MkdirTemp(dest, "."+name+".staging-")
	if err != nil {
		return "", fmt.Errorf("creating staging directory: %w", err)
	}
	defer os.RemoveAll(stagingDir)

	staged := filepath.Join(stagingDir, filepath.Base(target))
	if kind.IsDir() {
		err = copyDir(src, staged)
	} else {
		err = copyFile(src, staged)
	}
	if err != nil {
		return "", fmt.Errorf("copying %s '%s': %w", kind, name, err)
	}

	if err := os.RemoveAll(target); err != nil {
		return "", fmt.Errorf("removing existing %s: %w", target, err)
	}
	if err := os.Rename(staged, target); err != nil {
		return "", fmt.Errorf("moving %s into place: %w", kind, err)
	}

	return target, nil
}

// copyDir recursively copies the directory tree at src to dst, preserving
// file modes. dst must not exist.
func copyDir(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dst, info.Mode()&0o777); err != nil {
		return err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			if err := copyDir(srcPath, dstPath); err != nil {
				return err
			}
			continue
		}
		if !entry.Type().IsRegular() {
			continue
		}
		if err := copyFile(srcPath, dstPath); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode()&0o777)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
