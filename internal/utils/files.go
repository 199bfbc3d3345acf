package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// EnsureDir creates dir and any missing parents. An existing directory is not an error.
func EnsureDir(fs afero.Fs, dir string) error {
	return fs.MkdirAll(dir, 0o755)
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(dir string) (string, error) {
	if !strings.HasPrefix(dir, "~") {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	dir = strings.TrimPrefix(dir, "~")
	dir = strings.TrimPrefix(dir, string(os.PathSeparator))
	dir = strings.TrimPrefix(dir, "/")
	return filepath.Join(home, dir), nil
}

// FindProjectsRoot resolves a relative projects root by walking up from start
// looking for an existing directory called name. If none is found it returns
// start/name. Absolute names are returned cleaned.
func FindProjectsRoot(fs afero.Fs, start, name string) (string, error) {
	if filepath.IsAbs(name) {
		return filepath.Clean(name), nil
	}
	if start == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		start = wd
	}
	dir := start
	for {
		candidate := filepath.Join(dir, name)
		if ok, err := afero.DirExists(fs, candidate); err != nil {
			return "", fmt.Errorf("stat %s: %w", candidate, err)
		} else if ok {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir { // reached filesystem root
			break
		}
		dir = parent
	}
	return filepath.Join(start, name), nil
}
