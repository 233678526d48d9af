package platform

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrRootNotFound is returned by FindRoot when no indicator exists up to the filesystem root.
var ErrRootNotFound = errors.New("root not found")

// rootIndicators mark a project root: a .capstone directory, a .git directory or a config file.
var rootIndicators = []string{".capstone", ".git", ConfigFileName}

// FindRoot walks upwards from startDir looking for a project root indicator
// and returns the absolute path of the first directory holding one.
func FindRoot(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		for _, name := range rootIndicators {
			if hasFile(dir, name) {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", ErrRootNotFound
}

// FindConfig returns the config file of the project containing startDir,
// or an empty string when there is none.
func FindConfig(startDir string) (string, error) {
	root, err := FindRoot(startDir)
	if errors.Is(err, ErrRootNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	if !hasFile(root, ConfigFileName) {
		return "", nil
	}
	return filepath.Join(root, ConfigFileName), nil
}

func hasFile(dir, name string) bool {
	path := filepath.Join(dir, name)
	_, err := os.Stat(path)
	return err == nil
}
