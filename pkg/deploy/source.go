package deploy

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var (
	ErrSourceDirMissing  = errors.New("source directory does not exist")
	ErrSourceFileMissing = errors.New("source file does not exist")
)

// FileEntry pairs a local file with the name it gets on the board
type FileEntry struct {
	LocalPath  string
	RemoteName string
}

// Enumerate lists the regular files directly inside sourceDir, skipping
// excluded names. The listing is non-recursive and lexicographic, which
// fixes the transfer order.
func Enumerate(sourceDir string, exclude []string) ([]FileEntry, error) {
	if err := checkSourceDir(sourceDir); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(sourceDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read source directory %s: %w", sourceDir, err)
	}

	var files []FileEntry
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if isExcluded(entry.Name(), exclude) {
			continue
		}

		files = append(files, FileEntry{
			LocalPath:  filepath.Join(sourceDir, entry.Name()),
			RemoteName: entry.Name(),
		})
	}

	return files, nil
}

// SingleFile resolves a single named file inside sourceDir. The exclude
// list does not apply; naming a file explicitly overrides it.
func SingleFile(sourceDir, name string) ([]FileEntry, error) {
	if err := checkSourceDir(sourceDir); err != nil {
		return nil, err
	}

	localPath := filepath.Join(sourceDir, name)
	info, err := os.Stat(localPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s (expected in %s)", ErrSourceFileMissing, name, sourceDir)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", localPath, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s is not a regular file", ErrSourceFileMissing, name)
	}

	return []FileEntry{{LocalPath: localPath, RemoteName: name}}, nil
}

func checkSourceDir(sourceDir string) error {
	info, err := os.Stat(sourceDir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s (hint: run from the project root or fix source_dir)", ErrSourceDirMissing, sourceDir)
		}
		return fmt.Errorf("failed to stat source directory %s: %w", sourceDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrSourceDirMissing, sourceDir)
	}
	return nil
}

func isExcluded(name string, exclude []string) bool {
	for _, e := range exclude {
		if e == name {
			return true
		}
	}
	return false
}
