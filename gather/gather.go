// Package gather produces the source text the documenter consumes, from a
// single file, a repository directory, or an extracted zip archive.
package gather

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/repodocs/repodoc/common"
	"github.com/repodocs/repodoc/logger"
)

// ErrUnavailable is returned when a source file or directory cannot be read
var ErrUnavailable = errors.New("input unavailable")

// File reads a single source file
func File(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return string(data), nil
}

// Repository walks root and concatenates every file matching the configured
// extensions, each prefixed with a "=== relative_path ===" marker line.
// Files that cannot be read are logged and skipped; this is the only
// tolerated partial failure in the pipeline.
func Repository(root string, settings common.Gather) (string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s is not a directory", ErrUnavailable, root)
	}

	var parts []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warnf("Could not access %s: %v", path, err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path != root && settings.IsExcludedDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !settings.HasExtension(d.Name()) {
			return nil
		}

		relPath, relErr := filepath.Rel(root, path)
		if relErr != nil {
			relPath = path
		}

		content, readErr := os.ReadFile(path)
		if readErr != nil {
			logger.Warnf("Warning: Could not read %s: %v", relPath, readErr)
			return nil
		}

		parts = append(parts, fmt.Sprintf("\n=== %s ===\n%s", filepath.ToSlash(relPath), content))
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: failed to gather directory content: %v", ErrUnavailable, err)
	}

	return strings.Join(parts, "\n"), nil
}

// ExtractZip unpacks archive into destDir, refusing entries that would
// escape it.
func ExtractZip(archive, destDir string) error {
	reader, err := zip.OpenReader(archive)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer reader.Close()

	for _, file := range reader.File {
		target := filepath.Join(destDir, file.Name)
		if !strings.HasPrefix(target, filepath.Clean(destDir)+string(os.PathSeparator)) {
			return fmt.Errorf("%w: archive entry escapes destination: %s", ErrUnavailable, file.Name)
		}

		if file.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("%w: %v", ErrUnavailable, err)
			}
			continue
		}

		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("%w: %v", ErrUnavailable, err)
		}

		if err := extractZipFile(file, target); err != nil {
			return err
		}
	}
	return nil
}

func extractZipFile(file *zip.File, target string) error {
	src, err := file.Open()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer src.Close()

	dst, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, file.Mode())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// Zips lists the zip archives directly inside dir
func Zips(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var archives []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".zip") {
			continue
		}
		archives = append(archives, filepath.Join(dir, entry.Name()))
	}
	return archives, nil
}
