package studio

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

const (
	inputDirName  = "input"
	outputDirName = "output"
)

// Store anchors all workspace state under one base directory. Input images,
// generated outputs, prompt templates and generation logs each live in a
// fixed subdirectory so nothing escapes the workspace.
type Store struct {
	baseDir  string
	client   *http.Client
	endpoint string
}

// NewStore returns a store rooted at baseDir. The directory itself is created
// lazily by the first operation that needs it.
func NewStore(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// BaseDir reports the workspace root.
func (s *Store) BaseDir() string {
	return s.baseDir
}

// InputDir ensures the input library directory exists and returns its path.
func (s *Store) InputDir() (string, error) {
	return s.ensureDir(inputDirName)
}

// OutputDir ensures the output library directory exists and returns its path.
func (s *Store) OutputDir() (string, error) {
	return s.ensureDir(outputDirName)
}

func (s *Store) ensureDir(name string) (string, error) {
	path := filepath.Join(s.baseDir, name)
	if err := os.MkdirAll(path, 0o755); err != nil {
		return "", fmt.Errorf("unable to create directory %q: %w", path, err)
	}
	return path, nil
}

// sanitizeFileName trims the name and rejects anything that could escape the
// library directory. It returns the cleaned name and whether it is usable.
func sanitizeFileName(fileName string) (string, bool) {
	trimmed := strings.TrimSpace(fileName)
	if !isSafeFileName(trimmed) {
		return "", false
	}
	return trimmed, true
}

func isSafeFileName(fileName string) bool {
	return fileName != "" &&
		!strings.ContainsAny(fileName, `/\`) &&
		!strings.Contains(fileName, "..") &&
		!strings.ContainsRune(fileName, 0)
}

// ensureUniqueFileName returns original if no file with that name exists in
// dir, otherwise the first free "stem-N.ext" variant.
func ensureUniqueFileName(dir, original string) (string, error) {
	if exists, err := fileExists(filepath.Join(dir, original)); err != nil {
		return "", err
	} else if !exists {
		return original, nil
	}

	ext := filepath.Ext(original)
	stem := strings.TrimSuffix(original, ext)
	if stem == "" {
		stem = "image"
	}

	for counter := 1; ; counter++ {
		candidate := fmt.Sprintf("%s-%d%s", stem, counter, ext)
		exists, err := fileExists(filepath.Join(dir, candidate))
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to verify file existence: %w", err)
}
