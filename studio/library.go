package studio

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/promptlab/llmbridge/internal/utils"
)

const fallbackMime = "application/octet-stream"

// StoredImage describes one image file in the library, with its contents
// inlined as base64 so callers never touch the filesystem directly.
type StoredImage struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Size     int64  `json:"size"`
	MimeType string `json:"mimeType"`
	Base64   string `json:"base64"`
}

// UploadImage is one incoming file for [Store.UploadImages].
type UploadImage struct {
	FileName   string `json:"fileName"`
	MimeType   string `json:"mimeType"`
	DataBase64 string `json:"dataBase64"`
}

// UploadImages decodes and persists the given payloads into the input
// library. Names are sanitized and deduplicated with a "-N" suffix; the
// returned images carry the final on-disk names as both id and name.
func (s *Store) UploadImages(payloads []UploadImage) ([]StoredImage, error) {
	if len(payloads) == 0 {
		return nil, nil
	}

	inputDir, err := s.InputDir()
	if err != nil {
		return nil, err
	}

	stored := make([]StoredImage, 0, len(payloads))
	for _, payload := range payloads {
		name, ok := sanitizeFileName(payload.FileName)
		if !ok {
			return nil, fmt.Errorf("invalid file name supplied: %s", payload.FileName)
		}

		uniqueName, err := ensureUniqueFileName(inputDir, name)
		if err != nil {
			return nil, err
		}
		targetPath := filepath.Join(inputDir, uniqueName)

		trimmed := strings.TrimSpace(payload.DataBase64)
		data, err := base64.StdEncoding.DecodeString(trimmed)
		if err != nil {
			return nil, fmt.Errorf("failed to decode image %q: %w", payload.FileName, err)
		}

		if err := os.WriteFile(targetPath, data, 0o644); err != nil {
			return nil, fmt.Errorf("unable to write file %q: %w", uniqueName, err)
		}

		stored = append(stored, StoredImage{
			ID:       uniqueName,
			Name:     uniqueName,
			Size:     int64(len(data)),
			MimeType: resolveMime(payload.MimeType, targetPath),
			Base64:   trimmed,
		})
	}

	return stored, nil
}

// ListInputImages returns every image in the input library, newest first.
func (s *Store) ListInputImages() ([]StoredImage, error) {
	dir, err := s.InputDir()
	if err != nil {
		return nil, err
	}
	return collectDirectoryImages(dir)
}

// ListOutputImages returns every generated image, newest first.
func (s *Store) ListOutputImages() ([]StoredImage, error) {
	dir, err := s.OutputDir()
	if err != nil {
		return nil, err
	}
	return collectDirectoryImages(dir)
}

// DeleteInputImages removes the named files from the input library. Unsafe
// names and already-missing files are skipped silently.
func (s *Store) DeleteInputImages(ids []string) error {
	dir, err := s.InputDir()
	if err != nil {
		return err
	}
	return deleteFromDirectory(dir, ids)
}

// DeleteOutputImages removes the named files from the output library.
func (s *Store) DeleteOutputImages(ids []string) error {
	dir, err := s.OutputDir()
	if err != nil {
		return err
	}
	return deleteFromDirectory(dir, ids)
}

func deleteFromDirectory(dir string, ids []string) error {
	for _, id := range ids {
		if !isSafeFileName(id) {
			continue
		}
		path := filepath.Join(dir, id)
		if err := os.Remove(path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return fmt.Errorf("failed to delete file %q: %w", id, err)
		}
	}
	return nil
}

// collectDirectoryImages loads every regular file in dir whose extension maps
// to an image/* mime type, sorted by modification time descending.
func collectDirectoryImages(dir string) ([]StoredImage, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("unable to read directory %q: %w", dir, err)
	}

	type timed struct {
		image   StoredImage
		modTime int64
	}

	var images []timed
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		mimeType := utils.DetectMime(path, fallbackMime)
		if !strings.HasPrefix(mimeType, "image/") {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("failed to read metadata for %q: %w", entry.Name(), err)
		}

		image, err := buildStoredImage(path, info.Size(), mimeType)
		if err != nil {
			return nil, err
		}
		images = append(images, timed{image: image, modTime: info.ModTime().UnixNano()})
	}

	sort.SliceStable(images, func(i, j int) bool {
		return images[i].modTime > images[j].modTime
	})

	result := make([]StoredImage, 0, len(images))
	for _, entry := range images {
		result = append(result, entry.image)
	}
	return result, nil
}

func buildStoredImage(path string, size int64, providedMime string) (StoredImage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return StoredImage{}, fmt.Errorf("unable to read file %q: %w", path, err)
	}

	name := filepath.Base(path)
	return StoredImage{
		ID:       name,
		Name:     name,
		Size:     size,
		MimeType: resolveMime(providedMime, path),
		Base64:   utils.EncodeToBase64(data),
	}, nil
}

func resolveMime(candidate, path string) string {
	if trimmed := strings.TrimSpace(candidate); trimmed != "" {
		return trimmed
	}
	return utils.DetectMime(path, fallbackMime)
}
