package filestorage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/kareemh/maarif/internal/pkg/logger"
)

// Storage persists processed image blobs and returns a public URL for them.
type Storage interface {
	SaveImage(data []byte) (string, error)
	Remove(url string) error
}

// LocalStorage handles saving files to the local filesystem.
type LocalStorage struct {
	basePath string
	baseURL  string
}

// NewLocalStorage creates a new LocalStorage instance.
// basePath is the directory files are written to; baseURL is prepended to
// returned file names to build publicly servable URLs.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath: basePath,
		baseURL:  baseURL,
	}, nil
}

// SaveImage writes an already-processed image blob under a unique name and
// returns the URL it will be served from.
func (ls *LocalStorage) SaveImage(data []byte) (string, error) {
	uniqueFilename := uuid.New().String() + ".jpg"
	dstPath := filepath.Join(ls.basePath, uniqueFilename)

	if err := os.WriteFile(dstPath, data, 0o644); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to write image file")
		return "", fmt.Errorf("failed to write image file: %w", err)
	}

	return strings.TrimRight(ls.baseURL, "/") + "/" + uniqueFilename, nil
}

// Remove deletes the stored file a URL points at. Unknown URLs are ignored.
func (ls *LocalStorage) Remove(url string) error {
	name := filepath.Base(url)
	if name == "." || name == "/" || name == "" {
		return nil
	}
	err := os.Remove(filepath.Join(ls.basePath, name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove image file: %w", err)
	}
	return nil
}
