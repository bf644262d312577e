package filestorage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/yigit/transferdesk/internal/pkg/logger"
)

// LocalStorage saves blobs under a directory on the local filesystem.
type LocalStorage struct {
	basePath string // The root directory where files will be stored
	baseURL  string // The base URL to access the stored files (optional)
}

// NewLocalStorage creates a new LocalStorage instance.
// basePath is the required directory path on the server.
// baseURL is optional; if provided, URL prepends it to blob paths.
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

// resolve maps a blob path to a file below basePath. Paths with ".."
// segments or without a file name are refused, so the result always lies
// strictly below the directory the path names.
func (ls *LocalStorage) resolve(blobPath string) (string, error) {
	slashed := filepath.ToSlash(blobPath)
	switch path.Base(slashed) {
	case ".", "..", "/":
		return "", fmt.Errorf("invalid blob path: %q", blobPath)
	}
	if strings.HasSuffix(slashed, "/") {
		return "", fmt.Errorf("invalid blob path: %q", blobPath)
	}
	for _, seg := range strings.Split(slashed, "/") {
		if seg == ".." {
			return "", fmt.Errorf("invalid blob path: %q", blobPath)
		}
	}
	return filepath.Join(ls.basePath, path.Clean("/"+slashed)), nil
}

// Upload implements BlobStore. The content is written to a temporary file
// first and renamed into place, so a failed copy never leaves a partial blob.
func (ls *LocalStorage) Upload(ctx context.Context, blobPath string, r io.Reader) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dstPath, err := ls.resolve(blobPath)
	if err != nil {
		return err
	}

	dir := filepath.Dir(dstPath)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", dir).Msg("Failed to create subdirectory")
		return fmt.Errorf("failed to create subdirectory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".upload-*")
	if err != nil {
		logger.Error().Err(err).Str("path", dir).Msg("Failed to create temporary file")
		return fmt.Errorf("failed to create destination file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		_ = os.Remove(tmpName)
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded content")
		return fmt.Errorf("failed to save file content: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to save file content: %w", err)
	}
	if err := os.Rename(tmpName, dstPath); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to move file into place: %w", err)
	}

	logger.Info().Str("blob_path", blobPath).Str("saved_as", dstPath).Msg("File saved successfully")
	return nil
}

// URL returns the public address of a stored blob.
func (ls *LocalStorage) URL(blobPath string) string {
	blobPath = strings.TrimLeft(filepath.ToSlash(blobPath), "/")
	if ls.baseURL == "" {
		return "/uploads/" + blobPath
	}
	return strings.TrimRight(ls.baseURL, "/") + "/" + blobPath
}

// BasePath returns the storage root directory.
func (ls *LocalStorage) BasePath() string {
	return ls.basePath
}
