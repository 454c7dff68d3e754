package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ProofStorage keeps proof-of-payment files on local disk and hands
// back a relative reference the withdrawal record stores.
type ProofStorage struct {
	rootPath string
	maxBytes int64
}

func NewProofStorage(rootPath string, maxUploadMB int64) (*ProofStorage, error) {
	if err := os.MkdirAll(rootPath, 0o755); err != nil {
		return nil, fmt.Errorf("storage: failed to create directory %s: %w", rootPath, err)
	}

	return &ProofStorage{
		rootPath: rootPath,
		maxBytes: maxUploadMB * 1024 * 1024,
	}, nil
}

// Save writes the blob under a fresh name and returns its reference.
// The write goes to a temp file first so a failed upload never leaves a
// half-written proof behind.
func (s *ProofStorage) Save(ctx context.Context, withdrawalID int64, originalName string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fileName := fmt.Sprintf("%d_%s%s", withdrawalID, uuid.NewString(), filepath.Ext(originalName))
	targetPath := filepath.Join(s.rootPath, fileName)
	tempPath := targetPath + ".tmp"

	f, err := os.Create(tempPath)
	if err != nil {
		return "", fmt.Errorf("storage: failed to create file: %w", err)
	}
	defer f.Close()

	limited := io.LimitedReader{R: r, N: s.maxBytes + 1}
	written, err := io.Copy(f, &limited)
	if err != nil {
		_ = os.Remove(tempPath)
		return "", fmt.Errorf("storage: failed to write file: %w", err)
	}

	if written > s.maxBytes {
		_ = os.Remove(tempPath)
		return "", fmt.Errorf("storage: file exceeds %d byte limit", s.maxBytes)
	}

	if err := f.Close(); err != nil {
		return "", fmt.Errorf("storage: failed to close file: %w", err)
	}

	if err := os.Rename(tempPath, targetPath); err != nil {
		return "", fmt.Errorf("storage: failed to rename file: %w", err)
	}

	return fileName, nil
}

// Open returns the stored content for a previously saved reference.
func (s *ProofStorage) Open(ref string) (io.ReadCloser, error) {
	clean := filepath.Base(ref)
	return os.Open(filepath.Join(s.rootPath, clean))
}

// Remove deletes a previously saved reference. Removing a reference
// that is already gone is not an error.
func (s *ProofStorage) Remove(ref string) error {
	clean := filepath.Base(ref)
	err := os.Remove(filepath.Join(s.rootPath, clean))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: failed to remove file: %w", err)
	}
	return nil
}
