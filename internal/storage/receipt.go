package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"
)

// ReceiptStore persists uploaded receipt images and returns the stored
// filename. The HTTP layer serves the directory read-only under /uploads.
type ReceiptStore interface {
	Save(file *multipart.FileHeader) (string, error)
}

type diskReceiptStore struct {
	dir string
}

// NewDiskReceiptStore creates the upload directory if absent.
func NewDiskReceiptStore(dir string) (ReceiptStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	return &diskReceiptStore{dir: dir}, nil
}

// Save names the file receipt-<unixMilli><ext>. Two uploads within the
// same millisecond could collide; accepted as a low-probability risk.
func (s *diskReceiptStore) Save(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open uploaded file: %w", err)
	}
	defer src.Close()

	ext := filepath.Ext(file.Filename)
	name := fmt.Sprintf("receipt-%d%s", time.Now().UnixMilli(), ext)

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create receipt file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write receipt file: %w", err)
	}

	return name, nil
}
