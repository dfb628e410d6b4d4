package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/h2non/filetype"
	"github.com/labstack/gommon/random"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	ErrBadContentType = errors.New("content type not allowed")
	ErrTooLarge       = errors.New("file too large")
)

// BlobStore is the blob storage collaborator: given bytes plus a declared
// content type it returns a stored filename or rejects. Delete is a no-op
// when the file is already gone.
type BlobStore interface {
	Save(data []byte, contentType, prefix string) (string, error)
	Delete(filename string)
}

// DiskStore keeps blobs as flat files in one directory.
type DiskStore struct {
	dir     string
	maxSize int64
	allowed map[string]bool
}

func NewDiskStore(dir string, maxSize int64, allowedTypes []string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrap(err, "create upload dir")
	}
	allowed := make(map[string]bool, len(allowedTypes))
	for _, t := range allowedTypes {
		allowed[t] = true
	}
	return &DiskStore{dir: dir, maxSize: maxSize, allowed: allowed}, nil
}

// Save validates the declared and sniffed content type against the allow list
// and the byte size against the limit, then writes the bytes under a
// collision resistant filename. Validation happens before any write.
func (s *DiskStore) Save(data []byte, contentType, prefix string) (string, error) {
	if int64(len(data)) > s.maxSize {
		return "", errors.Wrapf(ErrTooLarge, "%d bytes exceeds limit of %d", len(data), s.maxSize)
	}
	if !s.allowed[contentType] {
		return "", errors.Wrapf(ErrBadContentType, "declared type %q", contentType)
	}
	kind, err := filetype.Match(data)
	if err != nil || kind == filetype.Unknown || !s.allowed[kind.MIME.Value] {
		return "", errors.Wrapf(ErrBadContentType, "detected type %q", kind.MIME.Value)
	}

	filename := fmt.Sprintf("%s_%s.%s", prefix, random.String(8, random.Alphanumeric), kind.Extension)
	if err := os.WriteFile(filepath.Join(s.dir, filename), data, 0644); err != nil {
		return "", errors.Wrap(err, "write blob")
	}
	return filename, nil
}

// Delete removes a stored file. A missing file is not an error, losing a
// stale blob is acceptable.
func (s *DiskStore) Delete(filename string) {
	if filename == "" {
		return
	}
	if err := os.Remove(filepath.Join(s.dir, filepath.Base(filename))); err != nil && !os.IsNotExist(err) {
		zap.L().Warn("failed to delete blob", zap.String("filename", filename), zap.Error(err))
	}
}
