package oss

import (
	"context"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Storage is the file-storage collaborator. Every uploaded file is owned
// by exactly one content row; deleting the row deletes the file through
// Delete. URLs returned by the Upload methods are what gets persisted.
type Storage interface {
	// UploadBytes stores raw bytes (pdf, video, captions) and returns the public URL.
	UploadBytes(ctx context.Context, category, filename string, data []byte) (string, error)
	// UploadImage re-encodes the image to webp before storing.
	UploadImage(ctx context.Context, category, filename string, data []byte) (string, error)
	// Delete removes the object a previously returned URL points at.
	// Deleting an already-gone object is not an error.
	Delete(ctx context.Context, publicURL string) error
}

// ObjectName builds the storage key: {category}/{random-hex}{ext}.
// The category is fixed per file field and only groups objects; it
// carries no other meaning.
func ObjectName(category, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.Trim(category, "/") + "/" + hex + ext
}

const maxUploadSize = 25 * 1024 * 1024

// ReadFormFile drains a multipart file header with a size guard.
func ReadFormFile(fh *multipart.FileHeader) ([]byte, error) {
	if fh.Size > maxUploadSize {
		return nil, ErrFileTooLarge
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, maxUploadSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxUploadSize {
		return nil, ErrFileTooLarge
	}
	return data, nil
}
