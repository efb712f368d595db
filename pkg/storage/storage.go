// Package storage turns uploaded binaries into durable, dereferenceable
// assets. Ingestion validates the file, optionally downscales images, and
// hands the bytes to a Store which returns a retrievable URI.
package storage

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	// ErrEmptyUpload is returned for a zero-length buffer or missing filename.
	ErrEmptyUpload = errors.New("storage: empty upload")
	// ErrUnsupportedType is returned when the file fails the allow-list.
	ErrUnsupportedType = errors.New("storage: unsupported file type")
)

const (
	maxImageDimension = 1200
	jpegQuality       = 80
)

// Upload is a raw uploaded binary with its declared metadata.
type Upload struct {
	Data        []byte
	Filename    string
	ContentType string
}

// Asset references ingested content. URI dereferences to the exact bytes
// that were ingested; OriginalName preserves the display name verbatim.
// PreviewURI, when set, points at a downscaled JPEG rendition of an
// oversized image; it never replaces the original.
type Asset struct {
	URI          string  `json:"uri"`
	PreviewURI   *string `json:"preview_uri,omitempty"`
	OriginalName string  `json:"original_name"`
}

// Store persists a blob under a key and returns a retrievable URI.
type Store interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// Ingestor is the attachment pipeline shared by profile photos, resumes and
// company logos.
type Ingestor struct {
	store Store
}

func NewIngestor(store Store) *Ingestor {
	return &Ingestor{store: store}
}

// Ingest validates the upload and stores it. The store write completes
// before any aggregate write is attempted by callers, so a storage failure
// aborts the whole operation.
func (i *Ingestor) Ingest(ctx context.Context, up *Upload) (*Asset, error) {
	if up == nil || len(up.Data) == 0 || strings.TrimSpace(up.Filename) == "" {
		return nil, ErrEmptyUpload
	}

	contentType := up.ContentType
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(up.Data)
	}

	if err := ValidateFile(up.Filename, up.Data, contentType); err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(up.Filename))
	id := uuid.NewString()

	// The original bytes are stored untouched; the URI must dereference
	// to exactly what was ingested.
	uri, err := i.store.Put(ctx, id+ext, up.Data, contentType)
	if err != nil {
		return nil, err
	}

	asset := &Asset{URI: uri, OriginalName: up.Filename}

	// Oversized images additionally get a downscaled JPEG preview under
	// its own key.
	if strings.HasPrefix(contentType, "image/") && ExceedsDimension(up.Data, maxImageDimension) {
		if compressed, err := CompressImage(up.Data, maxImageDimension, jpegQuality); err == nil {
			if previewURI, err := i.store.Put(ctx, id+"_preview.jpg", compressed, "image/jpeg"); err == nil {
				asset.PreviewURI = &previewURI
			}
		}
	}

	return asset, nil
}
