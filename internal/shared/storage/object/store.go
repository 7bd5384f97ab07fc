package object

import (
	"context"
	"io"
	"path"
)

// ObjectStore persists plan artifacts: assembled page bundles and the
// rasterized PDFs uploaded by the render callback. Keys are scoped per
// user so one caller can never address another's documents.
type ObjectStore interface {
	Save(ctx context.Context, userID string, fileName string, r io.Reader) (storageKey string, sizeBytes int64, mimeType string, err error)
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
}

// ContentTypeFor maps a plan artifact name to its content type. The
// pipeline produces exactly three kinds of artifact.
func ContentTypeFor(fileName string) string {
	switch path.Ext(fileName) {
	case ".pdf":
		return "application/pdf"
	case ".json":
		return "application/json"
	case ".html":
		return "text/html; charset=utf-8"
	default:
		return "application/octet-stream"
	}
}
