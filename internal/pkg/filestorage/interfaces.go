package filestorage

import (
	"io"
	"mime/multipart"
)

// FileStorage abstracts persistence of uploaded documents.
type FileStorage interface {
	// SaveFile stores the uploaded file and returns the relative path it was stored under.
	SaveFile(file *multipart.FileHeader) (string, error)
	// Open returns a reader for a previously stored file.
	Open(path string) (io.ReadCloser, error)
	// DeleteFile removes a stored file. Missing files are not an error.
	DeleteFile(path string) error
	// FullPath resolves a stored relative path to an absolute filesystem path.
	FullPath(path string) string
}
