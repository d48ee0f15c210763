package ports

import "io"

// StoredFile describes an upload already written to disk.
type StoredFile struct {
	Name        string
	ContentType string
	Size        int64
}

type FileSaver interface {
	// Save streams src to a freshly named file. originalName only
	// contributes its extension.
	Save(src io.Reader, originalName string, contentType string) (*StoredFile, error)
}
