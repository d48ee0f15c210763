package delivery

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/memoboard/internal/ports"
)

// UploadPolicy is the per-category ceiling a route hands to Accept.
type UploadPolicy struct {
	Types    []string // accepted MIME prefixes, e.g. "image/"
	MaxBytes int64
}

var (
	MediaPolicy = UploadPolicy{Types: []string{"image/", "video/"}, MaxBytes: 200 << 20}
	SoundPolicy = UploadPolicy{Types: []string{"audio/"}, MaxBytes: 10 << 20}
)

func (p UploadPolicy) allows(contentType string) bool {
	for _, prefix := range p.Types {
		if strings.HasPrefix(contentType, prefix) {
			return true
		}
	}
	return false
}

type ctxKey int

const uploadedFileKey ctxKey = 0

// UploadedFile returns the file the middleware stored for this request,
// or nil when the client attached none.
func UploadedFile(r *http.Request) *ports.StoredFile {
	f, _ := r.Context().Value(uploadedFileKey).(*ports.StoredFile)
	return f
}

type Uploader struct {
	files ports.FileSaver
	log   *logger.ZapLogger
}

func NewUploader(files ports.FileSaver, log *logger.ZapLogger) *Uploader {
	return &Uploader{
		files: files,
		log:   log,
	}
}

// Accept streams one multipart file field to disk before the handler runs.
// Requests without the field pass through untouched so the route can answer
// with its own 400. Disallowed types and oversized bodies are rejected here
// and nothing is persisted.
func (u *Uploader) Accept(field string, policy UploadPolicy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			r.Body = http.MaxBytesReader(w, r.Body, policy.MaxBytes)

			mr, err := r.MultipartReader()
			if err != nil {
				// not multipart at all; the handler decides
				next.ServeHTTP(w, r)
				return
			}

			for {
				part, err := mr.NextPart()
				if err == io.EOF {
					break
				}
				if err != nil {
					writeError(w, fmt.Errorf("read multipart: %w", err))
					return
				}

				// plain (non-file) fields never face the policy
				if part.FormName() != field || part.FileName() == "" {
					_ = part.Close()
					continue
				}

				contentType := part.Header.Get("Content-Type")
				if !policy.allows(contentType) {
					_ = part.Close()
					writeError(w, fmt.Errorf("unsupported file type %q for field %s", contentType, field))
					return
				}

				stored, err := u.files.Save(part, part.FileName(), contentType)
				_ = part.Close()
				if err != nil {
					writeError(w, err)
					return
				}

				u.log.Log(logger.LogEntry{
					Level:   "info",
					Message: "upload stored",
					Fields: map[string]any{
						"field": field,
						"name":  stored.Name,
						"type":  stored.ContentType,
						"size":  stored.Size,
					},
				})

				r = r.WithContext(context.WithValue(r.Context(), uploadedFileKey, stored))
				break
			}

			next.ServeHTTP(w, r)
		})
	}
}
