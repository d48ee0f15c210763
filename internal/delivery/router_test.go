package delivery

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/memoboard/internal/infra"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const testBaseURL = "http://localhost:3000"

type testEnv struct {
	router    chi.Router
	dataDir   string
	uploadDir string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dataDir := t.TempDir()
	uploadDir := t.TempDir()

	zl := logger.NewZapLogger(zap.NewNop().Sugar())
	store := infra.NewFileRecordStore(dataDir)

	files, err := infra.NewDiskFileSaver(uploadDir)
	if err != nil {
		t.Fatalf("NewDiskFileSaver failed: %v", err)
	}

	r := chi.NewRouter()
	RegisterRoutes(r,
		NewUploader(files, zl),
		NewMediaHandler(store, testBaseURL, zl),
		NewNoteHandler(store, zl),
		NewSoundHandler(store, testBaseURL, zl),
		NewFilesHandler(uploadDir),
	)

	return &testEnv{router: r, dataDir: dataDir, uploadDir: uploadDir}
}

func (e *testEnv) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

// fileUpload builds a multipart body carrying one file part with an explicit
// Content-Type (CreateFormFile would force application/octet-stream).
func fileUpload(t *testing.T, field, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename))
	hdr.Set("Content-Type", contentType)

	part, err := mw.CreatePart(hdr)
	if err != nil {
		t.Fatalf("CreatePart failed: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	return &buf, mw.FormDataContentType()
}
