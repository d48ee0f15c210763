package delivery

import (
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/memoboard/internal/models"
	"github.com/Vovarama1992/memoboard/internal/ports"
)

const (
	imageRecord    = "last-image.json"
	topMediaRecord = "top-media.json"
	yesMediaRecord = "yes-media.json"
)

type MediaHandler struct {
	store   ports.RecordStore
	baseURL string
	log     *logger.ZapLogger
}

func NewMediaHandler(store ports.RecordStore, baseURL string, log *logger.ZapLogger) *MediaHandler {
	return &MediaHandler{
		store:   store,
		baseURL: baseURL,
		log:     log,
	}
}

func (h *MediaHandler) fileURL(name string) string {
	return h.baseURL + "/uploads/" + name
}

// POST /upload
func (h *MediaHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	f := UploadedFile(r)
	if f == nil {
		writeFailure(w)
		return
	}

	url := h.fileURL(f.Name)
	if err := h.store.Put(imageRecord, models.ImageRecord{ImageURL: &url}); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"imageUrl": url,
	})
}

// POST /upload-top-media
func (h *MediaHandler) UploadTopMedia(w http.ResponseWriter, r *http.Request) {
	h.uploadMedia(w, r, topMediaRecord)
}

// POST /upload-yes-media
func (h *MediaHandler) UploadYesMedia(w http.ResponseWriter, r *http.Request) {
	h.uploadMedia(w, r, yesMediaRecord)
}

func (h *MediaHandler) uploadMedia(w http.ResponseWriter, r *http.Request, record string) {
	f := UploadedFile(r)
	if f == nil {
		writeFailure(w)
		return
	}

	url := h.fileURL(f.Name)
	rec := models.MediaRecord{URL: url, Type: f.ContentType}

	if err := h.store.Put(record, rec); err != nil {
		writeError(w, err)
		return
	}

	h.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "media record updated",
		Fields: map[string]any{
			"record": record,
			"type":   rec.Type,
		},
	})

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"url":     url,
	})
}

// GET /get-top-media
func (h *MediaHandler) GetTopMedia(w http.ResponseWriter, r *http.Request) {
	h.getMedia(w, r, topMediaRecord)
}

// GET /get-yes-media
func (h *MediaHandler) GetYesMedia(w http.ResponseWriter, r *http.Request) {
	h.getMedia(w, r, yesMediaRecord)
}

func (h *MediaHandler) getMedia(w http.ResponseWriter, r *http.Request, record string) {
	var rec *models.MediaRecord
	if !h.store.Get(record, &rec) {
		// Unmarshal may allocate before failing on a wrong-shape
		// document; the fallback is null either way.
		rec = nil
	}

	// nil encodes as literal null, the pre-first-upload answer
	writeJSON(w, http.StatusOK, rec)
}
