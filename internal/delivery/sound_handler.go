package delivery

import (
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/memoboard/internal/models"
	"github.com/Vovarama1992/memoboard/internal/ports"
)

const soundRecord = "sound.json"

type SoundHandler struct {
	store   ports.RecordStore
	baseURL string
	log     *logger.ZapLogger
}

func NewSoundHandler(store ports.RecordStore, baseURL string, log *logger.ZapLogger) *SoundHandler {
	return &SoundHandler{
		store:   store,
		baseURL: baseURL,
		log:     log,
	}
}

// POST /upload-sound
func (h *SoundHandler) UploadSound(w http.ResponseWriter, r *http.Request) {
	f := UploadedFile(r)
	if f == nil {
		writeFailure(w)
		return
	}

	url := h.baseURL + "/uploads/" + f.Name
	if err := h.store.Put(soundRecord, models.SoundRecord{SoundURL: &url}); err != nil {
		writeError(w, err)
		return
	}

	h.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "sound record updated",
		Fields:  map[string]any{"name": f.Name},
	})

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"soundUrl": url,
	})
}

// GET /get-sound
func (h *SoundHandler) GetSound(w http.ResponseWriter, r *http.Request) {
	rec := models.SoundRecord{}
	h.store.Get(soundRecord, &rec)

	writeJSON(w, http.StatusOK, rec)
}
