package delivery

import (
	"encoding/json"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/memoboard/internal/models"
	"github.com/Vovarama1992/memoboard/internal/ports"
)

const (
	topNoteRecord = "top-note.json"
	notesRecord   = "notes.json"
)

type NoteHandler struct {
	store ports.RecordStore
	log   *logger.ZapLogger
}

func NewNoteHandler(store ports.RecordStore, log *logger.ZapLogger) *NoteHandler {
	return &NoteHandler{
		store: store,
		log:   log,
	}
}

// POST /set-top-note
func (h *NoteHandler) SetTopNote(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == "" {
		writeFailure(w)
		return
	}

	if err := h.store.Put(topNoteRecord, models.NoteRecord{Text: req.Text}); err != nil {
		writeError(w, err)
		return
	}

	h.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "top note updated",
		Fields:  map[string]any{"length": len(req.Text)},
	})

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// GET /get-top-note
func (h *NoteHandler) GetTopNote(w http.ResponseWriter, r *http.Request) {
	rec := models.NoteRecord{Text: ""}
	h.store.Get(topNoteRecord, &rec)

	writeJSON(w, http.StatusOK, rec)
}

// POST /set-notes — the body must carry an array; entries stay opaque.
func (h *NoteHandler) SetNotes(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Notes []any `json:"notes"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Notes == nil {
		writeFailure(w)
		return
	}

	if err := h.store.Put(notesRecord, models.NotesRecord{Notes: req.Notes}); err != nil {
		writeError(w, err)
		return
	}

	h.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "notes replaced",
		Fields:  map[string]any{"count": len(req.Notes)},
	})

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// GET /get-notes
func (h *NoteHandler) GetNotes(w http.ResponseWriter, r *http.Request) {
	rec := models.NotesRecord{Notes: []any{}}
	h.store.Get(notesRecord, &rec)

	writeJSON(w, http.StatusOK, rec)
}
