package delivery

import (
	"encoding/json"
	"log"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeFailure is the minimal body shared by every local validation miss.
func writeFailure(w http.ResponseWriter) {
	writeJSON(w, http.StatusBadRequest, map[string]any{"success": false})
}

// writeError is the single sink for propagated errors: upload-policy
// rejections and storage write failures end up here.
func writeError(w http.ResponseWriter, err error) {
	log.Printf("[ERR] %v", err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
