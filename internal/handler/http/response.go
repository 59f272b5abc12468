package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-brand-kit/internal/logger"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "writeJSON").Msg("error encoding response")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}
