package http

import (
	"net/http"

	"github.com/MKhiriev/go-brand-kit/internal/logger"
)

func (h *Handler) getPasskeyOptions(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	opts, err := h.services.PasskeyService.GetRelyingPartyOptions(r.Context())
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("func", "*Handler.getPasskeyOptions").Msg("error deriving passkey options")
		http.Error(w, http.StatusText(status), status)
		return
	}

	writeJSON(w, r, http.StatusOK, opts)
}
