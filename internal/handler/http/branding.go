package http

import (
	"net/http"
)

func (h *Handler) getBranding(w http.ResponseWriter, r *http.Request) {
	values := h.services.BrandingService.GetPublicBranding(r.Context())

	writeJSON(w, r, http.StatusOK, values)
}
