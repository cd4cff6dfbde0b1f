package http

import (
	"net/http"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte(serverVersion))
}

// healthz reports 200 when the database answers a ping and 503 otherwise.
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")

	if h.health != nil {
		if err := h.health.PingContext(r.Context()); err != nil {
			h.logger.Err(err).Str("func", "*Handler.healthz").Msg("database ping failed")
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("unavailable"))
			return
		}
	}

	_, _ = w.Write([]byte("ok"))
}
