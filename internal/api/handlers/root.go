package handlers

import "net/http"

// RootHandler reports the service name and version at the API root.
type RootHandler struct {
	Service string
	Version string
}

func (h *RootHandler) Info(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	res := map[string]string{"service": h.Service, "version": h.Version}
	writeJSON(w, r, http.StatusOK, res)
}
