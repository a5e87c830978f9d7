package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"

	"velocity-model-service/internal/ports"
)

// CatalogHandler lists the distinct authors and NFOs present in the store,
// one value per line, so downstream tools can discover what to query for.
type CatalogHandler struct {
	Repo ports.ModelRepository
}

func (h *CatalogHandler) Authors(w http.ResponseWriter, r *http.Request) {
	h.listing(w, r, "authors", h.Repo.Authors)
}

func (h *CatalogHandler) NFOs(w http.ResponseWriter, r *http.Request) {
	h.listing(w, r, "nfos", h.Repo.NFOs)
}

// A store failure degrades to an empty listing rather than an error status;
// these endpoints are best-effort discovery aids, not part of the data
// contract.
func (h *CatalogHandler) listing(w http.ResponseWriter, r *http.Request, name string, list func(context.Context) ([]string, error)) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	values, err := list(r.Context())
	if err != nil {
		log.Printf("list %s failed: %v", name, err)
		writeText(w, r, http.StatusOK, "")
		return
	}

	writeText(w, r, http.StatusOK, strings.Join(values, "\n")+"\n")
}
