package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"velocity-model-service/internal/domain"
	"velocity-model-service/internal/format"
	"velocity-model-service/internal/ports"
)

// ModelHandler serves the two velocity model query endpoints. It validates
// query parameters, enforces the pagination window against the total match
// count, and hands the sorted slice to the pure formatters.
type ModelHandler struct {
	Repo    ports.ModelRepository
	Bibrefs ports.BibrefResolver
}

// Profile1D serves GET /1d/: 1D profile points filtered by author and NFO,
// rendered as a VELEST text block.
func (h *ModelHandler) Profile1D(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	author := strings.TrimSpace(r.URL.Query().Get("author"))
	if author == "" {
		writeError(w, r, http.StatusBadRequest, "author is required")
		return
	}
	nfo := strings.TrimSpace(r.URL.Query().Get("nfo"))
	if nfo == "" {
		writeError(w, r, http.StatusBadRequest, "nfo is required")
		return
	}

	limit, offset, errMsg := pageParams(r)
	if errMsg != "" {
		writeError(w, r, http.StatusBadRequest, errMsg)
		return
	}

	ctx := r.Context()

	total, err := h.Repo.Count1D(ctx, author, nfo)
	if err != nil {
		log.Printf("count 1d models failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	if total == 0 {
		writeError(w, r, http.StatusNotFound,
			fmt.Sprintf("No data found for author: %s and NFO: %s", author, nfo))
		return
	}
	if offset >= total {
		writeError(w, r, http.StatusBadRequest,
			fmt.Sprintf("Offset %d exceeds total records (%d). Max offset: %d", offset, total, total-1))
		return
	}

	points, err := h.Repo.List1D(ctx, author, nfo, limit, offset)
	if err != nil {
		log.Printf("list 1d models failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	bibref, err := h.Bibrefs.Bibref(ctx, author)
	if err != nil {
		log.Printf("bibref lookup failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	body := format.Profile(points, bibref, domain.Page{Total: total, Offset: offset, Limit: limit})
	writeText(w, r, http.StatusOK, body)
}

// Grid3D serves GET /3d/: 3D grid points of one wave type filtered by
// author, rendered as a pipe-delimited table.
func (h *ModelHandler) Grid3D(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	wave, err := domain.ParseWaveType(r.URL.Query().Get("wave_type"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "wave_type must be VP or VS")
		return
	}

	author := strings.TrimSpace(r.URL.Query().Get("author"))
	if author == "" {
		writeError(w, r, http.StatusBadRequest, "author is required")
		return
	}

	includeR := false
	if raw := r.URL.Query().Get("include_r"); raw != "" {
		includeR, err = strconv.ParseBool(raw)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "include_r must be a boolean")
			return
		}
	}

	limit, offset, errMsg := pageParams(r)
	if errMsg != "" {
		writeError(w, r, http.StatusBadRequest, errMsg)
		return
	}

	ctx := r.Context()

	total, err := h.Repo.Count3D(ctx, wave, author)
	if err != nil {
		log.Printf("count 3d models failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	if total == 0 {
		writeError(w, r, http.StatusNotFound,
			fmt.Sprintf("No %s data found for author: %s", wave, author))
		return
	}
	if offset >= total {
		writeError(w, r, http.StatusBadRequest,
			fmt.Sprintf("Offset %d exceeds total records (%d). Max offset: %d", offset, total, total-1))
		return
	}

	points, err := h.Repo.List3D(ctx, wave, author, limit, offset)
	if err != nil {
		log.Printf("list 3d models failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	bibref, err := h.Bibrefs.Bibref(ctx, author)
	if err != nil {
		log.Printf("bibref lookup failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	body := format.Grid(points, wave, includeR, bibref, domain.Page{Total: total, Offset: offset, Limit: limit})
	writeText(w, r, http.StatusOK, body)
}
