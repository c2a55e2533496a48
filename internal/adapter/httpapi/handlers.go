package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/couchcryptid/yield-table-service/internal/domain"
)

type handler struct {
	cat    Catalog
	logger *slog.Logger
}

func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (h *handler) ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.cat.CheckReadiness(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"error":  err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func (h *handler) listMeta(w http.ResponseWriter, r *http.Request) {
	metas, err := h.cat.ListMeta()
	if err != nil {
		h.serviceError(w, r, err)
		return
	}

	if wantsHTML(r) {
		renderHTML(w, http.StatusOK, metaListPage(metas))
		return
	}
	writeJSON(w, http.StatusOK, metas)
}

func (h *handler) getMeta(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "yieldTableID", "yield_table_id")
	if !ok {
		return
	}

	meta, err := h.cat.GetMeta(id)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}

	if wantsHTML(r) {
		renderHTML(w, http.StatusOK, metaPage(meta))
		return
	}
	writeJSON(w, http.StatusOK, meta)
}

func (h *handler) getTable(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "yieldTableID", "yield_table_id")
	if !ok {
		return
	}

	table, err := h.cat.GetTable(id)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}

	if wantsHTML(r) {
		renderHTML(w, http.StatusOK, tablePage(table))
		return
	}
	writeJSON(w, http.StatusOK, table)
}

func (h *handler) getInterpolated(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "yieldTableID", "yield_table_id")
	if !ok {
		return
	}

	raw := chi.URLParam(r, "interpolationValue")
	target, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		writeValidationError(w, "interpolation_value", "Input should be a valid number, unable to parse string as a number", raw)
		return
	}

	yc, err := h.cat.GetInterpolated(id, target)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}

	if wantsHTML(r) {
		renderHTML(w, http.StatusOK, classPage(id, yc))
		return
	}
	writeJSON(w, http.StatusOK, yc)
}

// serviceError maps catalog failures to responses: NotFound becomes a 404
// with the identifying message, everything else a 500.
func (h *handler) serviceError(w http.ResponseWriter, r *http.Request, err error) {
	var notFound *domain.NotFoundError
	if errors.As(err, &notFound) {
		writeNotFound(w, r, notFound.Message)
		return
	}

	h.logger.Error("lookup failed", "path", r.URL.Path, "error", err)
	writeJSON(w, http.StatusInternalServerError, detailBody("Internal server error."))
}

// pathInt parses an integer path parameter, answering 422 on failure so
// clients can tell a bad parameter from an unknown id.
func pathInt(w http.ResponseWriter, r *http.Request, param, loc string) (int, bool) {
	raw := chi.URLParam(r, param)
	id, err := strconv.Atoi(raw)
	if err != nil {
		writeValidationError(w, loc, "Input should be a valid integer, unable to parse string as an integer", raw)
		return 0, false
	}
	return id, true
}
