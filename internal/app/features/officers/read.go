// internal/app/features/officers/read.go
package officers

import (
	"errors"
	"net/http"

	"github.com/dalemusser/clubhub/internal/app/features/shared/params"
	officerstore "github.com/dalemusser/clubhub/internal/app/store/officers"
	"github.com/dalemusser/clubhub/internal/app/system/paging"
	"github.com/dalemusser/clubhub/internal/app/system/respond"
	"github.com/dalemusser/clubhub/internal/app/system/timeouts"
)

// ServeList handles GET /officers[?active=true].
// The roster is small, so no limit applies.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	active, err := paging.ParseBool(r, "active")
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad officers query", err, err.Error())
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list officers")
	defer cancel()

	list, err := h.Store.List(ctx, officerstore.ListOptions{ActiveOnly: active != nil && *active})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list officers failed", err, "Unable to load officers.")
		return
	}
	respond.OK(w, list)
}

// ServeView handles GET /officers/{id}.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	id, ok := params.ID(r)
	if !ok {
		h.ErrLog.LogNotFound(w, r, "malformed officer id", "Officer not found.")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "get officer")
	defer cancel()

	o, err := h.Store.GetByID(ctx, id)
	if errors.Is(err, officerstore.ErrNotFound) {
		h.ErrLog.LogNotFound(w, r, "officer not found", "Officer not found.")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "get officer failed", err, "Unable to load officer.")
		return
	}
	respond.OK(w, o)
}
