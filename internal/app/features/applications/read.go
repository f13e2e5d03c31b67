// internal/app/features/applications/read.go
package applications

import (
	"errors"
	"net/http"

	"github.com/dalemusser/clubhub/internal/app/features/shared/params"
	applicationstore "github.com/dalemusser/clubhub/internal/app/store/applications"
	"github.com/dalemusser/clubhub/internal/app/system/paging"
	"github.com/dalemusser/clubhub/internal/app/system/respond"
	"github.com/dalemusser/clubhub/internal/app/system/timeouts"
	"github.com/dalemusser/clubhub/internal/domain/models"
)

// ServeList handles GET /applications?status=&limit=, newest first.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	status, err := paging.ParseEnum(r, "status", models.ApplicationStatuses)
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad applications query", err, err.Error())
		return
	}
	limit, err := paging.ParseLimit(r, paging.ApplicationsLimit)
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad applications query", err, err.Error())
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list applications")
	defer cancel()

	list, err := h.Store.List(ctx, applicationstore.ListOptions{Status: status, Limit: limit})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list applications failed", err, "Unable to load applications.")
		return
	}
	respond.OK(w, list)
}

// ServeView handles GET /applications/{id}.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	id, ok := params.ID(r)
	if !ok {
		h.ErrLog.LogNotFound(w, r, "malformed application id", "Application not found.")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "get application")
	defer cancel()

	a, err := h.Store.GetByID(ctx, id)
	if errors.Is(err, applicationstore.ErrNotFound) {
		h.ErrLog.LogNotFound(w, r, "application not found", "Application not found.")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "get application failed", err, "Unable to load application.")
		return
	}
	respond.OK(w, a)
}
