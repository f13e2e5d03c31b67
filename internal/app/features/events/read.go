// internal/app/features/events/read.go
package events

import (
	"errors"
	"net/http"

	"github.com/dalemusser/clubhub/internal/app/features/shared/params"
	eventstore "github.com/dalemusser/clubhub/internal/app/store/events"
	"github.com/dalemusser/clubhub/internal/app/system/paging"
	"github.com/dalemusser/clubhub/internal/app/system/respond"
	"github.com/dalemusser/clubhub/internal/app/system/timeouts"
	"github.com/dalemusser/clubhub/internal/domain/models"
)

// ServeList handles GET /events?status=&type=&limit=.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	opt, err := listOptions(r)
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad events query", err, err.Error())
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list events")
	defer cancel()

	list, err := h.Store.List(ctx, opt)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list events failed", err, "Unable to load events.")
		return
	}
	respond.OK(w, list)
}

func listOptions(r *http.Request) (eventstore.ListOptions, error) {
	var opt eventstore.ListOptions
	var err error
	if opt.Status, err = paging.ParseEnum(r, "status", models.EventStatuses); err != nil {
		return opt, err
	}
	if opt.Type, err = paging.ParseEnum(r, "type", models.EventTypes); err != nil {
		return opt, err
	}
	if opt.Limit, err = paging.ParseLimit(r, paging.EventsLimit); err != nil {
		return opt, err
	}
	return opt, nil
}

// ServeView handles GET /events/{id}.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	id, ok := params.ID(r)
	if !ok {
		h.ErrLog.LogNotFound(w, r, "malformed event id", "Event not found.")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "get event")
	defer cancel()

	e, err := h.Store.GetByID(ctx, id)
	if errors.Is(err, eventstore.ErrNotFound) {
		h.ErrLog.LogNotFound(w, r, "event not found", "Event not found.")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "get event failed", err, "Unable to load event.")
		return
	}
	respond.OK(w, e)
}
