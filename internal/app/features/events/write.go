// internal/app/features/events/write.go
package events

import (
	"errors"
	"net/http"

	"github.com/dalemusser/clubhub/internal/app/features/shared/params"
	eventstore "github.com/dalemusser/clubhub/internal/app/store/events"
	"github.com/dalemusser/clubhub/internal/app/system/inputval"
	"github.com/dalemusser/clubhub/internal/app/system/respond"
	"github.com/dalemusser/clubhub/internal/app/system/timeouts"
	"github.com/dalemusser/clubhub/internal/domain/models"
	"go.uber.org/zap"
)

// decode reads the body and converts it to a patch, writing the 400
// itself when either step fails.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request) (eventstore.Patch, bool) {
	var in eventInput
	if err := respond.Decode(w, r, &in); err != nil {
		msg, _ := respond.IsBodyError(err)
		h.ErrLog.LogBadRequest(w, r, "decode event failed", err, msg)
		return eventstore.Patch{}, false
	}
	p, err := in.patch()
	if errors.Is(err, inputval.ErrBadDate) {
		h.ErrLog.LogBadRequest(w, r, "bad event date", err, dateMessage)
		return eventstore.Patch{}, false
	}
	return p, true
}

// HandleCreate handles POST /events. Status defaults to upcoming.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	p, ok := h.decode(w, r)
	if !ok {
		return
	}

	e := models.Event{Status: models.EventStatusUpcoming, Highlights: []string{}}
	p.Apply(&e)
	if res := inputval.Validate(e); res.HasErrors() {
		h.ErrLog.LogBadRequest(w, r, "event validation failed", nil, res.First())
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "create event")
	defer cancel()

	created, err := h.Store.Create(ctx, e)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "create event failed", err, "Unable to create event.")
		return
	}
	h.Log.Info("event created",
		zap.String("id", created.ID.Hex()),
		zap.String("title", created.Title),
		zap.Time("date", created.Date))
	respond.Created(w, created)
}

// HandleUpdate handles PUT and PATCH /events/{id}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := params.ID(r)
	if !ok {
		h.ErrLog.LogNotFound(w, r, "malformed event id", "Event not found.")
		return
	}

	p, ok := h.decode(w, r)
	if !ok {
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "update event")
	defer cancel()

	cur, err := h.Store.GetByID(ctx, id)
	if errors.Is(err, eventstore.ErrNotFound) {
		h.ErrLog.LogNotFound(w, r, "event not found", "Event not found.")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load event failed", err, "Unable to update event.")
		return
	}

	p.Apply(&cur)
	if res := inputval.Validate(cur); res.HasErrors() {
		h.ErrLog.LogBadRequest(w, r, "event validation failed", nil, res.First())
		return
	}

	updated, err := h.Store.Update(ctx, id, p)
	if errors.Is(err, eventstore.ErrNotFound) {
		h.ErrLog.LogNotFound(w, r, "event deleted during update", "Event not found.")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "update event failed", err, "Unable to update event.")
		return
	}
	respond.OK(w, updated)
}

// HandleDelete handles DELETE /events/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := params.ID(r)
	if !ok {
		h.ErrLog.LogNotFound(w, r, "malformed event id", "Event not found.")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "delete event")
	defer cancel()

	removed, err := h.Store.Delete(ctx, id)
	if errors.Is(err, eventstore.ErrNotFound) {
		h.ErrLog.LogNotFound(w, r, "event not found", "Event not found.")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "delete event failed", err, "Unable to delete event.")
		return
	}
	h.Log.Info("event deleted", zap.String("id", id.Hex()))
	respond.OK(w, removed)
}
