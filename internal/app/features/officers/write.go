// internal/app/features/officers/write.go
package officers

import (
	"errors"
	"net/http"

	"github.com/dalemusser/clubhub/internal/app/features/shared/params"
	officerstore "github.com/dalemusser/clubhub/internal/app/store/officers"
	"github.com/dalemusser/clubhub/internal/app/system/inputval"
	"github.com/dalemusser/clubhub/internal/app/system/respond"
	"github.com/dalemusser/clubhub/internal/app/system/timeouts"
	"github.com/dalemusser/clubhub/internal/domain/models"
	"go.uber.org/zap"
)

// HandleCreate handles POST /officers.
// New officers are active with rank 0 unless the body says otherwise.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in officerInput
	if err := respond.Decode(w, r, &in); err != nil {
		msg, _ := respond.IsBodyError(err)
		h.ErrLog.LogBadRequest(w, r, "decode officer failed", err, msg)
		return
	}

	o := models.Officer{IsActive: true}
	in.patch().Apply(&o)
	if res := inputval.Validate(o); res.HasErrors() {
		h.ErrLog.LogBadRequest(w, r, "officer validation failed", nil, res.First())
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "create officer")
	defer cancel()

	created, err := h.Store.Create(ctx, o)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "create officer failed", err, "Unable to create officer.")
		return
	}
	h.Log.Info("officer created", zap.String("id", created.ID.Hex()), zap.String("name", created.Name))
	respond.Created(w, created)
}

// HandleUpdate handles PUT and PATCH /officers/{id}. Only supplied fields
// change, and the merged record must still be valid.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := params.ID(r)
	if !ok {
		h.ErrLog.LogNotFound(w, r, "malformed officer id", "Officer not found.")
		return
	}

	var in officerInput
	if err := respond.Decode(w, r, &in); err != nil {
		msg, _ := respond.IsBodyError(err)
		h.ErrLog.LogBadRequest(w, r, "decode officer failed", err, msg)
		return
	}
	p := in.patch()

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "update officer")
	defer cancel()

	cur, err := h.Store.GetByID(ctx, id)
	if errors.Is(err, officerstore.ErrNotFound) {
		h.ErrLog.LogNotFound(w, r, "officer not found", "Officer not found.")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load officer failed", err, "Unable to update officer.")
		return
	}

	p.Apply(&cur)
	if res := inputval.Validate(cur); res.HasErrors() {
		h.ErrLog.LogBadRequest(w, r, "officer validation failed", nil, res.First())
		return
	}

	updated, err := h.Store.Update(ctx, id, p)
	if errors.Is(err, officerstore.ErrNotFound) {
		h.ErrLog.LogNotFound(w, r, "officer deleted during update", "Officer not found.")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "update officer failed", err, "Unable to update officer.")
		return
	}
	respond.OK(w, updated)
}

// HandleDelete handles DELETE /officers/{id} and returns the removed record.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := params.ID(r)
	if !ok {
		h.ErrLog.LogNotFound(w, r, "malformed officer id", "Officer not found.")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "delete officer")
	defer cancel()

	removed, err := h.Store.Delete(ctx, id)
	if errors.Is(err, officerstore.ErrNotFound) {
		h.ErrLog.LogNotFound(w, r, "officer not found", "Officer not found.")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "delete officer failed", err, "Unable to delete officer.")
		return
	}
	h.Log.Info("officer deleted", zap.String("id", id.Hex()))
	respond.OK(w, removed)
}
