// internal/app/features/applications/write.go
package applications

import (
	"errors"
	"net/http"
	"time"

	"github.com/dalemusser/clubhub/internal/app/features/shared/params"
	applicationstore "github.com/dalemusser/clubhub/internal/app/store/applications"
	"github.com/dalemusser/clubhub/internal/app/system/inputval"
	"github.com/dalemusser/clubhub/internal/app/system/respond"
	"github.com/dalemusser/clubhub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// HandleSubmit handles the public POST /applications. The stored
// application is always pending regardless of what the client sent.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var in applicationInput
	if err := respond.Decode(w, r, &in); err != nil {
		msg, _ := respond.IsBodyError(err)
		h.ErrLog.LogBadRequest(w, r, "decode application failed", err, msg)
		return
	}

	a, err := in.application()
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad date of birth", err, dateOfBirthMessage)
		return
	}
	if res := inputval.Validate(a); res.HasErrors() {
		h.ErrLog.LogBadRequest(w, r, "application validation failed", nil, res.First())
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "submit application")
	defer cancel()

	created, err := h.Store.Create(ctx, a)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "create application failed", err, "Unable to submit application.")
		return
	}
	h.Log.Info("application submitted", zap.String("id", created.ID.Hex()))
	respond.Created(w, created)
}

// HandleReview handles PUT and PATCH /applications/{id}. Only status,
// notes and reviewedBy can change.
func (h *Handler) HandleReview(w http.ResponseWriter, r *http.Request) {
	id, ok := params.ID(r)
	if !ok {
		h.ErrLog.LogNotFound(w, r, "malformed application id", "Application not found.")
		return
	}

	var in reviewInput
	if err := respond.Decode(w, r, &in); err != nil {
		msg, _ := respond.IsBodyError(err)
		h.ErrLog.LogBadRequest(w, r, "decode review failed", err, msg)
		return
	}
	rv := in.review()

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "review application")
	defer cancel()

	cur, err := h.Store.GetByID(ctx, id)
	if errors.Is(err, applicationstore.ErrNotFound) {
		h.ErrLog.LogNotFound(w, r, "application not found", "Application not found.")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load application failed", err, "Unable to update application.")
		return
	}

	rv.Apply(&cur, time.Now().UTC().Truncate(time.Millisecond))
	if res := inputval.Validate(cur); res.HasErrors() {
		h.ErrLog.LogBadRequest(w, r, "review validation failed", nil, res.First())
		return
	}

	updated, err := h.Store.SetReview(ctx, id, rv)
	if errors.Is(err, applicationstore.ErrNotFound) {
		h.ErrLog.LogNotFound(w, r, "application deleted during review", "Application not found.")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "review application failed", err, "Unable to update application.")
		return
	}
	h.Log.Info("application reviewed",
		zap.String("id", id.Hex()),
		zap.String("status", updated.Status),
		zap.String("reviewed_by", updated.ReviewedBy))
	respond.OK(w, updated)
}

// HandleDelete handles DELETE /applications/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := params.ID(r)
	if !ok {
		h.ErrLog.LogNotFound(w, r, "malformed application id", "Application not found.")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "delete application")
	defer cancel()

	removed, err := h.Store.Delete(ctx, id)
	if errors.Is(err, applicationstore.ErrNotFound) {
		h.ErrLog.LogNotFound(w, r, "application not found", "Application not found.")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "delete application failed", err, "Unable to delete application.")
		return
	}
	h.Log.Info("application deleted", zap.String("id", id.Hex()))
	respond.OK(w, removed)
}
