// internal/app/features/news/write.go
package news

import (
	"errors"
	"net/http"

	"github.com/dalemusser/clubhub/internal/app/features/shared/params"
	newsstore "github.com/dalemusser/clubhub/internal/app/store/news"
	"github.com/dalemusser/clubhub/internal/app/system/inputval"
	"github.com/dalemusser/clubhub/internal/app/system/respond"
	"github.com/dalemusser/clubhub/internal/app/system/timeouts"
	"github.com/dalemusser/clubhub/internal/domain/models"
	"go.uber.org/zap"
)

func (h *Handler) decode(w http.ResponseWriter, r *http.Request) (newsstore.Patch, bool) {
	var in newsInput
	if err := respond.Decode(w, r, &in); err != nil {
		msg, _ := respond.IsBodyError(err)
		h.ErrLog.LogBadRequest(w, r, "decode news failed", err, msg)
		return newsstore.Patch{}, false
	}
	p, err := in.patch()
	if errors.Is(err, inputval.ErrBadDate) {
		h.ErrLog.LogBadRequest(w, r, "bad publishedAt", err, publishedAtMessage)
		return newsstore.Patch{}, false
	}
	return p, true
}

// HandleCreate handles POST /news. The store stamps publishedAt when the
// article is published without one.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	p, ok := h.decode(w, r)
	if !ok {
		return
	}

	n := models.News{Tags: []string{}}
	p.Apply(&n)
	if res := inputval.Validate(n); res.HasErrors() {
		h.ErrLog.LogBadRequest(w, r, "news validation failed", nil, res.First())
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "create news")
	defer cancel()

	created, err := h.Store.Create(ctx, n)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "create news failed", err, "Unable to create article.")
		return
	}
	h.Log.Info("news created",
		zap.String("id", created.ID.Hex()),
		zap.String("title", created.Title),
		zap.Bool("published", created.IsPublished))
	respond.Created(w, created)
}

// HandleUpdate handles PUT and PATCH /news/{id}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := params.ID(r)
	if !ok {
		h.ErrLog.LogNotFound(w, r, "malformed news id", "Article not found.")
		return
	}

	p, ok := h.decode(w, r)
	if !ok {
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "update news")
	defer cancel()

	cur, err := h.Store.GetByID(ctx, id)
	if errors.Is(err, newsstore.ErrNotFound) {
		h.ErrLog.LogNotFound(w, r, "news not found", "Article not found.")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load news failed", err, "Unable to update article.")
		return
	}

	p.Apply(&cur)
	if res := inputval.Validate(cur); res.HasErrors() {
		h.ErrLog.LogBadRequest(w, r, "news validation failed", nil, res.First())
		return
	}

	updated, err := h.Store.Update(ctx, id, p)
	if errors.Is(err, newsstore.ErrNotFound) {
		h.ErrLog.LogNotFound(w, r, "news deleted during update", "Article not found.")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "update news failed", err, "Unable to update article.")
		return
	}
	respond.OK(w, updated)
}

// HandleDelete handles DELETE /news/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := params.ID(r)
	if !ok {
		h.ErrLog.LogNotFound(w, r, "malformed news id", "Article not found.")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "delete news")
	defer cancel()

	removed, err := h.Store.Delete(ctx, id)
	if errors.Is(err, newsstore.ErrNotFound) {
		h.ErrLog.LogNotFound(w, r, "news not found", "Article not found.")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "delete news failed", err, "Unable to delete article.")
		return
	}
	h.Log.Info("news deleted", zap.String("id", id.Hex()))
	respond.OK(w, removed)
}
