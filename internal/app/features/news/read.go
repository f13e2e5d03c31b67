// internal/app/features/news/read.go
package news

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dalemusser/clubhub/internal/app/features/shared/params"
	newsstore "github.com/dalemusser/clubhub/internal/app/store/news"
	"github.com/dalemusser/clubhub/internal/app/system/adminauth"
	"github.com/dalemusser/clubhub/internal/app/system/paging"
	"github.com/dalemusser/clubhub/internal/app/system/respond"
	"github.com/dalemusser/clubhub/internal/app/system/timeouts"
	"github.com/dalemusser/clubhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
)

// ServeList handles GET /news?published=&featured=&category=&limit=.
// Without the admin key only published articles are listed, so a public
// published=false query is always empty.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	opt, err := listOptions(r)
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad news query", err, err.Error())
		return
	}
	if !adminauth.IsAdmin(r.Context()) {
		if opt.Published != nil && !*opt.Published {
			respond.OK(w, []models.News{})
			return
		}
		published := true
		opt.Published = &published
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list news")
	defer cancel()

	list, err := h.Store.List(ctx, opt)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list news failed", err, "Unable to load news.")
		return
	}
	respond.OK(w, list)
}

func listOptions(r *http.Request) (newsstore.ListOptions, error) {
	var opt newsstore.ListOptions
	var err error
	if opt.Published, err = paging.ParseBool(r, "published"); err != nil {
		return opt, err
	}
	if opt.Featured, err = paging.ParseBool(r, "featured"); err != nil {
		return opt, err
	}
	if opt.Limit, err = paging.ParseLimit(r, paging.NewsLimit); err != nil {
		return opt, err
	}
	opt.Category = strings.TrimSpace(query.Get(r, "category"))
	return opt, nil
}

// ServeView handles GET /news/{id}.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	id, ok := params.ID(r)
	if !ok {
		h.ErrLog.LogNotFound(w, r, "malformed news id", "Article not found.")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "get news")
	defer cancel()

	n, err := h.Store.GetByID(ctx, id)
	if err == nil && !n.IsPublished && !adminauth.IsAdmin(r.Context()) {
		err = newsstore.ErrNotFound
	}
	if errors.Is(err, newsstore.ErrNotFound) {
		h.ErrLog.LogNotFound(w, r, "news not found", "Article not found.")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "get news failed", err, "Unable to load article.")
		return
	}
	respond.OK(w, n)
}
