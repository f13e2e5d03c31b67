// internal/app/features/news/types.go
package news

import (
	"strings"

	"github.com/dalemusser/clubhub/internal/app/features/shared/params"
	newsstore "github.com/dalemusser/clubhub/internal/app/store/news"
	"github.com/dalemusser/clubhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/clubhub/internal/app/system/inputval"
)

type newsInput struct {
	Title       *string   `json:"title"`
	Content     *string   `json:"content"`
	Summary     *string   `json:"summary"`
	Author      *string   `json:"author"`
	Image       *string   `json:"image"`
	Category    *string   `json:"category"`
	Tags        *[]string `json:"tags"`
	IsPublished *bool     `json:"isPublished"`
	Featured    *bool     `json:"featured"`
	PublishedAt *string   `json:"publishedAt"`
}

// patch trims the text fields and sanitizes content. Markup that is
// stripped entirely leaves an empty body, which validation then rejects.
func (in newsInput) patch() (newsstore.Patch, error) {
	p := newsstore.Patch{
		Title:       params.Trim(in.Title),
		Summary:     params.Trim(in.Summary),
		Author:      params.Trim(in.Author),
		Image:       params.Trim(in.Image),
		Category:    params.Trim(in.Category),
		Tags:        params.TrimAll(in.Tags),
		IsPublished: in.IsPublished,
		Featured:    in.Featured,
	}
	if in.Content != nil {
		c := strings.TrimSpace(htmlsanitize.Sanitize(*in.Content))
		p.Content = &c
	}
	if in.PublishedAt != nil && strings.TrimSpace(*in.PublishedAt) != "" {
		t, err := inputval.ParseDate(*in.PublishedAt)
		if err != nil {
			return newsstore.Patch{}, err
		}
		p.PublishedAt = &t
	}
	return p, nil
}

const publishedAtMessage = "Published at must be a calendar date (YYYY-MM-DD) or an RFC 3339 timestamp."
