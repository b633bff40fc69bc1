package api

import "github.com/foodgramapp/foodgram-server/internal/store"

// PaginationInput holds the page-number query parameters shared by list endpoints.
type PaginationInput struct {
	Page  int `query:"page" minimum:"0" doc:"1-based page number (default 1)"`
	Limit int `query:"limit" minimum:"0" doc:"Items per page (default 6, max 100)"`
}

// PageParams converts the query into normalized store pagination.
func (p PaginationInput) PageParams() store.PageParams {
	params := store.PageParams{Page: p.Page, Limit: p.Limit}
	params.Validate()
	return params
}

// flag reports whether a query flag such as is_favorited=1 is set.
func flag(v string) bool {
	switch v {
	case "1", "true", "True":
		return true
	default:
		return false
	}
}
