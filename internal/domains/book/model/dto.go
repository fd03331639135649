package model

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	maxQueryLength = 100
	maxPage        = 50
)

// SearchRequest là query string của /book-search và /book-search-by-author.
type SearchRequest struct {
	Query string `form:"query"`
	Page  int    `form:"page,default=1"`
}

func (r *SearchRequest) Normalize() {
	r.Query = strings.TrimSpace(r.Query)
}

func (r SearchRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Query, validation.Required, validation.RuneLength(1, maxQueryLength)),
		validation.Field(&r.Page, validation.Required, validation.Min(1), validation.Max(maxPage)),
	)
}

// CacheKey identifies a page of results for one mode.
func (r SearchRequest) CacheKey(mode SearchMode) string {
	return fmt.Sprintf("book-search:%s:%s:%d", mode, strings.ToLower(r.Query), r.Page)
}
