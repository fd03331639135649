package model

import "strings"

// SearchMode chọn trường mà upstream sẽ match query.
type SearchMode string

const (
	SearchByTitle  SearchMode = "title"
	SearchByAuthor SearchMode = "author"
)

// BookSummary is one search hit.
type BookSummary struct {
	ISBN          string   `json:"isbn"`
	Title         string   `json:"title"`
	Authors       []string `json:"authors"`
	Publisher     string   `json:"publisher"`
	CoverImageURL string   `json:"bookImageUrl"`
}

// BookSearchPage is one page of results plus whether it is the last one.
type BookSearchPage struct {
	Results    []BookSummary `json:"books"`
	IsLastPage bool          `json:"isEnd"`
}

// PrimaryISBN picks the first non-empty token of the "ISBN10 ISBN13" field.
func PrimaryISBN(raw string) string {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
