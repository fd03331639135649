package service

import (
	"bszip-backend/internal/domains/book/model"
	"bszip-backend/internal/infrastructure/kakao"
)

// toSearchPage converts a raw Kakao page. A nil page converts to an empty last page.
func toSearchPage(raw *kakao.SearchResponse) *model.BookSearchPage {
	page := &model.BookSearchPage{Results: []model.BookSummary{}, IsLastPage: true}
	if raw == nil {
		return page
	}

	page.IsLastPage = raw.Meta.IsEnd
	for _, doc := range raw.Documents {
		page.Results = append(page.Results, toSummary(doc))
	}
	return page
}

func toSummary(doc kakao.Document) model.BookSummary {
	authors := doc.Authors
	if authors == nil {
		authors = []string{}
	}
	return model.BookSummary{
		ISBN:          model.PrimaryISBN(doc.ISBN),
		Title:         doc.Title,
		Authors:       authors,
		Publisher:     doc.Publisher,
		CoverImageURL: doc.Thumbnail,
	}
}
