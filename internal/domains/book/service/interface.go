package service

import (
	"context"

	"bszip-backend/internal/domains/book/model"
	"bszip-backend/internal/infrastructure/kakao"
)

// ServiceInterface - book search business logic
type ServiceInterface interface {
	SearchByTitle(ctx context.Context, req model.SearchRequest) (*model.BookSearchPage, error)
	SearchByAuthor(ctx context.Context, req model.SearchRequest) (*model.BookSearchPage, error)
}

// Searcher is the upstream paged book search. *kakao.Client implements it.
type Searcher interface {
	SearchByTitle(ctx context.Context, query string, page int) (*kakao.SearchResponse, error)
	SearchByAuthor(ctx context.Context, query string, page int) (*kakao.SearchResponse, error)
}
