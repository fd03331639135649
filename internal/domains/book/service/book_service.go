package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"bszip-backend/internal/domains/book/model"
	"bszip-backend/internal/infrastructure/kakao"
	"bszip-backend/pkg/cache"
)

type BookService struct {
	searcher Searcher
	cache    cache.Cache
	cacheTTL time.Duration
}

// NewBookService - cache may be nil, in which case every request goes upstream
func NewBookService(searcher Searcher, c cache.Cache, cacheTTL time.Duration) *BookService {
	return &BookService{
		searcher: searcher,
		cache:    c,
		cacheTTL: cacheTTL,
	}
}

func (s *BookService) SearchByTitle(ctx context.Context, req model.SearchRequest) (*model.BookSearchPage, error) {
	return s.search(ctx, model.SearchByTitle, req, s.searcher.SearchByTitle)
}

func (s *BookService) SearchByAuthor(ctx context.Context, req model.SearchRequest) (*model.BookSearchPage, error) {
	return s.search(ctx, model.SearchByAuthor, req, s.searcher.SearchByAuthor)
}

type fetchFunc func(ctx context.Context, query string, page int) (*kakao.SearchResponse, error)

func (s *BookService) search(ctx context.Context, mode model.SearchMode, req model.SearchRequest, fetch fetchFunc) (*model.BookSearchPage, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, model.NewInvalidQueryError(err)
	}

	cacheKey := req.CacheKey(mode)
	if s.cache != nil {
		var cached model.BookSearchPage
		found, err := s.cache.Get(ctx, cacheKey, &cached)
		if err != nil {
			// Cache lỗi không được làm fail request
			log.Warn().Err(err).Str("key", cacheKey).Msg("Book search cache read failed")
		} else if found {
			return &cached, nil
		}
	}

	raw, err := fetch(ctx, req.Query, req.Page)
	if err != nil {
		if kakao.IsBadRequest(err) {
			return nil, model.NewInvalidQueryError(err)
		}
		return nil, model.NewUpstreamFailureError(err)
	}

	page := toSearchPage(raw)

	if s.cache != nil && s.cacheTTL > 0 {
		if err := s.cache.Set(ctx, cacheKey, page, s.cacheTTL); err != nil {
			log.Warn().Err(err).Str("key", cacheKey).Msg("Book search cache write failed")
		}
	}

	return page, nil
}
