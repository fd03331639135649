package service

import (
	"context"

	"bszip-backend/internal/domains/bookstore/model"
	"bszip-backend/internal/shared/requester"
)

// ServiceInterface - bookstore search, filter and like logic.
// who is nil for anonymous callers.
type ServiceInterface interface {
	Search(ctx context.Context, req model.SearchRequest, who *requester.Requester) ([]model.BookstoreSummary, error)
	ListByCategory(ctx context.Context, req model.ListRequest, who *requester.Requester) ([]model.BookstoreSummary, error)
	ToggleLike(ctx context.Context, storeID int64, who *requester.Requester) (*model.ToggleResult, error)
	ListLiked(ctx context.Context, req model.ListRequest, who *requester.Requester) (*model.LikedBookstores, error)
}
