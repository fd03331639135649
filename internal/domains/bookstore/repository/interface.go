package repository

import (
	"context"

	"bszip-backend/internal/domains/bookstore/model"
)

// RepositoryInterface is the persistence port for bookstores and likes.
// A nil category means "all categories".
type RepositoryInterface interface {
	// SearchByKeyword matches keyword against name and address, case-insensitively.
	SearchByKeyword(ctx context.Context, keyword string) ([]model.Bookstore, error)
	ListByCategory(ctx context.Context, category *model.Category) ([]model.Bookstore, error)
	ListLiked(ctx context.Context, memberID int64, category *model.Category) ([]model.Bookstore, error)

	// LikedIDs returns which of ids memberID has liked.
	LikedIDs(ctx context.Context, memberID int64, ids []int64) (map[int64]bool, error)

	// ToggleLike flips the like relation and returns the new state.
	// Fails with model.ErrBookstoreNotFound when storeID does not exist.
	ToggleLike(ctx context.Context, memberID, storeID int64) (bool, error)
}
