package service

import (
	"context"
	"errors"
	"sort"

	"github.com/rs/zerolog/log"

	"bszip-backend/internal/domains/bookstore/model"
	"bszip-backend/internal/domains/bookstore/repository"
	"bszip-backend/internal/shared/apperror"
	"bszip-backend/internal/shared/requester"
	"bszip-backend/pkg/geo"
)

type BookstoreService struct {
	repo         repository.RepositoryInterface
	distance     geo.DistanceFunc
	radiusMeters float64
}

// NewBookstoreService - radiusMeters <= 0 disables the keyword search radius.
// distance defaults to geo.Distance when nil.
func NewBookstoreService(repo repository.RepositoryInterface, distance geo.DistanceFunc, radiusMeters float64) *BookstoreService {
	if distance == nil {
		distance = geo.Distance
	}
	return &BookstoreService{
		repo:         repo,
		distance:     distance,
		radiusMeters: radiusMeters,
	}
}

func (s *BookstoreService) Search(ctx context.Context, req model.SearchRequest, who *requester.Requester) ([]model.BookstoreSummary, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	stores, err := s.repo.SearchByKeyword(ctx, req.Keyword)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	summaries, err := s.annotate(ctx, stores, req.Point(), who)
	if err != nil {
		return nil, err
	}

	if s.radiusMeters > 0 {
		within := summaries[:0]
		for _, sum := range summaries {
			if sum.Distance <= s.radiusMeters {
				within = append(within, sum)
			}
		}
		summaries = within
	}

	log.Debug().
		Str("keyword", req.Keyword).
		Int("count", len(summaries)).
		Msg("Bookstore keyword search")

	return summaries, nil
}

func (s *BookstoreService) ListByCategory(ctx context.Context, req model.ListRequest, who *requester.Requester) ([]model.BookstoreSummary, error) {
	if err := req.Validate(); err != nil {
		return nil, model.NewInvalidLocationError(err)
	}
	category, err := model.ParseCategory(req.Category)
	if err != nil {
		return nil, err
	}

	stores, err := s.repo.ListByCategory(ctx, category)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return s.annotate(ctx, stores, req.Point(), who)
}

func (s *BookstoreService) ToggleLike(ctx context.Context, storeID int64, who *requester.Requester) (*model.ToggleResult, error) {
	memberID, ok := who.ID()
	if !ok {
		return nil, apperror.Unauthenticated()
	}

	liked, err := s.repo.ToggleLike(ctx, memberID, storeID)
	if err != nil {
		if errors.Is(err, model.ErrBookstoreNotFound) {
			return nil, err
		}
		return nil, apperror.Internal(err)
	}

	log.Info().
		Int64("member_id", memberID).
		Int64("bookstore_id", storeID).
		Bool("liked", liked).
		Msg("Bookstore like toggled")

	return &model.ToggleResult{BookstoreID: storeID, Liked: liked}, nil
}

func (s *BookstoreService) ListLiked(ctx context.Context, req model.ListRequest, who *requester.Requester) (*model.LikedBookstores, error) {
	memberID, ok := who.ID()
	if !ok {
		return nil, apperror.Unauthenticated()
	}
	if err := req.Validate(); err != nil {
		return nil, model.NewInvalidLocationError(err)
	}
	category, err := model.ParseCategory(req.Category)
	if err != nil {
		return nil, err
	}

	stores, err := s.repo.ListLiked(ctx, memberID, category)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	origin := req.Point()
	items := make([]model.BookstoreSummary, 0, len(stores))
	for _, b := range stores {
		items = append(items, model.ToSummary(b, s.distance(origin, b.Point()), true))
	}
	sortByDistance(items)

	return &model.LikedBookstores{TotalCount: len(items), Items: items}, nil
}

// annotate attaches distance from origin and the requester's like state, nearest first.
func (s *BookstoreService) annotate(ctx context.Context, stores []model.Bookstore, origin geo.Point, who *requester.Requester) ([]model.BookstoreSummary, error) {
	liked := map[int64]bool{}
	if memberID, ok := who.ID(); ok && len(stores) > 0 {
		ids := make([]int64, 0, len(stores))
		for _, b := range stores {
			ids = append(ids, b.ID)
		}
		var err error
		liked, err = s.repo.LikedIDs(ctx, memberID, ids)
		if err != nil {
			return nil, apperror.Internal(err)
		}
	}

	summaries := make([]model.BookstoreSummary, 0, len(stores))
	for _, b := range stores {
		summaries = append(summaries, model.ToSummary(b, s.distance(origin, b.Point()), liked[b.ID]))
	}
	sortByDistance(summaries)

	return summaries, nil
}

func sortByDistance(items []model.BookstoreSummary) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Distance < items[j].Distance
	})
}
