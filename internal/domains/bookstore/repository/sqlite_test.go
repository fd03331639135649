package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bszip-backend/internal/domains/bookstore/model"
	"bszip-backend/internal/infrastructure/database"
)

func newTestRepository(t *testing.T) (RepositoryInterface, []model.Bookstore) {
	t.Helper()

	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "bookstores.db"), false, Models()...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	stores := []model.Bookstore{
		{Name: "강남책방", Address: "서울 강남구 테헤란로 1", Category: model.CategoryIndependent, Latitude: 37.4979, Longitude: 127.0276},
		{Name: "동화나라", Address: "서울 종로구 종로 1", Category: model.CategoryChildren, Latitude: 37.5704, Longitude: 126.9922},
		{Name: "헌책방 골목", Address: "서울 강남구 역삼동", Category: model.CategoryUsed, Latitude: 37.5006, Longitude: 127.0364},
		{Name: "Book Cafe", Address: "부산 해운대구", Category: model.CategoryCafe, Latitude: 35.1631, Longitude: 129.1635},
	}
	require.NoError(t, db.DB.Create(&stores).Error)

	return NewGormRepository(db.DB), stores
}

func names(stores []model.Bookstore) []string {
	out := make([]string, 0, len(stores))
	for _, s := range stores {
		out = append(out, s.Name)
	}
	return out
}

func TestGormRepository_SearchByKeyword(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	t.Run("matches name or address", func(t *testing.T) {
		got, err := repo.SearchByKeyword(ctx, "강남")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"강남책방", "헌책방 골목"}, names(got))
	})

	t.Run("is case-insensitive", func(t *testing.T) {
		got, err := repo.SearchByKeyword(ctx, "book")
		require.NoError(t, err)
		assert.Equal(t, []string{"Book Cafe"}, names(got))
	})

	t.Run("no match is empty, not an error", func(t *testing.T) {
		got, err := repo.SearchByKeyword(ctx, "제주")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestGormRepository_SearchByKeywordIsLiteral(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	for _, keyword := range []string{"%", "_", `\`, "강%", "Book_Cafe"} {
		t.Run(keyword, func(t *testing.T) {
			got, err := repo.SearchByKeyword(ctx, keyword)
			require.NoError(t, err)
			assert.Empty(t, got, "wildcards in the keyword must not match")
		})
	}
}

func TestGormRepository_SearchByKeywordMatchesWildcardCharacters(t *testing.T) {
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "literal.db"), false, Models()...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	stores := []model.Bookstore{
		{Name: "100% 책방", Address: "서울 마포구", Category: model.CategoryIndependent},
		{Name: "1000 책방", Address: "서울 마포구", Category: model.CategoryIndependent},
		{Name: "book_cafe", Address: "서울 성동구", Category: model.CategoryCafe},
		{Name: "bookXcafe", Address: "서울 성동구", Category: model.CategoryCafe},
	}
	require.NoError(t, db.DB.Create(&stores).Error)
	repo := NewGormRepository(db.DB)
	ctx := context.Background()

	got, err := repo.SearchByKeyword(ctx, "100%")
	require.NoError(t, err)
	assert.Equal(t, []string{"100% 책방"}, names(got))

	got, err = repo.SearchByKeyword(ctx, "BOOK_CAFE")
	require.NoError(t, err)
	assert.Equal(t, []string{"book_cafe"}, names(got))
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\% \_ a\\b`, escapeLike(`100% _ a\b`))
	assert.Equal(t, "강남", escapeLike("강남"))
}

func TestGormRepository_ListByCategory(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	all, err := repo.ListByCategory(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	used := model.CategoryUsed
	got, err := repo.ListByCategory(ctx, &used)
	require.NoError(t, err)
	assert.Equal(t, []string{"헌책방 골목"}, names(got))
}

func TestGormRepository_ToggleLike(t *testing.T) {
	repo, stores := newTestRepository(t)
	ctx := context.Background()
	const member = int64(7)
	storeID := stores[0].ID

	liked, err := repo.ToggleLike(ctx, member, storeID)
	require.NoError(t, err)
	assert.True(t, liked)

	ids, err := repo.LikedIDs(ctx, member, []int64{storeID, stores[1].ID})
	require.NoError(t, err)
	assert.Equal(t, map[int64]bool{storeID: true}, ids)

	liked, err = repo.ToggleLike(ctx, member, storeID)
	require.NoError(t, err)
	assert.False(t, liked, "second toggle restores the original state")

	ids, err = repo.LikedIDs(ctx, member, []int64{storeID})
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestGormRepository_ToggleLikeUnknownStore(t *testing.T) {
	repo, _ := newTestRepository(t)

	_, err := repo.ToggleLike(context.Background(), 1, 999)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrBookstoreNotFound))
}

func TestGormRepository_ListLiked(t *testing.T) {
	repo, stores := newTestRepository(t)
	ctx := context.Background()

	for _, s := range stores[:3] {
		_, err := repo.ToggleLike(ctx, 1, s.ID)
		require.NoError(t, err)
	}
	_, err := repo.ToggleLike(ctx, 2, stores[3].ID)
	require.NoError(t, err)

	got, err := repo.ListLiked(ctx, 1, nil)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"강남책방", "동화나라", "헌책방 골목"}, names(got))

	children := model.CategoryChildren
	got, err = repo.ListLiked(ctx, 1, &children)
	require.NoError(t, err)
	assert.Equal(t, []string{"동화나라"}, names(got))

	got, err = repo.ListLiked(ctx, 3, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGormRepository_LikedIDsEmptyInput(t *testing.T) {
	repo, _ := newTestRepository(t)

	ids, err := repo.LikedIDs(context.Background(), 1, nil)
	require.NoError(t, err)
	assert.Empty(t, ids)
}
