package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bszip-backend/internal/domains/bookstore/model"
	"bszip-backend/pkg/database"
)

// Schema creates the tables used by postgresRepository.
const Schema = `
CREATE TABLE IF NOT EXISTS bookstores (
    id         BIGSERIAL PRIMARY KEY,
    name       VARCHAR(200) NOT NULL,
    address    VARCHAR(300) NOT NULL,
    category   VARCHAR(16)  NOT NULL,
    latitude   DOUBLE PRECISION NOT NULL,
    longitude  DOUBLE PRECISION NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_bookstores_category ON bookstores (category);

CREATE TABLE IF NOT EXISTS bookstore_likes (
    member_id    BIGINT NOT NULL,
    bookstore_id BIGINT NOT NULL REFERENCES bookstores (id) ON DELETE CASCADE,
    created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    PRIMARY KEY (member_id, bookstore_id)
);
CREATE INDEX IF NOT EXISTS idx_bookstore_likes_bookstore ON bookstore_likes (bookstore_id);
`

const selectColumns = `b.id, b.name, b.address, b.category, b.latitude, b.longitude`

// postgresRepository implements RepositoryInterface on pgxpool
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

// Migrate applies Schema.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("migrate bookstore schema: %w", err)
	}
	return nil
}

func (r *postgresRepository) SearchByKeyword(ctx context.Context, keyword string) ([]model.Bookstore, error) {
	query := `
    SELECT ` + selectColumns + `
    FROM bookstores b
    WHERE b.name ILIKE '%' || $1 || '%' ESCAPE '\'
       OR b.address ILIKE '%' || $1 || '%' ESCAPE '\'
    ORDER BY b.id
  `
	return r.queryStores(ctx, query, escapeLike(keyword))
}

func (r *postgresRepository) ListByCategory(ctx context.Context, category *model.Category) ([]model.Bookstore, error) {
	query := `
    SELECT ` + selectColumns + `
    FROM bookstores b
    WHERE ($1::text IS NULL OR b.category = $1::text)
    ORDER BY b.id
  `
	return r.queryStores(ctx, query, categoryArg(category))
}

func (r *postgresRepository) ListLiked(ctx context.Context, memberID int64, category *model.Category) ([]model.Bookstore, error) {
	query := `
    SELECT ` + selectColumns + `
    FROM bookstores b
    JOIN bookstore_likes l ON l.bookstore_id = b.id
    WHERE l.member_id = $1
      AND ($2::text IS NULL OR b.category = $2::text)
    ORDER BY l.created_at DESC, b.id
  `
	return r.queryStores(ctx, query, memberID, categoryArg(category))
}

func (r *postgresRepository) LikedIDs(ctx context.Context, memberID int64, ids []int64) (map[int64]bool, error) {
	liked := make(map[int64]bool, len(ids))
	if len(ids) == 0 {
		return liked, nil
	}

	query := `SELECT bookstore_id FROM bookstore_likes WHERE member_id = $1 AND bookstore_id = ANY($2)`
	rows, err := r.pool.Query(ctx, query, memberID, ids)
	if err != nil {
		return nil, fmt.Errorf("query liked ids: %w", err)
	}
	found, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("scan liked ids: %w", err)
	}
	for _, id := range found {
		liked[id] = true
	}
	return liked, nil
}

// ToggleLike locks the bookstore row so concurrent toggles by the same member serialize.
func (r *postgresRepository) ToggleLike(ctx context.Context, memberID, storeID int64) (bool, error) {
	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (bool, error) {
		var id int64
		err := tx.QueryRow(ctx, `SELECT id FROM bookstores WHERE id = $1 FOR UPDATE`, storeID).Scan(&id)
		if errors.Is(err, pgx.ErrNoRows) {
			return false, model.NewBookstoreNotFoundError(storeID)
		}
		if err != nil {
			return false, fmt.Errorf("lock bookstore: %w", err)
		}

		tag, err := tx.Exec(ctx,
			`DELETE FROM bookstore_likes WHERE member_id = $1 AND bookstore_id = $2`, memberID, storeID)
		if err != nil {
			return false, fmt.Errorf("delete like: %w", err)
		}
		if tag.RowsAffected() > 0 {
			return false, nil
		}

		if _, err := tx.Exec(ctx,
			`INSERT INTO bookstore_likes (member_id, bookstore_id) VALUES ($1, $2)`, memberID, storeID); err != nil {
			return false, fmt.Errorf("insert like: %w", err)
		}
		return true, nil
	})
}

func (r *postgresRepository) queryStores(ctx context.Context, query string, args ...interface{}) ([]model.Bookstore, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query bookstores: %w", err)
	}
	stores, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Bookstore])
	if err != nil {
		return nil, fmt.Errorf("scan bookstores: %w", err)
	}
	return stores, nil
}

func categoryArg(category *model.Category) *string {
	if category == nil {
		return nil
	}
	s := string(*category)
	return &s
}
