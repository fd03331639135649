package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"bszip-backend/internal/domains/bookstore/model"
)

// gormRepository implements RepositoryInterface on gorm; used with the sqlite driver.
type gormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) RepositoryInterface {
	return &gormRepository{db: db}
}

// Models lists what gorm must auto-migrate for this repository.
func Models() []interface{} {
	return []interface{}{&model.Bookstore{}, &model.Like{}}
}

func (r *gormRepository) SearchByKeyword(ctx context.Context, keyword string) ([]model.Bookstore, error) {
	pattern := "%" + escapeLike(strings.ToLower(keyword)) + "%"

	var stores []model.Bookstore
	err := r.db.WithContext(ctx).
		Where(`LOWER(name) LIKE ? ESCAPE '\' OR LOWER(address) LIKE ? ESCAPE '\'`, pattern, pattern).
		Order("id").
		Find(&stores).Error
	if err != nil {
		return nil, fmt.Errorf("query bookstores: %w", err)
	}
	return stores, nil
}

func (r *gormRepository) ListByCategory(ctx context.Context, category *model.Category) ([]model.Bookstore, error) {
	q := r.db.WithContext(ctx).Order("id")
	if category != nil {
		q = q.Where("category = ?", string(*category))
	}

	var stores []model.Bookstore
	if err := q.Find(&stores).Error; err != nil {
		return nil, fmt.Errorf("query bookstores: %w", err)
	}
	return stores, nil
}

func (r *gormRepository) ListLiked(ctx context.Context, memberID int64, category *model.Category) ([]model.Bookstore, error) {
	q := r.db.WithContext(ctx).
		Table("bookstores").
		Select("bookstores.*").
		Joins("JOIN bookstore_likes ON bookstore_likes.bookstore_id = bookstores.id").
		Where("bookstore_likes.member_id = ?", memberID).
		Order("bookstore_likes.created_at DESC, bookstores.id")
	if category != nil {
		q = q.Where("bookstores.category = ?", string(*category))
	}

	var stores []model.Bookstore
	if err := q.Scan(&stores).Error; err != nil {
		return nil, fmt.Errorf("query liked bookstores: %w", err)
	}
	return stores, nil
}

func (r *gormRepository) LikedIDs(ctx context.Context, memberID int64, ids []int64) (map[int64]bool, error) {
	liked := make(map[int64]bool, len(ids))
	if len(ids) == 0 {
		return liked, nil
	}

	var found []int64
	err := r.db.WithContext(ctx).
		Model(&model.Like{}).
		Where("member_id = ? AND bookstore_id IN ?", memberID, ids).
		Pluck("bookstore_id", &found).Error
	if err != nil {
		return nil, fmt.Errorf("query liked ids: %w", err)
	}
	for _, id := range found {
		liked[id] = true
	}
	return liked, nil
}

func (r *gormRepository) ToggleLike(ctx context.Context, memberID, storeID int64) (bool, error) {
	var liked bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var store model.Bookstore
		if err := tx.Select("id").First(&store, storeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return model.NewBookstoreNotFoundError(storeID)
			}
			return fmt.Errorf("find bookstore: %w", err)
		}

		res := tx.Where("member_id = ? AND bookstore_id = ?", memberID, storeID).Delete(&model.Like{})
		if res.Error != nil {
			return fmt.Errorf("delete like: %w", res.Error)
		}
		if res.RowsAffected > 0 {
			liked = false
			return nil
		}

		if err := tx.Create(&model.Like{MemberID: memberID, BookstoreID: storeID}).Error; err != nil {
			return fmt.Errorf("insert like: %w", err)
		}
		liked = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return liked, nil
}
