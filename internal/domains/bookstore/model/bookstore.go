package model

import (
	"strings"
	"time"

	"bszip-backend/pkg/geo"
)

// Category is the bookstore kind.
type Category string

const (
	CategoryIndependent Category = "INDEP" // 독립서점
	CategoryChildren    Category = "CHILD" // 아동서점
	CategoryUsed        Category = "USED"  // 중고서점
	CategoryCafe        Category = "CAFE"  // 북카페
)

var categories = []Category{CategoryIndependent, CategoryChildren, CategoryUsed, CategoryCafe}

// Categories returns every known category.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

func (c Category) Valid() bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory is case-insensitive. An empty string means "no filter" and yields nil.
func ParseCategory(raw string) (*Category, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	c := Category(strings.ToUpper(raw))
	if !c.Valid() {
		return nil, NewInvalidCategoryError(raw)
	}
	return &c, nil
}

// Bookstore is a row of the bookstores table.
type Bookstore struct {
	ID        int64    `gorm:"primaryKey" db:"id"`
	Name      string   `gorm:"size:200;not null;index" db:"name"`
	Address   string   `gorm:"size:300;not null" db:"address"`
	Category  Category `gorm:"size:16;not null;index" db:"category"`
	Latitude  float64  `gorm:"not null" db:"latitude"`
	Longitude float64  `gorm:"not null" db:"longitude"`
}

func (Bookstore) TableName() string { return "bookstores" }

func (b Bookstore) Point() geo.Point {
	return geo.Point{Lat: b.Latitude, Lng: b.Longitude}
}

// Like is the (member, bookstore) relation; its presence means liked.
type Like struct {
	MemberID    int64     `gorm:"primaryKey;autoIncrement:false" db:"member_id"`
	BookstoreID int64     `gorm:"primaryKey;autoIncrement:false;index" db:"bookstore_id"`
	CreatedAt   time.Time `db:"created_at"`
}

func (Like) TableName() string { return "bookstore_likes" }

// BookstoreSummary is a bookstore annotated for one requester at one location.
type BookstoreSummary struct {
	ID        int64    `json:"bookstoreId"`
	Name      string   `json:"name"`
	Address   string   `json:"address"`
	Category  Category `json:"category"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Distance  float64  `json:"distance"` // meters from the request point
	Liked     bool     `json:"liked"`
}

func ToSummary(b Bookstore, distance float64, liked bool) BookstoreSummary {
	return BookstoreSummary{
		ID:        b.ID,
		Name:      b.Name,
		Address:   b.Address,
		Category:  b.Category,
		Latitude:  b.Latitude,
		Longitude: b.Longitude,
		Distance:  distance,
		Liked:     liked,
	}
}

// LikedBookstores is the payload of the liked listing.
type LikedBookstores struct {
	TotalCount int                `json:"totalCnt"`
	Items      []BookstoreSummary `json:"bookstores"`
}

// ToggleResult reports the like state after a toggle.
type ToggleResult struct {
	BookstoreID int64 `json:"bookstoreId"`
	Liked       bool  `json:"liked"`
}
