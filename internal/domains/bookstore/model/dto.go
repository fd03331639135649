package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"bszip-backend/pkg/geo"
)

const maxKeywordLength = 100

// Location is the lat/lng pair every bookstore query carries.
type Location struct {
	Lat *float64 `form:"lat"`
	Lng *float64 `form:"lng"`
}

func (l Location) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Lat, validation.NotNil, validation.Min(-90.0), validation.Max(90.0)),
		validation.Field(&l.Lng, validation.NotNil, validation.Min(-180.0), validation.Max(180.0)),
	)
}

// Point must only be called after Validate succeeded.
func (l Location) Point() geo.Point {
	return geo.Point{Lat: *l.Lat, Lng: *l.Lng}
}

// SearchRequest - GET /api/bookstores/search
type SearchRequest struct {
	Keyword string `form:"keyword"`
	Location
}

func (r *SearchRequest) Normalize() {
	r.Keyword = strings.TrimSpace(r.Keyword)
}

// Validate reports keyword and location problems as distinct errors.
func (r SearchRequest) Validate() error {
	if err := validation.ValidateStruct(&r,
		validation.Field(&r.Keyword, validation.Required, validation.RuneLength(1, maxKeywordLength)),
	); err != nil {
		return NewInvalidKeywordError(err)
	}
	if err := r.Location.Validate(); err != nil {
		return NewInvalidLocationError(err)
	}
	return nil
}

// ListRequest - GET /api/bookstores and GET /api/bookstores/liked
type ListRequest struct {
	Category string `form:"category"`
	Location
}

func (r ListRequest) Validate() error {
	return r.Location.Validate()
}
