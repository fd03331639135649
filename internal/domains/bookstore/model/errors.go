package model

import (
	"fmt"
	"strings"

	"bszip-backend/internal/shared/apperror"
)

// Error codes
const (
	ErrCodeInvalidKeyword    = "BS001"
	ErrCodeInvalidCategory   = "BS002"
	ErrCodeInvalidLocation   = "BS003"
	ErrCodeBookstoreNotFound = "BS004"
	ErrCodeNoSearchResult    = "BS005"
	ErrCodeInvalidID         = "BS006"
)

// Sentinels for errors.Is
var (
	ErrBookstoreNotFound = &apperror.Error{Code: ErrCodeBookstoreNotFound}
	ErrInvalidCategory   = &apperror.Error{Code: ErrCodeInvalidCategory}
)

func NewInvalidKeywordError(err error) *apperror.Error {
	return apperror.Wrap(apperror.KindInvalidArgument, ErrCodeInvalidKeyword, "잘못된 검색어입니다.", err)
}

// NewInvalidCategoryError lists the accepted categories in its detail.
func NewInvalidCategoryError(raw string) *apperror.Error {
	known := Categories()
	names := make([]string, len(known))
	for i, c := range known {
		names[i] = string(c)
	}
	return apperror.New(apperror.KindInvalidArgument, ErrCodeInvalidCategory, apperror.MessageInvalidRequest,
		fmt.Sprintf("알 수 없는 서점 카테고리입니다: %s (허용: %s)", raw, strings.Join(names, ", ")))
}

func NewInvalidLocationError(err error) *apperror.Error {
	return apperror.Wrap(apperror.KindInvalidArgument, ErrCodeInvalidLocation, apperror.MessageInvalidRequest, err)
}

func NewInvalidIDError(raw string) *apperror.Error {
	return apperror.New(apperror.KindInvalidArgument, ErrCodeInvalidID, apperror.MessageInvalidRequest,
		fmt.Sprintf("잘못된 서점 ID입니다: %s", raw))
}

func NewBookstoreNotFoundError(id int64) *apperror.Error {
	return apperror.New(apperror.KindNotFound, ErrCodeBookstoreNotFound, "해당 서점을 찾을 수 없습니다.",
		fmt.Sprintf("서점 ID %d 에 해당하는 서점이 없습니다.", id))
}

// NewNoSearchResultError is the 404 for a keyword search without matches.
func NewNoSearchResultError(keyword string) *apperror.Error {
	return apperror.New(apperror.KindNotFound, ErrCodeNoSearchResult, "검색 결과가 없습니다.",
		keyword+" 에 해당하는 서점이 없습니다.")
}
