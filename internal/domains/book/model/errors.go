package model

import (
	"bszip-backend/internal/shared/apperror"
)

// Error codes
const (
	ErrCodeInvalidQuery    = "BOOK001"
	ErrCodeUpstreamFailure = "BOOK002"
)

// ErrInvalidQuery is the sentinel for comparisons with errors.Is.
var ErrInvalidQuery = &apperror.Error{Code: ErrCodeInvalidQuery}

func NewInvalidQueryError(err error) *apperror.Error {
	return apperror.Wrap(apperror.KindInvalidArgument, ErrCodeInvalidQuery, "잘못된 검색어입니다.", err)
}

func NewUpstreamFailureError(err error) *apperror.Error {
	return apperror.Wrap(apperror.KindInternal, ErrCodeUpstreamFailure, "도서 검색 중 오류가 발생했습니다.", err)
}
