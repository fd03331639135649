package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure by how the HTTP boundary must report it.
type Kind int

const (
	KindInternal Kind = iota
	KindInvalidArgument
	KindNotFound
	KindUnauthenticated
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "INVALID_ARGUMENT"
	case KindNotFound:
		return "NOT_FOUND"
	case KindUnauthenticated:
		return "UNAUTHENTICATED"
	default:
		return "INTERNAL"
	}
}

// HTTPStatus returns the status line value for the kind.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindInvalidArgument:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthenticated:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Error là lỗi chuẩn dùng chung giữa các domain.
// Message là câu hiển thị cho client, Detail là phần giải thích kèm theo.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Detail  string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	if e.Detail != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Detail)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches on Code so sentinel values can be compared with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code != "" && t.Code == e.Code
}

// DetailText returns Detail, falling back to the wrapped error text.
func (e *Error) DetailText() string {
	if e.Detail != "" {
		return e.Detail
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return ""
}

func New(kind Kind, code, message, detail string) *Error {
	return &Error{Kind: kind, Code: code, Message: message, Detail: detail}
}

func Wrap(kind Kind, code, message string, err error) *Error {
	return &Error{Kind: kind, Code: code, Message: message, Err: err}
}

// KindOf reports the kind of err; anything that is not an *Error is internal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// ============================================
// SHARED CONSTRUCTORS
// ============================================

const (
	CodeUnauthenticated = "AUTH_001"
	CodeInvalidRequest  = "REQ_001"
	CodeInternal        = "SYS_001"
)

const (
	MessageUnauthenticated = "인증되지 않은 사용자입니다."
	DetailLoginRequired    = "로그인이 필요한 서비스입니다."
	MessageInvalidRequest  = "잘못된 요청입니다."
	MessageInternal        = "서버 오류가 발생했습니다."
)

func Unauthenticated() *Error {
	return New(KindUnauthenticated, CodeUnauthenticated, MessageUnauthenticated, DetailLoginRequired)
}

func InvalidRequest(err error) *Error {
	return Wrap(KindInvalidArgument, CodeInvalidRequest, MessageInvalidRequest, err)
}

func Internal(err error) *Error {
	return Wrap(KindInternal, CodeInternal, MessageInternal, err)
}
