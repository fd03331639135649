package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"bszip-backend/internal/shared/apperror"
)

// Envelope is the body of every API response. Exactly one of the two
// variants below is written per request.
type Envelope interface {
	StatusCode() int
	envelope()
}

// SuccessResponse is the result=true variant.
type SuccessResponse struct {
	Result  bool        `json:"result"`
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func (r SuccessResponse) StatusCode() int { return r.Status }
func (SuccessResponse) envelope()         {}

// ErrorResponse is the result=false variant.
type ErrorResponse struct {
	Result  bool   `json:"result"`
	Status  int    `json:"status"`
	Message string `json:"message"`
	Detail  string `json:"detail"`
}

func (r ErrorResponse) StatusCode() int { return r.Status }
func (ErrorResponse) envelope()         {}

func NewSuccess(status int, message string, data interface{}) SuccessResponse {
	return SuccessResponse{Result: true, Status: status, Message: message, Data: data}
}

func NewError(status int, message, detail string) ErrorResponse {
	return ErrorResponse{Result: false, Status: status, Message: message, Detail: detail}
}

// FromError builds the error variant for err.
// Lỗi không thuộc apperror luôn được coi là lỗi nội bộ (500).
func FromError(err error) ErrorResponse {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		message := appErr.Message
		if message == "" {
			message = defaultMessage(appErr.Kind)
		}
		return NewError(appErr.Kind.HTTPStatus(), message, appErr.DetailText())
	}

	detail := ""
	if err != nil {
		detail = err.Error()
	}
	return NewError(http.StatusInternalServerError, apperror.MessageInternal, detail)
}

func defaultMessage(kind apperror.Kind) string {
	switch kind {
	case apperror.KindUnauthenticated:
		return apperror.MessageUnauthenticated
	case apperror.KindInvalidArgument:
		return apperror.MessageInvalidRequest
	case apperror.KindNotFound:
		return "요청한 리소스를 찾을 수 없습니다."
	default:
		return apperror.MessageInternal
	}
}

// Write sends env using its own status code as the HTTP status.
func Write(c *gin.Context, env Envelope) {
	c.JSON(env.StatusCode(), env)
}

// Abort writes env and stops the middleware chain.
func Abort(c *gin.Context, env Envelope) {
	c.AbortWithStatusJSON(env.StatusCode(), env)
}

// Success responses
func OK(c *gin.Context, message string, data interface{}) {
	Write(c, NewSuccess(http.StatusOK, message, data))
}

// Error maps err onto the error envelope and writes it.
func Error(c *gin.Context, err error) {
	env := FromError(err)
	if env.Status >= http.StatusInternalServerError {
		log.Error().
			Err(err).
			Str("request_id", c.GetString("request_id")).
			Str("path", c.Request.URL.Path).
			Msg("Request failed")
	}
	Write(c, env)
}

// Common error responses
func Unauthorized(c *gin.Context) {
	Write(c, FromError(apperror.Unauthenticated()))
}
