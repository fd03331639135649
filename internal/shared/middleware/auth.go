package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"bszip-backend/internal/shared/apperror"
	"bszip-backend/internal/shared/requester"
	"bszip-backend/internal/shared/response"
	"bszip-backend/pkg/jwt"
)

// TokenValidator is satisfied by *jwt.Manager.
type TokenValidator interface {
	ValidateAccessToken(token string) (*jwt.Claims, error)
}

// OptionalAuth - Middleware xác thực JWT nhưng cho phép request ẩn danh.
// Không có header -> requester = nil; header sai hoặc token không hợp lệ -> 401.
// Routes that need a member reject nil themselves.
func OptionalAuth(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			requester.Set(c, nil)
			c.Next()
			return
		}

		// "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			abortUnauthenticated(c, "invalid authorization header format")
			return
		}

		claims, err := validator.ValidateAccessToken(strings.TrimSpace(parts[1]))
		if err != nil {
			log.Debug().
				Err(err).
				Str("request_id", c.GetString("request_id")).
				Msg("Access token rejected")
			abortUnauthenticated(c, err.Error())
			return
		}

		requester.Set(c, &requester.Requester{MemberID: claims.MemberID, Email: claims.Email})
		c.Next()
	}
}

func abortUnauthenticated(c *gin.Context, detail string) {
	err := apperror.Unauthenticated()
	err.Detail = detail
	response.Abort(c, response.FromError(err))
}
