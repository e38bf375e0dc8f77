package middleware

import (
	"net/http"

	"go-engnet/internal/shared/contextutil"
	"go-engnet/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ExtractUserID validates the user id set by the JWT middleware and enriches
// the request context with it, so logs and downstream calls carry the
// authenticated user.
func ExtractUserID() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("user_id")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Usuário não autenticado", nil)
			c.Abort()
			return
		}

		userIDStr, ok := userID.(string)
		if !ok || userIDStr == "" {
			response.Error(c, http.StatusUnauthorized, "INVALID_USER_ID", "Formato de user_id inválido", nil)
			c.Abort()
			return
		}

		c.Set("user_id_validated", userIDStr)

		ctx := c.Request.Context()
		ctx = contextutil.WithUserID(ctx, userIDStr)
		ctx = contextutil.WithLogger(ctx,
			contextutil.GetLogger(ctx, zap.L()).With(zap.String("user_id", userIDStr)))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
