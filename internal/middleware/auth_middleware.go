package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	autherrors "go-engnet/internal/auth/errors"
	"go-engnet/internal/shared/identity"
	"go-engnet/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware validates the bearer token and stores the actor identity in
// the Gin context. A missing or expired token is a hard 401; the client is
// expected to redirect to login and must not retry automatically.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token não encontrado", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			errObj := autherrors.ErrInvalidToken
			if err != nil && strings.Contains(err.Error(), "expired") {
				errObj = autherrors.ErrTokenExpired
			}
			response.Error(c, errObj.HTTPStatus, errObj.Code, errObj.Message, nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token claims", nil)
			c.Abort()
			return
		}

		userID, ok := claims["user_id"].(string)
		if !ok || userID == "" {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "User ID not found in token", nil)
			c.Abort()
			return
		}

		name, _ := claims["name"].(string)
		role, _ := claims["role"].(string)

		c.Set("user_id", userID)
		c.Set("user_name", name)
		c.Set("role", role)

		c.Next()
	}
}

// RoleMiddleware restricts a route to the given roles. The JWT role claim is
// a UX shortcut; services re-check ownership and role on every mutation.
func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get("role")
		if !exists {
			response.Error(c, autherrors.ErrForbidden.HTTPStatus, autherrors.ErrForbidden.Code, autherrors.ErrForbidden.Message, nil)
			c.Abort()
			return
		}

		isAllowed := false
		for _, role := range allowedRoles {
			if userRole == role {
				isAllowed = true
				break
			}
		}

		if !isAllowed {
			response.Error(c, autherrors.ErrForbidden.HTTPStatus, autherrors.ErrForbidden.Code, autherrors.ErrForbidden.Message, nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

// ActorFrom assembles the session actor placed in the context by
// AuthMiddleware and ExtractUserID.
func ActorFrom(c *gin.Context) identity.Actor {
	id := c.GetString("user_id_validated")
	if id == "" {
		id = c.GetString("user_id")
	}
	return identity.Actor{
		ID:   id,
		Name: c.GetString("user_name"),
		Role: c.GetString("role"),
	}
}
