package middleware

import (
	"strings"

	"localpro_backend/internal/auth"
	"localpro_backend/internal/logger"
	"localpro_backend/pkg/apperrors"
	"localpro_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware rejects requests without a valid Bearer token.
// A missing header and an invalid/expired token produce distinct error
// codes so clients can tell "not signed in" from "session expired".
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			appErr := apperrors.ErrUnauthorized
			c.AbortWithStatusJSON(appErr.HTTPCode, apperrors.ErrorResponse{Error: appErr})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			appErr := apperrors.ErrInvalidToken
			if apperrors.Is(err, auth.ErrTokenExpired) {
				appErr = apperrors.ErrTokenExpired
			}
			c.AbortWithStatusJSON(appErr.HTTPCode, apperrors.ErrorResponse{Error: appErr})
			return
		}

		setIdentity(c, claims)
		c.Next()
	}
}

// OptionalAuthMiddleware resolves the caller's identity when a token is
// present but lets anonymous requests through. Listing endpoints use it:
// an owner browsing their own services gets the unscoped view.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
			if claims, err := auth.ParseToken(tokenStr); err == nil {
				setIdentity(c, claims)
			}
		}
		c.Next()
	}
}

func setIdentity(c *gin.Context, claims *auth.Claims) {
	c.Set(string(contextkeys.UserIDKey), claims.UserID)
	c.Set(string(contextkeys.UserEmailKey), claims.Email)

	ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
	c.Request = c.Request.WithContext(ctx)
}

// CurrentUserID returns the authenticated user ID, or "" for anonymous
// requests.
func CurrentUserID(c *gin.Context) string {
	if userID, ok := c.Get(string(contextkeys.UserIDKey)); ok {
		if id, ok := userID.(string); ok {
			return id
		}
	}
	return ""
}
