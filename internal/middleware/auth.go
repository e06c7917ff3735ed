package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware creates a Gin middleware handler that resolves the caller's
// identity. Identity comes from a Bearer JWT (subject claim). Outside
// production the middleware also accepts an X-User-ID header or a userId
// query parameter, matching the placeholder identity the SPA uses during
// development. Requests without any identity are rejected with 401.
func AuthMiddleware(jwtSecret string, allowDevIdentity bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			if allowDevIdentity {
				if userID := devIdentity(c); userID != "" {
					setIdentity(c, logger, userID)
					c.Next()
					return
				}
			}
			logger.Warn("No identity supplied")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		token, err := jwt.ParseWithClaims(parts[1], &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(jwtSecret), nil
		})
		if err != nil {
			logger.Warn("Invalid token", slog.String("error", err.Error()))
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		claims, ok := token.Claims.(*jwt.RegisteredClaims)
		if !ok || !token.Valid || claims.Subject == "" {
			logger.Error("User ID (subject) missing from valid token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		setIdentity(c, logger, claims.Subject)
		c.Next()
	}
}

// devIdentity extracts the development placeholder identity, if present.
func devIdentity(c *gin.Context) string {
	if userID := c.GetHeader("X-User-ID"); userID != "" {
		return userID
	}
	return c.Query("userId")
}

// setIdentity stores the user ID and an identity-enriched logger in both the
// Gin context and the underlying request context.
func setIdentity(c *gin.Context, logger *slog.Logger, userID string) {
	enriched := logger.With(slog.String("user_id", userID))

	ctx := context.WithValue(c.Request.Context(), userIDKey, userID)
	ctx = context.WithValue(ctx, loggerCtxKey, enriched)
	c.Request = c.Request.WithContext(ctx)
	c.Set(string(userIDKey), userID)
}
