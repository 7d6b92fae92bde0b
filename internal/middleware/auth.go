package middleware

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"spendbook/internal/config"
	apperrors "spendbook/internal/errors"
)

// getJWTKey returns the JWT key from configuration
func getJWTKey() []byte {
	return []byte(config.Get().JWTSecret)
}

// JWTClaims represents the claims in the JWT
type JWTClaims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

// GenerateAccessToken issues a signed bearer token bound to the given
// user id, expiring after the configured duration.
func GenerateAccessToken(userID uint) (string, error) {
	now := time.Now()
	claims := &JWTClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(config.Get().JWTExpirationDur)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "spendbook-api",
			Subject:   fmt.Sprintf("%d", userID),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(getJWTKey())
}

// VerifyAccessToken parses and validates a bearer token, returning the
// subject user id. Failures map onto the three token error kinds:
// a well-formed token past its expiry is ErrTokenExpired, anything
// else that fails signature or format checks is ErrTokenInvalid.
func VerifyAccessToken(tokenString string) (uint, error) {
	claims := &JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return getJWTKey(), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, apperrors.ErrTokenExpired
		}
		return 0, apperrors.Wrap(apperrors.ErrTokenInvalid, err)
	}
	if !token.Valid {
		return 0, apperrors.ErrTokenInvalid
	}

	return claims.UserID, nil
}

// AuthMiddleware verifies the bearer token and sets the user in the context
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get the Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithAppError(c, apperrors.ErrTokenMissing)
			return
		}

		// Check if the header is in the correct format
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortWithAppError(c, apperrors.ErrTokenMissing)
			return
		}

		userID, err := VerifyAccessToken(parts[1])
		if err != nil {
			var appErr *apperrors.AppError
			if !errors.As(err, &appErr) {
				appErr = apperrors.ErrTokenInvalid
			}
			abortWithAppError(c, appErr)
			return
		}

		// Set user ID in the context
		c.Set("userID", userID)
		c.Next()
	}
}

func abortWithAppError(c *gin.Context, appErr *apperrors.AppError) {
	c.AbortWithStatusJSON(appErr.StatusCode, gin.H{
		"error": gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
		},
	})
}
