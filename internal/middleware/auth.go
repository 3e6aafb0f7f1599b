package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/naira_billpay/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SessionMiddleware verifies HS256 session tokens minted by the identity provider.
// With required=false a missing or invalid token leaves the request anonymous;
// with required=true it is rejected with 401. An empty secret disables verification.
func SessionMiddleware(jwtSecret string, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		userID, err := sessionSubject(c.GetHeader("Authorization"), jwtSecret)
		if err != nil {
			if required {
				logger.Warn("Session rejected", slog.String("error", err.Error()))
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail(sessionErrorMessage(err)))
				return
			}
			if !errors.Is(err, errNoSession) {
				logger.Info("Ignoring invalid session token", slog.String("error", err.Error()))
			}
			c.Next()
			return
		}

		ctx := WithUserID(c.Request.Context(), userID)
		ctx = WithLogger(ctx, logger.With(slog.String("user_id", userID)))
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

var (
	errNoSession       = errors.New("authorization header required")
	errMalformedHeader = errors.New("authorization header format must be Bearer {token}")
	errNotConfigured   = errors.New("session verification is not configured")
)

func sessionSubject(authHeader, jwtSecret string) (string, error) {
	if authHeader == "" {
		return "", errNoSession
	}
	if jwtSecret == "" {
		return "", errNotConfigured
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errMalformedHeader
	}

	token, err := jwt.ParseWithClaims(parts[1], &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Check the signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(jwtSecret), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", errors.New("invalid token claims")
	}
	return claims.Subject, nil
}

func sessionErrorMessage(err error) string {
	switch {
	case errors.Is(err, errNoSession), errors.Is(err, errMalformedHeader):
		return err.Error()
	case errors.Is(err, jwt.ErrTokenExpired):
		return "Session has expired"
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return "Session not valid yet"
	default:
		return "Invalid session"
	}
}
