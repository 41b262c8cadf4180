package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"scoutline-backend/config"
	"scoutline-backend/internal/delivery/http/response"
	"scoutline-backend/internal/domain"
	"scoutline-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware verifies the identity provider's session token and puts
// the caller's identity into the request context. It fails closed: any
// request the provider cannot vouch for is rejected with 401.
func AuthMiddleware(jwksProvider *auth.Provider, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		var tokenString string

		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		} else {
			// Session cookie set by the provider's frontend SDK
			cookie, err := c.Cookie("__session")
			if err == nil && cookie != "" {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header or session cookie required", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); ok {
				// HS256 - local development fallback
				if cfg.ClerkJWTSecret == "" {
					return nil, fmt.Errorf("HS256 token received but CLERK_JWT_SECRET is not configured")
				}
				return []byte(cfg.ClerkJWTSecret), nil
			}

			if _, ok := token.Method.(*jwt.SigningMethodRSA); ok {
				// RS256 - provider-signed session token, resolved via JWKS
				return jwksProvider.KeyFunc(token)
			}

			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		})

		if err != nil || !token.Valid {
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "Invalid claims", nil)
			c.Abort()
			return
		}

		sub, _ := claims["sub"].(string)
		if sub == "" {
			response.Error(c, http.StatusUnauthorized, "Token missing subject", nil)
			c.Abort()
			return
		}
		sid, _ := claims["sid"].(string)

		c.Set(string(domain.KeyUserID), sub)
		c.Set(string(domain.KeySessionID), sid)
		c.Set(string(domain.KeyUserRole), roleFromClaims(claims))

		c.Next()
	}
}

// roleFromClaims reads the role the provider embeds in the session token,
// either as a top-level claim or inside the public metadata claim.
func roleFromClaims(claims jwt.MapClaims) string {
	if role, ok := claims["role"].(string); ok && role != "" {
		return role
	}
	if meta, ok := claims["metadata"].(map[string]interface{}); ok {
		if role, ok := meta["role"].(string); ok {
			return role
		}
	}
	return ""
}
