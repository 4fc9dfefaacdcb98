package middleware

import (
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"lead-management-api/internal/config"
)

// Authorizer strategy names.
const (
	StrategyJWT   = "jwt"
	StrategyBasic = "basic"
)

// Claims represents JWT claims
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// AuthService handles bearer-token operations
type AuthService struct {
	config *config.AuthConfig
}

// NewAuthService creates a new authentication service
func NewAuthService(cfg *config.AuthConfig) *AuthService {
	if cfg.JWTExpiryHours == 0 {
		cfg.JWTExpiryHours = 24
	}
	return &AuthService{config: cfg}
}

// GenerateToken generates a JWT token for a user
func (a *AuthService) GenerateToken(userID, email string) (string, error) {
	claims := &Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(a.config.JWTExpiryHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "lead-management-api",
			Subject:   userID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(a.config.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken validates a JWT token and returns the claims
func (a *AuthService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(a.config.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// Authorize checks an Authorization header value against the configured
// strategy: bearer-token validation or the fixed basic-auth credentials.
// It is shared between the gin middleware and the Lambda entrypoints.
func Authorize(authHeader string, auth *AuthService, cfg *config.AuthConfig) error {
	if authHeader == "" {
		return fmt.Errorf("authorization header is required")
	}

	scheme, credential, found := strings.Cut(authHeader, " ")
	if !found {
		return fmt.Errorf("invalid authorization header format")
	}

	switch cfg.Strategy {
	case StrategyBasic:
		if scheme != "Basic" {
			return fmt.Errorf("invalid authorization header format. Expected: Basic <credentials>")
		}
		decoded, err := base64.StdEncoding.DecodeString(credential)
		if err != nil {
			return fmt.Errorf("invalid basic auth encoding")
		}
		username, password, ok := strings.Cut(string(decoded), ":")
		if !ok {
			return fmt.Errorf("invalid basic auth credentials")
		}
		userMatch := subtle.ConstantTimeCompare([]byte(username), []byte(cfg.BasicUsername))
		passMatch := subtle.ConstantTimeCompare([]byte(password), []byte(cfg.BasicPassword))
		if userMatch != 1 || passMatch != 1 {
			return fmt.Errorf("invalid credentials")
		}
		return nil
	default:
		if scheme != "Bearer" {
			return fmt.Errorf("invalid authorization header format. Expected: Bearer <token>")
		}
		_, err := auth.ValidateToken(credential)
		return err
	}
}

// AuthorizeHeaders applies the configured authorizer to a raw header map,
// for the Lambda entrypoints where no gin context exists.
func AuthorizeHeaders(headers map[string]string, auth *AuthService, cfg *config.AuthConfig) error {
	header := headers["Authorization"]
	if header == "" {
		header = headers["authorization"]
	}
	return Authorize(header, auth, cfg)
}

// Authentication middleware that gates routes with the configured authorizer
func Authentication(auth *AuthService, cfg *config.AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := Authorize(c.GetHeader("Authorization"), auth, cfg); err != nil {
			logrus.WithFields(logrus.Fields{
				"error": err.Error(),
				"path":  c.Request.URL.Path,
			}).Warn("Authorization failed")

			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or missing credentials",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
