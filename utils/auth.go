// utils/auth.go
package utils

import (
	"errors"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"slotifyme-admin/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Token purposes. A reset token must never be usable as a session.
const (
	PurposeSession       = "session"
	PurposePasswordReset = "password_reset"
)

// Hash password
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

// Check password
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// GenerateToken mints the session JWT that doubles as the upstream bearer.
func GenerateToken(userID, email string) (string, error) {
	expiryHours := 168 // 7 days
	if env := os.Getenv("JWT_EXPIRY_HOURS"); env != "" {
		if h, err := strconv.Atoi(env); err == nil {
			expiryHours = h
		}
	}
	return signToken(jwt.MapClaims{
		"sub":     userID,
		"email":   email,
		"purpose": PurposeSession,
		"exp":     time.Now().Add(time.Duration(expiryHours) * time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	})
}

// GenerateResetToken mints the short-lived token handed out after the
// security questions are answered correctly.
func GenerateResetToken(email string) (string, error) {
	return signToken(jwt.MapClaims{
		"email":   email,
		"purpose": PurposePasswordReset,
		"exp":     time.Now().Add(15 * time.Minute).Unix(),
		"iat":     time.Now().Unix(),
	})
}

func signToken(claims jwt.MapClaims) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", errors.New("JWT_SECRET not set")
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken validates signature, expiry and purpose.
func ParseToken(tokenString, purpose string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	if claims["purpose"] != purpose {
		return nil, errors.New("invalid token purpose")
	}
	return claims, nil
}

// SetSessionCookie writes the session cookie: HttpOnly, path=/, SameSite Lax,
// secure per config, 7-day lifetime.
func SetSessionCookie(c *gin.Context, cfg config.Config, token string) {
	maxAge := cfg.JWTExpiryHours * 3600

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		cfg.JWTCookieName,
		token,
		maxAge,
		"/",
		"",
		cfg.JWTCookieSecure,
		true,
	)
}

// ClearSessionCookie expires the session cookie unconditionally.
func ClearSessionCookie(c *gin.Context, cfg config.Config) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		cfg.JWTCookieName,
		"",
		-1,
		"/",
		"",
		cfg.JWTCookieSecure,
		true,
	)
}

// SessionToken extracts the raw bearer token: session cookie first, then the
// Authorization header for non-browser callers.
func SessionToken(c *gin.Context, cfg config.Config) string {
	if cookie, err := c.Cookie(cfg.JWTCookieName); err == nil && cookie != "" {
		return cookie
	}

	header := c.GetHeader("Authorization")
	if len(header) > 7 && strings.ToUpper(header[0:6]) == "BEARER" {
		return header[7:]
	}
	return ""
}

// AuthMiddleware gates the /api surface. Missing or invalid session aborts
// with 401 before any handler runs.
func AuthMiddleware(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := SessionToken(c, cfg)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		claims, err := ParseToken(tokenString, PurposeSession)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set("userId", claims["sub"])
		c.Set("email", claims["email"])
		c.Next()
	}
}

// RequirePage gates server-rendered pages: unauthenticated requests are
// redirected to /login before any protected content is produced.
func RequirePage(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := SessionToken(c, cfg)
		if tokenString == "" {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		if _, err := ParseToken(tokenString, PurposeSession); err != nil {
			ClearSessionCookie(c, cfg)
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
