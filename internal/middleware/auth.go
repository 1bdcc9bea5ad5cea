package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// AdminClaims is the payload of an admin session token.
type AdminClaims struct {
	jwt.RegisteredClaims
	AdminID uint64 `json:"admin_id"`
	Email   string `json:"email"`
}

// ContextKeyAdminID is where RequireAuth stores the verified admin id.
const ContextKeyAdminID = "admin_id"

const tokenTTL = 24 * time.Hour

// GenerateToken signs a session token for the given admin.
func GenerateToken(secret string, adminID uint64, email string) (string, error) {
	claims := AdminClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "beyond-border-admin",
		},
		AdminID: adminID,
		Email:   email,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken verifies a token string and returns its claims.
func ParseToken(secret, tokenString string) (*AdminClaims, error) {
	claims := &AdminClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}

type AuthMiddleware struct {
	secret string
}

func NewAuthMiddleware(secret string) *AuthMiddleware {
	return &AuthMiddleware{secret: secret}
}

// RequireAuth rejects requests without a valid bearer token and stores the
// admin identity in the echo context.
func (m *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authz := c.Request().Header.Get("Authorization")
		tokenString, found := strings.CutPrefix(authz, "Bearer ")
		if !found || tokenString == "" {
			return c.JSON(http.StatusUnauthorized, map[string]any{
				"success": false,
				"message": "missing bearer token",
			})
		}
		claims, err := ParseToken(m.secret, tokenString)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]any{
				"success": false,
				"message": "invalid or expired token",
			})
		}
		c.Set(ContextKeyAdminID, claims.AdminID)
		c.Set("admin_email", claims.Email)
		return next(c)
	}
}

// AdminID returns the authenticated admin's id from the echo context.
// RequireAuth must have run first.
func AdminID(c echo.Context) uint64 {
	id, _ := c.Get(ContextKeyAdminID).(uint64)
	return id
}
