package middleware

import (
	"errors"
	"strconv"
	"strings"

	"quill/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

var cfg *config.Config

// LoginPath is where unauthenticated requests to protected routes are sent.
// The originally requested path is carried in the "next" query parameter so
// the client can resume after logging in.
const LoginPath = "/auth/login/"

// InitMiddleware initializes authentication middleware with the given config.
func InitMiddleware(c *config.Config) {
	cfg = c
}

var errNoToken = errors.New("no valid token")

// userIDFromRequest parses the Authorization bearer token and returns the
// authenticated user ID from the "sub" claim.
func userIDFromRequest(c *fiber.Ctx) (uint, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return 0, errNoToken
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return 0, errNoToken
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, errNoToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errNoToken
	}
	subStr, ok := claims["sub"].(string)
	if !ok {
		return 0, errNoToken
	}

	userID, err := strconv.ParseUint(subStr, 10, 32)
	if err != nil || userID == 0 {
		return 0, errNoToken
	}
	return uint(userID), nil
}

// AuthRequired enforces authentication for protected routes. Unauthenticated
// requests are not rejected with a 401; they are redirected to the login
// route carrying the originally requested path, so the flow matches what a
// browser-facing client expects.
func AuthRequired(c *fiber.Ctx) error {
	userID, err := userIDFromRequest(c)
	if err != nil {
		return c.Redirect(LoginPath+"?next="+c.Path(), fiber.StatusFound)
	}

	c.Locals("userID", userID)
	return c.Next()
}

// OptionalAuth sets the authenticated user ID in locals when a valid token is
// present and lets the request through otherwise. Read routes use it to
// personalize responses (e.g. the profile "following" flag).
func OptionalAuth(c *fiber.Ctx) error {
	if userID, err := userIDFromRequest(c); err == nil {
		c.Locals("userID", userID)
	}
	return c.Next()
}
