// middleware/auth.go
package middleware

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Tokens are issued elsewhere and carry user_id, username and is_guest
// claims plus a mandatory exp.

func bearerToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}
	// browsers cannot set headers on a websocket upgrade
	if token := c.Cookies("token"); token != "" {
		return token
	}
	return c.Query("token")
}

func parseClaims(tokenString, secret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(401, "Invalid signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, fiber.NewError(401, "Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fiber.NewError(401, "Invalid token claims")
	}

	exp, ok := claims["exp"].(float64)
	if !ok || time.Unix(int64(exp), 0).Before(time.Now()) {
		return nil, fiber.NewError(401, "Token expired")
	}
	return claims, nil
}

func setGuest(c *fiber.Ctx) {
	c.Locals("userId", nil)
	c.Locals("username", "Guest")
	c.Locals("isGuest", true)
}

func setClaims(c *fiber.Ctx, claims jwt.MapClaims) {
	c.Locals("userId", claims["user_id"])
	c.Locals("username", claims["username"])
	c.Locals("isGuest", claims["is_guest"])
}

// OptionalAuth identifies the caller when a valid token is present and
// treats everyone else as a guest. With an empty secret every caller is a
// guest.
func OptionalAuth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := bearerToken(c)
		if secret == "" || tokenString == "" {
			setGuest(c)
			return c.Next()
		}

		claims, err := parseClaims(tokenString, secret)
		if err != nil {
			setGuest(c)
			return c.Next()
		}
		setClaims(c, claims)
		return c.Next()
	}
}

// RequireAuth rejects requests without a valid token.
func RequireAuth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if secret == "" {
			return c.Status(401).JSON(fiber.Map{"success": false, "error": "Authentication is not configured"})
		}

		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{"success": false, "error": "Missing authorization header"})
		}
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(401).JSON(fiber.Map{"success": false, "error": "Invalid authorization header format"})
		}

		claims, err := parseClaims(parts[1], secret)
		if err != nil {
			msg := "Invalid or expired token"
			if fe, ok := err.(*fiber.Error); ok {
				msg = fe.Message
			}
			return c.Status(401).JSON(fiber.Map{"success": false, "error": msg})
		}

		setClaims(c, claims)
		if _, err := GetUserID(c); err != nil {
			return c.Status(401).JSON(fiber.Map{"success": false, "error": "Invalid user ID format"})
		}
		return c.Next()
	}
}

func GetUserID(c *fiber.Ctx) (uint, error) {
	userID := c.Locals("userId")
	if userID == nil {
		return 0, fiber.NewError(401, "User not authenticated")
	}

	if id, ok := userID.(float64); ok && id >= 1 {
		return uint(id), nil
	}

	if id, ok := userID.(uint); ok {
		return id, nil
	}

	return 0, fiber.NewError(401, "Invalid user ID format")
}

// UserIDPtr returns the caller's ID, or nil for guests.
func UserIDPtr(c *fiber.Ctx) *uint {
	id, err := GetUserID(c)
	if err != nil {
		return nil
	}
	return &id
}

func GetUsername(c *fiber.Ctx) string {
	if name, ok := c.Locals("username").(string); ok {
		return name
	}
	return "Guest"
}

func IsGuest(c *fiber.Ctx) bool {
	isGuest := c.Locals("isGuest")
	if isGuest == nil {
		return UserIDPtr(c) == nil
	}

	if guest, ok := isGuest.(bool); ok {
		return guest
	}

	return false
}
