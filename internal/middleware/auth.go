// Package middleware provides HTTP middleware for the fiber app.
package middleware

import (
	"errors"
	"log"
	"strings"

	"sops/internal/config"
	"sops/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// RequireAuth validates the Bearer token and stores the claims in the
// request context under "claims".
func RequireAuth(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return unauthorized(c, "missing authorization header")
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return unauthorized(c, "invalid authorization format")
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	token, err := jwt.ParseWithClaims(tokenString, &models.UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.GetEnv("JWT_SECRET", "sops")), nil
	})
	if err != nil || !token.Valid {
		log.Printf("token validation error: %v", err)
		return unauthorized(c, "invalid token")
	}

	claims, ok := token.Claims.(*models.UserClaims)
	if !ok {
		return unauthorized(c, "invalid claims")
	}

	c.Locals("claims", claims)
	return c.Next()
}

func unauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": msg})
}
