// Package authctx extracts caller identity from JWT claims stored in the
// request context by the auth middleware.
package authctx

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrNoToken = errors.New("no token in context")

func claims(c *fiber.Ctx) (jwt.MapClaims, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return nil, ErrNoToken
	}
	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	return mapClaims, nil
}

// UserID extracts the caller's UUID from the sub claim.
func UserID(c *fiber.Ctx) (uuid.UUID, error) {
	mapClaims, err := claims(c)
	if err != nil {
		return uuid.Nil, err
	}
	sub, ok := mapClaims["sub"].(string)
	if !ok {
		return uuid.Nil, errors.New("missing sub claim")
	}
	return uuid.Parse(sub)
}

// Email extracts the caller's email claim, if present.
func Email(c *fiber.Ctx) string {
	mapClaims, err := claims(c)
	if err != nil {
		return ""
	}
	email, _ := mapClaims["email"].(string)
	return email
}

// Roles extracts the caller's comma-joined roles claim as a slice.
func Roles(c *fiber.Ctx) []string {
	mapClaims, err := claims(c)
	if err != nil {
		return nil
	}
	joined, _ := mapClaims["roles"].(string)
	if joined == "" {
		return nil
	}
	return strings.Split(joined, ",")
}

// IsAdmin reports whether the token carries the admin role. Authorization
// decisions re-check the database; this is only a fast path.
func IsAdmin(c *fiber.Ctx) bool {
	for _, r := range Roles(c) {
		if r == "admin" {
			return true
		}
	}
	return false
}
