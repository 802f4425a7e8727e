// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package middleware provides request authentication for protected routes.
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"codeberg.org/oliverandrich/nobias/internal/models"
	"codeberg.org/oliverandrich/nobias/internal/repository"
	"codeberg.org/oliverandrich/nobias/internal/services/token"
	"github.com/labstack/echo/v4"
)

// userContextKey is the echo context key for the authenticated user.
const userContextKey = "auth.user"

// CurrentUser returns the authenticated user, or nil outside protected routes.
func CurrentUser(c echo.Context) *models.User {
	user, _ := c.Get(userContextKey).(*models.User)
	return user
}

// SetCurrentUser stores the authenticated user on the echo context.
func SetCurrentUser(c echo.Context, user *models.User) {
	c.Set(userContextKey, user)
}

// RequireAuth authenticates the bearer token and loads the account onto the
// request context.
func RequireAuth(tokens *token.Service, repo *repository.Repository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": "No token provided."})
			}

			claims, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Invalid or expired token."})
			}

			userID, err := claims.UserID()
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Invalid or expired token."})
			}

			user, err := repo.GetUserByID(c.Request().Context(), userID)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Account no longer exists."})
				}
				return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Server error."})
			}

			SetCurrentUser(c, user)
			return next(c)
		}
	}
}

// RequireAdmin ensures the authenticated user has the admin role. It must
// run after RequireAuth.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Not authenticated."})
			}
			if !user.IsAdmin() {
				return c.JSON(http.StatusForbidden, map[string]string{"message": "Access denied. Admins only."})
			}
			return next(c)
		}
	}
}
