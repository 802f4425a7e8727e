// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package handlers contains all HTTP handlers of the NoBias API.
package handlers

import (
	"net/http"

	"codeberg.org/oliverandrich/nobias/internal/repository"
	"codeberg.org/oliverandrich/nobias/internal/services/auth"
	"github.com/labstack/echo/v4"
)

// Handlers contains all HTTP handlers.
type Handlers struct {
	repo *repository.Repository
	auth *auth.Service
}

// New creates a new Handlers instance.
func New(repo *repository.Repository, authService *auth.Service) *Handlers {
	return &Handlers{repo: repo, auth: authService}
}

// Health returns the health status.
func (h *Handlers) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}
